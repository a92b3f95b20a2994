package logger

import (
	"fmt"
	"os"

	"github.com/GlebRadaev/refchain/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "15:04:05 02-01-2006"

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger replaces the global zap logger. Every entry carries the store driver so
// logs from a bolt and a postgres instance can be told apart.
func InitLogger(conf *config.Config) error {
	logger, err := Build(conf.LogLvl, zap.String("store", conf.StoreDriver))
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// Build returns a console logger. Entries below warn go to stdout, the rest to stderr.
func Build(level string, fields ...zap.Field) (*zap.Logger, error) {
	lvl, ok := logLvlMap[level]
	if !ok {
		return nil, fmt.Errorf("unsupported log lvl: %s", level)
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	})

	routine := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= lvl && l < zapcore.WarnLevel
	})
	problems := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= lvl && l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), routine),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), problems),
	)

	return zap.New(core, zap.ErrorOutput(zapcore.Lock(os.Stderr))).
		Named("refchain").
		With(fields...), nil
}
