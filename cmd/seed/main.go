package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/app"
	"github.com/GlebRadaev/refchain/internal/config"
	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/seed"
	"github.com/GlebRadaev/refchain/internal/service"
	"github.com/GlebRadaev/refchain/internal/service/bonusservice"
	"github.com/GlebRadaev/refchain/pkg/logger"
)

func main() {
	var (
		rootCode   = flag.String("root", "", "referral code of the member to seed under, empty starts a new tree")
		prefix     = flag.String("prefix", "seed", "username prefix")
		depth      = flag.Int("depth", 10, "number of chained members")
		password   = flag.String("password", "password", "password for every seeded member")
		memberType = flag.String("type", string(domain.MemberTypePlayer), "member type: player or influencer")
		deposit    = flag.String("deposit", "100", "confirmed deposit per member, 0 skips funding")
		workers    = flag.Int("workers", 4, "parallel deposit workers")
	)
	cfg := config.New()

	if err := logger.InitLogger(cfg); err != nil {
		log.Fatal().Err(err).Msg("Can't init logger")
	}
	amount, err := decimal.NewFromString(*deposit)
	if err != nil {
		log.Fatal().Err(err).Str("deposit", *deposit).Msg("Invalid deposit amount")
	}
	mt, err := domain.ParseMemberType(*memberType)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid member type")
	}
	policy, err := bonusservice.ParsePolicy(cfg.CascadePolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid cascade policy")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, policy, seed.Options{
		RootCode: *rootCode,
		Prefix:   *prefix,
		Depth:    *depth,
		Password: *password,
		Type:     mt,
		Deposit:  amount,
		Workers:  *workers,
	})
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
}

// run owns the store so it is closed before main exits, fatal or not.
func run(ctx context.Context, cfg *config.Config, policy bonusservice.Policy, opts seed.Options) error {
	repos, closer, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't open store: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			zap.L().Error("close store failed", zap.Error(err))
		}
	}()

	srv := service.New(repos, service.Options{
		JWTSecret:        cfg.JWTSecret,
		MaxReferralDepth: cfg.MaxReferralDepth,
		CascadePolicy:    policy,
		CodeAttempts:     cfg.ReferralCodeAttempts,
	})
	seeder := seed.New(srv.AuthService, srv.TransactionService, srv.AdminService)

	report, err := seeder.Run(ctx, opts)
	if err != nil {
		zap.L().Error("seeding finished with errors", zap.Error(err))
	}
	if report != nil && len(report.Members) > 0 {
		last := report.Members[len(report.Members)-1]
		zap.L().Info("seeded chain",
			zap.String("first", report.Members[0].Username),
			zap.String("last", last.Username),
			zap.String("lastReferralCode", last.ReferralCode),
			zap.Int("unpaid", report.Unpaid),
		)
	}
	return err
}
