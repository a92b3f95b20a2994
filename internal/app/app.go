package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/config"
	"github.com/GlebRadaev/refchain/internal/events"
	"github.com/GlebRadaev/refchain/internal/handlers"
	"github.com/GlebRadaev/refchain/internal/pg"
	"github.com/GlebRadaev/refchain/internal/repo"
	boltrepo "github.com/GlebRadaev/refchain/internal/repo/bolt-repo"
	"github.com/GlebRadaev/refchain/internal/service"
	"github.com/GlebRadaev/refchain/internal/service/bonusservice"
	"github.com/GlebRadaev/refchain/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	closers []io.Closer
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	policy, err := bonusservice.ParsePolicy(cfg.CascadePolicy)
	if err != nil {
		return err
	}

	a.repo, err = a.openStore(ctx)
	if err != nil {
		return err
	}

	publisher, err := a.openPublisher()
	if err != nil {
		return err
	}

	a.srv = service.New(a.repo, service.Options{
		JWTSecret:        cfg.JWTSecret,
		MaxReferralDepth: cfg.MaxReferralDepth,
		CascadePolicy:    policy,
		CodeAttempts:     cfg.ReferralCodeAttempts,
		Publisher:        publisher,
	})
	a.api = handlers.New(a.srv)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("cascadePolicy", string(policy)))
	return nil
}

func (a *Application) openStore(ctx context.Context) (*repo.Repositories, error) {
	repos, closer, err := OpenStore(ctx, a.cfg)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closer)
	return repos, nil
}

// OpenStore builds the repositories for the configured driver. The returned closer
// releases the underlying database.
func OpenStore(ctx context.Context, cfg *config.Config) (*repo.Repositories, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.DriverBolt:
		store, err := boltrepo.Open(cfg.BoltPath)
		if err != nil {
			zap.L().Error("open bolt store failed: ", zap.Error(err))
			return nil, nil, fmt.Errorf("can't open bolt store: %w", err)
		}
		zap.L().Info("using bolt store", zap.String("path", cfg.BoltPath))
		return repo.NewBolt(store), store, nil

	case config.DriverPostgres:
		pool, err := getPgxpool(ctx, cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return nil, nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			pool.Close()
			zap.L().Error("migrations failed: ", zap.Error(err))
			return nil, nil, fmt.Errorf("can't run migrations: %w", err)
		}
		closer := closerFunc(func() error { pool.Close(); return nil })
		return repo.New(pg.New(pool), pg.NewTXManager(pool)), closer, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func (a *Application) openPublisher() (events.Publisher, error) {
	if a.cfg.NatsURL == "" {
		zap.L().Info("NATS_URL is empty, bonus events are not published")
		return events.Noop{}, nil
	}
	publisher, err := events.Connect(a.cfg.NatsURL, a.cfg.NatsSubject)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, publisher)
	return publisher, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	a.close()
	return appErr
}

// close releases resources in reverse order of acquisition.
func (a *Application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			zap.L().Error("close failed", zap.Error(err))
		}
	}
	a.closers = nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
