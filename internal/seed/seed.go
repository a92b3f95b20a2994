package seed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/service/adminservice"
	"github.com/GlebRadaev/refchain/internal/service/authservice"
)

const defaultWorkers = 4

type Registrar interface {
	Register(ctx context.Context, req authservice.RegisterRequest) (*domain.Member, error)
}

type Ledger interface {
	RequestDeposit(ctx context.Context, memberID int, amount decimal.Decimal) (*domain.Transaction, error)
}

type DepositConfirmer interface {
	ConfirmDeposit(ctx context.Context, txID int) (*adminservice.DepositResult, error)
}

type Options struct {
	// RootCode is the referral code the first seeded member registers with. Empty starts a new tree.
	RootCode string
	Prefix   string
	Depth    int
	Password string
	Type     domain.MemberType
	Deposit  decimal.Decimal
	Workers  int
}

type Report struct {
	Members  []*domain.Member
	Deposits int
	Failed   int
	// Unpaid counts committed registrations and deposits whose referral bonuses failed.
	Unpaid int
}

// Seeder fills a store with a referral chain, each member funded by a confirmed deposit.
type Seeder struct {
	registrar Registrar
	ledger    Ledger
	confirmer DepositConfirmer
}

func New(registrar Registrar, ledger Ledger, confirmer DepositConfirmer) *Seeder {
	return &Seeder{
		registrar: registrar,
		ledger:    ledger,
		confirmer: confirmer,
	}
}

// Run registers Depth members, each referred by the previous one, then funds them in
// parallel. Registration stops at the first error since every member depends on its
// referrer. Funding failures are counted in the report and returned joined. Bonus failures
// after a committed registration or deposit are only counted as unpaid.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Depth <= 0 {
		return nil, fmt.Errorf("%w: depth must be positive", domain.ErrValidation)
	}
	if opts.Deposit.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if opts.Type == "" {
		opts.Type = domain.MemberTypePlayer
	}
	if opts.Prefix == "" {
		opts.Prefix = "seed"
	}

	report := &Report{}
	code := opts.RootCode
	for i := 1; i <= opts.Depth; i++ {
		member, err := s.registrar.Register(ctx, authservice.RegisterRequest{
			Username:     fmt.Sprintf("%s_%03d", opts.Prefix, i),
			Password:     opts.Password,
			Type:         string(opts.Type),
			ReferralCode: code,
		})
		if errors.Is(err, domain.ErrCascadeIncomplete) && member != nil {
			zap.L().Warn("seeded member without referral bonuses", zap.String("username", member.Username), zap.Error(err))
			report.Unpaid++
			err = nil
		}
		if err != nil {
			return report, fmt.Errorf("register member %d: %w", i, err)
		}
		report.Members = append(report.Members, member)
		code = member.ReferralCode
	}

	if opts.Deposit.IsPositive() {
		deposits, failed, unpaid, err := s.fund(ctx, report.Members, opts)
		report.Deposits = deposits
		report.Failed = failed
		report.Unpaid += unpaid
		if err != nil {
			return report, err
		}
	}

	zap.L().Info("seeding finished",
		zap.Int("members", len(report.Members)),
		zap.Int("deposits", report.Deposits),
		zap.Int("failed", report.Failed),
		zap.Int("unpaid", report.Unpaid),
	)
	return report, nil
}

func (s *Seeder) fund(ctx context.Context, members []*domain.Member, opts Options) (int, int, int, error) {
	var (
		confirmed atomic.Int64
		unpaid    atomic.Int64
		mu        sync.Mutex
		errs      []error
	)
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	workerPool := NewWorkerPool(workers, func(err error) {
		zap.L().Error("seed deposit failed", zap.Error(err))
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	})

	g, gCtx := errgroup.WithContext(ctx)
	for _, member := range members {
		member := member
		g.Go(func() error {
			return workerPool.AddTask(gCtx, func() error {
				err := s.deposit(ctx, member, opts.Deposit)
				if errors.Is(err, domain.ErrCascadeIncomplete) {
					zap.L().Warn("seed deposit bonus not paid", zap.String("username", member.Username), zap.Error(err))
					unpaid.Add(1)
					err = nil
				}
				if err != nil {
					return err
				}
				confirmed.Add(1)
				return nil
			})
		})
	}
	err := g.Wait()
	workerPool.Close()
	if err != nil {
		return int(confirmed.Load()), len(members) - int(confirmed.Load()), int(unpaid.Load()), err
	}
	return int(confirmed.Load()), len(errs), int(unpaid.Load()), errors.Join(errs...)
}

func (s *Seeder) deposit(ctx context.Context, member *domain.Member, amount decimal.Decimal) error {
	tx, err := s.ledger.RequestDeposit(ctx, member.ID, amount)
	if err != nil {
		return fmt.Errorf("deposit for %s: %w", member.Username, err)
	}
	if _, err := s.confirmer.ConfirmDeposit(ctx, tx.ID); err != nil {
		return fmt.Errorf("confirm deposit %d for %s: %w", tx.ID, member.Username, err)
	}
	return nil
}
