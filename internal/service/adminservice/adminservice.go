package adminservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/events"
	"github.com/GlebRadaev/refchain/internal/pg"
	"github.com/GlebRadaev/refchain/internal/service/bonusservice"
	"github.com/GlebRadaev/refchain/internal/service/ledgerservice"
)

// activeWindow is how far back Stats looks for recently joined members.
const activeWindow = 30 * 24 * time.Hour

type MemberRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	MarkFirstTournamentPlayed(ctx context.Context, id int) (bool, error)
	CountByType(ctx context.Context) (map[domain.MemberType]int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}

type TransactionRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Transaction, error)
	Totals(ctx context.Context) (domain.LedgerTotals, error)
}

type Ledger interface {
	CreateAndComplete(ctx context.Context, req ledgerservice.CreateRequest) (*domain.Transaction, *domain.Member, error)
	Complete(ctx context.Context, txID int) (*domain.Member, bool, error)
}

type Bonuses interface {
	CascadeBonuses(ctx context.Context, member *domain.Member, reason bonusservice.Reason) ([]domain.Transaction, error)
	PayDepositBonus(ctx context.Context, deposit *domain.Transaction) (*domain.Transaction, error)
}

type TournamentResult struct {
	Member          *domain.Member
	Reward          *domain.Transaction
	FirstTournament bool
	Bonuses         []domain.Transaction
}

type DepositResult struct {
	Deposit *domain.Transaction
	Member  *domain.Member
	Bonus   *domain.Transaction
}

type Service struct {
	memberRepo      MemberRepo
	transactionRepo TransactionRepo
	ledger          Ledger
	bonuses         Bonuses
	txManager       pg.TXManager
	publisher       events.Publisher
	now             func() time.Time
}

func New(
	memberRepo MemberRepo,
	transactionRepo TransactionRepo,
	ledger Ledger,
	bonuses Bonuses,
	txManager pg.TXManager,
	publisher events.Publisher,
) *Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Service{
		memberRepo:      memberRepo,
		transactionRepo: transactionRepo,
		ledger:          ledger,
		bonuses:         bonuses,
		txManager:       txManager,
		publisher:       publisher,
		now:             time.Now,
	}
}

// ConfirmTournament records that a member played a tournament. A positive reward is credited
// in the member's currency. The referral chain is paid only the first time.
func (s *Service) ConfirmTournament(ctx context.Context, memberID int, name string, reward decimal.Decimal) (*TournamentResult, error) {
	if reward.IsNegative() {
		return nil, fmt.Errorf("%w: reward must not be negative", domain.ErrInvalidAmount)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tournament name is required", domain.ErrValidation)
	}

	result := &TournamentResult{}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		member, err := s.memberRepo.GetByID(ctx, memberID)
		if err != nil {
			return err
		}
		if reward.IsPositive() {
			result.Reward, member, err = s.ledger.CreateAndComplete(ctx, ledgerservice.CreateRequest{
				MemberID:    member.ID,
				Type:        domain.TypeTournament,
				Amount:      reward,
				Currency:    member.Type.Currency(),
				Description: "Tournament reward: " + name,
			})
			if err != nil {
				return err
			}
		}
		result.FirstTournament, err = s.memberRepo.MarkFirstTournamentPlayed(ctx, member.ID)
		if err != nil {
			return err
		}
		member.FirstTournamentPlayed = true
		result.Member = member
		return nil
	})
	if err != nil {
		zap.L().Error("can't confirm tournament", zap.Int("memberID", memberID), zap.Error(err))
		return nil, err
	}

	if result.FirstTournament {
		result.Bonuses, err = s.bonuses.CascadeBonuses(ctx, result.Member, bonusservice.ReasonFirstTournament)
		if err != nil {
			return result, fmt.Errorf("%w: %w", domain.ErrCascadeIncomplete, err)
		}
	}

	zap.L().Info("tournament confirmed",
		zap.Int("memberID", memberID),
		zap.String("tournament", name),
		zap.Bool("first", result.FirstTournament),
	)
	return result, nil
}

// ConfirmDeposit completes a pending deposit and pays the influencer deposit bonus.
// Confirming the same deposit twice fails with ErrAlreadyConfirmed and pays nothing.
func (s *Service) ConfirmDeposit(ctx context.Context, txID int) (*DepositResult, error) {
	deposit, err := s.transactionRepo.GetByID(ctx, txID)
	if err != nil {
		return nil, err
	}
	if deposit.Type != domain.TypeDeposit {
		return nil, domain.ErrNotDeposit
	}

	member, applied, err := s.ledger.Complete(ctx, txID)
	if err != nil {
		zap.L().Error("can't complete deposit", zap.Int("transactionID", txID), zap.Error(err))
		return nil, err
	}
	if !applied {
		return nil, domain.ErrAlreadyConfirmed
	}

	deposit, err = s.transactionRepo.GetByID(ctx, txID)
	if err != nil {
		return nil, err
	}
	result := &DepositResult{Deposit: deposit, Member: member}
	result.Bonus, err = s.bonuses.PayDepositBonus(ctx, deposit)
	if err != nil {
		zap.L().Error("deposit bonus not paid", zap.Int("transactionID", txID), zap.Error(err))
		return result, fmt.Errorf("%w: %w", domain.ErrCascadeIncomplete, err)
	}

	zap.L().Info("deposit confirmed", zap.Int("transactionID", txID), zap.String("amount", deposit.Amount.String()))
	return result, nil
}

// ManualBonus credits a member outside of any referral chain.
func (s *Service) ManualBonus(ctx context.Context, memberID int, amount decimal.Decimal, reason string) (*domain.Transaction, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	tx, _, err := s.ledger.CreateAndComplete(ctx, ledgerservice.CreateRequest{
		MemberID:    member.ID,
		Type:        domain.TypeBonus,
		Amount:      amount,
		Currency:    member.Type.Currency(),
		Description: "Admin bonus: " + reason,
	})
	if err != nil {
		zap.L().Error("can't assign manual bonus", zap.Int("memberID", memberID), zap.Error(err))
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.BonusCredited(tx)); err != nil {
		zap.L().Warn("can't publish bonus event", zap.Int("transactionID", tx.ID), zap.Error(err))
	}
	zap.L().Info("manual bonus assigned", zap.Int("memberID", memberID), zap.String("amount", amount.String()))
	return tx, nil
}

// CompleteTransaction confirms any pending transaction without bonus side effects.
func (s *Service) CompleteTransaction(ctx context.Context, txID int) (*domain.Member, bool, error) {
	return s.ledger.Complete(ctx, txID)
}

func (s *Service) Stats(ctx context.Context) (*domain.SystemStats, error) {
	var (
		byType map[domain.MemberType]int
		totals domain.LedgerTotals
		recent int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byType, err = s.memberRepo.CountByType(gCtx)
		return err
	})
	g.Go(func() (err error) {
		totals, err = s.transactionRepo.Totals(gCtx)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.memberRepo.CountCreatedSince(gCtx, s.now().Add(-activeWindow))
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't collect stats", zap.Error(err))
		return nil, err
	}

	players := byType[domain.MemberTypePlayer]
	influencers := byType[domain.MemberTypeInfluencer]
	return &domain.SystemStats{
		TotalMembers:      players + influencers,
		TotalPlayers:      players,
		TotalInfluencers:  influencers,
		TotalTransactions: totals.Count,
		TotalDeposits:     totals.Deposits,
		TotalBonusesPaid:  totals.BonusesPaid,
		PendingDeposits:   totals.PendingDeposits,
		ActiveLast30Days:  recent,
	}, nil
}
