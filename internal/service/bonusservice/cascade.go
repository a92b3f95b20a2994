package bonusservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/events"
	"github.com/GlebRadaev/refchain/internal/pg"
	"github.com/GlebRadaev/refchain/internal/service/ledgerservice"
)

type Reason string

const (
	ReasonReferral        Reason = "referral bonus"
	ReasonFirstTournament Reason = "first tournament bonus"
	ReasonDeposit         Reason = "deposit bonus"
)

type Policy string

const (
	// PolicyFailFast stops at the first ancestor that could not be paid.
	PolicyFailFast Policy = "fail-fast"
	// PolicyBestEffort pays every ancestor it can and reports the failures together.
	PolicyBestEffort Policy = "best-effort"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyFailFast, PolicyBestEffort:
		return p, nil
	case "":
		return PolicyFailFast, nil
	}
	return "", fmt.Errorf("unknown cascade policy %q", s)
}

// depositBonusRate is the share of a deposit paid to an influencer referrer.
var depositBonusRate = decimal.RequireFromString("0.10")

type RelationRepo interface {
	ListAncestors(ctx context.Context, referredID int) ([]domain.ReferralRelation, error)
	FindDirectReferrer(ctx context.Context, referredID int) (*domain.ReferralRelation, error)
}

type MemberRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Member, error)
}

type LevelRepo interface {
	List(ctx context.Context) ([]domain.Level, error)
}

type Ledger interface {
	CreateAndComplete(ctx context.Context, req ledgerservice.CreateRequest) (*domain.Transaction, *domain.Member, error)
}

type TierEvaluator interface {
	Reevaluate(ctx context.Context, memberID int) (bool, error)
}

type Service struct {
	relationRepo RelationRepo
	memberRepo   MemberRepo
	levelRepo    LevelRepo
	ledger       Ledger
	tiers        TierEvaluator
	txManager    pg.TXManager
	publisher    events.Publisher
	policy       Policy
}

func New(
	relationRepo RelationRepo,
	memberRepo MemberRepo,
	levelRepo LevelRepo,
	ledger Ledger,
	tiers TierEvaluator,
	txManager pg.TXManager,
	publisher events.Publisher,
	policy Policy,
) *Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	if policy == "" {
		policy = PolicyFailFast
	}
	return &Service{
		relationRepo: relationRepo,
		memberRepo:   memberRepo,
		levelRepo:    levelRepo,
		ledger:       ledger,
		tiers:        tiers,
		txManager:    txManager,
		publisher:    publisher,
		policy:       policy,
	}
}

// Describe renders the attribution text stored on a bonus transaction.
func Describe(reason Reason, username string, level int) string {
	label := []rune(string(reason))
	if len(label) > 0 {
		label[0] = unicode.ToUpper(label[0])
	}
	return fmt.Sprintf("%s from %s (Level %d)", string(label), strings.TrimSpace(username), level)
}

// CascadeBonuses pays every ancestor of member, nearest first. Each ancestor is credited in
// its own atomic scope together with its tier re-evaluation.
func (s *Service) CascadeBonuses(ctx context.Context, member *domain.Member, reason Reason) ([]domain.Transaction, error) {
	ancestors, err := s.relationRepo.ListAncestors(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	if len(ancestors) == 0 {
		return nil, nil
	}
	levels, err := s.levelRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var (
		created []domain.Transaction
		errs    []error
	)
	for _, rel := range ancestors {
		tx, err := s.payAncestor(ctx, member, rel, levels, reason)
		if err != nil {
			err = fmt.Errorf("pay %s to member %d at level %d: %w", reason, rel.ReferrerID, rel.Level, err)
			zap.L().Error("cascade step failed", zap.Int("memberID", member.ID), zap.Error(err))
			if s.policy == PolicyFailFast {
				return created, err
			}
			errs = append(errs, err)
			continue
		}
		if tx == nil {
			continue
		}
		created = append(created, *tx)
		s.publish(ctx, tx)
	}

	zap.L().Info("bonus cascade finished",
		zap.Int("memberID", member.ID),
		zap.String("reason", string(reason)),
		zap.Int("paid", len(created)),
		zap.Int("failed", len(errs)),
	)
	return created, errors.Join(errs...)
}

// payAncestor returns a nil transaction when the computed bonus is zero.
func (s *Service) payAncestor(ctx context.Context, member *domain.Member, rel domain.ReferralRelation, levels []domain.Level, reason Reason) (*domain.Transaction, error) {
	var tx *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ancestor, err := s.memberRepo.GetByID(ctx, rel.ReferrerID)
		if err != nil {
			return err
		}
		bonus := ComputeBonus(ancestor, rel.Level, levels)
		if bonus.IsZero() {
			return nil
		}
		relatedID := member.ID
		tx, _, err = s.ledger.CreateAndComplete(ctx, ledgerservice.CreateRequest{
			MemberID:        ancestor.ID,
			Type:            domain.TypeBonus,
			Amount:          bonus.Amount,
			Currency:        bonus.Currency,
			Description:     Describe(reason, member.Username, rel.Level),
			RelatedMemberID: &relatedID,
		})
		if err != nil {
			return err
		}
		_, err = s.tiers.Reevaluate(ctx, ancestor.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// PayDepositBonus credits the depositor's direct referrer with a tenth of a confirmed
// deposit when that referrer is an influencer. It returns nil when nothing is due.
func (s *Service) PayDepositBonus(ctx context.Context, deposit *domain.Transaction) (*domain.Transaction, error) {
	rel, err := s.relationRepo.FindDirectReferrer(ctx, deposit.MemberID)
	if err != nil || rel == nil {
		return nil, err
	}
	referrer, err := s.memberRepo.GetByID(ctx, rel.ReferrerID)
	if err != nil {
		return nil, err
	}
	if referrer.Type != domain.MemberTypeInfluencer {
		return nil, nil
	}
	depositor, err := s.memberRepo.GetByID(ctx, deposit.MemberID)
	if err != nil {
		return nil, err
	}
	amount := deposit.Amount.Mul(depositBonusRate).Round(domain.MoneyPlaces)
	if amount.IsZero() {
		return nil, nil
	}

	var tx *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		relatedID := depositor.ID
		tx, _, err = s.ledger.CreateAndComplete(ctx, ledgerservice.CreateRequest{
			MemberID:        referrer.ID,
			Type:            domain.TypeBonus,
			Amount:          amount,
			Currency:        domain.CurrencyRubles,
			Description:     Describe(ReasonDeposit, depositor.Username, 1),
			RelatedMemberID: &relatedID,
		})
		return err
	})
	if err != nil {
		zap.L().Error("can't pay deposit bonus", zap.Int("depositID", deposit.ID), zap.Error(err))
		return nil, err
	}

	s.publish(ctx, tx)
	zap.L().Info("deposit bonus paid", zap.Int("referrerID", referrer.ID), zap.String("amount", amount.String()))
	return tx, nil
}

func (s *Service) publish(ctx context.Context, tx *domain.Transaction) {
	if err := s.publisher.Publish(ctx, events.BonusCredited(tx)); err != nil {
		zap.L().Warn("can't publish bonus event", zap.Int("transactionID", tx.ID), zap.Error(err))
	}
}
