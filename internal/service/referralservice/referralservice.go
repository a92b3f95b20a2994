package referralservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/pg"
)

// DefaultMaxDepth bounds how many ancestors a member is linked to.
const DefaultMaxDepth = 10

type Repo interface {
	CreateBatch(ctx context.Context, relations []domain.ReferralRelation) ([]domain.ReferralRelation, error)
	ListAncestors(ctx context.Context, referredID int) ([]domain.ReferralRelation, error)
}

type Service struct {
	relationRepo Repo
	txManager    pg.TXManager
	maxDepth     int
}

func New(relationRepo Repo, txManager pg.TXManager, maxDepth int) *Service {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Service{
		relationRepo: relationRepo,
		txManager:    txManager,
		maxDepth:     maxDepth,
	}
}

// PlanChain lists the edges a new member gets: one to its referrer and one to each of the
// referrer's ancestors, as long as the level stays within maxDepth. Ancestors must be
// ordered by level ascending.
func PlanChain(referrerID, newMemberID int, ancestors []domain.ReferralRelation, maxDepth int) []domain.ReferralRelation {
	chain := []domain.ReferralRelation{{ReferrerID: referrerID, ReferredID: newMemberID, Level: 1}}
	for _, rel := range ancestors {
		level := rel.Level + 1
		if level > maxDepth {
			break
		}
		chain = append(chain, domain.ReferralRelation{ReferrerID: rel.ReferrerID, ReferredID: newMemberID, Level: level})
	}
	return chain
}

// BuildChain links newMember under referrer and all of referrer's ancestors in one atomic
// scope. A duplicate pair aborts the whole chain with ErrDuplicateRelation.
func (s *Service) BuildChain(ctx context.Context, referrer, newMember *domain.Member) ([]domain.ReferralRelation, error) {
	if referrer.ID == newMember.ID {
		return nil, domain.ErrSelfReferral
	}

	var created []domain.ReferralRelation
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ancestors, err := s.relationRepo.ListAncestors(ctx, referrer.ID)
		if err != nil {
			return err
		}
		created, err = s.relationRepo.CreateBatch(ctx, PlanChain(referrer.ID, newMember.ID, ancestors, s.maxDepth))
		return err
	})
	if err != nil {
		zap.L().Error("can't build referral chain",
			zap.Int("referrerID", referrer.ID),
			zap.Int("memberID", newMember.ID),
			zap.Error(err),
		)
		return nil, err
	}

	zap.L().Info("referral chain built", zap.Int("memberID", newMember.ID), zap.Int("edges", len(created)))
	return created, nil
}
