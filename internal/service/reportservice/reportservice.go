package reportservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/refchain/internal/domain"
)

type MemberRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Member, error)
}

type RelationRepo interface {
	CountDirect(ctx context.Context, referrerID int) (int, error)
	CountByReferrer(ctx context.Context, referrerID int) (int, error)
	ListReferrals(ctx context.Context, referrerID, limit, offset int) ([]domain.ReferralSummary, error)
	LevelBreakdown(ctx context.Context, referrerID int) ([]domain.LevelBreakdown, error)
	ListDescendants(ctx context.Context, rootID int) ([]domain.TreeEdge, error)
}

type TransactionRepo interface {
	ListByMember(ctx context.Context, memberID int, filter domain.TransactionFilter) ([]domain.Transaction, error)
	ListBonuses(ctx context.Context, memberID, limit, offset int) ([]domain.BonusEntry, error)
	TotalBonusEarned(ctx context.Context, memberID int) (decimal.Decimal, error)
}

type Service struct {
	memberRepo      MemberRepo
	relationRepo    RelationRepo
	transactionRepo TransactionRepo
}

func New(memberRepo MemberRepo, relationRepo RelationRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		memberRepo:      memberRepo,
		relationRepo:    relationRepo,
		transactionRepo: transactionRepo,
	}
}

func validatePage(limit, offset int) error {
	if limit < 0 || offset < 0 {
		return fmt.Errorf("%w: limit and offset must not be negative", domain.ErrValidation)
	}
	return nil
}

// Referrals lists every member below memberID with what each has earned memberID so far.
func (s *Service) Referrals(ctx context.Context, memberID, limit, offset int) ([]domain.ReferralSummary, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	referrals, err := s.relationRepo.ListReferrals(ctx, memberID, limit, offset)
	if err != nil {
		zap.L().Error("can't list referrals", zap.Int("memberID", memberID), zap.Error(err))
		return nil, err
	}
	return referrals, nil
}

func (s *Service) ReferralStats(ctx context.Context, memberID int) (*domain.ReferralStats, error) {
	stats := &domain.ReferralStats{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalReferrals, err = s.relationRepo.CountByReferrer(gCtx, memberID)
		return err
	})
	g.Go(func() (err error) {
		stats.DirectReferrals, err = s.relationRepo.CountDirect(gCtx, memberID)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalEarned, err = s.transactionRepo.TotalBonusEarned(gCtx, memberID)
		return err
	})
	g.Go(func() (err error) {
		stats.Levels, err = s.relationRepo.LevelBreakdown(gCtx, memberID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't collect referral stats", zap.Int("memberID", memberID), zap.Error(err))
		return nil, err
	}
	return stats, nil
}

// ReferralTree nests every descendant of memberID under its direct referrer.
func (s *Service) ReferralTree(ctx context.Context, memberID int) (*domain.TreeNode, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	edges, err := s.relationRepo.ListDescendants(ctx, memberID)
	if err != nil {
		zap.L().Error("can't load referral tree", zap.Int("memberID", memberID), zap.Error(err))
		return nil, err
	}
	return BuildTree(member, edges), nil
}

// BuildTree expects edges ordered by level ascending. Edges whose parent is not in the
// tree are dropped.
func BuildTree(root *domain.Member, edges []domain.TreeEdge) *domain.TreeNode {
	tree := &domain.TreeNode{
		MemberID: root.ID,
		Username: root.Username,
		Type:     root.Type,
		JoinedAt: root.CreatedAt,
		Children: []*domain.TreeNode{},
	}
	nodes := map[int]*domain.TreeNode{root.ID: tree}
	for _, e := range edges {
		parent, ok := nodes[e.ParentID]
		if !ok {
			continue
		}
		node := &domain.TreeNode{
			MemberID: e.MemberID,
			Username: e.Username,
			Type:     e.Type,
			Level:    e.Level,
			JoinedAt: e.JoinedAt,
			Children: []*domain.TreeNode{},
		}
		parent.Children = append(parent.Children, node)
		nodes[e.MemberID] = node
	}
	return tree
}

func (s *Service) Transactions(ctx context.Context, memberID int, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidType, filter.Type)
	}
	if err := validatePage(filter.Limit, filter.Offset); err != nil {
		return nil, err
	}
	txs, err := s.transactionRepo.ListByMember(ctx, memberID, filter)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Int("memberID", memberID), zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func (s *Service) Bonuses(ctx context.Context, memberID, limit, offset int) ([]domain.BonusEntry, error) {
	if err := validatePage(limit, offset); err != nil {
		return nil, err
	}
	bonuses, err := s.transactionRepo.ListBonuses(ctx, memberID, limit, offset)
	if err != nil {
		zap.L().Error("can't list bonuses", zap.Int("memberID", memberID), zap.Error(err))
		return nil, err
	}
	return bonuses, nil
}
