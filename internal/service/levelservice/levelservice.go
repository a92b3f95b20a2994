package levelservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/domain"
)

type MemberRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	UpdateTier(ctx context.Context, id int, tier domain.Tier) error
}

type RelationRepo interface {
	CountDirect(ctx context.Context, referrerID int) (int, error)
}

type LevelRepo interface {
	List(ctx context.Context) ([]domain.Level, error)
}

type Service struct {
	memberRepo   MemberRepo
	relationRepo RelationRepo
	levelRepo    LevelRepo
}

func New(memberRepo MemberRepo, relationRepo RelationRepo, levelRepo LevelRepo) *Service {
	return &Service{
		memberRepo:   memberRepo,
		relationRepo: relationRepo,
		levelRepo:    levelRepo,
	}
}

// PickTier returns the highest tier whose threshold count reaches. ok is false when count
// is below every threshold. levels must be ordered by threshold ascending.
func PickTier(count int, levels []domain.Level) (domain.Tier, bool) {
	for i := len(levels) - 1; i >= 0; i-- {
		if count >= levels[i].RequiredReferrals {
			return levels[i].Name, true
		}
	}
	return domain.TierNone, false
}

// Rank orders tiers by their position in the table. Tiers missing from it rank as none.
func Rank(tier domain.Tier, levels []domain.Level) int {
	for i, l := range levels {
		if l.Name == tier {
			return i + 1
		}
	}
	return 0
}

// Multiplier is the bonus multiplier of tier, 1.0 when the table has no row for it.
func Multiplier(tier domain.Tier, levels []domain.Level) decimal.Decimal {
	for _, l := range levels {
		if l.Name == tier {
			return l.BonusMultiplier
		}
	}
	return decimal.NewFromInt(1)
}

// Reevaluate recomputes the member's tier from its direct referral count. The tier only
// moves up, a lower count never demotes.
func (s *Service) Reevaluate(ctx context.Context, memberID int) (bool, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return false, err
	}
	count, err := s.relationRepo.CountDirect(ctx, memberID)
	if err != nil {
		return false, err
	}
	levels, err := s.levelRepo.List(ctx)
	if err != nil {
		return false, err
	}

	tier, ok := PickTier(count, levels)
	if !ok || tier == member.Tier || Rank(tier, levels) <= Rank(member.Tier, levels) {
		return false, nil
	}
	if err := s.memberRepo.UpdateTier(ctx, memberID, tier); err != nil {
		zap.L().Error("can't update tier", zap.Int("memberID", memberID), zap.Error(err))
		return false, err
	}

	zap.L().Info("member promoted",
		zap.Int("memberID", memberID),
		zap.String("from", string(member.Tier)),
		zap.String("to", string(tier)),
		zap.Int("directReferrals", count),
	)
	return true, nil
}

func (s *Service) Current(ctx context.Context, member *domain.Member) (*domain.LevelProgress, error) {
	count, err := s.relationRepo.CountDirect(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	levels, err := s.levelRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	progress := &domain.LevelProgress{
		Tier:            member.Tier,
		Multiplier:      Multiplier(member.Tier, levels),
		DirectReferrals: count,
	}
	rank := Rank(member.Tier, levels)
	if rank < len(levels) {
		next := levels[rank]
		progress.Next = &next
		if needed := next.RequiredReferrals - count; needed > 0 {
			progress.Needed = needed
		}
	}
	return progress, nil
}

// Progress is Current for a member known only by id.
func (s *Service) Progress(ctx context.Context, memberID int) (*domain.LevelProgress, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.Current(ctx, member)
}

func (s *Service) List(ctx context.Context) ([]domain.Level, error) {
	levels, err := s.levelRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list levels", zap.Error(err))
		return nil, err
	}
	return levels, nil
}
