package relationrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/pg"
)

const relationColumns = `id, referrer_id, referred_id, level, created_at`

// earnedSubquery sums confirmed bonuses paid to r.referrer_id because of r.referred_id.
const earnedSubquery = `
	COALESCE((
		SELECT SUM(t.amount) FROM transactions t
		WHERE t.member_id = r.referrer_id
		  AND t.related_member_id = r.referred_id
		  AND t.type = 'bonus' AND t.status = 'confirmed'
	), 0)`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateBatch inserts the relations in order. Callers wrap it in a transaction so a
// duplicate pair leaves nothing behind.
func (r *Repository) CreateBatch(ctx context.Context, relations []domain.ReferralRelation) ([]domain.ReferralRelation, error) {
	query := `
		INSERT INTO referral_relations (referrer_id, referred_id, level)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	created := make([]domain.ReferralRelation, 0, len(relations))
	for _, rel := range relations {
		err := r.db.QueryRow(ctx, query, rel.ReferrerID, rel.ReferredID, rel.Level).Scan(&rel.ID, &rel.CreatedAt)
		if err != nil {
			if _, ok := pg.UniqueViolation(err); ok {
				return nil, domain.ErrDuplicateRelation
			}
			zap.L().Error("can't save referral relation", zap.Error(err))
			return nil, pg.StoreError("create relation", err)
		}
		created = append(created, rel)
	}
	return created, nil
}

// ListAncestors returns every relation in which the member is the referred party, nearest first.
func (r *Repository) ListAncestors(ctx context.Context, referredID int) ([]domain.ReferralRelation, error) {
	query := `SELECT ` + relationColumns + ` FROM referral_relations WHERE referred_id = $1 ORDER BY level ASC`
	rows, err := r.db.Query(ctx, query, referredID)
	if err != nil {
		zap.L().Error("can't list ancestors", zap.Error(err))
		return nil, pg.StoreError("list ancestors", err)
	}
	defer rows.Close()

	var relations []domain.ReferralRelation
	for rows.Next() {
		var rel domain.ReferralRelation
		if err := rows.Scan(&rel.ID, &rel.ReferrerID, &rel.ReferredID, &rel.Level, &rel.CreatedAt); err != nil {
			zap.L().Error("can't scan relation", zap.Error(err))
			return nil, pg.StoreError("scan relation", err)
		}
		relations = append(relations, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StoreError("iterate ancestors", err)
	}
	return relations, nil
}

// FindDirectReferrer returns the level-1 relation of the member, or nil when it joined without a code.
func (r *Repository) FindDirectReferrer(ctx context.Context, referredID int) (*domain.ReferralRelation, error) {
	query := `SELECT ` + relationColumns + ` FROM referral_relations WHERE referred_id = $1 AND level = 1`
	var rel domain.ReferralRelation
	err := r.db.QueryRow(ctx, query, referredID).Scan(&rel.ID, &rel.ReferrerID, &rel.ReferredID, &rel.Level, &rel.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find direct referrer", zap.Error(err))
		return nil, pg.StoreError("find direct referrer", err)
	}
	return &rel, nil
}

func (r *Repository) CountDirect(ctx context.Context, referrerID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM referral_relations WHERE referrer_id = $1 AND level = 1`, referrerID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count direct referrals", zap.Error(err))
		return 0, pg.StoreError("count direct referrals", err)
	}
	return count, nil
}

func (r *Repository) CountByReferrer(ctx context.Context, referrerID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM referral_relations WHERE referrer_id = $1`, referrerID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count referrals", zap.Error(err))
		return 0, pg.StoreError("count referrals", err)
	}
	return count, nil
}

// ListReferrals pages through everyone below the referrer, nearest levels first.
func (r *Repository) ListReferrals(ctx context.Context, referrerID, limit, offset int) ([]domain.ReferralSummary, error) {
	query := `
		SELECT r.id, r.referrer_id, r.referred_id, r.level, r.created_at,
		       m.username, m.member_type, m.created_at,` + earnedSubquery + `
		FROM referral_relations r
		JOIN members m ON m.id = r.referred_id
		WHERE r.referrer_id = $1
		ORDER BY r.level ASC, r.created_at DESC
		LIMIT NULLIF($2, 0) OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, referrerID, limit, offset)
	if err != nil {
		zap.L().Error("can't list referrals", zap.Error(err))
		return nil, pg.StoreError("list referrals", err)
	}
	defer rows.Close()

	var summaries []domain.ReferralSummary
	for rows.Next() {
		var s domain.ReferralSummary
		err := rows.Scan(
			&s.Relation.ID, &s.Relation.ReferrerID, &s.Relation.ReferredID, &s.Relation.Level, &s.Relation.CreatedAt,
			&s.Username, &s.Type, &s.ReferredJoined, &s.TotalEarned,
		)
		if err != nil {
			zap.L().Error("can't scan referral", zap.Error(err))
			return nil, pg.StoreError("scan referral", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StoreError("iterate referrals", err)
	}
	return summaries, nil
}

func (r *Repository) LevelBreakdown(ctx context.Context, referrerID int) ([]domain.LevelBreakdown, error) {
	query := `
		SELECT r.level, COUNT(DISTINCT r.id), COALESCE(SUM(t.amount), 0)
		FROM referral_relations r
		LEFT JOIN transactions t
		       ON t.member_id = r.referrer_id
		      AND t.related_member_id = r.referred_id
		      AND t.type = 'bonus' AND t.status = 'confirmed'
		WHERE r.referrer_id = $1
		GROUP BY r.level
		ORDER BY r.level ASC
	`
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("can't build level breakdown", zap.Error(err))
		return nil, pg.StoreError("level breakdown", err)
	}
	defer rows.Close()

	var breakdown []domain.LevelBreakdown
	for rows.Next() {
		var b domain.LevelBreakdown
		if err := rows.Scan(&b.Level, &b.Count, &b.Earned); err != nil {
			zap.L().Error("can't scan level breakdown", zap.Error(err))
			return nil, pg.StoreError("scan level breakdown", err)
		}
		breakdown = append(breakdown, b)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StoreError("iterate level breakdown", err)
	}
	return breakdown, nil
}

// ListDescendants returns every member below rootID with its direct referrer, so the
// caller can nest them without further queries.
func (r *Repository) ListDescendants(ctx context.Context, rootID int) ([]domain.TreeEdge, error) {
	query := `
		SELECT r.referred_id, p.referrer_id, r.level, m.username, m.member_type, m.created_at
		FROM referral_relations r
		JOIN referral_relations p ON p.referred_id = r.referred_id AND p.level = 1
		JOIN members m ON m.id = r.referred_id
		WHERE r.referrer_id = $1
		ORDER BY r.level ASC, r.referred_id ASC
	`
	rows, err := r.db.Query(ctx, query, rootID)
	if err != nil {
		zap.L().Error("can't list descendants", zap.Error(err))
		return nil, pg.StoreError("list descendants", err)
	}
	defer rows.Close()

	var edges []domain.TreeEdge
	for rows.Next() {
		var e domain.TreeEdge
		if err := rows.Scan(&e.MemberID, &e.ParentID, &e.Level, &e.Username, &e.Type, &e.JoinedAt); err != nil {
			zap.L().Error("can't scan tree edge", zap.Error(err))
			return nil, pg.StoreError("scan tree edge", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StoreError("iterate descendants", err)
	}
	return edges, nil
}
