package memberrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/pg"
)

const (
	memberColumns = `id, username, password_hash, member_type, referral_code, balance_vcoins, balance_rubles, tier, is_admin, first_tournament_played, created_at`

	referralCodeConstraint = "members_referral_code_key"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.ID, &m.Username, &m.PasswordHash, &m.Type, &m.ReferralCode,
		&m.BalanceVcoins, &m.BalanceRubles, &m.Tier, &m.IsAdmin, &m.FirstTournamentPlayed, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) get(ctx context.Context, op, query string, arg any) (*domain.Member, error) {
	member, err := scanMember(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		zap.L().Error("can't "+op, zap.Error(err))
		return nil, pg.StoreError(op, err)
	}
	return member, nil
}

// Create inserts the member. Unique violations are reported as ErrReferralCodeTaken
// or ErrUsernameTaken so the caller can retry with a fresh code.
func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
		INSERT INTO members (username, password_hash, member_type, referral_code, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, balance_vcoins, balance_rubles, tier, first_tournament_played, created_at
	`
	err := r.db.QueryRow(ctx, query, member.Username, member.PasswordHash, member.Type, member.ReferralCode, member.IsAdmin).
		Scan(&member.ID, &member.BalanceVcoins, &member.BalanceRubles, &member.Tier, &member.FirstTournamentPlayed, &member.CreatedAt)
	if err != nil {
		if constraint, ok := pg.UniqueViolation(err); ok {
			if constraint == referralCodeConstraint {
				return nil, domain.ErrReferralCodeTaken
			}
			return nil, domain.ErrUsernameTaken
		}
		zap.L().Error("can't save member", zap.Error(err))
		return nil, pg.StoreError("create member", err)
	}
	return member, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	return r.get(ctx, "get member", `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
}

// GetForUpdate locks the member row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Member, error) {
	return r.get(ctx, "lock member", `SELECT `+memberColumns+` FROM members WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Member, error) {
	return r.get(ctx, "get member by username", `SELECT `+memberColumns+` FROM members WHERE username = $1`, username)
}

func (r *Repository) GetByReferralCode(ctx context.Context, code string) (*domain.Member, error) {
	return r.get(ctx, "get member by referral code", `SELECT `+memberColumns+` FROM members WHERE referral_code = $1`, code)
}

func (r *Repository) UpdateBalances(ctx context.Context, id int, vcoins, rubles decimal.Decimal) error {
	query := `
		UPDATE members
		SET balance_vcoins = $1, balance_rubles = $2
		WHERE id = $3
	`
	tag, err := r.db.Exec(ctx, query, vcoins, rubles, id)
	if err != nil {
		zap.L().Error("can't update member balances", zap.Error(err))
		return pg.StoreError("update balances", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *Repository) UpdateTier(ctx context.Context, id int, tier domain.Tier) error {
	tag, err := r.db.Exec(ctx, `UPDATE members SET tier = $1 WHERE id = $2`, tier, id)
	if err != nil {
		zap.L().Error("can't update member tier", zap.Error(err))
		return pg.StoreError("update tier", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// MarkFirstTournamentPlayed flips the flag and reports whether this call did the flip.
func (r *Repository) MarkFirstTournamentPlayed(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE members
		SET first_tournament_played = TRUE
		WHERE id = $1 AND first_tournament_played = FALSE
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark first tournament", zap.Error(err))
		return false, pg.StoreError("mark first tournament", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CountByType(ctx context.Context) (map[domain.MemberType]int, error) {
	rows, err := r.db.Query(ctx, `SELECT member_type, COUNT(*) FROM members GROUP BY member_type`)
	if err != nil {
		zap.L().Error("can't count members", zap.Error(err))
		return nil, pg.StoreError("count members", err)
	}
	defer rows.Close()

	counts := make(map[domain.MemberType]int)
	for rows.Next() {
		var memberType domain.MemberType
		var count int
		if err := rows.Scan(&memberType, &count); err != nil {
			zap.L().Error("can't scan member count", zap.Error(err))
			return nil, pg.StoreError("scan member count", err)
		}
		counts[memberType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StoreError("iterate member counts", err)
	}
	return counts, nil
}

func (r *Repository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM members WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		zap.L().Error("can't count recent members", zap.Error(err))
		return 0, pg.StoreError("count recent members", err)
	}
	return count, nil
}
