package transactionrepo

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

const transactionColumns = `id, member_id, type, amount, currency, status, description, related_member_id, created_at, confirmed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner, extra ...any) (*domain.Transaction, error) {
	var tx domain.Transaction
	dest := []any{
		&tx.ID, &tx.MemberID, &tx.Type, &tx.Amount, &tx.Currency, &tx.Status,
		&tx.Description, &tx.RelatedMemberID, &tx.CreatedAt, &tx.ConfirmedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (member_id, type, amount, currency, status, description, related_member_id, confirmed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		tx.MemberID, tx.Type, tx.Amount, tx.Currency, tx.Status, tx.Description, tx.RelatedMemberID, tx.ConfirmedAt,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, pg.StoreError("create transaction", err)
	}
	return tx, nil
}

func (r *Repository) get(ctx context.Context, op, query string, id int) (*domain.Transaction, error) {
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		zap.L().Error("can't "+op, zap.Error(err))
		return nil, pg.StoreError(op, err)
	}
	return tx, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Transaction, error) {
	return r.get(ctx, "get transaction", `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
}

// GetForUpdate locks the transaction row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Transaction, error) {
	return r.get(ctx, "lock transaction", `SELECT `+transactionColumns+` FROM transactions WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) MarkConfirmed(ctx context.Context, id int, at time.Time) error {
	query := `
		UPDATE transactions
		SET status = 'confirmed', confirmed_at = $1
		WHERE id = $2 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, at, id)
	if err != nil {
		zap.L().Error("can't confirm transaction", zap.Error(err))
		return pg.StoreError("confirm transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyConfirmed
	}
	return nil
}

func (r *Repository) ListByMember(ctx context.Context, memberID int, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE member_id = $1 AND ($2::text = '' OR type = $2::text)
		ORDER BY created_at DESC, id DESC
		LIMIT NULLIF($3, 0) OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, memberID, string(filter.Type), filter.Limit, filter.Offset)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, pg.StoreError("list transactions", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction", zap.Error(err))
			return nil, pg.StoreError("scan transaction", err)
		}
		txs = append(txs, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StoreError("iterate transactions", err)
	}
	return txs, nil
}

// ListBonuses returns bonus transactions of the member with the chain level taken from the
// relation between the member and the member that triggered the payout.
func (r *Repository) ListBonuses(ctx context.Context, memberID, limit, offset int) ([]domain.BonusEntry, error) {
	query := `
		SELECT t.id, t.member_id, t.type, t.amount, t.currency, t.status, t.description,
		       t.related_member_id, t.created_at, t.confirmed_at, COALESCE(r.level, 0)
		FROM transactions t
		LEFT JOIN referral_relations r ON r.referrer_id = t.member_id AND r.referred_id = t.related_member_id
		WHERE t.member_id = $1 AND t.type = 'bonus'
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT NULLIF($2, 0) OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, memberID, limit, offset)
	if err != nil {
		zap.L().Error("can't list bonuses", zap.Error(err))
		return nil, pg.StoreError("list bonuses", err)
	}
	defer rows.Close()

	var entries []domain.BonusEntry
	for rows.Next() {
		var level int
		tx, err := scanTransaction(rows, &level)
		if err != nil {
			zap.L().Error("can't scan bonus", zap.Error(err))
			return nil, pg.StoreError("scan bonus", err)
		}
		entries = append(entries, domain.BonusEntry{Transaction: *tx, Level: level})
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StoreError("iterate bonuses", err)
	}
	return entries, nil
}

func (r *Repository) TotalBonusEarned(ctx context.Context, memberID int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE member_id = $1 AND type = 'bonus' AND status = 'confirmed'
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, memberID).Scan(&total); err != nil {
		zap.L().Error("can't sum bonuses", zap.Error(err))
		return decimal.Zero, pg.StoreError("sum bonuses", err)
	}
	return total, nil
}

func (r *Repository) Totals(ctx context.Context) (domain.LedgerTotals, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'deposit' AND status = 'confirmed' AND currency = 'vcoins'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'deposit' AND status = 'confirmed' AND currency = 'rubles'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'bonus' AND status = 'confirmed' AND currency = 'vcoins'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'bonus' AND status = 'confirmed' AND currency = 'rubles'), 0),
		       COUNT(*) FILTER (WHERE type = 'deposit' AND status = 'pending')
		FROM transactions
	`
	var totals domain.LedgerTotals
	err := r.db.QueryRow(ctx, query).Scan(
		&totals.Count,
		&totals.Deposits.Vcoins, &totals.Deposits.Rubles,
		&totals.BonusesPaid.Vcoins, &totals.BonusesPaid.Rubles,
		&totals.PendingDeposits,
	)
	if err != nil {
		zap.L().Error("can't compute ledger totals", zap.Error(err))
		return domain.LedgerTotals{}, pg.StoreError("ledger totals", err)
	}
	return totals, nil
}
