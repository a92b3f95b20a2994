package levelrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// List returns the tier table ordered by threshold ascending.
func (r *Repository) List(ctx context.Context) ([]domain.Level, error) {
	query := `SELECT id, name, required_referrals, bonus_multiplier FROM levels ORDER BY required_referrals ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list levels", zap.Error(err))
		return nil, pg.StoreError("list levels", err)
	}
	defer rows.Close()

	var levels []domain.Level
	for rows.Next() {
		var l domain.Level
		if err := rows.Scan(&l.ID, &l.Name, &l.RequiredReferrals, &l.BonusMultiplier); err != nil {
			zap.L().Error("can't scan level", zap.Error(err))
			return nil, pg.StoreError("scan level", err)
		}
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.StoreError("iterate levels", err)
	}
	return levels, nil
}
