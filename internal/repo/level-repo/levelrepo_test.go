package levelrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/refchain/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("FROM levels ORDER BY required_referrals ASC")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Levels listed",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WillReturnRows(pgxmock.NewRows([]string{"id", "name", "required_referrals", "bonus_multiplier"}).
						AddRow(1, domain.TierSilver, 3, "1.10").
						AddRow(2, domain.TierGold, 10, "1.20").
						AddRow(3, domain.TierPlatinum, 25, "1.50"))
			},
			expectLen: 3,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			levels, err := repo.List(context.Background())
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrStore)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, levels, tt.expectLen)
			assert.Equal(t, domain.TierGold, levels[1].Name)
			assert.Equal(t, "1.20", levels[1].BonusMultiplier.StringFixed(2))
		})
	}
}
