package pg

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/refchain/internal/domain"
)

func TestUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "members_referral_code_key"}

	constraint, ok := UniqueViolation(StoreError("insert", err))
	assert.True(t, ok)
	assert.Equal(t, "members_referral_code_key", constraint)

	_, ok = UniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	assert.False(t, ok)

	_, ok = UniqueViolation(errors.New("plain"))
	assert.False(t, ok)
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := StoreError("get member", cause)

	assert.ErrorIs(t, err, domain.ErrStore)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "get member")
}
