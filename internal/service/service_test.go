package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/refchain/internal/repo"
	boltrepo "github.com/GlebRadaev/refchain/internal/repo/bolt-repo"
	"github.com/GlebRadaev/refchain/internal/service/bonusservice"
)

func TestNew(t *testing.T) {
	store, err := boltrepo.Open(filepath.Join(t.TempDir(), "refchain.db"))
	require.NoError(t, err)
	defer store.Close()

	services := New(repo.NewBolt(store), Options{
		JWTSecret:     "secret",
		CascadePolicy: bonusservice.PolicyBestEffort,
	})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ReferralService)
	assert.NotNil(t, services.TransactionService)
	assert.NotNil(t, services.TransactionReports)
	assert.NotNil(t, services.LevelService)
	assert.NotNil(t, services.AdminService)
	assert.NotNil(t, services.JWTService)
}
