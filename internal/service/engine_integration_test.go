//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/GlebRadaev/refchain/internal/pg"
	"github.com/GlebRadaev/refchain/internal/repo"
)

const truncateAll = `TRUNCATE members, referral_relations, transactions RESTART IDENTITY CASCADE`

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("refchain_test"),
		postgres.WithUsername("refchain"),
		postgres.WithPassword("refchain"),
		postgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{"test": "refchain-engine"}),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.RunMigrations(pool))
	return pool
}

func TestEngine_Postgres(t *testing.T) {
	pool := startPostgres(t)
	repos := repo.New(pg.New(pool), pg.NewTXManager(pool))
	s := newServices(repos)

	for _, tc := range engineCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pool.Exec(context.Background(), truncateAll)
			require.NoError(t, err)
			tc.run(t, s, repos)
		})
	}
}
