package boltrepo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/GlebRadaev/refchain/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "sub", "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func createMember(t *testing.T, store *Store, username, code string, memberType domain.MemberType) *domain.Member {
	t.Helper()
	member, err := store.Members().Create(context.Background(), &domain.Member{
		Username:     username,
		PasswordHash: "hash",
		Type:         memberType,
		ReferralCode: code,
	})
	require.NoError(t, err)
	return member
}

func TestOpen_SeedsLevels(t *testing.T) {
	store := newTestStore(t)

	levels, err := store.Levels().List(context.Background())
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, domain.TierSilver, levels[0].Name)
	assert.Equal(t, 25, levels[2].RequiredReferrals)
	assert.Equal(t, "1.20", levels[1].BonusMultiplier.StringFixed(2))
}

func TestOpen_ReopenKeepsLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	levels, err := store.Levels().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, levels, 3)
}

func TestMemberStore_CreateAndLookup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createMember(t, store, "alice", "AAAA1111", domain.MemberTypePlayer)

	assert.Equal(t, 1, alice.ID)
	assert.Equal(t, domain.TierNone, alice.Tier)

	byName, err := store.Members().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	byCode, err := store.Members().GetByReferralCode(ctx, "AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, "alice", byCode.Username)

	_, err = store.Members().GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)

	_, err = store.Members().Create(ctx, &domain.Member{Username: "alice", ReferralCode: "BBBB2222", Type: domain.MemberTypePlayer})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = store.Members().Create(ctx, &domain.Member{Username: "bob", ReferralCode: "AAAA1111", Type: domain.MemberTypePlayer})
	assert.ErrorIs(t, err, domain.ErrReferralCodeTaken)
}

func TestMemberStore_Updates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	m := createMember(t, store, "alice", "AAAA1111", domain.MemberTypeInfluencer)

	require.NoError(t, store.Members().UpdateBalances(ctx, m.ID, decimal.NewFromInt(5), decimal.RequireFromString("12.34")))
	require.NoError(t, store.Members().UpdateTier(ctx, m.ID, domain.TierGold))

	flipped, err := store.Members().MarkFirstTournamentPlayed(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, flipped)
	flipped, err = store.Members().MarkFirstTournamentPlayed(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, flipped)

	got, err := store.Members().GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "12.34", got.BalanceRubles.StringFixed(2))
	assert.Equal(t, domain.TierGold, got.Tier)
	assert.True(t, got.FirstTournamentPlayed)

	assert.ErrorIs(t, store.Members().UpdateTier(ctx, 42, domain.TierGold), domain.ErrMemberNotFound)

	counts, err := store.Members().CountByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[domain.MemberTypeInfluencer])

	recent, err := store.Members().CountCreatedSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, recent)
}

func TestStore_BeginRollsBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Begin(ctx, func(ctx context.Context) error {
		_, err := store.Members().Create(ctx, &domain.Member{Username: "ghost", ReferralCode: "GGGG0000", Type: domain.MemberTypePlayer})
		require.NoError(t, err)
		return store.Begin(ctx, func(ctx context.Context) error {
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.Members().GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestRelationStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	a := createMember(t, store, "a", "AAAA0000", domain.MemberTypePlayer)
	b := createMember(t, store, "b", "BBBB0000", domain.MemberTypePlayer)
	c := createMember(t, store, "c", "CCCC0000", domain.MemberTypeInfluencer)

	_, err := store.Relations().CreateBatch(ctx, []domain.ReferralRelation{{ReferrerID: a.ID, ReferredID: b.ID, Level: 1}})
	require.NoError(t, err)
	created, err := store.Relations().CreateBatch(ctx, []domain.ReferralRelation{
		{ReferrerID: b.ID, ReferredID: c.ID, Level: 1},
		{ReferrerID: a.ID, ReferredID: c.ID, Level: 2},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	_, err = store.Relations().CreateBatch(ctx, []domain.ReferralRelation{{ReferrerID: b.ID, ReferredID: c.ID, Level: 1}})
	assert.ErrorIs(t, err, domain.ErrConflict)

	ancestors, err := store.Relations().ListAncestors(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, ancestors, 2)
	assert.Equal(t, b.ID, ancestors[0].ReferrerID)
	assert.Equal(t, a.ID, ancestors[1].ReferrerID)

	direct, err := store.Relations().FindDirectReferrer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, direct.ReferrerID)

	none, err := store.Relations().FindDirectReferrer(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	count, err := store.Relations().CountDirect(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	total, err := store.Relations().CountByReferrer(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	related := c.ID
	bonus, err := store.Transactions().Create(ctx, &domain.Transaction{
		MemberID: a.ID, Type: domain.TypeBonus, Amount: decimal.NewFromInt(150),
		Currency: domain.CurrencyVcoins, Status: domain.StatusPending, RelatedMemberID: &related,
	})
	require.NoError(t, err)
	require.NoError(t, store.Transactions().MarkConfirmed(ctx, bonus.ID, time.Now()))

	referrals, err := store.Relations().ListReferrals(ctx, a.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, referrals, 2)
	assert.Equal(t, "b", referrals[0].Username)
	assert.Equal(t, "150.00", referrals[1].TotalEarned.StringFixed(2))

	breakdown, err := store.Relations().LevelBreakdown(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	assert.Equal(t, 2, breakdown[1].Level)
	assert.Equal(t, "150.00", breakdown[1].Earned.StringFixed(2))

	edges, err := store.Relations().ListDescendants(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, a.ID, edges[0].ParentID)
	assert.Equal(t, b.ID, edges[1].ParentID)

	bonuses, err := store.Transactions().ListBonuses(ctx, a.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, bonuses, 1)
	assert.Equal(t, 2, bonuses[0].Level)
}

func TestTransactionStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	m := createMember(t, store, "alice", "AAAA1111", domain.MemberTypePlayer)

	for _, amount := range []int64{100, 200, 300} {
		_, err := store.Transactions().Create(ctx, &domain.Transaction{
			MemberID: m.ID, Type: domain.TypeDeposit, Amount: decimal.NewFromInt(amount),
			Currency: domain.CurrencyVcoins, Status: domain.StatusPending,
		})
		require.NoError(t, err)
	}

	require.NoError(t, store.Transactions().MarkConfirmed(ctx, 1, time.Now()))
	assert.ErrorIs(t, store.Transactions().MarkConfirmed(ctx, 1, time.Now()), domain.ErrAlreadyConfirmed)
	assert.ErrorIs(t, store.Transactions().MarkConfirmed(ctx, 9, time.Now()), domain.ErrTransactionNotFound)

	txs, err := store.Transactions().ListByMember(ctx, m.ID, domain.TransactionFilter{Type: domain.TypeDeposit, Limit: 2})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, 3, txs[0].ID)

	txs, err = store.Transactions().ListByMember(ctx, m.ID, domain.TransactionFilter{Type: domain.TypeBonus})
	require.NoError(t, err)
	assert.Empty(t, txs)

	totals, err := store.Transactions().Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, totals.Count)
	assert.Equal(t, "100.00", totals.Deposits.Vcoins.StringFixed(2))
	assert.True(t, totals.Deposits.Rubles.IsZero())
	assert.Equal(t, 2, totals.PendingDeposits)

	earned, err := store.Transactions().TotalBonusEarned(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, earned.IsZero())
}

func TestRelationStore_IndexedLookups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// root <- m1 <- m2 <- m3, plus a second direct recruit of root.
	root := createMember(t, store, "root", "ROOT0000", domain.MemberTypePlayer)
	m1 := createMember(t, store, "m1", "MMMM0001", domain.MemberTypePlayer)
	m2 := createMember(t, store, "m2", "MMMM0002", domain.MemberTypePlayer)
	m3 := createMember(t, store, "m3", "MMMM0003", domain.MemberTypePlayer)
	side := createMember(t, store, "side", "SIDE0000", domain.MemberTypePlayer)

	for _, batch := range [][]domain.ReferralRelation{
		{{ReferrerID: root.ID, ReferredID: m1.ID, Level: 1}},
		{{ReferrerID: m1.ID, ReferredID: m2.ID, Level: 1}, {ReferrerID: root.ID, ReferredID: m2.ID, Level: 2}},
		{{ReferrerID: root.ID, ReferredID: side.ID, Level: 1}},
		{
			{ReferrerID: m2.ID, ReferredID: m3.ID, Level: 1},
			{ReferrerID: m1.ID, ReferredID: m3.ID, Level: 2},
			{ReferrerID: root.ID, ReferredID: m3.ID, Level: 3},
		},
	} {
		_, err := store.Relations().CreateBatch(ctx, batch)
		require.NoError(t, err)
	}

	err := store.db.View(func(tx *bbolt.Tx) error {
		assert.Equal(t, 7, tx.Bucket(bucketRelationsByReferred).Stats().KeyN)
		assert.Equal(t, 7, tx.Bucket(bucketRelationsByReferrer).Stats().KeyN)
		return nil
	})
	require.NoError(t, err)

	ancestors, err := store.Relations().ListAncestors(ctx, m3.ID)
	require.NoError(t, err)
	require.Len(t, ancestors, 3)
	for i, want := range []int{m2.ID, m1.ID, root.ID} {
		assert.Equal(t, i+1, ancestors[i].Level)
		assert.Equal(t, want, ancestors[i].ReferrerID)
	}

	direct, err := store.Relations().CountDirect(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, direct)
	all, err := store.Relations().CountByReferrer(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, all)
	leaf, err := store.Relations().CountByReferrer(ctx, m3.ID)
	require.NoError(t, err)
	assert.Zero(t, leaf)

	edges, err := store.Relations().ListDescendants(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, edges, 4)
	parents := make(map[int]int)
	for _, e := range edges {
		parents[e.MemberID] = e.ParentID
	}
	assert.Equal(t, map[int]int{m1.ID: root.ID, side.ID: root.ID, m2.ID: m1.ID, m3.ID: m2.ID}, parents)
}

func TestTransactionStore_MemberIndexIsolatesMembers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	first := createMember(t, store, "first", "FRST0000", domain.MemberTypePlayer)
	last := createMember(t, store, "last", "LAST0000", domain.MemberTypePlayer)

	// Interleave so the first member's rows are never at the end of the index.
	for i := 1; i <= 3; i++ {
		for _, m := range []*domain.Member{first, last} {
			_, err := store.Transactions().Create(ctx, &domain.Transaction{
				MemberID: m.ID, Type: domain.TypeDeposit, Amount: decimal.NewFromInt(int64(10 * i)),
				Currency: domain.CurrencyVcoins, Status: domain.StatusPending,
			})
			require.NoError(t, err)
		}
	}

	for _, m := range []*domain.Member{first, last} {
		txs, err := store.Transactions().ListByMember(ctx, m.ID, domain.TransactionFilter{})
		require.NoError(t, err)
		require.Len(t, txs, 3)
		for i, tx := range txs {
			assert.Equal(t, m.ID, tx.MemberID)
			if i > 0 {
				assert.Greater(t, txs[i-1].ID, tx.ID, "newest first")
			}
		}
		assert.Equal(t, "30", txs[0].Amount.String())
	}

	txs, err := store.Transactions().ListByMember(ctx, 99, domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestOpen_RebuildsMissingIndexes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	store, err := Open(path)
	require.NoError(t, err)
	ctx := context.Background()

	a := createMember(t, store, "a", "AAAA0000", domain.MemberTypePlayer)
	b := createMember(t, store, "b", "BBBB0000", domain.MemberTypePlayer)
	_, err = store.Relations().CreateBatch(ctx, []domain.ReferralRelation{{ReferrerID: a.ID, ReferredID: b.ID, Level: 1}})
	require.NoError(t, err)
	_, err = store.Transactions().Create(ctx, &domain.Transaction{
		MemberID: a.ID, Type: domain.TypeDeposit, Amount: decimal.NewFromInt(5),
		Currency: domain.CurrencyVcoins, Status: domain.StatusPending,
	})
	require.NoError(t, err)

	// Drop the indexes to look like a file written before they existed.
	err = store.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketRelationsByReferred, bucketRelationsByReferrer, bucketTransactionsByMember} {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	ancestors, err := store.Relations().ListAncestors(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, ancestors, 1)
	assert.Equal(t, a.ID, ancestors[0].ReferrerID)

	direct, err := store.Relations().CountDirect(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, direct)

	txs, err := store.Transactions().ListByMember(ctx, a.ID, domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 2}, prefixEnd([]byte{0, 0, 0, 1}))
	assert.Equal(t, []byte{0, 0, 1, 0}, prefixEnd([]byte{0, 0, 0, 0xff}))
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, page(items, 2, 0))
	assert.Equal(t, []int{4, 5}, page(items, 0, 3))
	assert.Nil(t, page(items, 2, 5))
}
