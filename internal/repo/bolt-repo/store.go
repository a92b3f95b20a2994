package boltrepo

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/pg"
)

var (
	bucketMembers         = []byte("members")
	bucketMembersUsername = []byte("members_username")
	bucketMembersCode     = []byte("members_code")
	bucketRelations       = []byte("relations")
	bucketRelationPairs   = []byte("relation_pairs")
	bucketTransactions    = []byte("transactions")
	bucketLevels          = []byte("levels")

	// Secondary indexes. Keys are fixed-width big-endian composites so a cursor Seek on
	// a prefix walks one member's rows in order. Values are the primary row id.
	bucketRelationsByReferred  = []byte("relations_by_referred")  // referredID|level
	bucketRelationsByReferrer  = []byte("relations_by_referrer")  // referrerID|level|referredID
	bucketTransactionsByMember = []byte("transactions_by_member") // memberID|createdAt|txID
)

// DefaultLevels mirrors the rows seeded by the SQL migrations.
var DefaultLevels = []domain.Level{
	{Name: domain.TierSilver, RequiredReferrals: 3, BonusMultiplier: decimal.RequireFromString("1.10")},
	{Name: domain.TierGold, RequiredReferrals: 10, BonusMultiplier: decimal.RequireFromString("1.20")},
	{Name: domain.TierPlatinum, RequiredReferrals: 25, BonusMultiplier: decimal.RequireFromString("1.50")},
}

// Store keeps the whole ledger in a single bbolt file. bbolt admits one writer at a
// time, so every atomic scope is serialized across all members.
type Store struct {
	db *bbolt.DB
}

var _ pg.TXManager = (*Store)(nil)

// Open opens or creates the database at path and seeds the level table when it is empty.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("boltrepo: create directory: %w", err)
	}
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("boltrepo: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{
			bucketMembers, bucketMembersUsername, bucketMembersCode,
			bucketRelations, bucketRelationPairs, bucketTransactions, bucketLevels,
			bucketRelationsByReferred, bucketRelationsByReferrer, bucketTransactionsByMember,
		} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %q: %w", name, err)
			}
		}
		if err := rebuildIndexes(tx); err != nil {
			return fmt.Errorf("rebuild indexes: %w", err)
		}
		return seedLevels(tx.Bucket(bucketLevels))
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("boltrepo: init buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func seedLevels(b *bbolt.Bucket) error {
	if b.Stats().KeyN > 0 {
		return nil
	}
	for _, level := range DefaultLevels {
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		level.ID = int(id)
		data, err := encodeGob(level)
		if err != nil {
			return err
		}
		if err := b.Put(itob(level.ID), data); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Members() *MemberStore { return &MemberStore{store: s} }

func (s *Store) Relations() *RelationStore { return &RelationStore{store: s} }

func (s *Store) Transactions() *TransactionStore { return &TransactionStore{store: s} }

func (s *Store) Levels() *LevelStore { return &LevelStore{store: s} }

type txKey struct{}

// Begin runs fn inside one read-write bbolt transaction. Nested calls join the outer one.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if _, ok := ctx.Value(txKey{}).(*bbolt.Tx); ok {
		return fn(ctx)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
			zap.L().Debug("bolt transaction rolled back", zap.Error(err))
			return err
		}
		return nil
	})
}

func (s *Store) view(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if tx, ok := ctx.Value(txKey{}).(*bbolt.Tx); ok {
		return fn(tx)
	}
	return s.db.View(fn)
}

func (s *Store) update(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if tx, ok := ctx.Value(txKey{}).(*bbolt.Tx); ok && tx.Writable() {
		return fn(tx)
	}
	return s.db.Update(fn)
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStore, op, err)
}

func itob(id int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(id))
	return k
}

func btoi(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

func compositeKey(parts ...uint64) []byte {
	k := make([]byte, 8*len(parts))
	for i, p := range parts {
		binary.BigEndian.PutUint64(k[8*i:], p)
	}
	return k
}

func pairKey(referrerID, referredID int) []byte {
	return compositeKey(uint64(referrerID), uint64(referredID))
}

func referredKey(referredID, level int) []byte {
	return compositeKey(uint64(referredID), uint64(level))
}

func referrerKey(referrerID, level, referredID int) []byte {
	return compositeKey(uint64(referrerID), uint64(level), uint64(referredID))
}

func memberTxKey(memberID int, createdAt time.Time, txID int) []byte {
	return compositeKey(uint64(memberID), uint64(createdAt.UnixNano()), uint64(txID))
}

// scanPrefix calls fn for every key in b starting with prefix, in key order.
func scanPrefix(b *bbolt.Bucket, prefix []byte, fn func(k, v []byte) error) error {
	c := b.Cursor()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}

// scanPrefixReverse walks the same keys as scanPrefix from the last one back.
func scanPrefixReverse(b *bbolt.Bucket, prefix []byte, fn func(k, v []byte) error) error {
	c := b.Cursor()
	k, v := c.Seek(prefixEnd(prefix))
	if k == nil {
		k, v = c.Last()
	} else {
		k, v = c.Prev()
	}
	for ; k != nil && bytes.HasPrefix(k, prefix); k, v = c.Prev() {
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}

// prefixEnd is the smallest key greater than every key starting with prefix. Prefixes
// here are ids, never all 0xff bytes.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			break
		}
	}
	return end
}

func countPrefix(b *bbolt.Bucket, prefix []byte) int {
	n := 0
	_ = scanPrefix(b, prefix, func(_, _ []byte) error {
		n++
		return nil
	})
	return n
}

func indexRelation(tx *bbolt.Tx, rel *domain.ReferralRelation) error {
	id := itob(rel.ID)
	if err := tx.Bucket(bucketRelationsByReferred).Put(referredKey(rel.ReferredID, rel.Level), id); err != nil {
		return err
	}
	return tx.Bucket(bucketRelationsByReferrer).Put(referrerKey(rel.ReferrerID, rel.Level, rel.ReferredID), id)
}

func indexTransaction(tx *bbolt.Tx, t *domain.Transaction) error {
	return tx.Bucket(bucketTransactionsByMember).Put(memberTxKey(t.MemberID, t.CreatedAt, t.ID), itob(t.ID))
}

// rebuildIndexes fills index buckets that are empty while their primary bucket is not,
// which is the case for files written before the indexes existed.
func rebuildIndexes(tx *bbolt.Tx) error {
	if tx.Bucket(bucketRelationsByReferred).Stats().KeyN == 0 && tx.Bucket(bucketRelations).Stats().KeyN > 0 {
		err := tx.Bucket(bucketRelations).ForEach(func(_, v []byte) error {
			var rel domain.ReferralRelation
			if err := decodeGob(v, &rel); err != nil {
				return err
			}
			return indexRelation(tx, &rel)
		})
		if err != nil {
			return err
		}
		zap.L().Info("bolt relation indexes rebuilt")
	}
	if tx.Bucket(bucketTransactionsByMember).Stats().KeyN == 0 && tx.Bucket(bucketTransactions).Stats().KeyN > 0 {
		err := tx.Bucket(bucketTransactions).ForEach(func(_, v []byte) error {
			var t domain.Transaction
			if err := decodeGob(v, &t); err != nil {
				return err
			}
			return indexTransaction(tx, &t)
		})
		if err != nil {
			return err
		}
		zap.L().Info("bolt transaction index rebuilt")
	}
	return nil
}

func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// page applies offset and limit to an already sorted slice. A non-positive limit keeps the rest.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// LevelStore persists the tier table.
type LevelStore struct {
	store *Store
}

func (s *LevelStore) List(ctx context.Context) ([]domain.Level, error) {
	var levels []domain.Level
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketLevels).ForEach(func(_, v []byte) error {
			var l domain.Level
			if err := decodeGob(v, &l); err != nil {
				return err
			}
			levels = append(levels, l)
			return nil
		})
	})
	if err != nil {
		return nil, storeError("list levels", err)
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].RequiredReferrals < levels[j].RequiredReferrals
	})
	return levels, nil
}
