package boltrepo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.etcd.io/bbolt"

	"github.com/GlebRadaev/refchain/internal/domain"
)

// TransactionStore persists the ledger.
type TransactionStore struct {
	store *Store
}

func getTransaction(tx *bbolt.Tx, id int) (*domain.Transaction, error) {
	data := tx.Bucket(bucketTransactions).Get(itob(id))
	if data == nil {
		return nil, domain.ErrTransactionNotFound
	}
	var t domain.Transaction
	if err := decodeGob(data, &t); err != nil {
		return nil, storeError("decode transaction", err)
	}
	return &t, nil
}

func putTransaction(tx *bbolt.Tx, t *domain.Transaction) error {
	data, err := encodeGob(t)
	if err != nil {
		return storeError("encode transaction", err)
	}
	if err := tx.Bucket(bucketTransactions).Put(itob(t.ID), data); err != nil {
		return storeError("put transaction", err)
	}
	return nil
}

func forEachTransaction(tx *bbolt.Tx, fn func(t *domain.Transaction)) error {
	err := tx.Bucket(bucketTransactions).ForEach(func(_, v []byte) error {
		var t domain.Transaction
		if err := decodeGob(v, &t); err != nil {
			return err
		}
		fn(&t)
		return nil
	})
	if err != nil {
		return storeError("scan transactions", err)
	}
	return nil
}

// forEachMemberTransaction walks memberID's transactions newest first through the
// member index.
func forEachMemberTransaction(tx *bbolt.Tx, memberID int, fn func(t *domain.Transaction)) error {
	return scanPrefixReverse(tx.Bucket(bucketTransactionsByMember), itob(memberID), func(_, id []byte) error {
		t, err := getTransaction(tx, int(btoi(id)))
		if err != nil {
			return err
		}
		fn(t)
		return nil
	})
}

func (s *TransactionStore) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	err := s.store.update(ctx, func(tx *bbolt.Tx) error {
		id, err := tx.Bucket(bucketTransactions).NextSequence()
		if err != nil {
			return storeError("next transaction id", err)
		}
		t.ID = int(id)
		t.CreatedAt = time.Now()
		if err := putTransaction(tx, t); err != nil {
			return err
		}
		if err := indexTransaction(tx, t); err != nil {
			return storeError("index transaction", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TransactionStore) GetByID(ctx context.Context, id int) (*domain.Transaction, error) {
	var t *domain.Transaction
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		var err error
		t, err = getTransaction(tx, id)
		return err
	})
	return t, err
}

func (s *TransactionStore) GetForUpdate(ctx context.Context, id int) (*domain.Transaction, error) {
	return s.GetByID(ctx, id)
}

func (s *TransactionStore) MarkConfirmed(ctx context.Context, id int, at time.Time) error {
	return s.store.update(ctx, func(tx *bbolt.Tx) error {
		t, err := getTransaction(tx, id)
		if err != nil {
			return err
		}
		if t.IsConfirmed() {
			return domain.ErrAlreadyConfirmed
		}
		t.Status = domain.StatusConfirmed
		t.ConfirmedAt = &at
		return putTransaction(tx, t)
	})
}

func (s *TransactionStore) ListByMember(ctx context.Context, memberID int, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		return forEachMemberTransaction(tx, memberID, func(t *domain.Transaction) {
			if filter.Type == "" || t.Type == filter.Type {
				txs = append(txs, *t)
			}
		})
	})
	if err != nil {
		return nil, err
	}
	return page(txs, filter.Limit, filter.Offset), nil
}

func (s *TransactionStore) ListBonuses(ctx context.Context, memberID, limit, offset int) ([]domain.BonusEntry, error) {
	var bonuses []domain.Transaction
	levels := make(map[int]int)
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		err := forEachMemberTransaction(tx, memberID, func(t *domain.Transaction) {
			if t.Type == domain.TypeBonus {
				bonuses = append(bonuses, *t)
			}
		})
		if err != nil {
			return err
		}
		pairs := tx.Bucket(bucketRelationPairs)
		relations := tx.Bucket(bucketRelations)
		for _, t := range bonuses {
			if t.RelatedMemberID == nil {
				continue
			}
			relID := pairs.Get(pairKey(t.MemberID, *t.RelatedMemberID))
			if relID == nil {
				continue
			}
			var rel domain.ReferralRelation
			if err := decodeGob(relations.Get(relID), &rel); err != nil {
				return storeError("decode relation", err)
			}
			levels[t.ID] = rel.Level
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	bonuses = page(bonuses, limit, offset)

	entries := make([]domain.BonusEntry, 0, len(bonuses))
	for _, t := range bonuses {
		entries = append(entries, domain.BonusEntry{Transaction: t, Level: levels[t.ID]})
	}
	return entries, nil
}

func (s *TransactionStore) TotalBonusEarned(ctx context.Context, memberID int) (decimal.Decimal, error) {
	total := decimal.Zero
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		return forEachMemberTransaction(tx, memberID, func(t *domain.Transaction) {
			if t.Type == domain.TypeBonus && t.IsConfirmed() {
				total = total.Add(t.Amount)
			}
		})
	})
	return total, err
}

func (s *TransactionStore) Totals(ctx context.Context) (domain.LedgerTotals, error) {
	var totals domain.LedgerTotals
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		return forEachTransaction(tx, func(t *domain.Transaction) {
			totals.Count++
			switch {
			case t.Type == domain.TypeDeposit && t.IsConfirmed():
				totals.Deposits = totals.Deposits.Add(t.Currency, t.Amount)
			case t.Type == domain.TypeDeposit:
				totals.PendingDeposits++
			case t.Type == domain.TypeBonus && t.IsConfirmed():
				totals.BonusesPaid = totals.BonusesPaid.Add(t.Currency, t.Amount)
			}
		})
	})
	return totals, err
}
