package boltrepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.etcd.io/bbolt"

	"github.com/GlebRadaev/refchain/internal/domain"
)

// RelationStore persists referral edges. Besides the (referrer, referred) uniqueness
// index it keeps lookups by referred member and by referrer and level.
type RelationStore struct {
	store *Store
}

func (s *RelationStore) CreateBatch(ctx context.Context, relations []domain.ReferralRelation) ([]domain.ReferralRelation, error) {
	created := make([]domain.ReferralRelation, 0, len(relations))
	err := s.store.update(ctx, func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRelations)
		pairs := tx.Bucket(bucketRelationPairs)
		now := time.Now()
		for _, rel := range relations {
			key := pairKey(rel.ReferrerID, rel.ReferredID)
			if pairs.Get(key) != nil {
				return domain.ErrDuplicateRelation
			}
			id, err := bucket.NextSequence()
			if err != nil {
				return storeError("next relation id", err)
			}
			rel.ID = int(id)
			rel.CreatedAt = now
			data, err := encodeGob(rel)
			if err != nil {
				return storeError("encode relation", err)
			}
			if err := bucket.Put(itob(rel.ID), data); err != nil {
				return storeError("put relation", err)
			}
			if err := pairs.Put(key, itob(rel.ID)); err != nil {
				return storeError("index relation", err)
			}
			if err := indexRelation(tx, &rel); err != nil {
				return storeError("index relation", err)
			}
			created = append(created, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func getRelation(tx *bbolt.Tx, id []byte) (*domain.ReferralRelation, error) {
	data := tx.Bucket(bucketRelations).Get(id)
	if data == nil {
		return nil, storeError("load relation", fmt.Errorf("index points at missing relation %d", btoi(id)))
	}
	var rel domain.ReferralRelation
	if err := decodeGob(data, &rel); err != nil {
		return nil, storeError("decode relation", err)
	}
	return &rel, nil
}

// relationsByIndex loads the relations whose index keys in bucket start with prefix, in
// key order.
func relationsByIndex(tx *bbolt.Tx, bucket, prefix []byte) ([]domain.ReferralRelation, error) {
	var relations []domain.ReferralRelation
	err := scanPrefix(tx.Bucket(bucket), prefix, func(_, id []byte) error {
		rel, err := getRelation(tx, id)
		if err != nil {
			return err
		}
		relations = append(relations, *rel)
		return nil
	})
	return relations, err
}

func (s *RelationStore) ListAncestors(ctx context.Context, referredID int) ([]domain.ReferralRelation, error) {
	var relations []domain.ReferralRelation
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		var err error
		relations, err = relationsByIndex(tx, bucketRelationsByReferred, itob(referredID))
		return err
	})
	return relations, err
}

func (s *RelationStore) FindDirectReferrer(ctx context.Context, referredID int) (*domain.ReferralRelation, error) {
	var rel *domain.ReferralRelation
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucketRelationsByReferred).Get(referredKey(referredID, 1))
		if id == nil {
			return nil
		}
		var err error
		rel, err = getRelation(tx, id)
		return err
	})
	return rel, err
}

func (s *RelationStore) CountDirect(ctx context.Context, referrerID int) (int, error) {
	var n int
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		n = countPrefix(tx.Bucket(bucketRelationsByReferrer), compositeKey(uint64(referrerID), 1))
		return nil
	})
	return n, err
}

func (s *RelationStore) CountByReferrer(ctx context.Context, referrerID int) (int, error) {
	var n int
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		n = countPrefix(tx.Bucket(bucketRelationsByReferrer), itob(referrerID))
		return nil
	})
	return n, err
}

// earnedFrom sums confirmed bonuses paid to referrerID, keyed by the member that triggered them.
func earnedFrom(tx *bbolt.Tx, referrerID int) (map[int]decimal.Decimal, error) {
	earned := make(map[int]decimal.Decimal)
	err := forEachMemberTransaction(tx, referrerID, func(t *domain.Transaction) {
		if t.Type != domain.TypeBonus || !t.IsConfirmed() || t.RelatedMemberID == nil {
			return
		}
		earned[*t.RelatedMemberID] = earned[*t.RelatedMemberID].Add(t.Amount)
	})
	return earned, err
}

func (s *RelationStore) ListReferrals(ctx context.Context, referrerID, limit, offset int) ([]domain.ReferralSummary, error) {
	var summaries []domain.ReferralSummary
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		relations, err := relationsByIndex(tx, bucketRelationsByReferrer, itob(referrerID))
		if err != nil {
			return err
		}
		earned, err := earnedFrom(tx, referrerID)
		if err != nil {
			return err
		}
		for _, rel := range relations {
			member, err := getMember(tx, rel.ReferredID)
			if err != nil {
				return err
			}
			summaries = append(summaries, domain.ReferralSummary{
				Relation:       rel,
				Username:       member.Username,
				Type:           member.Type,
				TotalEarned:    earned[rel.ReferredID],
				ReferredJoined: member.CreatedAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].Relation, summaries[j].Relation
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return page(summaries, limit, offset), nil
}

func (s *RelationStore) LevelBreakdown(ctx context.Context, referrerID int) ([]domain.LevelBreakdown, error) {
	byLevel := make(map[int]*domain.LevelBreakdown)
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		relations, err := relationsByIndex(tx, bucketRelationsByReferrer, itob(referrerID))
		if err != nil {
			return err
		}
		earned, err := earnedFrom(tx, referrerID)
		if err != nil {
			return err
		}
		for _, rel := range relations {
			b, ok := byLevel[rel.Level]
			if !ok {
				b = &domain.LevelBreakdown{Level: rel.Level}
				byLevel[rel.Level] = b
			}
			b.Count++
			b.Earned = b.Earned.Add(earned[rel.ReferredID])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	breakdown := make([]domain.LevelBreakdown, 0, len(byLevel))
	for _, b := range byLevel {
		breakdown = append(breakdown, *b)
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Level < breakdown[j].Level })
	return breakdown, nil
}

func (s *RelationStore) ListDescendants(ctx context.Context, rootID int) ([]domain.TreeEdge, error) {
	var edges []domain.TreeEdge
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		below, err := relationsByIndex(tx, bucketRelationsByReferrer, itob(rootID))
		if err != nil {
			return err
		}
		referred := tx.Bucket(bucketRelationsByReferred)
		for _, rel := range below {
			member, err := getMember(tx, rel.ReferredID)
			if err != nil {
				return err
			}
			var parentID int
			if id := referred.Get(referredKey(rel.ReferredID, 1)); id != nil {
				parent, err := getRelation(tx, id)
				if err != nil {
					return err
				}
				parentID = parent.ReferrerID
			}
			edges = append(edges, domain.TreeEdge{
				MemberID: rel.ReferredID,
				ParentID: parentID,
				Level:    rel.Level,
				Username: member.Username,
				Type:     member.Type,
				JoinedAt: member.CreatedAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Level != edges[j].Level {
			return edges[i].Level < edges[j].Level
		}
		return edges[i].MemberID < edges[j].MemberID
	})
	return edges, nil
}
