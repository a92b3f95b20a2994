package boltrepo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.etcd.io/bbolt"

	"github.com/GlebRadaev/refchain/internal/domain"
)

// MemberStore persists members with username and referral code indexes.
type MemberStore struct {
	store *Store
}

func getMember(tx *bbolt.Tx, id int) (*domain.Member, error) {
	data := tx.Bucket(bucketMembers).Get(itob(id))
	if data == nil {
		return nil, domain.ErrMemberNotFound
	}
	var m domain.Member
	if err := decodeGob(data, &m); err != nil {
		return nil, storeError("decode member", err)
	}
	return &m, nil
}

func putMember(tx *bbolt.Tx, m *domain.Member) error {
	data, err := encodeGob(m)
	if err != nil {
		return storeError("encode member", err)
	}
	if err := tx.Bucket(bucketMembers).Put(itob(m.ID), data); err != nil {
		return storeError("put member", err)
	}
	return nil
}

func (s *MemberStore) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	err := s.store.update(ctx, func(tx *bbolt.Tx) error {
		byUsername := tx.Bucket(bucketMembersUsername)
		byCode := tx.Bucket(bucketMembersCode)
		if byUsername.Get([]byte(member.Username)) != nil {
			return domain.ErrUsernameTaken
		}
		if byCode.Get([]byte(member.ReferralCode)) != nil {
			return domain.ErrReferralCodeTaken
		}

		id, err := tx.Bucket(bucketMembers).NextSequence()
		if err != nil {
			return storeError("next member id", err)
		}
		member.ID = int(id)
		member.BalanceVcoins = decimal.Zero
		member.BalanceRubles = decimal.Zero
		member.Tier = domain.TierNone
		member.FirstTournamentPlayed = false
		member.CreatedAt = time.Now()

		if err := putMember(tx, member); err != nil {
			return err
		}
		if err := byUsername.Put([]byte(member.Username), itob(member.ID)); err != nil {
			return storeError("index username", err)
		}
		if err := byCode.Put([]byte(member.ReferralCode), itob(member.ID)); err != nil {
			return storeError("index referral code", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberStore) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	var member *domain.Member
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		var err error
		member, err = getMember(tx, id)
		return err
	})
	return member, err
}

// GetForUpdate reads the member. The single bbolt writer already excludes concurrent updates.
func (s *MemberStore) GetForUpdate(ctx context.Context, id int) (*domain.Member, error) {
	return s.GetByID(ctx, id)
}

func (s *MemberStore) getByIndex(ctx context.Context, bucket []byte, key string) (*domain.Member, error) {
	var member *domain.Member
	err := s.store.view(ctx, func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucket).Get([]byte(key))
		if id == nil {
			return domain.ErrMemberNotFound
		}
		var err error
		member, err = getMember(tx, int(btoi(id)))
		return err
	})
	return member, err
}

func (s *MemberStore) GetByUsername(ctx context.Context, username string) (*domain.Member, error) {
	return s.getByIndex(ctx, bucketMembersUsername, username)
}

func (s *MemberStore) GetByReferralCode(ctx context.Context, code string) (*domain.Member, error) {
	return s.getByIndex(ctx, bucketMembersCode, code)
}

func (s *MemberStore) modify(ctx context.Context, id int, fn func(m *domain.Member) bool) (bool, error) {
	var changed bool
	err := s.store.update(ctx, func(tx *bbolt.Tx) error {
		member, err := getMember(tx, id)
		if err != nil {
			return err
		}
		if changed = fn(member); !changed {
			return nil
		}
		return putMember(tx, member)
	})
	return changed, err
}

func (s *MemberStore) UpdateBalances(ctx context.Context, id int, vcoins, rubles decimal.Decimal) error {
	_, err := s.modify(ctx, id, func(m *domain.Member) bool {
		m.BalanceVcoins = vcoins
		m.BalanceRubles = rubles
		return true
	})
	return err
}

func (s *MemberStore) UpdateTier(ctx context.Context, id int, tier domain.Tier) error {
	_, err := s.modify(ctx, id, func(m *domain.Member) bool {
		m.Tier = tier
		return true
	})
	return err
}

func (s *MemberStore) MarkFirstTournamentPlayed(ctx context.Context, id int) (bool, error) {
	return s.modify(ctx, id, func(m *domain.Member) bool {
		if m.FirstTournamentPlayed {
			return false
		}
		m.FirstTournamentPlayed = true
		return true
	})
}

func (s *MemberStore) forEach(ctx context.Context, fn func(m *domain.Member)) error {
	return s.store.view(ctx, func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMembers).ForEach(func(_, v []byte) error {
			var m domain.Member
			if err := decodeGob(v, &m); err != nil {
				return err
			}
			fn(&m)
			return nil
		})
	})
}

func (s *MemberStore) CountByType(ctx context.Context) (map[domain.MemberType]int, error) {
	counts := make(map[domain.MemberType]int)
	err := s.forEach(ctx, func(m *domain.Member) { counts[m.Type]++ })
	if err != nil {
		return nil, storeError("count members", err)
	}
	return counts, nil
}

func (s *MemberStore) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := s.forEach(ctx, func(m *domain.Member) {
		if !m.CreatedAt.Before(since) {
			count++
		}
	})
	if err != nil {
		return 0, storeError("count recent members", err)
	}
	return count, nil
}
