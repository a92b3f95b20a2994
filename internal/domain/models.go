package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Member struct {
	ID                    int             `db:"id"`
	Username              string          `db:"username"`
	PasswordHash          string          `db:"password_hash"`
	Type                  MemberType      `db:"member_type"`
	ReferralCode          string          `db:"referral_code"`
	BalanceVcoins         decimal.Decimal `db:"balance_vcoins"`
	BalanceRubles         decimal.Decimal `db:"balance_rubles"`
	Tier                  Tier            `db:"tier"`
	IsAdmin               bool            `db:"is_admin"`
	FirstTournamentPlayed bool            `db:"first_tournament_played"`
	CreatedAt             time.Time       `db:"created_at"`
}

// Balance returns the balance kept in the given currency.
func (m *Member) Balance(currency Currency) decimal.Decimal {
	if currency == CurrencyRubles {
		return m.BalanceRubles
	}
	return m.BalanceVcoins
}

// MainBalance is the balance in the currency the member is paid in.
func (m *Member) MainBalance() decimal.Decimal {
	return m.Balance(m.Type.Currency())
}

// Apply adds the signed effect of tx to the matching balance. No floor is enforced.
func (m *Member) Apply(tx *Transaction) {
	delta := tx.SignedAmount()
	switch tx.Currency {
	case CurrencyRubles:
		m.BalanceRubles = m.BalanceRubles.Add(delta)
	case CurrencyVcoins:
		m.BalanceVcoins = m.BalanceVcoins.Add(delta)
	}
}

type ReferralRelation struct {
	ID         int       `db:"id"`
	ReferrerID int       `db:"referrer_id"`
	ReferredID int       `db:"referred_id"`
	Level      int       `db:"level"`
	CreatedAt  time.Time `db:"created_at"`
}

type Transaction struct {
	ID              int               `db:"id"`
	MemberID        int               `db:"member_id"`
	Type            TransactionType   `db:"type"`
	Amount          decimal.Decimal   `db:"amount"`
	Currency        Currency          `db:"currency"`
	Status          TransactionStatus `db:"status"`
	Description     string            `db:"description"`
	RelatedMemberID *int              `db:"related_member_id"`
	CreatedAt       time.Time         `db:"created_at"`
	ConfirmedAt     *time.Time        `db:"confirmed_at"`
}

func (t *Transaction) IsConfirmed() bool {
	return t.Status == StatusConfirmed
}

// SignedAmount is the balance delta the transaction produces on completion.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

type Level struct {
	ID                int             `db:"id"`
	Name              Tier            `db:"name"`
	RequiredReferrals int             `db:"required_referrals"`
	BonusMultiplier   decimal.Decimal `db:"bonus_multiplier"`
}

// ReferralSummary is a direct or indirect referral as seen by its referrer.
type ReferralSummary struct {
	Relation       ReferralRelation
	Username       string
	Type           MemberType
	TotalEarned    decimal.Decimal
	ReferredJoined time.Time
}

// LevelBreakdown counts referrals of one chain level.
type LevelBreakdown struct {
	Level  int
	Count  int
	Earned decimal.Decimal
}

type SystemStats struct {
	TotalMembers      int
	TotalPlayers      int
	TotalInfluencers  int
	TotalTransactions int
	TotalDeposits     CurrencyTotals
	TotalBonusesPaid  CurrencyTotals
	PendingDeposits   int
	ActiveLast30Days  int
}

// TreeEdge places a descendant under its direct referrer inside a referral tree.
type TreeEdge struct {
	MemberID int
	ParentID int
	Level    int
	Username string
	Type     MemberType
	JoinedAt time.Time
}

// TransactionFilter narrows transaction listings. Zero values mean no restriction.
type TransactionFilter struct {
	Type   TransactionType
	Limit  int
	Offset int
}

// BonusEntry is a bonus transaction together with the chain level it was paid for.
// Level is zero for bonuses not tied to a referral, such as manual ones.
type BonusEntry struct {
	Transaction Transaction
	Level       int
}

// CurrencyTotals keeps sums per currency. Vcoins and rubles are never added together.
type CurrencyTotals struct {
	Vcoins decimal.Decimal
	Rubles decimal.Decimal
}

func (t CurrencyTotals) Add(currency Currency, amount decimal.Decimal) CurrencyTotals {
	if currency == CurrencyRubles {
		t.Rubles = t.Rubles.Add(amount)
	} else {
		t.Vcoins = t.Vcoins.Add(amount)
	}
	return t
}

// LedgerTotals aggregates the transaction table for system statistics.
type LedgerTotals struct {
	Count           int
	Deposits        CurrencyTotals
	BonusesPaid     CurrencyTotals
	PendingDeposits int
}

// LevelProgress describes where a member stands in the tier table.
type LevelProgress struct {
	Tier            Tier
	Multiplier      decimal.Decimal
	DirectReferrals int
	Next            *Level
	Needed          int
}

type ReferralStats struct {
	TotalReferrals  int
	DirectReferrals int
	TotalEarned     decimal.Decimal
	Levels          []LevelBreakdown
}

// TreeNode is a member inside a nested referral tree.
type TreeNode struct {
	MemberID int
	Username string
	Type     MemberType
	Level    int
	JoinedAt time.Time
	Children []*TreeNode
}
