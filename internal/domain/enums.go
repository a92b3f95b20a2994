package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type MemberType string

const (
	MemberTypePlayer     MemberType = "player"
	MemberTypeInfluencer MemberType = "influencer"
)

// influencerPayoutDivisor converts bonus units into rubles for influencer accounts.
var influencerPayoutDivisor = decimal.NewFromInt(100)

func ParseMemberType(s string) (MemberType, error) {
	switch t := MemberType(s); t {
	case MemberTypePlayer, MemberTypeInfluencer:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown member type %q", ErrValidation, s)
}

// Currency is the currency the member type is paid in.
func (t MemberType) Currency() Currency {
	if t == MemberTypeInfluencer {
		return CurrencyRubles
	}
	return CurrencyVcoins
}

// PayoutDivisor is the fixed unit conversion applied to bonus amounts.
func (t MemberType) PayoutDivisor() decimal.Decimal {
	if t == MemberTypeInfluencer {
		return influencerPayoutDivisor
	}
	return decimal.NewFromInt(1)
}

type Currency string

const (
	CurrencyVcoins Currency = "vcoins"
	CurrencyRubles Currency = "rubles"
)

func (c Currency) Valid() bool {
	return c == CurrencyVcoins || c == CurrencyRubles
}

type Tier string

const (
	TierNone     Tier = "none"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeBonus      TransactionType = "bonus"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeTournament TransactionType = "tournament"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeDeposit, TypeBonus, TypeWithdrawal, TypeTournament:
		return true
	}
	return false
}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusConfirmed TransactionStatus = "confirmed"
)
