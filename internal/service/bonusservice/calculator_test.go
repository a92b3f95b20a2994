package bonusservice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/refchain/internal/domain"
)

var testLevels = []domain.Level{
	{Name: domain.TierSilver, RequiredReferrals: 3, BonusMultiplier: decimal.RequireFromString("1.10")},
	{Name: domain.TierGold, RequiredReferrals: 10, BonusMultiplier: decimal.RequireFromString("1.20")},
	{Name: domain.TierPlatinum, RequiredReferrals: 25, BonusMultiplier: decimal.RequireFromString("1.50")},
}

func TestComputeBonus(t *testing.T) {
	goldPlayer := &domain.Member{Type: domain.MemberTypePlayer, Tier: domain.TierGold}
	goldInfluencer := &domain.Member{Type: domain.MemberTypeInfluencer, Tier: domain.TierGold}
	plainPlayer := &domain.Member{Type: domain.MemberTypePlayer, Tier: domain.TierNone}
	silverInfluencer := &domain.Member{Type: domain.MemberTypeInfluencer, Tier: domain.TierSilver}
	platinumInfluencer := &domain.Member{Type: domain.MemberTypeInfluencer, Tier: domain.TierPlatinum}

	tests := []struct {
		name     string
		ancestor *domain.Member
		level    int
		levels   []domain.Level
		amount   string
		currency domain.Currency
	}{
		{name: "Gold player level 1", ancestor: goldPlayer, level: 1, levels: testLevels, amount: "1200.00", currency: domain.CurrencyVcoins},
		{name: "Gold player level 3", ancestor: goldPlayer, level: 3, levels: testLevels, amount: "120.00", currency: domain.CurrencyVcoins},
		{name: "Gold influencer level 1", ancestor: goldInfluencer, level: 1, levels: testLevels, amount: "12.00", currency: domain.CurrencyRubles},
		{name: "Untiered player level 2", ancestor: plainPlayer, level: 2, levels: testLevels, amount: "150.00", currency: domain.CurrencyVcoins},
		{name: "Untiered player level 10", ancestor: plainPlayer, level: 10, levels: testLevels, amount: "10.00", currency: domain.CurrencyVcoins},
		{name: "Silver influencer level 9 rounds half up", ancestor: silverInfluencer, level: 9, levels: testLevels, amount: "0.17", currency: domain.CurrencyRubles},
		{name: "Silver influencer level 4 tie rounds away from zero", ancestor: silverInfluencer, level: 4, levels: testLevels, amount: "0.83", currency: domain.CurrencyRubles},
		{name: "Platinum influencer level 4 tie rounds away from zero", ancestor: platinumInfluencer, level: 4, levels: testLevels, amount: "1.13", currency: domain.CurrencyRubles},
		{name: "Platinum influencer level 9 tie rounds away from zero", ancestor: platinumInfluencer, level: 9, levels: testLevels, amount: "0.23", currency: domain.CurrencyRubles},
		{name: "Tier without configuration row", ancestor: goldPlayer, level: 1, levels: nil, amount: "1000.00", currency: domain.CurrencyVcoins},
		{name: "Level beyond the table", ancestor: goldPlayer, level: 11, levels: testLevels, amount: "0.00", currency: domain.CurrencyVcoins},
		{name: "Level zero", ancestor: goldPlayer, level: 0, levels: testLevels, amount: "0.00", currency: domain.CurrencyVcoins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bonus := ComputeBonus(tt.ancestor, tt.level, tt.levels)
			assert.Equal(t, tt.amount, bonus.Amount.StringFixed(2))
			assert.Equal(t, tt.currency, bonus.Currency)
		})
	}
}

func TestComputeBonus_Deterministic(t *testing.T) {
	ancestor := &domain.Member{Type: domain.MemberTypeInfluencer, Tier: domain.TierPlatinum}
	first := ComputeBonus(ancestor, 4, testLevels)
	for i := 0; i < 10; i++ {
		assert.True(t, first.Amount.Equal(ComputeBonus(ancestor, 4, testLevels).Amount))
	}
	assert.False(t, first.IsZero())
	assert.True(t, ComputeBonus(ancestor, 12, testLevels).IsZero())
}

// Half-cent payouts round half away from zero, not to even.
func TestComputeBonus_TiesAreNotBankersRounding(t *testing.T) {
	tests := []struct {
		name   string
		tier   domain.Tier
		level  int
		exact  string
		paid   string
		banker string
	}{
		{name: "Silver level 4", tier: domain.TierSilver, level: 4, exact: "0.825", paid: "0.83", banker: "0.82"},
		{name: "Platinum level 4", tier: domain.TierPlatinum, level: 4, exact: "1.125", paid: "1.13", banker: "1.12"},
		{name: "Platinum level 9", tier: domain.TierPlatinum, level: 9, exact: "0.225", paid: "0.23", banker: "0.22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exact := decimal.RequireFromString(tt.exact)
			assert.Equal(t, tt.banker, exact.RoundBank(2).StringFixed(2))

			ancestor := &domain.Member{Type: domain.MemberTypeInfluencer, Tier: tt.tier}
			assert.Equal(t, tt.paid, ComputeBonus(ancestor, tt.level, testLevels).Amount.StringFixed(2))
		})
	}
}
