package bonusservice

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/service/levelservice"
)

// levelBase holds the base bonus per chain level before the tier multiplier.
var levelBase = map[int]int64{
	1:  1000,
	2:  150,
	3:  100,
	4:  75,
	5:  50,
	6:  40,
	7:  30,
	8:  20,
	9:  15,
	10: 10,
}

type Bonus struct {
	Amount   decimal.Decimal
	Currency domain.Currency
}

func (b Bonus) IsZero() bool {
	return b.Amount.IsZero()
}

// ComputeBonus prices the payout to ancestor for a descendant at the given level.
// Influencers are paid in rubles at one hundredth of the vcoin amount.
func ComputeBonus(ancestor *domain.Member, level int, levels []domain.Level) Bonus {
	base := decimal.NewFromInt(levelBase[level])
	amount := base.
		Mul(levelservice.Multiplier(ancestor.Tier, levels)).
		Div(ancestor.Type.PayoutDivisor()).
		Round(domain.MoneyPlaces)
	return Bonus{
		Amount:   amount,
		Currency: ancestor.Type.Currency(),
	}
}
