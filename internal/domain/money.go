package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits kept for every amount and balance.
const MoneyPlaces = 2

// RoundMoney rounds half away from zero to MoneyPlaces digits.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// ValidateAmount accepts strictly positive amounts with at most MoneyPlaces fractional digits.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: must be positive, got %s", ErrInvalidAmount, amount)
	}
	if !amount.Equal(RoundMoney(amount)) {
		return fmt.Errorf("%w: more than %d fractional digits in %s", ErrInvalidAmount, MoneyPlaces, amount)
	}
	return nil
}
