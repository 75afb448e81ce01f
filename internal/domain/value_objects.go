package domain

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	minorUnitsPerMajor = decimal.NewFromInt(100)
	maxMinorUnits      = decimal.NewFromInt(math.MaxInt64)
)

// Money is an amount in major currency units.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// MinorUnits converts the amount to the gateway's smallest denomination.
// Half-unit values round away from zero: 19.995 becomes 2000.
func (m Money) MinorUnits() int64 {
	return ToMinorUnits(m.Amount)
}

// ToMinorUnits assumes amount passed NewOrderCreationRequest; outside
// [0.005, MaxInt64/100] the int64 result is meaningless.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return minorUnits(amount).IntPart()
}

func minorUnits(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(minorUnitsPerMajor).Round(0)
}

func normalizeCurrency(currency string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(currency))
	if len(c) != 3 {
		return "", NewInvalidCurrencyError(currency)
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", NewInvalidCurrencyError(currency)
		}
	}
	return c, nil
}
