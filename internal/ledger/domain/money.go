package domain

import (
	"math"
	"strconv"

	"github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

// Money is an amount in cents. All arithmetic on amounts happens on the
// integer cent value so sums stay exact regardless of how many entries are
// accumulated.
type Money int64

const maxParsableAmount = float64(math.MaxInt64) / 200

// ParseAmount converts a numeric amount (as decoded from JSON) into cents,
// rounding half away from zero on the third decimal place.
// NaN, infinities and amounts that would overflow the cent range are rejected.
func ParseAmount(value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.ErrInvalidAmount
	}
	if math.Abs(value) > maxParsableAmount {
		return 0, errors.ErrInvalidAmount
	}
	return Money(math.Round(value * 100)), nil
}

// Float64 returns the decimal value for responses and templates.
// Calculations must stay on cents.
func (m Money) Float64() float64 {
	return float64(m) / 100.0
}

func (m Money) String() string {
	return strconv.FormatFloat(m.Float64(), 'f', 2, 64)
}

// MarshalJSON renders the amount as a plain JSON number with two decimals,
// matching what API clients send and expect back.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errors.ErrInvalidAmount
	}
	parsed, err := ParseAmount(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
