// Package money provides a fixed-point monetary value object.
//
// Amounts are kept at the currency's minor-unit scale (2 fractional digits)
// and every boundary conversion rounds half-up. Binary floating point never
// touches stored amounts.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept for every stored amount.
const Scale = 2

var (
	// ErrNonPositiveMagnitude is returned when a magnitude is zero or negative.
	ErrNonPositiveMagnitude = errors.New("magnitude must be greater than zero")
	// ErrInvalidAmount is returned when an amount string cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Money represents a monetary value at minor-unit scale.
// Invariants:
//   - The amount never carries more than Scale fractional digits.
//   - Arithmetic is exact decimal arithmetic.
type Money struct {
	amount decimal.Decimal
}

// Zero is the zero monetary value.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// New creates Money from a decimal, rounding half-up to minor-unit scale.
func New(d decimal.Decimal) Money {
	return Money{amount: d.Round(Scale)}
}

// FromString parses a decimal string such as "1850.00".
// The value is rounded half-up to minor-unit scale.
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return New(d), nil
}

// FromMagnitude validates a user-supplied magnitude and rounds it half-up to
// minor-unit scale. Magnitudes must be strictly positive; sign is applied
// afterwards by the caller based on direction.
func FromMagnitude(d decimal.Decimal) (Money, error) {
	if !d.IsPositive() {
		return Money{}, ErrNonPositiveMagnitude
	}
	return New(d), nil
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Negate returns -m.
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg()}
}

// Abs returns the absolute value of m.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs()}
}

// Equals reports whether two amounts are numerically equal.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with exactly Scale fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(Scale)
}

// Percentage computes part/whole as a percentage rounded to 2 decimal places.
// The division is carried at 4 decimal places half-up before scaling by 100,
// matching how savings rates and category shares are reported. A zero whole
// yields zero, never a division error.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.DivRound(whole, 4).Mul(decimal.NewFromInt(100)).Round(Scale)
}
