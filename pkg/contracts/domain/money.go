package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in a single ISO-4217-style currency.
// Immutable: every operation returns a new value.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney validates the amount and normalizes the currency code.
// The currency is trimmed, upper-cased and must be exactly 3 letters.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, &ValidationError{
			Field:   "amount",
			Message: fmt.Sprintf("must not be negative, got %s", amount.String()),
		}
	}
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if len(cur) != 3 || !isAlpha(cur) {
		return Money{}, &ValidationError{
			Field:   "currency",
			Message: fmt.Sprintf("must be exactly 3 letters, got %q", cur),
		}
	}
	return Money{amount: amount, currency: cur}, nil
}

// NewMoneyFromFloat is a convenience constructor for amounts parsed out of
// tabular sources.
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the normalized 3-letter currency code.
func (m Money) Currency() string { return m.currency }

// Add returns the sum of two Money values of identical currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, &CurrencyMismatchError{Left: m.currency, Right: other.currency}
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders the fixed display format: thousands-separated amount with
// two decimal places, a space, then the currency code, e.g. "1,477.50 THB".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", groupThousands(m.amount.StringFixed(2)), m.currency)
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// groupThousands inserts comma separators into the integer part of a
// fixed-point decimal string. Amounts are never negative here.
func groupThousands(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
