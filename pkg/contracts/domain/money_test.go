package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		currency     string
		wantErr      bool
		wantCurrency string
	}{
		{
			name:         "valid amount and currency",
			amount:       1477.50,
			currency:     "THB",
			wantCurrency: "THB",
		},
		{
			name:         "zero amount is allowed",
			amount:       0,
			currency:     "THB",
			wantCurrency: "THB",
		},
		{
			name:         "currency normalized to upper with whitespace stripped",
			amount:       100,
			currency:     " thb ",
			wantCurrency: "THB",
		},
		{
			name:     "negative amount rejected",
			amount:   -50,
			currency: "USD",
			wantErr:  true,
		},
		{
			name:     "currency too short",
			amount:   10,
			currency: "TH",
			wantErr:  true,
		},
		{
			name:     "currency too long",
			amount:   10,
			currency: "BAHT",
			wantErr:  true,
		},
		{
			name:     "empty currency",
			amount:   10,
			currency: "",
			wantErr:  true,
		},
		{
			name:     "non-letter currency",
			amount:   10,
			currency: "TH1",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoneyFromFloat(tt.amount, tt.currency)
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCurrency, m.Currency())
			assert.True(t, m.Amount().Equal(decimal.NewFromFloat(tt.amount)))
		})
	}
}

func TestMoney_Add(t *testing.T) {
	a, err := NewMoneyFromFloat(100, "THB")
	require.NoError(t, err)
	b, err := NewMoneyFromFloat(200.25, "THB")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(300.25)))
	assert.Equal(t, "THB", sum.Currency())

	// operands untouched
	assert.True(t, a.Amount().Equal(decimal.NewFromFloat(100)))
	assert.True(t, b.Amount().Equal(decimal.NewFromFloat(200.25)))
}

func TestMoney_AddCurrencyMismatch(t *testing.T) {
	thb, err := NewMoneyFromFloat(100, "THB")
	require.NoError(t, err)
	usd, err := NewMoneyFromFloat(100, "USD")
	require.NoError(t, err)

	_, err = thb.Add(usd)
	require.Error(t, err)

	var mismatch *CurrencyMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "THB", mismatch.Left)
	assert.Equal(t, "USD", mismatch.Right)
	assert.Contains(t, err.Error(), "THB")
	assert.Contains(t, err.Error(), "USD")
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "thousands separator", amount: 1477.50, want: "1,477.50 THB"},
		{name: "zero", amount: 0, want: "0.00 THB"},
		{name: "no separator below one thousand", amount: 999.99, want: "999.99 THB"},
		{name: "rounds to two decimals", amount: 1500, want: "1,500.00 THB"},
		{name: "millions", amount: 1234567.891, want: "1,234,567.89 THB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoneyFromFloat(tt.amount, "thb")
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoney_Equal(t *testing.T) {
	a, _ := NewMoneyFromFloat(100, "THB")
	b, _ := NewMoneyFromFloat(100, "THB")
	c, _ := NewMoneyFromFloat(100, "USD")
	d, _ := NewMoneyFromFloat(101, "THB")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}
