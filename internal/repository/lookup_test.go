package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCompensationLookup(t *testing.T) {
	// two-tier header: meta group row first, real column names second
	path := writeWorkbook(t, "compensation.xlsx", [][]interface{}{
		{"Ticket Meta", "Ticket Meta", "Compensation Result", "Compensation Result"},
		{"ticket id", "tracking number", "TOTAL amount", "TOTAL currency"},
		{"1477594532001", "TH1234567890", 886.26, "THB"},
		{"1477594532002", "TH1234567891", 362.50, "thb"},
		{"1477594532003", "TH1234567893", 1500.00, nil},
		{"1477594532004", "bad", 450.75, "THB"},
	})

	lookup, err := LoadCompensationLookup(path)
	require.NoError(t, err)
	require.Len(t, lookup, 3)

	m, ok := lookup["TH1234567890"]
	require.True(t, ok)
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(886.26)))
	assert.Equal(t, "THB", m.Currency())

	// currency normalized to upper
	assert.Equal(t, "THB", lookup["TH1234567891"].Currency())

	// blank currency defaults to the settlement currency
	assert.Equal(t, "THB", lookup["TH1234567893"].Currency())

	// rows with invalid tracking numbers are skipped, not fatal
	_, ok = lookup["bad"]
	assert.False(t, ok)
}

func TestLoadCompensationLookup_NoHeader(t *testing.T) {
	path := writeWorkbook(t, "compensation.xlsx", [][]interface{}{
		{"a", "b"},
		{"1", "2"},
	})

	_, err := LoadCompensationLookup(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header row")
}
