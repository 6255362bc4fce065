package repository

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"claimdesk/pkg/contracts/domain"
)

// Column names carried by the compensation workbook. The sheet has a
// two-tier header: a meta group row above the row holding these names, so
// the loader scans for the real header instead of assuming row one.
const (
	colLookupTracking = "tracking number"
	colLookupAmount   = "total amount"
	colLookupCurrency = "total currency"
)

// LoadCompensationLookup parses the compensation workbook into a map from
// tracking number to the authoritative compensation amount, ready to hand
// to the enrichment service. Rows without a valid tracking number are
// skipped; a missing currency cell defaults to the settlement currency.
func LoadCompensationLookup(path string) (map[string]domain.Money, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open compensation workbook: %w", err)
	}
	defer f.Close()

	list := f.GetSheetList()
	if len(list) == 0 {
		return nil, fmt.Errorf("compensation workbook has no sheets")
	}

	rows, err := f.GetRows(list[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", list[0], err)
	}

	headerRow, cols := findLookupHeader(rows)
	if headerRow < 0 {
		return nil, fmt.Errorf("sheet %q has no header row with columns %q and %q", list[0], colLookupTracking, colLookupAmount)
	}

	lookup := make(map[string]domain.Money)
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]

		tn, err := domain.NewTrackingNumber(cellAt(row, cols[colLookupTracking]))
		if err != nil {
			continue
		}

		currency := domain.SettlementCurrency
		if idx, ok := cols[colLookupCurrency]; ok {
			if cur := cellAt(row, idx); cur != "" {
				currency = cur
			}
		}

		money, err := domain.NewMoneyFromFloat(parseAmount(cellAt(row, cols[colLookupAmount])), currency)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		lookup[tn.Value()] = money
	}
	return lookup, nil
}

func findLookupHeader(rows [][]string) (int, map[string]int) {
	for i, row := range rows {
		cols := make(map[string]int)
		for j, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case colLookupTracking:
				cols[colLookupTracking] = j
			case colLookupAmount:
				cols[colLookupAmount] = j
			case colLookupCurrency:
				cols[colLookupCurrency] = j
			}
		}
		if _, okTracking := cols[colLookupTracking]; okTracking {
			if _, okAmount := cols[colLookupAmount]; okAmount {
				return i, cols
			}
		}
	}
	return -1, nil
}
