package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"claimdesk/pkg/contracts/domain"
)

// Column names fixed by the external claims workbook format.
const (
	colTicketID     = "complaint_ticket_id"
	colTrackingNo   = "tracking_no"
	colCompensation = "compensation_final_amt"
)

// ExcelRepository imports claim cases from an external claims workbook.
// It is read-only: Save always fails with ErrReadOnly.
//
// Every read opens and fully re-parses the workbook, so results always
// reflect the latest file contents and are never stale. There is no caching
// contract; callers that need cheap repeated lookups should import once via
// GetAllCases and save the cases into a MemoryRepository.
type ExcelRepository struct {
	path  string
	sheet string
}

// NewExcelRepository creates a repository over the workbook at path. The
// first sheet is used unless a sheet name is set with WithSheet.
func NewExcelRepository(path string) *ExcelRepository {
	return &ExcelRepository{path: path}
}

// WithSheet pins the sheet to read instead of the workbook's first sheet.
func (r *ExcelRepository) WithSheet(name string) *ExcelRepository {
	r.sheet = name
	return r
}

// Save is unsupported on the import store.
func (r *ExcelRepository) Save(_ context.Context, _ *domain.ClaimCase) error {
	return fmt.Errorf("excel claim repository: %w", ErrReadOnly)
}

// GetByTracking re-imports the workbook and scans for the tracking number.
// Returns (nil, nil) when no row carries the key.
func (r *ExcelRepository) GetByTracking(ctx context.Context, tracking domain.TrackingNumber) (*domain.ClaimCase, error) {
	cases, err := r.GetAllCases(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range cases {
		if c.TrackingNumber().Value() == tracking.Value() {
			return c, nil
		}
	}
	return nil, nil
}

// GetAllCases parses the claims sheet into one case per distinct tracking
// number. Rows are consumed in sheet order: the first occurrence of a
// tracking number creates its case, and every row's ticket is appended to
// that case, so tickets keep row order and cases keep first-seen order.
// A blank or non-numeric compensation cell is treated as zero.
func (r *ExcelRepository) GetAllCases(ctx context.Context) ([]*domain.ClaimCase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open claims workbook: %w", err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("claims workbook has no sheets")
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	headerRow, cols := findClaimHeader(rows)
	if headerRow < 0 {
		return nil, fmt.Errorf("sheet %q has no header row with columns %q and %q", sheet, colTicketID, colTrackingNo)
	}

	cases := make(map[string]*domain.ClaimCase)
	var order []string

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		rawTicket := cellAt(row, cols[colTicketID])
		rawTracking := cellAt(row, cols[colTrackingNo])
		if rawTicket == "" && rawTracking == "" {
			continue
		}

		tn, err := domain.NewTrackingNumber(rawTracking)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		tid, err := domain.NewTicketID(rawTicket)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		amount := 0.0
		if idx, ok := cols[colCompensation]; ok {
			amount = parseAmount(cellAt(row, idx))
		}
		money, err := domain.NewMoneyFromFloat(amount, domain.SettlementCurrency)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		c, ok := cases[tn.Value()]
		if !ok {
			c = domain.NewClaimCase(tn)
			cases[tn.Value()] = c
			order = append(order, tn.Value())
		}
		if err := c.AddTicket(domain.NewClaimTicket(tid, tn, money)); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	out := make([]*domain.ClaimCase, 0, len(order))
	for _, key := range order {
		out = append(out, cases[key])
	}
	return out, nil
}

// findClaimHeader scans for the row carrying the fixed column names and maps
// each known column to its index. The compensation column is optional.
func findClaimHeader(rows [][]string) (int, map[string]int) {
	for i, row := range rows {
		cols := make(map[string]int)
		for j, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case colTicketID:
				cols[colTicketID] = j
			case colTrackingNo:
				cols[colTrackingNo] = j
			case colCompensation:
				cols[colCompensation] = j
			}
		}
		if _, okTicket := cols[colTicketID]; okTicket {
			if _, okTracking := cols[colTrackingNo]; okTracking {
				return i, cols
			}
		}
	}
	return -1, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseAmount reads a numeric cell, tolerating thousands separators.
// Blank or unparseable cells count as zero per the import contract.
func parseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
