package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"claimdesk/pkg/contracts/domain"
)

// writeWorkbook writes rows into a fresh single-sheet workbook under a temp
// dir and returns its path.
func writeWorkbook(t *testing.T, name string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		row := row
		require.NoError(t, f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &row))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func claimsHeader() []interface{} {
	return []interface{}{"complaint_ticket_id", "shipment_type_name", "tracking_no", "compensation_final_amt"}
}

func TestExcelRepository_GetAllCases(t *testing.T) {
	path := writeWorkbook(t, "claims.xlsx", [][]interface{}{
		claimsHeader(),
		{"CMP-1001", "STANDARD", "TH1234567890", 886.26},
		{"CMP-1002", "EXPRESS", "TH1234567891", 100.00},
		{"CMP-1003", "STANDARD", "TH1234567891", 262.50},
		{"CMP-1004", "STANDARD", "TH1234567893", nil},
		{"CMP-1005", "EXPRESS", "TH1234567894", "not-a-number"},
	})

	cases, err := NewExcelRepository(path).GetAllCases(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 4)

	// first-seen order of tracking numbers
	assert.Equal(t, "TH1234567890", cases[0].TrackingNumber().Value())
	assert.Equal(t, "TH1234567891", cases[1].TrackingNumber().Value())
	assert.Equal(t, "TH1234567893", cases[2].TrackingNumber().Value())
	assert.Equal(t, "TH1234567894", cases[3].TrackingNumber().Value())

	// duplicate tracking number folds into one case, tickets in row order
	dup := cases[1]
	require.Len(t, dup.Tickets(), 2)
	assert.Equal(t, "CMP-1002", dup.Tickets()[0].ID().Value())
	assert.Equal(t, "CMP-1003", dup.Tickets()[1].ID().Value())
	assert.True(t, dup.TotalCompensation().Amount().Equal(decimal.NewFromFloat(362.50)))

	// blank and non-numeric amounts import as zero without failing
	assert.True(t, cases[2].TotalCompensation().Amount().IsZero())
	assert.True(t, cases[3].TotalCompensation().Amount().IsZero())

	// tickets start at version 1
	assert.Equal(t, 1, cases[0].Tickets()[0].Version())
}

func TestExcelRepository_HeaderNotOnFirstRow(t *testing.T) {
	path := writeWorkbook(t, "claims.xlsx", [][]interface{}{
		{"Claims export", "", "", ""},
		claimsHeader(),
		{"CMP-1001", "STANDARD", "TH1234567890", 100.50},
	})

	cases, err := NewExcelRepository(path).GetAllCases(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.True(t, cases[0].TotalCompensation().Amount().Equal(decimal.NewFromFloat(100.50)))
}

func TestExcelRepository_GetByTracking(t *testing.T) {
	path := writeWorkbook(t, "claims.xlsx", [][]interface{}{
		claimsHeader(),
		{"CMP-1001", "STANDARD", "TH1234567890", 886.26},
		{"CMP-1002", "EXPRESS", "TH1234567891", 100.00},
	})
	repo := NewExcelRepository(path)
	ctx := context.Background()

	tn, err := domain.NewTrackingNumber("TH1234567891")
	require.NoError(t, err)
	got, err := repo.GetByTracking(ctx, tn)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.TotalCompensation().Amount().Equal(decimal.NewFromFloat(100)))

	absent, err := domain.NewTrackingNumber("TH0000000000")
	require.NoError(t, err)
	got, err = repo.GetByTracking(ctx, absent)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExcelRepository_SaveIsReadOnly(t *testing.T) {
	path := writeWorkbook(t, "claims.xlsx", [][]interface{}{claimsHeader()})
	repo := NewExcelRepository(path)

	err := repo.Save(context.Background(), buildCase(t, "TH1234567890", 100))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestExcelRepository_MissingHeader(t *testing.T) {
	path := writeWorkbook(t, "claims.xlsx", [][]interface{}{
		{"foo", "bar"},
		{"1", "2"},
	})

	_, err := NewExcelRepository(path).GetAllCases(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header row")
}

func TestExcelRepository_InvalidTrackingRow(t *testing.T) {
	path := writeWorkbook(t, "claims.xlsx", [][]interface{}{
		claimsHeader(),
		{"CMP-1001", "STANDARD", "TH12", 10.0},
	})

	_, err := NewExcelRepository(path).GetAllCases(context.Background())
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestExcelRepository_MissingFile(t *testing.T) {
	repo := NewExcelRepository(filepath.Join(t.TempDir(), "nope.xlsx"))
	_, err := repo.GetAllCases(context.Background())
	require.Error(t, err)
}
