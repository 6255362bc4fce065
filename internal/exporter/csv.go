// Package exporter writes claim cases to CSV for downstream reporting.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"claimdesk/pkg/contracts/domain"
)

// csvHeader is the per-ticket report layout: one row per ticket, with the
// owning case's totals repeated on each row.
var csvHeader = []string{
	"tracking_no",
	"ticket_id",
	"ticket_version",
	"compensation_amount",
	"currency",
	"case_ticket_count",
	"case_total_amount",
}

// WriteCases writes every case's tickets to w in case order.
func WriteCases(w io.Writer, cases []*domain.ClaimCase) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, c := range cases {
		tickets := c.Tickets()
		total := c.TotalCompensation().Amount().StringFixed(2)
		for _, t := range tickets {
			record := []string{
				c.TrackingNumber().Value(),
				t.ID().Value(),
				fmt.Sprintf("%d", t.Version()),
				t.Compensation().Amount().StringFixed(2),
				t.Compensation().Currency(),
				fmt.Sprintf("%d", len(tickets)),
				total,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write csv record: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCasesFile writes the report to a file, creating parent directories
// as needed.
func WriteCasesFile(path string, cases []*domain.ClaimCase) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return WriteCases(file, cases)
}
