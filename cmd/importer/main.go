// Command importer runs the one-shot batch pipeline: import the claims
// workbook, optionally enrich every case against a compensation workbook,
// and write a CSV report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"claimdesk/internal/exporter"
	"claimdesk/internal/repository"
	"claimdesk/internal/services"
	"claimdesk/pkg/contracts/domain"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "importer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	claimsPath := flag.String("claims", "", "path to the claims workbook (required)")
	compensationPath := flag.String("compensation", "", "path to the compensation workbook (optional)")
	outPath := flag.String("out", "claim_cases.csv", "path of the CSV report to write")
	flag.Parse()

	if *claimsPath == "" {
		flag.Usage()
		return fmt.Errorf("-claims is required")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	ctx := context.Background()

	// the two workbooks are independent, read them concurrently
	var (
		cases  []*domain.ClaimCase
		lookup map[string]domain.Money
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cases, err = repository.NewExcelRepository(*claimsPath).GetAllCases(gctx)
		return err
	})
	if *compensationPath != "" {
		g.Go(func() error {
			var err error
			lookup, err = repository.LoadCompensationLookup(*compensationPath)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("claims imported",
		slog.String("path", *claimsPath),
		slog.Int("cases", len(cases)),
	)

	matched := 0
	if len(lookup) > 0 {
		matched = services.NewEnrichmentService(logger).EnrichAll(ctx, cases, lookup)
		logger.Info("enrichment complete",
			slog.Int("matched", matched),
			slog.Int("unmatched", len(cases)-matched),
		)
	}

	if err := exporter.WriteCasesFile(*outPath, cases); err != nil {
		return err
	}

	logger.Info("report written", slog.String("path", *outPath))
	return nil
}
