// Package services holds the application services layered over the domain
// model: enrichment of claim cases against external compensation data, and
// the claim service consumed by the HTTP transport.
package services

import (
	"context"
	"log/slog"

	"claimdesk/pkg/contracts/domain"
)

// EnrichmentService reconciles claim cases against an externally supplied
// compensation lookup. External data is authoritative once matched:
// pre-enrichment amounts (typically zero placeholders from the initial
// import) are discarded, not merged.
type EnrichmentService struct {
	logger *slog.Logger
}

// NewEnrichmentService creates the service. A nil logger falls back to the
// default slog logger.
func NewEnrichmentService(logger *slog.Logger) *EnrichmentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnrichmentService{
		logger: logger.With(slog.String("component", "enrichment_service")),
	}
}

// Enrich overwrites every ticket's compensation in the case with the amount
// the lookup holds for its tracking number, then recomputes the case total.
// An absent key leaves the case entirely unchanged and reports false; that
// is a valid no-op, never an error.
func (s *EnrichmentService) Enrich(ctx context.Context, c *domain.ClaimCase, lookup map[string]domain.Money) bool {
	key := c.TrackingNumber().Value()
	money, ok := lookup[key]
	if !ok {
		return false
	}

	c.OverwriteCompensation(money)
	s.logger.InfoContext(ctx, "claim case enriched",
		slog.String("tracking_no", key),
		slog.Int("tickets", len(c.Tickets())),
		slog.String("compensation", money.String()),
	)
	return true
}

// EnrichAll runs Enrich over every case and returns how many matched.
func (s *EnrichmentService) EnrichAll(ctx context.Context, cases []*domain.ClaimCase, lookup map[string]domain.Money) int {
	matched := 0
	for _, c := range cases {
		if s.Enrich(ctx, c, lookup) {
			matched++
		}
	}
	return matched
}
