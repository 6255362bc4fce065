package services

import (
	"context"
	"fmt"
	"log/slog"

	"claimdesk/internal/repository"
	"claimdesk/pkg/contracts/domain"
)

// TicketInput is one claim ticket as supplied by an external caller.
type TicketInput struct {
	TicketID string
	Amount   float64
	Currency string
}

// ClaimService exposes claim case retrieval, creation and enrichment over a
// repository. All validation happens here at the boundary, by constructing
// domain value objects; once a case exists its invariants hold.
type ClaimService struct {
	repo     repository.ClaimRepository
	enricher *EnrichmentService
	logger   *slog.Logger
}

// NewClaimService wires the service. A nil logger falls back to the default
// slog logger.
func NewClaimService(repo repository.ClaimRepository, enricher *EnrichmentService, logger *slog.Logger) *ClaimService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClaimService{
		repo:     repo,
		enricher: enricher,
		logger:   logger.With(slog.String("component", "claim_service")),
	}
}

// GetCase returns the case for a raw tracking number, or (nil, nil) when
// unknown. An invalid tracking number fails with *domain.ValidationError.
func (s *ClaimService) GetCase(ctx context.Context, tracking string) (*domain.ClaimCase, error) {
	tn, err := domain.NewTrackingNumber(tracking)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByTracking(ctx, tn)
}

// ListCases returns every known case.
func (s *ClaimService) ListCases(ctx context.Context) ([]*domain.ClaimCase, error) {
	return s.repo.GetAllCases(ctx)
}

// CreateCase builds a case from raw inputs and saves it, replacing any
// prior case under the same tracking number wholesale.
func (s *ClaimService) CreateCase(ctx context.Context, tracking string, tickets []TicketInput) (*domain.ClaimCase, error) {
	tn, err := domain.NewTrackingNumber(tracking)
	if err != nil {
		return nil, err
	}

	c := domain.NewClaimCase(tn)
	for i, in := range tickets {
		tid, err := domain.NewTicketID(in.TicketID)
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", i+1, err)
		}
		money, err := domain.NewMoneyFromFloat(in.Amount, in.Currency)
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", i+1, err)
		}
		if err := c.AddTicket(domain.NewClaimTicket(tid, tn, money)); err != nil {
			return nil, fmt.Errorf("ticket %d: %w", i+1, err)
		}
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save case: %w", err)
	}

	s.logger.InfoContext(ctx, "claim case saved",
		slog.String("tracking_no", tn.Value()),
		slog.Int("tickets", len(tickets)),
	)
	return c, nil
}

// EnrichCase applies an authoritative compensation amount to the case for
// the tracking number. The bool result reports whether a case existed and
// was enriched; an unknown tracking number is a no-op, not an error.
func (s *ClaimService) EnrichCase(ctx context.Context, tracking string, money domain.Money) (*domain.ClaimCase, bool, error) {
	c, err := s.GetCase(ctx, tracking)
	if err != nil {
		return nil, false, err
	}
	if c == nil {
		return nil, false, nil
	}

	lookup := map[string]domain.Money{c.TrackingNumber().Value(): money}
	matched := s.enricher.Enrich(ctx, c, lookup)
	if matched {
		if err := s.repo.Save(ctx, c); err != nil {
			return nil, false, fmt.Errorf("failed to save enriched case: %w", err)
		}
	}
	return c, matched, nil
}

// ImportFrom drains a source repository into the service's own store.
// Used to warm the in-memory store from a claims workbook at startup.
func (s *ClaimService) ImportFrom(ctx context.Context, src repository.ClaimRepository) (int, error) {
	cases, err := src.GetAllCases(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to import cases: %w", err)
	}
	for _, c := range cases {
		if err := s.repo.Save(ctx, c); err != nil {
			return 0, fmt.Errorf("failed to save imported case %s: %w", c.TrackingNumber().Value(), err)
		}
	}
	return len(cases), nil
}
