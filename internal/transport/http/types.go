// Package http exposes the claim aggregation core over a JSON API.
// Handlers validate at the boundary and delegate to the services layer;
// no domain invariant lives here.
package http

import (
	"claimdesk/pkg/contracts/domain"
)

// TicketRequest is one ticket in a create-claim payload.
type TicketRequest struct {
	TicketID string  `json:"ticket_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
}

// CreateClaimRequest creates or wholesale-replaces a claim case.
type CreateClaimRequest struct {
	TrackingNumber string          `json:"tracking_number" validate:"required,min=5"`
	Tickets        []TicketRequest `json:"tickets" validate:"dive"`
}

// EnrichClaimRequest applies an authoritative compensation amount to every
// ticket of a case.
type EnrichClaimRequest struct {
	Amount   float64 `json:"amount" validate:"gte=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
}

// TicketResponse is the wire form of a claim ticket.
type TicketResponse struct {
	TicketID       string  `json:"ticket_id"`
	TrackingNumber string  `json:"tracking_number"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Version        int     `json:"version"`
}

// ClaimCaseResponse is the wire form of a claim case.
type ClaimCaseResponse struct {
	TrackingNumber    string           `json:"tracking_number"`
	TicketCount       int              `json:"ticket_count"`
	TotalAmount       float64          `json:"total_amount"`
	Currency          string           `json:"currency"`
	TotalCompensation string           `json:"total_compensation"`
	Tickets           []TicketResponse `json:"tickets"`
}

// EnrichClaimResponse reports the outcome of an enrichment call.
type EnrichClaimResponse struct {
	Matched bool               `json:"matched"`
	Case    *ClaimCaseResponse `json:"case,omitempty"`
}

// ClaimListResponse wraps the full case listing.
type ClaimListResponse struct {
	Count int                 `json:"count"`
	Cases []ClaimCaseResponse `json:"cases"`
}

func toTicketResponse(t *domain.ClaimTicket) TicketResponse {
	return TicketResponse{
		TicketID:       t.ID().Value(),
		TrackingNumber: t.TrackingNumber().Value(),
		Amount:         t.Compensation().Amount().InexactFloat64(),
		Currency:       t.Compensation().Currency(),
		Version:        t.Version(),
	}
}

func toClaimCaseResponse(c *domain.ClaimCase) ClaimCaseResponse {
	tickets := c.Tickets()
	out := ClaimCaseResponse{
		TrackingNumber:    c.TrackingNumber().Value(),
		TicketCount:       len(tickets),
		TotalAmount:       c.TotalCompensation().Amount().InexactFloat64(),
		Currency:          c.TotalCompensation().Currency(),
		TotalCompensation: c.TotalCompensation().String(),
		Tickets:           make([]TicketResponse, 0, len(tickets)),
	}
	for _, t := range tickets {
		out.Tickets = append(out.Tickets, toTicketResponse(t))
	}
	return out
}
