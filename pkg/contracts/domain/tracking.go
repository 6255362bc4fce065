// Package domain holds the claim aggregation domain model: self-validating
// value objects, the ClaimTicket entity and the ClaimCase aggregate root.
// Construction is the only validation point; once an instance exists it is
// guaranteed valid and downstream code never re-checks format.
package domain

import (
	"fmt"
	"strings"
)

// MinTrackingLength is the minimum length of a tracking number after
// surrounding whitespace is stripped.
const MinTrackingLength = 5

// TrackingNumber identifies one physical shipment across all external data
// sources. It is the natural key of a ClaimCase.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber trims surrounding whitespace and validates the result.
func NewTrackingNumber(raw string) (TrackingNumber, error) {
	v := strings.TrimSpace(raw)
	if len(v) < MinTrackingLength {
		return TrackingNumber{}, &ValidationError{
			Field:   "tracking_number",
			Message: fmt.Sprintf("must be at least %d characters after trimming, got %q", MinTrackingLength, v),
		}
	}
	return TrackingNumber{value: v}, nil
}

// Value returns the stripped tracking number.
func (t TrackingNumber) Value() string { return t.value }

func (t TrackingNumber) String() string { return t.value }

// TicketID identifies one submitted compensation claim event.
type TicketID struct {
	value string
}

// NewTicketID trims surrounding whitespace and rejects empty input.
func NewTicketID(raw string) (TicketID, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return TicketID{}, &ValidationError{Field: "ticket_id", Message: "must not be empty"}
	}
	return TicketID{value: v}, nil
}

// Value returns the stripped ticket id.
func (t TicketID) Value() string { return t.value }

func (t TicketID) String() string { return t.value }
