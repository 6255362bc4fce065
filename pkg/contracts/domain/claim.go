package domain

import "github.com/shopspring/decimal"

// SettlementCurrency is the single currency supported for case totals.
const SettlementCurrency = "THB"

// ClaimTicket is one submitted compensation claim event. Identity is the
// ticket id; the version starts at 1 and increments by exactly 1 on every
// compensation update. A ticket is owned by exactly one ClaimCase and has
// no lifecycle outside it.
type ClaimTicket struct {
	id           TicketID
	tracking     TrackingNumber
	compensation Money
	version      int
}

// NewClaimTicket creates a ticket at version 1. The arguments are already
// validated value objects, so no further checks apply.
func NewClaimTicket(id TicketID, tracking TrackingNumber, compensation Money) *ClaimTicket {
	return &ClaimTicket{
		id:           id,
		tracking:     tracking,
		compensation: compensation,
		version:      1,
	}
}

// ID returns the ticket identity.
func (t *ClaimTicket) ID() TicketID { return t.id }

// TrackingNumber returns the shipment this ticket claims against.
func (t *ClaimTicket) TrackingNumber() TrackingNumber { return t.tracking }

// Compensation returns the current compensation amount.
func (t *ClaimTicket) Compensation() Money { return t.compensation }

// Version returns the monotonically increasing update counter.
func (t *ClaimTicket) Version() int { return t.version }

// UpdateCompensation replaces the compensation amount and bumps the version
// by exactly 1. The version bump is the only observable state change besides
// the amount itself.
func (t *ClaimTicket) UpdateCompensation(m Money) {
	t.compensation = m
	t.version++
}

// ClaimCase is the aggregate root grouping every claim ticket for one
// tracked shipment. It owns the invariant that the total compensation always
// equals the sum of its tickets' amounts; the total is recomputed from
// scratch on every membership change rather than maintained incrementally,
// so drift between the cached total and the actual sum cannot occur.
type ClaimCase struct {
	tracking TrackingNumber
	tickets  []*ClaimTicket
	total    Money
}

// NewClaimCase creates an empty case for a tracking number with a zero total
// in the settlement currency.
func NewClaimCase(tracking TrackingNumber) *ClaimCase {
	return &ClaimCase{
		tracking: tracking,
		total:    Money{amount: decimal.Zero, currency: SettlementCurrency},
	}
}

// TrackingNumber returns the case identity.
func (c *ClaimCase) TrackingNumber() TrackingNumber { return c.tracking }

// Tickets returns the tickets in arrival order.
func (c *ClaimCase) Tickets() []*ClaimTicket {
	out := make([]*ClaimTicket, len(c.tickets))
	copy(out, c.tickets)
	return out
}

// TotalCompensation returns the running total in the settlement currency.
func (c *ClaimCase) TotalCompensation() Money { return c.total }

// AddTicket appends a ticket and recomputes the total. A ticket carrying a
// different tracking number is rejected and the case is left unchanged.
// Tickets are append-only; duplicates by ticket id are allowed.
func (c *ClaimCase) AddTicket(t *ClaimTicket) error {
	if t.tracking.value != c.tracking.value {
		return &TrackingMismatchError{
			CaseTracking:   c.tracking.value,
			TicketTracking: t.tracking.value,
		}
	}
	c.tickets = append(c.tickets, t)
	c.recomputeTotal()
	return nil
}

// OverwriteCompensation replaces every ticket's compensation with the given
// authoritative amount and recomputes the total. Ticket versions are not
// touched: this is a bulk reconciliation against external data, not a
// per-ticket update event.
func (c *ClaimCase) OverwriteCompensation(m Money) {
	for _, t := range c.tickets {
		t.compensation = m
	}
	c.recomputeTotal()
}

func (c *ClaimCase) recomputeTotal() {
	sum := decimal.Zero
	for _, t := range c.tickets {
		sum = sum.Add(t.compensation.amount)
	}
	c.total = Money{amount: sum, currency: SettlementCurrency}
}
