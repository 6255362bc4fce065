package domain

import "fmt"

// ValidationError reports a value object constructed from data that violates
// its invariant. The invalid object is never returned alongside it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CurrencyMismatchError reports arithmetic attempted between Money values
// of different currencies.
type CurrencyMismatchError struct {
	Left  string
	Right string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("cannot add different currencies: %s and %s", e.Left, e.Right)
}

// TrackingMismatchError reports a ticket added to a case whose tracking
// number disagrees with the case identity.
type TrackingMismatchError struct {
	CaseTracking   string
	TicketTracking string
}

func (e *TrackingMismatchError) Error() string {
	return fmt.Sprintf("ticket tracking number %s does not match case %s", e.TicketTracking, e.CaseTracking)
}
