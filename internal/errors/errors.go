// Package errors maps domain failures onto structured API error responses
// rendered by go-chi/render.
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/go-chi/render"

	"claimdesk/internal/repository"
	"claimdesk/pkg/contracts/domain"
)

// APIError is the structured error payload returned by every endpoint.
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Render implements render.Renderer.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates an APIError.
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates an APIError carrying extra detail payload.
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined errors for common scenarios.
var (
	ErrInvalidRequest = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrNotFound       = New(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrInternalServer = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
)

// ValidationDetail carries field-level validation context.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrValidation creates a field validation error.
func ErrValidation(field, message string) *APIError {
	return NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", ValidationDetail{
		Field:   field,
		Message: message,
	})
}

// NotFoundError creates a not found error naming the resource.
func NotFoundError(resource string) *APIError {
	return NewWithDetails(http.StatusNotFound, "NOT_FOUND", resource+" not found", resource)
}

// FromDomain translates a domain or repository error into an APIError.
// Unknown errors collapse to the internal server error without leaking
// their message.
func FromDomain(err error) *APIError {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	var validation *domain.ValidationError
	if stderrors.As(err, &validation) {
		return ErrValidation(validation.Field, validation.Message)
	}

	var trackingMismatch *domain.TrackingMismatchError
	if stderrors.As(err, &trackingMismatch) {
		return NewWithDetails(http.StatusUnprocessableEntity, "TRACKING_MISMATCH", "Ticket tracking number does not match case", trackingMismatch.Error())
	}

	var currencyMismatch *domain.CurrencyMismatchError
	if stderrors.As(err, &currencyMismatch) {
		return NewWithDetails(http.StatusUnprocessableEntity, "CURRENCY_MISMATCH", "Cannot combine amounts of different currencies", currencyMismatch.Error())
	}

	if stderrors.Is(err, repository.ErrReadOnly) {
		return New(http.StatusMethodNotAllowed, "READ_ONLY_REPOSITORY", "Repository does not support writes")
	}

	return ErrInternalServer
}
