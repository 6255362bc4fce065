package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/repository"
	"claimdesk/pkg/contracts/domain"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation error",
			err:        &domain.ValidationError{Field: "tracking_number", Message: "too short"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("row 3: %w", &domain.ValidationError{Field: "amount", Message: "negative"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "tracking mismatch",
			err:        &domain.TrackingMismatchError{CaseTracking: "TH1234567890", TicketTracking: "TH0000000000"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "TRACKING_MISMATCH",
		},
		{
			name:       "currency mismatch",
			err:        &domain.CurrencyMismatchError{Left: "THB", Right: "USD"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "CURRENCY_MISMATCH",
		},
		{
			name:       "read-only repository",
			err:        fmt.Errorf("excel claim repository: %w", repository.ErrReadOnly),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "READ_ONLY_REPOSITORY",
		},
		{
			name:       "unknown error hides its message",
			err:        fmt.Errorf("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "api error passes through",
			err:        NotFoundError("claim case"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromDomain(tt.err)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.ErrorCode)
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := New(http.StatusBadRequest, "INVALID_REQUEST", "bad payload")
	assert.Equal(t, "bad payload", err.Error())
}
