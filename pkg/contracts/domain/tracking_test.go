package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "valid tracking number",
			raw:  "TH1234567890",
			want: "TH1234567890",
		},
		{
			name: "surrounding whitespace stripped",
			raw:  "  TH1234567890  ",
			want: "TH1234567890",
		},
		{
			name: "exactly five characters",
			raw:  "TH123",
			want: "TH123",
		},
		{
			name:    "too short after trimming",
			raw:     " TH12 ",
			wantErr: true,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			raw:     "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn, err := NewTrackingNumber(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tn.Value())
		})
	}
}

func TestNewTicketID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "valid id", raw: "CMP-1001", want: "CMP-1001"},
		{name: "whitespace stripped", raw: " CMP-1001 ", want: "CMP-1001"},
		{name: "single character allowed", raw: "X", want: "X"},
		{name: "empty rejected", raw: "", wantErr: true},
		{name: "whitespace only rejected", raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewTicketID(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.Value())
		})
	}
}
