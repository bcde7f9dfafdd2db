package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{"pending to approved", RequestStatusPending, RequestStatusApproved, true},
		{"pending to rejected", RequestStatusPending, RequestStatusRejected, true},
		{"pending to cancelled", RequestStatusPending, RequestStatusCancelled, true},
		{"pending to pending is a no-op", RequestStatusPending, RequestStatusPending, true},
		{"approved is terminal", RequestStatusApproved, RequestStatusRejected, false},
		{"approved cannot go back to pending", RequestStatusApproved, RequestStatusPending, false},
		{"rejected is terminal", RequestStatusRejected, RequestStatusApproved, false},
		{"rejected cannot go back to pending", RequestStatusRejected, RequestStatusPending, false},
		{"cancelled is terminal", RequestStatusCancelled, RequestStatusApproved, false},
		{"approved to approved is a no-op", RequestStatusApproved, RequestStatusApproved, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidRequestStatus(t *testing.T) {
	for _, status := range []string{"pending", "approved", "rejected", "cancelled"} {
		assert.True(t, ValidRequestStatus(status), status)
	}
	for _, status := range []string{"", "Pending", "done", "APPROVED", "cancel"} {
		assert.False(t, ValidRequestStatus(status), status)
	}
}

func TestParseRequestDate(t *testing.T) {
	t.Run("bare calendar date", func(t *testing.T) {
		got, err := ParseRequestDate("2025-06-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339 timestamp", func(t *testing.T) {
		got, err := ParseRequestDate("2025-06-15T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 10, got.Hour())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseRequestDate("next tuesday")
		assert.Error(t, err)
	})
}

func TestValidPaymentType(t *testing.T) {
	assert.True(t, ValidPaymentType("money"))
	assert.True(t, ValidPaymentType("barter"))
	assert.False(t, ValidPaymentType("both"))
	assert.False(t, ValidPaymentType(""))
}
