package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentJSONRoundTrip(t *testing.T) {
	clientID := uint(7)
	date := time.Date(2026, 9, 8, 3, 0, 0, 0, time.UTC)
	created := time.Date(2026, 9, 1, 14, 22, 5, 0, time.UTC)

	ap := Appointment{
		ID:        42,
		ClientID:  &clientID,
		BarberID:  1,
		ServiceID: 2,
		Date:      date,
		StartTime: "10:00",
		EndTime:   "11:30",
		Status:    "CONFIRMED",
		CreatedAt: created,
		UpdatedAt: created,
	}

	raw, err := json.Marshal(ap)
	require.NoError(t, err)

	var got Appointment
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, ap, got)
	assert.Nil(t, got.GuestClientID)
	assert.Nil(t, got.CancelledAt)
}

func TestAppointmentJSONRoundTripCancelledGuest(t *testing.T) {
	guestID := uint(3)
	date := time.Date(2026, 9, 8, 3, 0, 0, 0, time.UTC)
	cancelled := time.Date(2026, 9, 7, 18, 40, 0, 0, time.UTC)

	ap := Appointment{
		ID:            43,
		GuestClientID: &guestID,
		BarberID:      1,
		ServiceID:     2,
		Date:          date,
		StartTime:     "15:00",
		EndTime:       "15:30",
		Status:        "CANCELLED_BY_BARBER",
		CancelReason:  "imprevisto pessoal",
		CancelledAt:   &cancelled,
		CreatedAt:     date,
		UpdatedAt:     cancelled,
	}

	raw, err := json.Marshal(ap)
	require.NoError(t, err)

	var got Appointment
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, ap, got)
	assert.Nil(t, got.ClientID)
	require.NotNil(t, got.CancelledAt)
	assert.True(t, got.CancelledAt.Equal(cancelled))
}
