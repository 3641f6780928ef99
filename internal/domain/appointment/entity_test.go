package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/models"
	"github.com/agendai-app/booking-api/internal/timezone"
)

func confirmedAt(t *testing.T, dateStr, startTime string) *models.Appointment {
	t.Helper()
	date, err := timezone.ParseDate(dateStr)
	require.NoError(t, err)
	return &models.Appointment{
		Date:      date,
		StartTime: startTime,
		EndTime:   "10:30",
		Status:    string(StatusConfirmed),
	}
}

func TestCancelByClientFutureAppointment(t *testing.T) {
	ap := confirmedAt(t, "2026-03-10", "10:00")
	now := timezone.At(ap.Date, "09:00")

	require.NoError(t, CancelByClient(ap, now))
	assert.Equal(t, string(StatusCancelledByClient), ap.Status)
	assert.NotNil(t, ap.CancelledAt)
	assert.Empty(t, ap.CancelReason)
}

func TestCancelByClientPastAppointment(t *testing.T) {
	ap := confirmedAt(t, "2026-03-10", "10:00")

	err := CancelByClient(ap, timezone.At(ap.Date, "10:00"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentInPast))

	err = CancelByClient(ap, timezone.At(ap.Date, "11:00"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentInPast))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestCancelByClientTerminalStatus(t *testing.T) {
	for _, s := range []Status{StatusCancelledByClient, StatusCancelledByBarber, StatusCompleted, StatusNoShow} {
		ap := confirmedAt(t, "2026-03-10", "10:00")
		ap.Status = string(s)

		err := CancelByClient(ap, timezone.At(ap.Date, "08:00"))
		assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotCancellable), "status %s", s)
	}
}

func TestCancelByBarberRequiresReason(t *testing.T) {
	ap := confirmedAt(t, "2026-03-10", "10:00")
	now := timezone.At(ap.Date, "08:00")

	err := CancelByBarber(ap, "   ", now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeCancellationReasonMissing))

	require.NoError(t, CancelByBarber(ap, "imprevisto pessoal", now))
	assert.Equal(t, string(StatusCancelledByBarber), ap.Status)
	assert.Equal(t, "imprevisto pessoal", ap.CancelReason)
}

func TestMarkNoShowOnlyAfterStart(t *testing.T) {
	ap := confirmedAt(t, "2026-03-10", "10:00")

	err := MarkNoShow(ap, timezone.At(ap.Date, "09:59"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotStarted))

	now := timezone.At(ap.Date, "10:15")
	require.NoError(t, MarkNoShow(ap, now))
	assert.Equal(t, string(StatusNoShow), ap.Status)
	assert.NotNil(t, ap.NoShowAt)
}

func TestMarkNoShowTerminalStatus(t *testing.T) {
	ap := confirmedAt(t, "2026-03-10", "10:00")
	ap.Status = string(StatusCompleted)

	err := MarkNoShow(ap, timezone.At(ap.Date, "12:00"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotMarkable))
}

func TestCompleteFromConfirmedOnly(t *testing.T) {
	ap := confirmedAt(t, "2026-03-10", "10:00")
	now := timezone.At(ap.Date, "10:45")

	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)

	err := Complete(ap, now.Add(time.Minute))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotMarkable))
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	terminal := []Status{StatusCancelledByClient, StatusCancelledByBarber, StatusCompleted, StatusNoShow}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal())
		assert.Error(t, CanCancel(s))
		assert.Error(t, CanComplete(s))
		assert.Error(t, CanMarkNoShow(s))
	}
	assert.False(t, StatusConfirmed.IsTerminal())
}

func TestStartsAt(t *testing.T) {
	ap := confirmedAt(t, "2026-03-10", "14:30")
	at := StartsAt(ap)
	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, "2026-03-10", timezone.FormatDate(at))
}
