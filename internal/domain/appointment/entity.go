package appointment

import (
	"strings"
	"time"

	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/models"
	"github.com/agendai-app/booking-api/internal/timezone"
)

// ===============================
// Domain Actions
// ===============================

// StartsAt resolves the concrete business-time instant the appointment
// begins, from the stored calendar date plus the "HH:mm" start string.
func StartsAt(ap *models.Appointment) time.Time {
	return timezone.At(ap.Date, ap.StartTime)
}

// CancelByClient transitions CONFIRMED → CANCELLED_BY_CLIENT while the start
// is still strictly in the future. No reason is required.
func CancelByClient(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	if !StartsAt(ap).After(now) {
		return httperr.ErrBusiness(httperr.CodeAppointmentInPast)
	}

	ap.Status = string(StatusCancelledByClient)
	ap.CancelledAt = &now
	return nil
}

// CancelByBarber transitions CONFIRMED → CANCELLED_BY_BARBER. Barber-side
// cancellations always record a reason.
func CancelByBarber(ap *models.Appointment, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return httperr.ErrBusiness(httperr.CodeCancellationReasonMissing)
	}
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	if !StartsAt(ap).After(now) {
		return httperr.ErrBusiness(httperr.CodeAppointmentInPast)
	}

	ap.Status = string(StatusCancelledByBarber)
	ap.CancelReason = strings.TrimSpace(reason)
	ap.CancelledAt = &now
	return nil
}

// MarkNoShow transitions CONFIRMED → NO_SHOW once the scheduled start has
// passed.
func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}
	if StartsAt(ap).After(now) {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotStarted)
	}

	ap.Status = string(StatusNoShow)
	ap.NoShowAt = &now
	return nil
}

// Complete transitions CONFIRMED → COMPLETED.
func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
