package appointment

import "github.com/agendai-app/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	// StatusConfirmed is the only live status: the only one that counts
	// toward conflict and uniqueness checks.
	StatusConfirmed Status = "CONFIRMED"

	StatusCancelledByClient Status = "CANCELLED_BY_CLIENT"
	StatusCancelledByBarber Status = "CANCELLED_BY_BARBER"
	StatusCompleted         Status = "COMPLETED"
	StatusNoShow            Status = "NO_SHOW"
)

func InitialStatus() Status {
	return StatusConfirmed
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s != StatusConfirmed
}

// ===============================
// Transition guards
// ===============================

func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotCancellable)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotMarkable)
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotMarkable)
	}
	return nil
}
