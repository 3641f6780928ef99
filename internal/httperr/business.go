package httperr

import "errors"

// Error codes raised by the booking core. The boundary layer maps each one
// to a transport status; none of them is a crash.
const (
	CodeSlotInPast        = "SLOT_IN_PAST"
	CodeShopClosed        = "SHOP_CLOSED"
	CodeBarberUnavailable = "BARBER_UNAVAILABLE"
	CodeSlotUnavailable   = "SLOT_UNAVAILABLE"
	CodeSlotOccupied      = "SLOT_OCCUPIED"

	CodeAppointmentNotFound       = "APPOINTMENT_NOT_FOUND"
	CodeAppointmentInPast         = "APPOINTMENT_IN_PAST"
	CodeAppointmentNotCancellable = "APPOINTMENT_NOT_CANCELLABLE"
	CodeAppointmentNotMarkable    = "APPOINTMENT_NOT_MARKABLE"
	CodeAppointmentNotStarted     = "APPOINTMENT_NOT_STARTED"
	CodeCancellationReasonMissing = "CANCELLATION_REASON_REQUIRED"

	CodeAbsenceConflict = "ABSENCE_CONFLICT"

	CodeUnauthorized  = "UNAUTHORIZED"
	CodeGuestNotFound = "GUEST_NOT_FOUND"

	// Surrounding catalog/request errors, outside the booking core proper.
	CodeBarberNotFound    = "BARBER_NOT_FOUND"
	CodeServiceNotFound   = "SERVICE_NOT_FOUND"
	CodeServiceNotOffered = "SERVICE_NOT_OFFERED"
	CodeInvalidDateOrTime = "INVALID_DATE_OR_TIME"
	CodeInvalidPhone      = "INVALID_PHONE"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" when err is
// something else (an infrastructure failure the caller must not expose).
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
