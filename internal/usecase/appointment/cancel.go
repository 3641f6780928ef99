package appointment

import (
	"context"

	"github.com/agendai-app/booking-api/internal/audit"
	domain "github.com/agendai-app/booking-api/internal/domain/appointment"
	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/models"
	"github.com/agendai-app/booking-api/internal/notify"
	"github.com/agendai-app/booking-api/internal/timezone"
)

// ======================================================
// CLIENT CANCELLATION
// ======================================================

type CancelByClient struct {
	repo   domain.Repository
	clock  timezone.Clock
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCancelByClient(
	repo domain.Repository,
	clock timezone.Clock,
	auditDisp *audit.Dispatcher,
	notifyDisp *notify.Dispatcher,
) *CancelByClient {
	return &CancelByClient{repo: repo, clock: clock, audit: auditDisp, notify: notifyDisp}
}

func (uc *CancelByClient) Execute(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.ClientID == nil || *ap.ClientID != clientID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	if err := domain.CancelByClient(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &clientID,
		Action:   "appointment_cancelled_by_client",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	uc.notify.Dispatch(cancellationEvent(ap, ""))

	return ap, nil
}

// ======================================================
// BARBER CANCELLATION
// ======================================================

type CancelByBarber struct {
	repo   domain.Repository
	clock  timezone.Clock
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCancelByBarber(
	repo domain.Repository,
	clock timezone.Clock,
	auditDisp *audit.Dispatcher,
	notifyDisp *notify.Dispatcher,
) *CancelByBarber {
	return &CancelByBarber{repo: repo, clock: clock, audit: auditDisp, notify: notifyDisp}
}

func (uc *CancelByBarber) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.BarberID != barberID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	if err := domain.CancelByBarber(ap, reason, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &barberID,
		Action:   "appointment_cancelled_by_barber",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"reason": ap.CancelReason},
	})
	uc.notify.Dispatch(cancellationEvent(ap, ap.CancelReason))

	return ap, nil
}

// ======================================================
// GUEST CANCELLATION
// ======================================================

// CancelByGuest authenticates solely by possession of the access token,
// never by phone number, so reservations cannot be enumerated or hijacked.
type CancelByGuest struct {
	repo   domain.Repository
	clock  timezone.Clock
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCancelByGuest(
	repo domain.Repository,
	clock timezone.Clock,
	auditDisp *audit.Dispatcher,
	notifyDisp *notify.Dispatcher,
) *CancelByGuest {
	return &CancelByGuest{repo: repo, clock: clock, audit: auditDisp, notify: notifyDisp}
}

func (uc *CancelByGuest) Execute(
	ctx context.Context,
	accessToken string,
	appointmentID uint,
) (*models.Appointment, error) {

	guest, err := uc.repo.FindGuestByToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, httperr.ErrBusiness(httperr.CodeGuestNotFound)
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.GuestClientID == nil || *ap.GuestClientID != guest.ID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	if err := domain.CancelByClient(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled_by_guest",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	uc.notify.Dispatch(cancellationEvent(ap, ""))

	return ap, nil
}

func cancellationEvent(ap *models.Appointment, reason string) notify.Event {
	return notify.Event{
		Type:          notify.EventAppointmentCancelled,
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		Date:          timezone.FormatDateBR(ap.Date),
		StartTime:     ap.StartTime,
		Reason:        reason,
	}
}
