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

type MarkNoShow struct {
	repo   domain.Repository
	clock  timezone.Clock
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	clock timezone.Clock,
	auditDisp *audit.Dispatcher,
	notifyDisp *notify.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{repo: repo, clock: clock, audit: auditDisp, notify: notifyDisp}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.BarberID != barberID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	if err := domain.MarkNoShow(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &barberID,
		Action:   "appointment_no_show",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	uc.notify.Dispatch(notify.Event{
		Type:          notify.EventAppointmentNoShow,
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		Date:          timezone.FormatDateBR(ap.Date),
		StartTime:     ap.StartTime,
	})

	return ap, nil
}
