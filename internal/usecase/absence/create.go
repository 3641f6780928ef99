package absence

import (
	"context"
	"time"

	"github.com/agendai-app/booking-api/internal/audit"
	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/models"
	"github.com/agendai-app/booking-api/internal/schedule"
	"github.com/agendai-app/booking-api/internal/timezone"
)

// Repository is the slice of storage this use case needs.
type Repository interface {
	ListConfirmedAppointments(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.Appointment, error)

	CreateAbsence(
		ctx context.Context,
		absence *models.BarberAbsence,
	) error
}

type CreateAbsenceInput struct {
	BarberID  uint
	Date      string // YYYY-MM-DD
	StartTime string // optional; empty with EndTime empty = whole day
	EndTime   string
	Reason    string
}

type CreateAbsence struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewCreateAbsence(repo Repository, auditDisp *audit.Dispatcher) *CreateAbsence {
	return &CreateAbsence{repo: repo, audit: auditDisp}
}

// Execute registers the absence unless confirmed appointments already sit
// inside the requested window. Absences never silently orphan bookings;
// the barber has to cancel them first.
func (uc *CreateAbsence) Execute(
	ctx context.Context,
	in CreateAbsenceInput,
) (*models.BarberAbsence, error) {

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	if (in.StartTime == "") != (in.EndTime == "") {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	existing, err := uc.repo.ListConfirmedAppointments(ctx, in.BarberID, date)
	if err != nil {
		return nil, err
	}

	startTime, endTime := in.StartTime, in.EndTime

	fullDay := in.StartTime == ""
	if fullDay {
		if len(existing) > 0 {
			return nil, httperr.ErrBusiness(httperr.CodeAbsenceConflict)
		}
	} else {
		startMin, err := schedule.ParseHHMM(in.StartTime)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
		}
		endMin, err := schedule.ParseHHMM(in.EndTime)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
		}
		startTime, endTime = schedule.FromMinutes(startMin), schedule.FromMinutes(endMin)

		window := schedule.Interval{Start: startMin, End: endMin}
		if window.Empty() {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
		}
		for _, ap := range existing {
			booked := schedule.Interval{
				Start: schedule.ToMinutes(ap.StartTime),
				End:   schedule.ToMinutes(ap.EndTime),
			}
			if window.Overlaps(booked) {
				return nil, httperr.ErrBusiness(httperr.CodeAbsenceConflict)
			}
		}
	}

	absence := &models.BarberAbsence{
		BarberID:  in.BarberID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    in.Reason,
	}
	if err := uc.repo.CreateAbsence(ctx, absence); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.BarberID,
		Action:   "absence_created",
		Entity:   "barber_absence",
		EntityID: &absence.ID,
	})

	return absence, nil
}
