package appointment

import (
	"context"

	domain "github.com/agendai-app/booking-api/internal/domain/appointment"
	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/schedule"
	"github.com/agendai-app/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetAvailability(repo domain.Repository, clock timezone.Clock) *GetAvailability {
	return &GetAvailability{repo: repo, clock: clock}
}

// Execute computes the slot grid for one barber, service and date. The
// result is a pure function of current storage state plus "now": calling it
// twice without intervening writes returns identical slots.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	offers, err := uc.repo.BarberOffersService(ctx, in.BarberID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !offers {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotOffered)
	}

	weekday := timezone.Weekday(in.Date)

	shopHours, err := uc.repo.GetShopHours(ctx, weekday)
	if err != nil {
		return nil, err
	}
	closures, err := uc.repo.ListShopClosures(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, weekday)
	if err != nil {
		return nil, err
	}
	absences, err := uc.repo.ListAbsences(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	open := schedule.OpenIntervals(shopHours, closures, wh, absences)
	if len(open) == 0 {
		return []domain.TimeSlot{}, nil
	}

	starts := schedule.Candidates(open, svc.DurationMin, schedule.SlotStepMinutes)

	// Past slots are dropped for the current day only. A 09:00 slot
	// tomorrow stays valid at 14:00 today.
	now := uc.clock.Now()
	if timezone.FormatDate(in.Date) == timezone.DateOf(now) {
		starts = schedule.FilterPast(starts, timezone.MinutesOf(now))
	}

	existing, err := uc.repo.ListConfirmedAppointments(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	busy := make([]schedule.Interval, 0, len(existing))
	for _, ap := range existing {
		busy = append(busy, schedule.Interval{
			Start: schedule.ToMinutes(ap.StartTime),
			End:   schedule.ToMinutes(ap.EndTime),
		})
	}

	slots := make([]domain.TimeSlot, 0, len(starts))
	for _, t := range starts {
		slots = append(slots, domain.TimeSlot{
			Time:      schedule.FromMinutes(t),
			End:       schedule.FromMinutes(t + svc.DurationMin),
			Available: !schedule.Conflicts(t, svc.DurationMin, busy),
		})
	}

	return slots, nil
}
