package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/agendai-app/booking-api/internal/audit"
	domain "github.com/agendai-app/booking-api/internal/domain/appointment"
	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/models"
	"github.com/agendai-app/booking-api/internal/notify"
	"github.com/agendai-app/booking-api/internal/schedule"
	"github.com/agendai-app/booking-api/internal/timezone"
	"github.com/agendai-app/booking-api/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

// CreateAppointmentInput books one slot. Exactly one identity must be set:
// ClientID for a registered client, or GuestName+GuestPhone for a guest
// (also the barber-on-behalf path). The end time is always derived
// server-side from the service duration.
type CreateAppointmentInput struct {
	BarberID  uint
	ServiceID uint

	Date      string // YYYY-MM-DD
	StartTime string // HH:mm

	ClientID   *uint
	GuestName  string
	GuestPhone string
}

type CreateAppointmentOutput struct {
	Appointment *models.Appointment

	// GuestAccessToken is set on the guest path only: a fresh token the
	// guest uses for later lookup and cancellation.
	GuestAccessToken string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	clock  timezone.Clock
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	clock timezone.Clock,
	auditDisp *audit.Dispatcher,
	notifyDisp *notify.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		clock:  clock,
		audit:  auditDisp,
		notify: notifyDisp,
	}
}

// Execute re-validates the slot against current data and commits. The
// availability checks here are the friendly layer; the storage constraint
// inside repo.CreateAppointment is what actually decides a race.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*CreateAppointmentOutput, error) {

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

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	startMin, err := schedule.ParseHHMM(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}
	startTime := schedule.FromMinutes(startMin)
	endTime := schedule.FromMinutes(startMin + svc.DurationMin)

	// ---- shop open that day? ----
	weekday := timezone.Weekday(date)

	shopHours, err := uc.repo.GetShopHours(ctx, weekday)
	if err != nil {
		return nil, err
	}
	closures, err := uc.repo.ListShopClosures(ctx, date)
	if err != nil {
		return nil, err
	}
	if shopClosed(shopHours, closures) {
		return nil, httperr.ErrBusiness(httperr.CodeShopClosed)
	}
	for _, cl := range closures {
		block := schedule.Interval{
			Start: schedule.ToMinutes(cl.StartTime),
			End:   schedule.ToMinutes(cl.EndTime),
		}
		if schedule.Conflicts(startMin, svc.DurationMin, []schedule.Interval{block}) {
			return nil, httperr.ErrBusiness(httperr.CodeShopClosed)
		}
	}

	// ---- barber working that day? ----
	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, weekday)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
	}

	absences, err := uc.repo.ListAbsences(ctx, in.BarberID, date)
	if err != nil {
		return nil, err
	}

	open := schedule.OpenIntervals(shopHours, closures, wh, absences)
	if !schedule.Contains(open, startMin, svc.DurationMin) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	// ---- not in the past ----
	now := uc.clock.Now()
	today := timezone.DateOf(now)
	if in.Date < today || (in.Date == today && startMin <= timezone.MinutesOf(now)) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotInPast)
	}

	// ---- advisory occupancy check ----
	existing, err := uc.repo.ListConfirmedAppointments(ctx, in.BarberID, date)
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
	if schedule.Conflicts(startMin, svc.DurationMin, busy) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotOccupied)
	}

	// ---- identity ----
	ap := &models.Appointment{
		BarberID:  in.BarberID,
		ServiceID: svc.ID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    string(domain.InitialStatus()),
	}

	out := &CreateAppointmentOutput{}

	clientName := ""
	clientPhone := ""

	if in.ClientID != nil {
		ap.ClientID = in.ClientID
	} else {
		guest, token, err := uc.resolveGuest(ctx, in.GuestName, in.GuestPhone)
		if err != nil {
			return nil, err
		}
		ap.GuestClientID = &guest.ID
		out.GuestAccessToken = token
		clientName = guest.FullName
		clientPhone = guest.Phone
	}

	// ---- commit: the unique constraint decides any remaining race ----
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotOccupied) {
			uc.audit.Dispatch(audit.Event{
				Action:   "appointment_conflict",
				Entity:   "appointment",
				Metadata: map[string]any{"barber_id": in.BarberID, "date": in.Date, "start": startTime},
			})
		}
		return nil, err
	}

	out.Appointment = ap

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	uc.notify.Dispatch(notify.Event{
		Type:          notify.EventAppointmentCreated,
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		ClientName:    clientName,
		ClientPhone:   clientPhone,
		ServiceName:   svc.Name,
		Date:          timezone.FormatDateBR(date),
		StartTime:     ap.StartTime,
	})

	return out, nil
}

// resolveGuest finds or creates the guest by normalized phone and issues a
// fresh access token. Tokens rotate on every booking; only the latest one
// opens the guest's reservations.
func (uc *CreateAppointment) resolveGuest(
	ctx context.Context,
	name string,
	phone string,
) (*models.GuestClient, string, error) {

	name = strings.TrimSpace(name)
	if !validators.IsValidPhone(phone) {
		return nil, "", httperr.ErrBusiness(httperr.CodeInvalidPhone)
	}
	normalized := validators.NormalizePhone(phone)

	guest, err := uc.repo.FindGuestByPhone(ctx, normalized)
	if err != nil {
		return nil, "", err
	}

	token := uuid.NewString()

	if guest == nil {
		guest = &models.GuestClient{
			FullName:    name,
			Phone:       normalized,
			AccessToken: &token,
		}
		if err := uc.repo.CreateGuest(ctx, guest); err != nil {
			return nil, "", err
		}
		return guest, token, nil
	}

	if name != "" {
		guest.FullName = name
	}
	guest.AccessToken = &token
	if err := uc.repo.UpdateGuest(ctx, guest); err != nil {
		return nil, "", err
	}
	return guest, token, nil
}

func shopClosed(shop *models.ShopHours, closures []models.ShopClosure) bool {
	if shop == nil || !shop.IsOpen {
		return true
	}
	for _, cl := range closures {
		if cl.StartTime == "" || cl.EndTime == "" {
			return true
		}
	}
	return false
}
