package appointment

import (
	"context"
	"sync"
	"time"

	domain "github.com/agendai-app/booking-api/internal/domain/appointment"
	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/models"
	"github.com/agendai-app/booking-api/internal/timezone"
)

// fakeRepo is an in-memory Repository. CreateAppointment holds a mutex
// across the occupancy check and the insert, mirroring the row-lock plus
// unique-index arbitration the real storage layer does: of two concurrent
// identical bookings exactly one wins.
type fakeRepo struct {
	mu sync.Mutex

	barbers  map[uint]*models.User
	services map[uint]*models.Service
	offers   map[[2]uint]bool

	shopHours map[int]*models.ShopHours
	closures  []models.ShopClosure
	working   map[[2]uint]*models.WorkingHours // barberID, weekday
	absences  []models.BarberAbsence

	appointments []*models.Appointment
	guests       []*models.GuestClient

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:   map[uint]*models.User{},
		services:  map[uint]*models.Service{},
		offers:    map[[2]uint]bool{},
		shopHours: map[int]*models.ShopHours{},
		working:   map[[2]uint]*models.WorkingHours{},
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeRepo) GetBarber(_ context.Context, barberID uint) (*models.User, error) {
	return f.barbers[barberID], nil
}

func (f *fakeRepo) GetService(_ context.Context, serviceID uint) (*models.Service, error) {
	return f.services[serviceID], nil
}

func (f *fakeRepo) BarberOffersService(_ context.Context, barberID, serviceID uint) (bool, error) {
	return f.offers[[2]uint{barberID, serviceID}], nil
}

func (f *fakeRepo) GetShopHours(_ context.Context, weekday int) (*models.ShopHours, error) {
	return f.shopHours[weekday], nil
}

func (f *fakeRepo) ListShopClosures(_ context.Context, date time.Time) ([]models.ShopClosure, error) {
	var out []models.ShopClosure
	for _, cl := range f.closures {
		if cl.Date.Equal(date) {
			out = append(out, cl)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, barberID uint, weekday int) (*models.WorkingHours, error) {
	return f.working[[2]uint{barberID, uint(weekday)}], nil
}

func (f *fakeRepo) ListAbsences(_ context.Context, barberID uint, date time.Time) ([]models.BarberAbsence, error) {
	var out []models.BarberAbsence
	for _, ab := range f.absences {
		if ab.BarberID == barberID && ab.Date.Equal(date) {
			out = append(out, ab)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListConfirmedAppointments(_ context.Context, barberID uint, date time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date.Equal(date) &&
			ap.Status == string(domain.StatusConfirmed) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, other := range f.appointments {
		if other.BarberID == ap.BarberID && other.Date.Equal(ap.Date) &&
			other.StartTime == ap.StartTime &&
			other.Status == string(domain.StatusConfirmed) {
			return httperr.ErrBusiness(httperr.CodeSlotOccupied)
		}
	}
	ap.ID = f.id()
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, appointmentID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ap := range f.appointments {
		if ap.ID == appointmentID {
			return ap, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	return nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, barberID uint, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date.Equal(date) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && !ap.Date.Before(start) && ap.Date.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID != nil && *ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForGuest(_ context.Context, guestID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.GuestClientID != nil && *ap.GuestClientID == guestID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindGuestByPhone(_ context.Context, phone string) (*models.GuestClient, error) {
	for _, g := range f.guests {
		if g.Phone == phone {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindGuestByToken(_ context.Context, token string) (*models.GuestClient, error) {
	for _, g := range f.guests {
		if g.AccessToken != nil && *g.AccessToken == token {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CreateGuest(_ context.Context, guest *models.GuestClient) error {
	guest.ID = f.id()
	f.guests = append(f.guests, guest)
	return nil
}

func (f *fakeRepo) UpdateGuest(_ context.Context, guest *models.GuestClient) error {
	return nil
}

// ---- shared fixtures ----

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// clockAt builds a clock frozen at the given Sao Paulo local time.
func clockAt(date string, hm string) fixedClock {
	day, _ := timezone.ParseDate(date)
	return fixedClock{t: timezone.At(day, hm)}
}

const (
	tuesday   = "2026-09-08" // a Tuesday
	wednesday = "2026-09-09"
)

// seedShop makes the shop and one barber fully open on Tuesdays 09:00-18:00
// with a 12:00-13:00 barber break, offering a 30-minute service (id 1) and
// a 90-minute one (id 2).
func seedShop(f *fakeRepo) {
	f.barbers[1] = &models.User{ID: 1, Name: "Rafael", Role: models.RoleBarber, Active: true}
	f.services[1] = &models.Service{ID: 1, Name: "Corte", DurationMin: 30, Price: 50}
	f.services[2] = &models.Service{ID: 2, Name: "Corte + Barba", DurationMin: 90, Price: 110}
	f.offers[[2]uint{1, 1}] = true
	f.offers[[2]uint{1, 2}] = true

	f.shopHours[2] = &models.ShopHours{Weekday: 2, IsOpen: true, StartTime: "09:00", EndTime: "18:00"}
	f.working[[2]uint{1, 2}] = &models.WorkingHours{
		BarberID: 1, Weekday: 2,
		StartTime: "09:00", EndTime: "18:00",
		BreakStart: "12:00", BreakEnd: "13:00",
	}
}

func mustDate(t string) time.Time {
	d, err := timezone.ParseDate(t)
	if err != nil {
		panic(err)
	}
	return d
}
