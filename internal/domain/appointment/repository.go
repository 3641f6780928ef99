package appointment

import (
	"context"
	"time"

	"github.com/agendai-app/booking-api/internal/models"
)

// Repository is everything the appointment use cases need from storage.
// Lookup methods for optional rows (shop hours, working hours, guests)
// return (nil, nil) when the row does not exist; only real storage failures
// come back as errors.
type Repository interface {
	// -------- Catalog --------
	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	BarberOffersService(
		ctx context.Context,
		barberID uint,
		serviceID uint,
	) (bool, error)

	// -------- Day constraints --------
	GetShopHours(
		ctx context.Context,
		weekday int,
	) (*models.ShopHours, error)

	ListShopClosures(
		ctx context.Context,
		date time.Time,
	) ([]models.ShopClosure, error)

	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListAbsences(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.BarberAbsence, error)

	ListConfirmedAppointments(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (create / state change) --------

	// CreateAppointment commits the row inside a transaction. A lost race
	// against a concurrent identical booking comes back as the
	// SLOT_OCCUPIED business error, never as a raw driver error.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForGuest(
		ctx context.Context,
		guestID uint,
	) ([]models.Appointment, error)

	// -------- Guest clients --------
	FindGuestByPhone(
		ctx context.Context,
		phone string,
	) (*models.GuestClient, error)

	FindGuestByToken(
		ctx context.Context,
		token string,
	) (*models.GuestClient, error)

	CreateGuest(
		ctx context.Context,
		guest *models.GuestClient,
	) error

	UpdateGuest(
		ctx context.Context,
		guest *models.GuestClient,
	) error
}
