package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agendai-app/booking-api/internal/domain/appointment"
	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/models"
	"github.com/agendai-app/booking-api/internal/schedule"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.User, error) {

	var barber models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND role = ? AND active = true", barberID, models.RoleBarber).
		First(&barber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", serviceID).
		First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) BarberOffersService(
	ctx context.Context,
	barberID uint,
	serviceID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BarberService{}).
		Where("barber_id = ? AND service_id = ?", barberID, serviceID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Day constraints
// --------------------------------------------------

func (r *AppointmentGormRepository) GetShopHours(
	ctx context.Context,
	weekday int,
) (*models.ShopHours, error) {

	var sh models.ShopHours
	err := r.db.WithContext(ctx).
		Where("weekday = ?", weekday).
		First(&sh).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

func (r *AppointmentGormRepository) ListShopClosures(
	ctx context.Context,
	date time.Time,
) ([]models.ShopClosure, error) {

	var closures []models.ShopClosure
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&closures).Error; err != nil {
		return nil, err
	}
	return closures, nil
}

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&wh).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wh, nil
}

func (r *AppointmentGormRepository) ListAbsences(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.BarberAbsence, error) {

	var absences []models.BarberAbsence
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("start_time ASC").
		Find(&absences).Error; err != nil {
		return nil, err
	}
	return absences, nil
}

func (r *AppointmentGormRepository) ListConfirmedAppointments(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "barber_id", "date", "start_time", "end_time", "status").
		Where(
			"barber_id = ? AND date = ? AND status = ?",
			barberID, date, string(domain.StatusConfirmed),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment (create / state change)
// --------------------------------------------------

// CreateAppointment runs the locked pre-check plus insert in one
// transaction. The partial unique index on (barber_id, date, start_time)
// for CONFIRMED rows is what actually decides a race; a 23505 from the
// insert is remapped to SLOT_OCCUPIED here so no driver error escapes.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	startMin := schedule.ToMinutes(ap.StartTime)
	endMin := schedule.ToMinutes(ap.EndTime)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "start_time", "end_time").
			Where(
				"barber_id = ? AND date = ? AND status = ?",
				ap.BarberID, ap.Date, string(domain.StatusConfirmed),
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		for _, other := range conflicts {
			oStart := schedule.ToMinutes(other.StartTime)
			oEnd := schedule.ToMinutes(other.EndTime)
			if startMin < oEnd && oStart < endMin {
				return httperr.ErrBusiness(httperr.CodeSlotOccupied)
			}
		}

		return tx.Create(ap).Error
	})

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotOccupied)
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("GuestClient").
		Preload("Service").
		First(&ap, appointmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("GuestClient").
		Preload("Service").
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("GuestClient").
		Preload("Service").
		Where(
			"barber_id = ? AND date >= ? AND date < ?",
			barberID, start, end,
		).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("date DESC, start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForGuest(
	ctx context.Context,
	guestID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("guest_client_id = ?", guestID).
		Order("date DESC, start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Guest clients
// --------------------------------------------------

func (r *AppointmentGormRepository) FindGuestByPhone(
	ctx context.Context,
	phone string,
) (*models.GuestClient, error) {

	var guest models.GuestClient
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&guest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *AppointmentGormRepository) FindGuestByToken(
	ctx context.Context,
	token string,
) (*models.GuestClient, error) {

	if token == "" {
		return nil, nil
	}

	var guest models.GuestClient
	err := r.db.WithContext(ctx).
		Where("access_token = ?", token).
		First(&guest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *AppointmentGormRepository) GetGuestByID(
	ctx context.Context,
	guestID uint,
) (*models.GuestClient, error) {

	var guest models.GuestClient
	err := r.db.WithContext(ctx).First(&guest, guestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *AppointmentGormRepository) CreateGuest(
	ctx context.Context,
	guest *models.GuestClient,
) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *AppointmentGormRepository) UpdateGuest(
	ctx context.Context,
	guest *models.GuestClient,
) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

// --------------------------------------------------
// Absences
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAbsence(
	ctx context.Context,
	absence *models.BarberAbsence,
) error {
	return r.db.WithContext(ctx).Create(absence).Error
}

func (r *AppointmentGormRepository) DeleteAbsence(
	ctx context.Context,
	barberID uint,
	absenceID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", absenceID, barberID).
		Delete(&models.BarberAbsence{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) ListAbsencesForBarber(
	ctx context.Context,
	barberID uint,
	from time.Time,
) ([]models.BarberAbsence, error) {

	var absences []models.BarberAbsence
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date >= ?", barberID, from).
		Order("date ASC, start_time ASC").
		Find(&absences).Error; err != nil {
		return nil, err
	}
	return absences, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
