package appointment

import (
	"context"
	"time"

	domain "github.com/agendai-app/booking-api/internal/domain/appointment"
	"github.com/agendai-app/booking-api/internal/dto"
	"github.com/agendai-app/booking-api/internal/models"
	"github.com/agendai-app/booking-api/internal/timezone"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ByDate(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	return toListDTOs(appointments), nil
}

func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	barberID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timezone.Location()).UTC()
	end := start.In(timezone.Location()).AddDate(0, 1, 0).UTC()

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}
	return toListDTOs(appointments), nil
}

// MonthlySummary aggregates one barber's month for the reports screen.
// Revenue counts completed appointments at the service's current price.
func (uc *ListAppointments) MonthlySummary(
	ctx context.Context,
	barberID uint,
	year int,
	month int,
) (*dto.MonthlySummaryDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timezone.Location()).UTC()
	end := start.In(timezone.Location()).AddDate(0, 1, 0).UTC()

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	out := &dto.MonthlySummaryDTO{Year: year, Month: month}
	for _, ap := range appointments {
		switch domain.Status(ap.Status) {
		case domain.StatusCompleted:
			out.Completed++
			out.Revenue += ap.Service.Price
		case domain.StatusCancelledByClient, domain.StatusCancelledByBarber:
			out.Cancelled++
		case domain.StatusNoShow:
			out.NoShows++
		case domain.StatusConfirmed:
			out.Upcoming++
		}
	}
	return out, nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        timezone.FormatDate(ap.Date),
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  clientName(&ap),
			ServiceName: ap.Service.Name,
			Price:       ap.Service.Price,
		})
	}
	return out
}

func clientName(ap *models.Appointment) string {
	if ap.Client != nil {
		return ap.Client.Name
	}
	if ap.GuestClient != nil {
		return ap.GuestClient.FullName
	}
	return ""
}
