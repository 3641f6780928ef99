package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendai-app/booking-api/internal/domain/appointment"
	"github.com/agendai-app/booking-api/internal/models"
)

func TestListAppointmentsByDate(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	corte := *repo.services[1]
	client := &models.User{ID: 7, Name: "Ana"}

	repo.appointments = append(repo.appointments,
		&models.Appointment{
			ID: 1, BarberID: 1, ServiceID: 1, Service: corte,
			ClientID: uintPtr(7), Client: client,
			Date: mustDate(tuesday), StartTime: "09:00", EndTime: "09:30",
			Status: string(domain.StatusConfirmed),
		},
		&models.Appointment{
			ID: 2, BarberID: 1, ServiceID: 1, Service: corte,
			GuestClientID: uintPtr(3),
			GuestClient:   &models.GuestClient{ID: 3, FullName: "Marcos"},
			Date:          mustDate(tuesday), StartTime: "10:00", EndTime: "10:30",
			Status: string(domain.StatusConfirmed),
		},
		&models.Appointment{
			ID: 3, BarberID: 1, ServiceID: 1, Service: corte,
			ClientID: uintPtr(7), Client: client,
			Date: mustDate(wednesday), StartTime: "09:00", EndTime: "09:30",
			Status: string(domain.StatusConfirmed),
		},
	)

	uc := NewListAppointments(repo)
	out, err := uc.ByDate(context.Background(), 1, mustDate(tuesday))
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "Ana", out[0].ClientName)
	assert.Equal(t, "Marcos", out[1].ClientName)
	assert.Equal(t, "Corte", out[0].ServiceName)
	assert.Equal(t, tuesday, out[0].Date)
}

func TestMonthlySummary(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	corte := *repo.services[1] // 50.00
	combo := *repo.services[2] // 110.00
	day := mustDate("2026-09-10")

	add := func(status domain.Status, svc models.Service) {
		repo.appointments = append(repo.appointments, &models.Appointment{
			BarberID: 1, ServiceID: svc.ID, Service: svc,
			Date: day, StartTime: "09:00", EndTime: "09:30",
			Status: string(status),
		})
	}
	add(domain.StatusCompleted, corte)
	add(domain.StatusCompleted, combo)
	add(domain.StatusCancelledByClient, corte)
	add(domain.StatusCancelledByBarber, corte)
	add(domain.StatusNoShow, corte)
	add(domain.StatusConfirmed, corte)

	// outside the month, must not count
	repo.appointments = append(repo.appointments, &models.Appointment{
		BarberID: 1, ServiceID: 1, Service: corte,
		Date: mustDate("2026-10-01"), StartTime: "09:00", EndTime: "09:30",
		Status: string(domain.StatusCompleted),
	})

	uc := NewListAppointments(repo)
	sum, err := uc.MonthlySummary(context.Background(), 1, 2026, 9)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Completed)
	assert.Equal(t, 2, sum.Cancelled)
	assert.Equal(t, 1, sum.NoShows)
	assert.Equal(t, 1, sum.Upcoming)
	assert.InDelta(t, 160.0, sum.Revenue, 0.001)
}
