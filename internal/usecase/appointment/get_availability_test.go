package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendai-app/booking-api/internal/domain/appointment"
	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/models"
)

func slotTimes(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func availableTimes(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Time)
		}
	}
	return out
}

func TestGetAvailabilityFullOpenDay(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)

	uc := NewGetAvailability(repo, clockAt("2026-09-07", "08:00"))
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: mustDate(tuesday),
	})
	require.NoError(t, err)

	times := slotTimes(slots)
	assert.Len(t, times, 16)
	assert.Equal(t, "09:00", times[0])
	assert.Equal(t, "17:30", times[len(times)-1])
	assert.NotContains(t, times, "12:00")
	assert.NotContains(t, times, "12:30")
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.Time)
	}
}

func TestGetAvailabilityMarksBookedSlots(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.appointments = append(repo.appointments, &models.Appointment{
		ID: 1, BarberID: 1, ServiceID: 1, Date: mustDate(tuesday),
		StartTime: "10:00", EndTime: "10:30",
		Status: string(domain.StatusConfirmed),
	})

	uc := NewGetAvailability(repo, clockAt("2026-09-07", "08:00"))
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: mustDate(tuesday),
	})
	require.NoError(t, err)

	avail := availableTimes(slots)
	assert.NotContains(t, avail, "10:00")
	assert.Contains(t, avail, "09:30")
	assert.Contains(t, avail, "10:30")

	// the slot still appears in the grid, flagged unavailable
	assert.Contains(t, slotTimes(slots), "10:00")
}

func TestGetAvailabilityCancelledBookingFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.appointments = append(repo.appointments, &models.Appointment{
		ID: 1, BarberID: 1, ServiceID: 1, Date: mustDate(tuesday),
		StartTime: "10:00", EndTime: "10:30",
		Status: string(domain.StatusCancelledByClient),
	})

	uc := NewGetAvailability(repo, clockAt("2026-09-07", "08:00"))
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: mustDate(tuesday),
	})
	require.NoError(t, err)
	assert.Contains(t, availableTimes(slots), "10:00")
}

func TestGetAvailabilityAbsenceRemovesWindow(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.absences = append(repo.absences, models.BarberAbsence{
		BarberID: 1, Date: mustDate(tuesday),
		StartTime: "14:00", EndTime: "15:00",
	})

	uc := NewGetAvailability(repo, clockAt("2026-09-07", "08:00"))
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: mustDate(tuesday),
	})
	require.NoError(t, err)

	times := slotTimes(slots)
	assert.NotContains(t, times, "14:00")
	assert.NotContains(t, times, "14:30")
	assert.Contains(t, times, "13:30")
	assert.Contains(t, times, "15:00")
}

func TestGetAvailabilityLongServiceNeverSpansBreak(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)

	uc := NewGetAvailability(repo, clockAt("2026-09-07", "08:00"))
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 2, Date: mustDate(tuesday), // 90 min
	})
	require.NoError(t, err)

	times := slotTimes(slots)
	// 10:30 ends exactly at the break; 11:00 would run into it
	assert.Contains(t, times, "10:30")
	assert.NotContains(t, times, "11:00")
	assert.Contains(t, times, "13:00")
	// last start that still fits before 18:00
	assert.Equal(t, "16:30", times[len(times)-1])
}

func TestGetAvailabilityTodayDropsPastSlots(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)

	uc := NewGetAvailability(repo, clockAt(tuesday, "12:10"))
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: mustDate(tuesday),
	})
	require.NoError(t, err)

	times := slotTimes(slots)
	assert.Equal(t, "13:00", times[0])
	assert.NotContains(t, times, "11:30")
}

func TestGetAvailabilityFutureDayKeepsMorning(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.shopHours[3] = &models.ShopHours{Weekday: 3, IsOpen: true, StartTime: "09:00", EndTime: "18:00"}
	repo.working[[2]uint{1, 3}] = &models.WorkingHours{
		BarberID: 1, Weekday: 3, StartTime: "09:00", EndTime: "18:00",
	}

	// 14:00 on Tuesday must not hide Wednesday's 09:00
	uc := NewGetAvailability(repo, clockAt(tuesday, "14:00"))
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: mustDate(wednesday),
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", slotTimes(slots)[0])
}

func TestGetAvailabilityClosedDayIsEmpty(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)

	uc := NewGetAvailability(repo, clockAt("2026-09-07", "08:00"))
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: mustDate(wednesday),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailabilityUnknownBarberAndService(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	uc := NewGetAvailability(repo, clockAt("2026-09-07", "08:00"))

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 99, ServiceID: 1, Date: mustDate(tuesday),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBarberNotFound))

	_, err = uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 99, Date: mustDate(tuesday),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}

func TestGetAvailabilityServiceNotOffered(t *testing.T) {
	repo := newFakeRepo()
	seedShop(repo)
	repo.services[3] = &models.Service{ID: 3, Name: "Luzes", DurationMin: 60}

	uc := NewGetAvailability(repo, clockAt("2026-09-07", "08:00"))
	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 3, Date: mustDate(tuesday),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotOffered))
}
