package appointment

import (
	"context"

	domain "github.com/agendai-app/booking-api/internal/domain/appointment"
	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/models"
)

// GuestLookup resolves a guest's reservations from their access token.
type GuestLookup struct {
	repo domain.Repository
}

func NewGuestLookup(repo domain.Repository) *GuestLookup {
	return &GuestLookup{repo: repo}
}

func (uc *GuestLookup) Execute(
	ctx context.Context,
	accessToken string,
) (*models.GuestClient, []models.Appointment, error) {

	guest, err := uc.repo.FindGuestByToken(ctx, accessToken)
	if err != nil {
		return nil, nil, err
	}
	if guest == nil {
		return nil, nil, httperr.ErrBusiness(httperr.CodeGuestNotFound)
	}

	appointments, err := uc.repo.ListAppointmentsForGuest(ctx, guest.ID)
	if err != nil {
		return nil, nil, err
	}
	return guest, appointments, nil
}
