package guest

import (
	"context"
	"fmt"

	"github.com/agendai-app/booking-api/internal/audit"
	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/models"
)

type Repository interface {
	GetGuestByID(ctx context.Context, guestID uint) (*models.GuestClient, error)
	UpdateGuest(ctx context.Context, guest *models.GuestClient) error
}

// Anonymize implements the LGPD erasure path for guest clients: name and
// phone are overwritten with a DELETED_<id> sentinel and the access token is
// revoked. The row stays so appointment history keeps its references, but it
// holds no PII and the old token stops resolving.
type Anonymize struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewAnonymize(repo Repository, auditDisp *audit.Dispatcher) *Anonymize {
	return &Anonymize{repo: repo, audit: auditDisp}
}

func (uc *Anonymize) Execute(
	ctx context.Context,
	actorID uint,
	guestID uint,
) (*models.GuestClient, error) {

	g, err := uc.repo.GetGuestByID(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, httperr.ErrBusiness(httperr.CodeGuestNotFound)
	}

	sentinel := fmt.Sprintf("DELETED_%d", g.ID)
	g.FullName = sentinel
	g.Phone = sentinel
	g.AccessToken = nil

	if err := uc.repo.UpdateGuest(ctx, g); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "guest_anonymized",
		Entity:   "guest_client",
		EntityID: &g.ID,
	})

	return g, nil
}
