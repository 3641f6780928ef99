package guest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendai-app/booking-api/internal/httperr"
	"github.com/agendai-app/booking-api/internal/models"
)

type fakeRepo struct {
	guests  map[uint]*models.GuestClient
	updated bool
}

func (f *fakeRepo) GetGuestByID(_ context.Context, guestID uint) (*models.GuestClient, error) {
	return f.guests[guestID], nil
}

func (f *fakeRepo) UpdateGuest(_ context.Context, _ *models.GuestClient) error {
	f.updated = true
	return nil
}

func TestAnonymize(t *testing.T) {
	token := "tok-abc"
	repo := &fakeRepo{guests: map[uint]*models.GuestClient{
		3: {ID: 3, FullName: "Marcos", Phone: "11987654321", AccessToken: &token},
	}}

	uc := NewAnonymize(repo, nil)
	g, err := uc.Execute(context.Background(), 1, 3)
	require.NoError(t, err)

	assert.Equal(t, "DELETED_3", g.FullName)
	assert.Equal(t, "DELETED_3", g.Phone)
	assert.Nil(t, g.AccessToken)
	assert.True(t, repo.updated)
}

func TestAnonymizeUnknownGuest(t *testing.T) {
	repo := &fakeRepo{guests: map[uint]*models.GuestClient{}}

	uc := NewAnonymize(repo, nil)
	_, err := uc.Execute(context.Background(), 1, 99)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeGuestNotFound))
	assert.False(t, repo.updated)
}
