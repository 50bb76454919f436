package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebarbier/salon-api/internal/domain/schedule"
	"github.com/lebarbier/salon-api/internal/httperr"
)

func newCancelUC(repo *fakeRepo, cache SlotCache) *CancelAppointment {
	uc := NewCancelAppointment(repo, cache, nil)
	uc.now = fixedNow()
	return uc
}

func bookOne(t *testing.T, repo *fakeRepo, userID uint) uint {
	t.Helper()

	create := newCreateUC(repo, nil)
	in := validInput()
	in.UserID = userID

	ap, err := create.Execute(context.Background(), in)
	require.NoError(t, err)
	return ap.ID
}

func TestCancelByOwner(t *testing.T) {
	repo := newFakeRepo()
	id := bookOne(t, repo, 10)

	uc := newCancelUC(repo, nil)
	ap, err := uc.Execute(context.Background(), id, 10, false)
	require.NoError(t, err)

	assert.Equal(t, string(schedule.StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
}

func TestCancelByOtherClientForbidden(t *testing.T) {
	repo := newFakeRepo()
	id := bookOne(t, repo, 10)

	uc := newCancelUC(repo, nil)
	_, err := uc.Execute(context.Background(), id, 11, false)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	// le rendez-vous n'a pas bougé
	ap, err := repo.GetAppointment(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusConfirmed), ap.Status)
}

func TestCancelByAdmin(t *testing.T) {
	repo := newFakeRepo()
	id := bookOne(t, repo, 10)

	uc := newCancelUC(repo, nil)
	ap, err := uc.Execute(context.Background(), id, 99, true)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusCancelled), ap.Status)
}

func TestCancelAlreadyCancelledIsNoop(t *testing.T) {
	repo := newFakeRepo()
	id := bookOne(t, repo, 10)

	uc := newCancelUC(repo, nil)
	first, err := uc.Execute(context.Background(), id, 10, false)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), id, 10, false)
	require.NoError(t, err)

	assert.Equal(t, string(schedule.StatusCancelled), second.Status)
	assert.Equal(t, first.CancelledAt, second.CancelledAt)
}

func TestCancelNotFound(t *testing.T) {
	repo := newFakeRepo()

	uc := newCancelUC(repo, nil)
	_, err := uc.Execute(context.Background(), 42, 10, false)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	id := bookOne(t, repo, 10)

	// le créneau est pris
	create := newCreateUC(repo, nil)
	in := validInput()
	in.UserID = 11
	_, err := create.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, "slot_conflict"))

	// après annulation, il redevient réservable
	cancel := newCancelUC(repo, nil)
	_, err = cancel.Execute(context.Background(), id, 10, false)
	require.NoError(t, err)

	_, err = create.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCancelInvalidatesCache(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	id := bookOne(t, repo, 10)

	cache.SetGrid(context.Background(), 1, "2026-03-03", &schedule.SlotGrid{Date: "2026-03-03"})

	uc := newCancelUC(repo, cache)
	_, err := uc.Execute(context.Background(), id, 10, false)
	require.NoError(t, err)

	_, ok := cache.GetGrid(context.Background(), 1, "2026-03-03")
	assert.False(t, ok)
}
