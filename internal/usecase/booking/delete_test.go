package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebarbier/salon-api/internal/domain/schedule"
	"github.com/lebarbier/salon-api/internal/httperr"
)

func newDeleteUC(repo *fakeRepo) *DeleteAppointment {
	uc := NewDeleteAppointment(repo, nil, nil)
	uc.now = fixedNow()
	return uc
}

func TestDeleteFutureConfirmed(t *testing.T) {
	repo := newFakeRepo()
	id := bookOne(t, repo, 10)

	uc := newDeleteUC(repo)
	require.NoError(t, uc.Execute(context.Background(), id, 1))

	_, err := repo.GetAppointment(context.Background(), id)
	assert.Error(t, err)
}

func TestDeletePastAppointment(t *testing.T) {
	repo := newFakeRepo()
	id := bookOne(t, repo, 10)

	// l'horloge passe après le rendez-vous
	uc := NewDeleteAppointment(repo, nil, nil)
	uc.now = func(tz string) time.Time {
		return fixedNow()("").AddDate(0, 0, 7)
	}

	err := uc.Execute(context.Background(), id, 1)
	assert.True(t, httperr.IsBusiness(err, "past_appointment"))

	// toujours là
	_, getErr := repo.GetAppointment(context.Background(), id)
	assert.NoError(t, getErr)
}

func TestDeleteCancelledAppointment(t *testing.T) {
	repo := newFakeRepo()
	id := bookOne(t, repo, 10)

	cancel := newCancelUC(repo, nil)
	_, err := cancel.Execute(context.Background(), id, 10, false)
	require.NoError(t, err)

	uc := newDeleteUC(repo)
	err = uc.Execute(context.Background(), id, 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestDeleteNotFound(t *testing.T) {
	repo := newFakeRepo()

	uc := newDeleteUC(repo)
	err := uc.Execute(context.Background(), 42, 1)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestDeleteFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	id := bookOne(t, repo, 10)

	uc := newDeleteUC(repo)
	require.NoError(t, uc.Execute(context.Background(), id, 1))

	create := newCreateUC(repo, nil)
	in := validInput()
	in.UserID = 11
	ap, err := create.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusConfirmed), ap.Status)
}
