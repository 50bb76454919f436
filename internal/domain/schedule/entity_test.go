package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/models"
)

func TestCancelConfirmed(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, Cancel(ap, now))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestCancelTerminalStates(t *testing.T) {
	now := time.Now()

	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		ap := &models.Appointment{Status: string(status)}
		err := Cancel(ap, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "status %s", status)
	}
}

func TestCompleteConfirmed(t *testing.T) {
	now := time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, Complete(ap, now))

	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
}

func TestCompleteCancelled(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCancelled)}
	err := Complete(ap, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCanDelete(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	future := &models.Appointment{
		Status:    string(StatusConfirmed),
		StartTime: now.Add(2 * time.Hour),
	}
	assert.NoError(t, CanDelete(future, now))

	past := &models.Appointment{
		Status:    string(StatusConfirmed),
		StartTime: now.Add(-time.Hour),
	}
	assert.True(t, httperr.IsBusiness(CanDelete(past, now), "past_appointment"))

	startingNow := &models.Appointment{
		Status:    string(StatusConfirmed),
		StartTime: now,
	}
	assert.True(t, httperr.IsBusiness(CanDelete(startingNow, now), "past_appointment"))

	cancelled := &models.Appointment{
		Status:    string(StatusCancelled),
		StartTime: now.Add(2 * time.Hour),
	}
	assert.True(t, httperr.IsBusiness(CanDelete(cancelled, now), "invalid_state"))
}

func TestStatusGuards(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus())
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.Error(t, CanCancel(StatusCompleted))
	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.Error(t, CanComplete(StatusCancelled))
}
