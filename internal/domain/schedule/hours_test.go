package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebarbier/salon-api/internal/models"
)

var testDay = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

func TestParseClock(t *testing.T) {
	got, ok := ParseClock(testDay, "09:30")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 3, 9, 30, 0, 0, time.UTC), got)

	_, ok = ParseClock(testDay, "9h30")
	assert.False(t, ok)

	_, ok = ParseClock(testDay, "")
	assert.False(t, ok)
}

func TestResolveWindowDefault(t *testing.T) {
	w := ResolveWindow(testDay, nil)

	require.True(t, w.Open)
	assert.Equal(t, time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC), w.End)
}

func TestResolveWindowConfigured(t *testing.T) {
	wh := &models.BusinessHours{
		Weekday:   2,
		Open:      true,
		OpenTime:  "10:00",
		CloseTime: "19:30",
	}

	w := ResolveWindow(testDay, wh)

	require.True(t, w.Open)
	assert.Equal(t, time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 3, 3, 19, 30, 0, 0, time.UTC), w.End)
}

func TestResolveWindowClosedDay(t *testing.T) {
	wh := &models.BusinessHours{Weekday: 0, Open: false}

	w := ResolveWindow(testDay, wh)

	assert.False(t, w.Open)
}

func TestResolveWindowInvalidBoundsFallsBack(t *testing.T) {
	wh := &models.BusinessHours{
		Weekday:   2,
		Open:      true,
		OpenTime:  "18:00",
		CloseTime: "09:00", // inversé
	}

	w := ResolveWindow(testDay, wh)

	require.True(t, w.Open)
	assert.Equal(t, "09:00", w.Start.Format("15:04"))
	assert.Equal(t, "18:00", w.End.Format("15:04"))
}
