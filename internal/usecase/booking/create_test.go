package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lebarbier/salon-api/internal/domain/schedule"
	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/models"
)

func newCreateUC(repo *fakeRepo, cache SlotCache) *CreateAppointment {
	uc := NewCreateAppointment(repo, cache, nil)
	uc.now = fixedNow()
	return uc
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		BarberID:  1,
		ServiceID: 1,
		UserID:    10,
		Date:      "2026-03-03",
		Time:      "10:00",
	}
}

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo, nil)

	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, string(schedule.StatusConfirmed), ap.Status)
	assert.Equal(t, "10:00", ap.StartTime.Format("15:04"))
	assert.Equal(t, "Coupe", ap.Service.Name)
	assert.Equal(t, "Karim", ap.Barber.Name)
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo, nil)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	// même créneau, autre client
	in := validInput()
	in.UserID = 11
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))

	// chevauchement partiel : 10:15 avec une coupe de 30 min posée à 10:00
	in = validInput()
	in.Time = "10:15"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))

	// créneaux adjacents : pas de conflit
	in = validInput()
	in.Time = "10:30"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateAppointmentOtherBarberSameSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers[3] = &models.Barber{ID: 3, Name: "Yanis", Active: true}
	uc := newCreateUC(repo, nil)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.BarberID = 3
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateAppointmentConcurrentSameSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo, nil)

	const n = 16
	results := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			in := validInput()
			in.UserID = userID
			_, err := uc.Execute(context.Background(), in)
			results <- err
		}(uint(100 + i))
	}
	wg.Wait()
	close(results)

	successes := 0
	conflicts := 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case httperr.IsBusiness(err, "slot_conflict"):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)
}

func TestCreateAppointmentUnknownOrInactive(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo, nil)

	in := validInput()
	in.BarberID = 99
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))

	in = validInput()
	in.BarberID = 2 // inactif
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))

	in = validInput()
	in.ServiceID = 3 // service désactivé
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointmentInvalidDateTime(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo, nil)

	in := validInput()
	in.Date = "03/03/2026"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	in = validInput()
	in.Time = "25:99"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateAppointmentTooSoon(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo, nil)

	// l'horloge est figée au 2026-03-02 08:00
	in := validInput()
	in.Date = "2026-03-01"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "too_soon"))

	// antécédence minimale de 24h : 2026-03-02 10:00 refusé,
	// 2026-03-03 10:00 accepté
	repo.salon.MinAdvanceMinutes = 24 * 60

	in = validInput()
	in.Date = "2026-03-02"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "too_soon"))

	in = validInput()
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateAppointmentOutsideBusinessHours(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo, nil)

	// avant l'ouverture par défaut
	in := validInput()
	in.Time = "08:00"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_business_hours"))

	// la prestation déborde sur la fermeture : 17:45 + 30 min > 18:00
	in = validInput()
	in.Time = "17:45"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_business_hours"))

	// jour configuré fermé (2026-03-03 est un mardi)
	repo.hours[2] = &models.BusinessHours{Weekday: 2, Open: false}
	in = validInput()
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_business_hours"))
}

func TestCreateAppointmentInvalidatesCache(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	uc := newCreateUC(repo, cache)

	cache.SetGrid(context.Background(), 1, "2026-03-03", &schedule.SlotGrid{Date: "2026-03-03"})

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	_, ok := cache.GetGrid(context.Background(), 1, "2026-03-03")
	assert.False(t, ok)
}
