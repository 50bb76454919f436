package booking

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/lebarbier/salon-api/internal/domain/schedule"
	"github.com/lebarbier/salon-api/internal/httperr"
	"github.com/lebarbier/salon-api/internal/models"
)

var errNotFound = errors.New("not found")

// fakeRepo est une implémentation en mémoire de schedule.Repository.
// BookAppointment est sérialisé par mutex, comme la transaction avec
// verrou consultatif côté Postgres.
type fakeRepo struct {
	mu sync.Mutex

	salon    *models.Salon
	barbers  map[uint]*models.Barber
	services map[uint]*models.Service
	hours    map[int]*models.BusinessHours

	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salon: &models.Salon{
			ID:       1,
			Name:     "Le Barbier",
			Slug:     "le-barbier",
			Timezone: "Europe/Paris",
		},
		barbers: map[uint]*models.Barber{
			1: {ID: 1, Name: "Karim", Active: true},
			2: {ID: 2, Name: "Sofiane", Active: false},
		},
		services: map[uint]*models.Service{
			1: {ID: 1, Name: "Coupe", DurationMin: 30, Price: 25, Active: true},
			2: {ID: 2, Name: "Coupe + barbe", DurationMin: 45, Price: 35, Active: true},
			3: {ID: 3, Name: "Ancien forfait", DurationMin: 30, Active: false},
		},
		hours:        map[int]*models.BusinessHours{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (r *fakeRepo) GetSalon(ctx context.Context) (*models.Salon, error) {
	if r.salon == nil {
		return nil, errNotFound
	}
	return r.salon, nil
}

func (r *fakeRepo) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, errNotFound
	}
	return b, nil
}

func (r *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *fakeRepo) GetBusinessHours(ctx context.Context, weekday int) (*models.BusinessHours, error) {
	return r.hours[weekday], nil
}

func (r *fakeRepo) ListConfirmedForDay(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID ||
			ap.Status != string(schedule.StatusConfirmed) ||
			ap.StartTime.Before(start) ||
			!ap.StartTime.Before(end) {
			continue
		}

		cp := *ap
		if svc, ok := r.services[ap.ServiceID]; ok {
			cp.Service = *svc
		}
		out = append(out, cp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *fakeRepo) BookAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.services[ap.ServiceID]
	if !ok {
		return errNotFound
	}
	end := ap.StartTime.Add(time.Duration(svc.DurationMin) * time.Minute)

	for _, existing := range r.appointments {
		if existing.BarberID != ap.BarberID ||
			existing.Status != string(schedule.StatusConfirmed) {
			continue
		}

		existingSvc := r.services[existing.ServiceID]
		existingEnd := existing.StartTime.Add(
			time.Duration(existingSvc.DurationMin) * time.Minute,
		)

		if schedule.Overlaps(ap.StartTime, end, existing.StartTime, existingEnd) {
			return httperr.ErrBusiness("slot_conflict")
		}
	}

	ap.ID = r.nextID
	r.nextID++

	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, errNotFound
	}

	cp := *ap
	if svc, ok := r.services[ap.ServiceID]; ok {
		cp.Service = *svc
	}
	if b, ok := r.barbers[ap.BarberID]; ok {
		cp.Barber = *b
	}
	return &cp, nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return errNotFound
	}

	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return errNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) ListForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if barberID != 0 && ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}

		cp := *ap
		if svc, ok := r.services[ap.ServiceID]; ok {
			cp.Service = *svc
		}
		if b, ok := r.barbers[ap.BarberID]; ok {
			cp.Barber = *b
		}
		out = append(out, cp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *fakeRepo) ListForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID != userID {
			continue
		}
		out = append(out, *ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out, nil
}

var _ schedule.Repository = (*fakeRepo)(nil)

// fakeCache enregistre les invalidations pour vérifier que les mutations
// purgent bien la grille du jour.
type fakeCache struct {
	mu          sync.Mutex
	grids       map[string]*schedule.SlotGrid
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{grids: map[string]*schedule.SlotGrid{}}
}

func cacheKey(barberID uint, date string) string {
	return date + "#" + string(rune('0'+barberID))
}

func (c *fakeCache) GetGrid(ctx context.Context, barberID uint, date string) (*schedule.SlotGrid, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	grid, ok := c.grids[cacheKey(barberID, date)]
	return grid, ok
}

func (c *fakeCache) SetGrid(ctx context.Context, barberID uint, date string, grid *schedule.SlotGrid) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.grids[cacheKey(barberID, date)] = grid
}

func (c *fakeCache) Invalidate(ctx context.Context, barberID uint, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.grids, cacheKey(barberID, date))
	c.invalidated = append(c.invalidated, cacheKey(barberID, date))
}

var _ SlotCache = (*fakeCache)(nil)

// fixedNow fige l'horloge des use cases au lundi 2 mars 2026, 08:00 à Paris.
func fixedNow() func(tz string) time.Time {
	loc, _ := time.LoadLocation("Europe/Paris")
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, loc)
	return func(tz string) time.Time { return now }
}
