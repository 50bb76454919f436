package booking

import (
	"context"

	"github.com/lebarbier/salon-api/internal/domain/schedule"
)

// SlotCache est optionnel : nil désactive simplement le cache.
// Implémenté par cache.SlotGridCache (Redis).
type SlotCache interface {
	GetGrid(ctx context.Context, barberID uint, date string) (*schedule.SlotGrid, bool)
	SetGrid(ctx context.Context, barberID uint, date string, grid *schedule.SlotGrid)
	Invalidate(ctx context.Context, barberID uint, date string)
}
