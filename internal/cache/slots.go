package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/lebarbier/salon-api/internal/config"
	"github.com/lebarbier/salon-api/internal/domain/schedule"
)

// La grille d'un jour change à chaque réservation/annulation : TTL court,
// invalidation explicite à chaque écriture.
const slotGridTTL = 60 * time.Second

func NewRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

type SlotGridCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewSlotGridCache(rdb *redis.Client, logger *zap.Logger) *SlotGridCache {
	return &SlotGridCache{rdb: rdb, logger: logger}
}

func gridKey(barberID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", barberID, date)
}

// GetGrid renvoie (nil, false) sur miss comme sur erreur : le cache ne doit
// jamais faire échouer une lecture de disponibilité.
func (c *SlotGridCache) GetGrid(
	ctx context.Context,
	barberID uint,
	date string,
) (*schedule.SlotGrid, bool) {

	raw, err := c.rdb.Get(ctx, gridKey(barberID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("slot cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var grid schedule.SlotGrid
	if err := json.Unmarshal(raw, &grid); err != nil {
		c.logger.Warn("slot cache payload invalid", zap.Error(err))
		return nil, false
	}

	return &grid, true
}

func (c *SlotGridCache) SetGrid(
	ctx context.Context,
	barberID uint,
	date string,
	grid *schedule.SlotGrid,
) {
	raw, err := json.Marshal(grid)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, gridKey(barberID, date), raw, slotGridTTL).Err(); err != nil {
		c.logger.Warn("slot cache write failed", zap.Error(err))
	}
}

func (c *SlotGridCache) Invalidate(
	ctx context.Context,
	barberID uint,
	date string,
) {
	if err := c.rdb.Del(ctx, gridKey(barberID, date)).Err(); err != nil {
		c.logger.Warn("slot cache invalidation failed", zap.Error(err))
	}
}
