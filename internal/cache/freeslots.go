package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/wferreiracoriolano/barbearia-api/internal/models"
)

// TTL curto: a listagem de horários livres é só consultiva, quem decide
// a corrida é o UPDATE condicional no banco.
const freeSlotsTTL = 30 * time.Second

// FreeSlotsCache guarda listagens de horários livres no Redis.
// Com client nil o cache vira no-op e tudo cai direto no banco.
type FreeSlotsCache struct {
	client *redis.Client
}

func NewFreeSlotsCache(redisURL string) *FreeSlotsCache {
	if redisURL == "" {
		return &FreeSlotsCache{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("cache: REDIS_URL inválida, cache desativado: %v", err)
		return &FreeSlotsCache{}
	}

	return &FreeSlotsCache{client: redis.NewClient(opts)}
}

func key(barberID uint, date string) string {
	return fmt.Sprintf("freeslots:%d:%s", barberID, date)
}

func (c *FreeSlotsCache) Get(ctx context.Context, barberID uint, date string) ([]models.Slot, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(barberID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []models.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *FreeSlotsCache) Set(ctx context.Context, barberID uint, date string, slots []models.Slot) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(barberID, date), raw, freeSlotsTTL).Err(); err != nil {
		log.Printf("cache: falha ao gravar %s: %v", key(barberID, date), err)
	}
}

func (c *FreeSlotsCache) Invalidate(ctx context.Context, barberID uint, date string) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, key(barberID, date)).Err(); err != nil {
		log.Printf("cache: falha ao invalidar %s: %v", key(barberID, date), err)
	}
}
