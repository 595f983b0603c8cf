package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ViewingService/internal/scheduling"
	"github.com/m04kA/SMC-ViewingService/pkg/metrics"
	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

const keyPrefix = "viewing:slots"

// NoGeneration поколение неизвестно, такие слоты не сохраняются
const NoGeneration int64 = -1

// Результаты обращения к кэшу для метрик
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// Key ключ закэшированного ответа со слотами
type Key struct {
	AgencyID   int64
	PropertyID int64
	Date       time.Time
}

type cachedSlot struct {
	Time          types.TimeString      `json:"time"`
	Status        scheduling.SlotStatus `json:"status"`
	TravelMinutes *int                  `json:"travelMinutes,omitempty"`
}

// RedisCache кэш рассчитанных слотов в Redis
// Инвалидация через счетчик поколений агентства: любое изменение расписания
// увеличивает поколение, и старые ключи перестают читаться до истечения TTL
type RedisCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  Logger
}

// NewRedisCache создает кэш слотов
func NewRedisCache(client *redis.Client, ttl time.Duration, m *metrics.Metrics, logger Logger) *RedisCache {
	return &RedisCache{
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

// Get возвращает слоты из кэша и поколение агентства на момент чтения.
// При промахе пересчитанные слоты сохраняются через Set с этим же поколением.
// ok == false при промахе или недоступности Redis, generation == NoGeneration, если поколение прочитать не удалось
func (c *RedisCache) Get(ctx context.Context, key Key) ([]scheduling.Slot, int64, bool) {
	generation, err := c.generation(ctx, key.AgencyID)
	if err != nil {
		c.metrics.IncSlotCache(resultError)
		c.logger.Warn("SlotCache.Get: failed to read generation for agency %d: %v", key.AgencyID, err)
		return nil, NoGeneration, false
	}

	raw, err := c.client.Get(ctx, slotsKey(key, generation)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.IncSlotCache(resultMiss)
		return nil, generation, false
	}
	if err != nil {
		c.metrics.IncSlotCache(resultError)
		c.logger.Warn("SlotCache.Get: redis get failed: %v", err)
		return nil, generation, false
	}

	var cached []cachedSlot
	if err := json.Unmarshal(raw, &cached); err != nil {
		c.metrics.IncSlotCache(resultError)
		c.logger.Warn("SlotCache.Get: failed to decode cached slots: %v", err)
		return nil, generation, false
	}

	c.metrics.IncSlotCache(resultHit)
	return fromCached(cached), generation, true
}

// Set сохраняет слоты под поколением, полученным из Get до чтения данных.
// Если расписание успели изменить, запись уходит в старое поколение и больше не читается
func (c *RedisCache) Set(ctx context.Context, key Key, generation int64, slots []scheduling.Slot) error {
	if generation == NoGeneration {
		return nil
	}

	payload, err := json.Marshal(toCached(slots))
	if err != nil {
		return fmt.Errorf("%w: Set - marshal slots: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, slotsKey(key, generation), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis set: %v", ErrCache, err)
	}

	return nil
}

// Invalidate увеличивает поколение агентства
func (c *RedisCache) Invalidate(ctx context.Context, agencyID int64) error {
	if err := c.client.Incr(ctx, generationKey(agencyID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - redis incr: %v", ErrCache, err)
	}
	return nil
}

func (c *RedisCache) generation(ctx context.Context, agencyID int64) (int64, error) {
	value, err := c.client.Get(ctx, generationKey(agencyID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

func generationKey(agencyID int64) string {
	return fmt.Sprintf("%s:gen:%d", keyPrefix, agencyID)
}

func slotsKey(key Key, generation int64) string {
	return fmt.Sprintf("%s:%d:%d:%d:%s", keyPrefix, key.AgencyID, generation, key.PropertyID, key.Date.Format("2006-01-02"))
}

func toCached(slots []scheduling.Slot) []cachedSlot {
	out := make([]cachedSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, cachedSlot{Time: s.Time, Status: s.Status, TravelMinutes: s.TravelMinutes})
	}
	return out
}

func fromCached(cached []cachedSlot) []scheduling.Slot {
	out := make([]scheduling.Slot, 0, len(cached))
	for _, s := range cached {
		out = append(out, scheduling.Slot{Time: s.Time, Status: s.Status, TravelMinutes: s.TravelMinutes})
	}
	return out
}
