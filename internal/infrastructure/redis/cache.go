package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"percentCalc/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// Cache реализует ports.ICache через Redis. Значение — float64 строкой.
// Ошибка соединения или парсинга — это ошибка, а не промах: found == false
// только при redis.Nil.
type Cache struct {
	cli *Client
	log *slog.Logger
}

// NewCache возвращает кэш, реализующий ports.ICache.
func NewCache(cli *Client, log *slog.Logger) *Cache {
	return &Cache{cli: cli, log: log}
}

// Get возвращает значение по ключу. Если ключа нет — found == false без ошибки.
func (c *Cache) Get(ctx context.Context, key string) (value float64, found bool, err error) {
	s, err := c.cli.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil { // ключа нет
			return 0, false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return 0, false, fmt.Errorf("cache get: %w", err)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.log.Debug("cache parse failed", "key", key, "value", s, "error", err)
		return 0, false, fmt.Errorf("cache parse value: %w", err)
	}
	return v, true, nil
}

// SetEx сохраняет значение по ключу с временем жизни (SETEX).
func (c *Cache) SetEx(ctx context.Context, key string, value float64, ttl time.Duration) error {
	s := strconv.FormatFloat(value, 'g', -1, 64)
	if err := c.cli.Set(ctx, key, s, ttl).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
