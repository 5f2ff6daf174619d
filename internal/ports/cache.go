package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"
	"time"
)

// ICache — контракт кэша значений. Ошибка чтения (включая повреждённое значение)
// НЕ считается промахом: found == false только при реально отсутствующем ключе.
type ICache interface {
	Get(ctx context.Context, key string) (value float64, found bool, err error)
	SetEx(ctx context.Context, key string, value float64, ttl time.Duration) error
}
