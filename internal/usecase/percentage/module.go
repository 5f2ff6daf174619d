package percentage

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"percentCalc/internal/ports"
)

const (
	// percentageCacheKey — фиксированный ключ процента в Redis.
	percentageCacheKey = "external_percentage"
	// percentageCacheTTL — время жизни закэшированного процента (30 минут).
	percentageCacheTTL = 1800 * time.Second
	// auditTimeout — предел на одну фоновую запись аудита.
	auditTimeout = 5 * time.Second
)

// UseCase — бизнес-логика сервиса: расчёт с процентом (cache-aside поверх Redis
// с фолбэком во внешний источник) и аудит каждого вызова.
type UseCase struct {
	repo      ports.ICallHistoryRepository
	cache     ports.ICache
	provider  ports.IPercentageProvider
	broker    ports.IProducer
	analytics ports.ICallAnalytics
	log       *slog.Logger

	auditWG sync.WaitGroup // учёт фоновых записей аудита
}

// New создаёт юзкейс. broker и analytics могут быть nil — тогда события аудита не публикуются.
func New(repo ports.ICallHistoryRepository, cache ports.ICache, provider ports.IPercentageProvider,
	broker ports.IProducer, analytics ports.ICallAnalytics, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{repo: repo, cache: cache, provider: provider, broker: broker, analytics: analytics, log: log}
}

// calculateParams — сериализуемая форма параметров запроса для записи аудита.
type calculateParams struct {
	Num1 float64 `json:"num1"`
	Num2 float64 `json:"num2"`
}

// calculateResult — сериализуемая форма успешного ответа для записи аудита.
type calculateResult struct {
	Sum                  float64 `json:"sum"`
	ResultWithPercentage float64 `json:"resultWithPercentage"`
	AppliedPercentage    float64 `json:"appliedPercentage"`
}

// marshalString сериализует v в JSON-строку. Вход — плоские структуры выше,
// ошибка маршалинга на них невозможна; на всякий случай возвращаем пустой объект.
func marshalString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
