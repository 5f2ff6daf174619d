package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"percentCalc/internal/domain"
)

// ICallAnalytics — запись вызовов в хранилище для аналитики (например, ClickHouse).
type ICallAnalytics interface {
	WriteCall(ctx context.Context, rec domain.CallRecord) error
}
