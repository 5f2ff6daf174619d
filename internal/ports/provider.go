package ports

//go:generate mockgen -source=provider.go -destination=../mocks/provider_mock.go -package=mocks

import "context"

// IPercentageProvider — контракт внешнего источника процента.
// ok == false означает, что источник не вернул значение (не ошибка транспорта).
type IPercentageProvider interface {
	FetchPercentage(ctx context.Context) (value float64, ok bool, err error)
}
