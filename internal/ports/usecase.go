package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"percentCalc/internal/domain"
)

// IPercentageUseCase — контракт бизнес-логики сервиса (расчёт с процентом,
// история вызовов, обработка событий аудита из Kafka).
type IPercentageUseCase interface {
	Calculate(ctx context.Context, num1, num2 float64) (*domain.Calculation, error)
	History(ctx context.Context, page, size int) (*domain.HistoryPage, error)
	HandleCallEvent(ctx context.Context, rec domain.CallRecord) error
}
