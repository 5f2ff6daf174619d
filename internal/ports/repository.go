package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"percentCalc/internal/domain"
)

// ICallHistoryRepository — контракт сохранения и постраничного чтения истории вызовов.
// GetHistory отдаёт записи по возрастанию id; page и size считаются от 1.
type ICallHistoryRepository interface {
	SaveCall(ctx context.Context, rec domain.CallRecord) error
	GetHistory(ctx context.Context, page, size int) (records []domain.CallRecord, total int64, err error)
	Ping(ctx context.Context) error
}
