package pg

import (
	"context"
	"log/slog"

	"percentCalc/internal/domain"
	"percentCalc/internal/ports"
)

var _ ports.ICallHistoryRepository = (*CallHistoryRepo)(nil)

// CallHistoryRepo реализует ports.ICallHistoryRepository для PostgreSQL.
type CallHistoryRepo struct {
	db  *DB
	log *slog.Logger
}

// NewCallHistoryRepo возвращает репозиторий истории вызовов.
func NewCallHistoryRepo(db *DB, log *slog.Logger) *CallHistoryRepo {
	return &CallHistoryRepo{db: db, log: log}
}

// SaveCall добавляет запись аудита. Записи только добавляются, id назначает БД.
func (r *CallHistoryRepo) SaveCall(ctx context.Context, rec domain.CallRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO call_history (date, endpoint, parameters, response_or_error)
		 VALUES ($1, $2, $3, $4)`,
		rec.Date, rec.Endpoint, rec.Parameters, rec.ResponseOrError)
	if err != nil {
		r.log.Debug("SaveCall failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает страницу записей по возрастанию id и общее число записей.
// page и size считаются от 1 (валидируются выше).
func (r *CallHistoryRepo) GetHistory(ctx context.Context, page, size int) ([]domain.CallRecord, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM call_history`).Scan(&total); err != nil {
		r.log.Debug("GetHistory count failed", "error", err)
		return nil, 0, err
	}

	offset := (page - 1) * size
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, endpoint, parameters, response_or_error
		 FROM call_history ORDER BY id ASC LIMIT $1 OFFSET $2`,
		size, offset)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]domain.CallRecord, 0, size)
	for rows.Next() {
		var rec domain.CallRecord
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Endpoint, &rec.Parameters, &rec.ResponseOrError); err != nil {
			return nil, 0, err
		}
		list = append(list, rec)
	}
	return list, total, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *CallHistoryRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
