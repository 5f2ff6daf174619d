package click

import (
	"context"
	"fmt"

	"percentCalc/internal/domain"
	"percentCalc/internal/ports"
)

var _ ports.ICallAnalytics = (*CallWriter)(nil)

const callAnalyticsFull = "default.call_history_analytics"

// CallWriter записывает вызовы API в ClickHouse в формате, удобном для аналитики
// (частоты по эндпоинтам, доля ошибок по времени и т.д.).
type CallWriter struct {
	db *Client
}

// NewCallWriter создаёт писатель вызовов для аналитики.
func NewCallWriter(db *Client) *CallWriter {
	return &CallWriter{db: db}
}

// EnsureTable создаёт таблицу аналитики вызовов в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *CallWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			endpoint String,
			parameters String,
			response_or_error String,
			date DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (date, endpoint)
		PARTITION BY toYYYYMM(date)`,
		callAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteCall реализует ports.ICallAnalytics: пишет один вызов в ClickHouse.
func (w *CallWriter) WriteCall(ctx context.Context, rec domain.CallRecord) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (endpoint, parameters, response_or_error, date) VALUES (?, ?, ?, ?)",
		callAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		rec.Endpoint, rec.Parameters, rec.ResponseOrError, rec.Date)
	if err != nil {
		return fmt.Errorf("insert call: %w", err)
	}
	return nil
}
