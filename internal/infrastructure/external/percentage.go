package external

import (
	"context"
	"log/slog"

	"percentCalc/internal/ports"
)

var _ ports.IPercentageProvider = (*StubProvider)(nil)

// StubProvider — заглушка внешнего сервиса процентов: всегда возвращает
// фиксированное значение. Реальная интеграция подставляется через
// ports.IPercentageProvider без изменения юзкейса.
type StubProvider struct {
	value float64
	log   *slog.Logger
}

// NewStubProvider возвращает заглушку с фиксированным процентом.
func NewStubProvider(value float64, log *slog.Logger) *StubProvider {
	if log == nil {
		log = slog.Default()
	}
	return &StubProvider{value: value, log: log}
}

// FetchPercentage возвращает фиксированный процент (ok всегда true).
func (p *StubProvider) FetchPercentage(ctx context.Context) (float64, bool, error) {
	_ = ctx
	p.log.Info("calling external percentage service (stub)", "value", p.value)
	return p.value, true, nil
}
