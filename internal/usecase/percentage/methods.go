package percentage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"percentCalc/internal/domain"
)

// Calculate считает сумму двух чисел и применяет процент из resolvePercentage.
// Каждый вызов (успех или ошибка) порождает ровно одну фоновую запись аудита;
// её задержка и ошибки не видны вызывающему.
func (u *UseCase) Calculate(ctx context.Context, num1, num2 float64) (*domain.Calculation, error) {
	params := marshalString(calculateParams{Num1: num1, Num2: num2})
	sum := num1 + num2

	pct, err := u.resolvePercentage(ctx)
	if err != nil {
		u.log.Error("calculate failed", "num1", num1, "num2", num2, "error", err)
		u.auditAsync(domain.EndpointCalculate, params, err.Error())
		return nil, err
	}

	calc := &domain.Calculation{
		Sum:                  sum,
		ResultWithPercentage: sum + sum*(pct/100),
		AppliedPercentage:    pct,
	}
	u.log.Info("calculation completed", "sum", calc.Sum, "result", calc.ResultWithPercentage, "percentage", pct)
	u.auditAsync(domain.EndpointCalculate, params, marshalString(calculateResult{
		Sum:                  calc.Sum,
		ResultWithPercentage: calc.ResultWithPercentage,
		AppliedPercentage:    calc.AppliedPercentage,
	}))
	return calc, nil
}

// resolvePercentage — cache-aside: читает процент из кэша; при настоящем промахе
// идёт во внешний источник и пишет значение обратно с TTL. Ошибка чтения кэша —
// это ErrPercentageUnavailable, а не промах: повреждённый или недоступный кэш
// не маскируется повторным походом в источник. Успешная запись в кэш — часть
// контракта, её ошибка тоже ErrPercentageUnavailable. Не больше одного чтения,
// одного внешнего вызова и одной записи; без ретраев.
func (u *UseCase) resolvePercentage(ctx context.Context) (float64, error) {
	value, found, err := u.cache.Get(ctx, percentageCacheKey)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to retrieve cached percentage: %v", domain.ErrPercentageUnavailable, err)
	}
	if found {
		u.log.Info("cached percentage found", "value", value)
		return value, nil
	}

	u.log.Info("no cached percentage found, calling external service")
	ext, ok, err := u.provider.FetchPercentage(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: external percentage service: %v", domain.ErrPercentageUnavailable, err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: percentage service failed and no cache available", domain.ErrPercentageUnavailable)
	}

	if err := u.cache.SetEx(ctx, percentageCacheKey, ext, percentageCacheTTL); err != nil {
		return 0, fmt.Errorf("%w: failed to cache percentage value: %v", domain.ErrPercentageUnavailable, err)
	}
	u.log.Info("percentage cached", "value", ext, "ttl", percentageCacheTTL)
	return ext, nil
}

// auditAsync пишет запись аудита в отдельной горутине со своим контекстом:
// отмена запроса не отменяет аудит, а ошибка записи только логируется.
// После успешного сохранения запись публикуется в брокер (best-effort).
func (u *UseCase) auditAsync(endpoint, params, responseOrError string) {
	rec := domain.CallRecord{
		Date:            time.Now(),
		Endpoint:        endpoint,
		Parameters:      params,
		ResponseOrError: responseOrError,
	}
	u.auditWG.Add(1)
	go func() {
		defer u.auditWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()

		if err := u.repo.SaveCall(ctx, rec); err != nil {
			u.log.Error("audit save failed", "endpoint", endpoint, "error", err)
			return
		}
		u.log.Info("call logged", "endpoint", endpoint)

		if u.broker == nil {
			return
		}
		value, err := json.Marshal(rec)
		if err != nil {
			u.log.Warn("audit event marshal", "error", err)
			return
		}
		if err := u.broker.Send(ctx, []byte(endpoint), value); err != nil {
			u.log.Warn("broker send", "endpoint", endpoint, "error", err)
		} else {
			u.log.Info("call published", "endpoint", endpoint)
		}
	}()
}

// History — страница истории вызовов по возрастанию id (обвязка над репозиторием).
func (u *UseCase) History(ctx context.Context, page, size int) (*domain.HistoryPage, error) {
	records, total, err := u.repo.GetHistory(ctx, page, size)
	if err != nil {
		return nil, err
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	u.log.Info("call history fetched", "page", page, "size", size, "total", total)
	return &domain.HistoryPage{
		Records:     records,
		CurrentPage: page,
		TotalItems:  total,
		TotalPages:  totalPages,
	}, nil
}

// HandleCallEvent вызывается консьюмером при получении события аудита из топика (часть IPercentageUseCase).
func (u *UseCase) HandleCallEvent(ctx context.Context, rec domain.CallRecord) error {
	if u.analytics == nil {
		return nil
	}
	if err := u.analytics.WriteCall(ctx, rec); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("call stored to click", "endpoint", rec.Endpoint)
	return nil
}
