package domain

import (
	"errors"
	"time"
)

// ErrPercentageUnavailable возвращается, когда процент не удалось получить
// ни из кэша, ни из внешнего сервиса (или кэш недоступен/повреждён).
var ErrPercentageUnavailable = errors.New("percentage unavailable")

// EndpointCalculate — имя эндпоинта расчёта, пишется в каждую запись истории.
const EndpointCalculate = "/api/calculate"

// Calculation — результат одного расчёта: сумма, сумма с процентом и применённый процент.
type Calculation struct {
	Sum                  float64
	ResultWithPercentage float64
	AppliedPercentage    float64
}

// CallRecord — запись об одном вызове API: эндпоинт, сериализованные параметры
// и ответ-или-ошибка. Создаётся один раз, не изменяется и не удаляется.
type CallRecord struct {
	ID              int64
	Date            time.Time
	Endpoint        string
	Parameters      string
	ResponseOrError string
}

// HistoryPage — страница истории вызовов с метаданными пагинации.
type HistoryPage struct {
	Records     []CallRecord
	CurrentPage int
	TotalItems  int64
	TotalPages  int
}
