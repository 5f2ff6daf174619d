package percentage

import "time"

// CalculationRequest — запрос на расчёт (для POST /api/calculate).
// Указатели, чтобы binding:"required" отличал отсутствующее поле от нуля.
type CalculationRequest struct {
	Num1 *float64 `json:"num1" binding:"required,gte=0"`
	Num2 *float64 `json:"num2" binding:"required,gte=0"`
}

// CalculationResponse — ответ с результатом расчёта.
type CalculationResponse struct {
	Sum                  float64 `json:"sum"`
	ResultWithPercentage float64 `json:"resultWithPercentage"`
	AppliedPercentage    float64 `json:"appliedPercentage"`
}

// CallHistoryResponse — одна запись истории вызовов (для GET /api/history).
type CallHistoryResponse struct {
	ID              int64     `json:"id"`
	Date            time.Time `json:"date"`
	Endpoint        string    `json:"endpoint"`
	Parameters      string    `json:"parameters"`
	ResponseOrError string    `json:"responseOrError"`
}

// Pagination — метаданные страницы.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// PaginatedResponse — страница истории с метаданными.
type PaginatedResponse struct {
	Data       []CallHistoryResponse `json:"data"`
	Pagination Pagination            `json:"pagination"`
}

// ErrorResponse — тело ответа при ошибке валидации.
type ErrorResponse struct {
	Error string `json:"error"`
}
