package percentage

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"percentCalc/internal/domain"
	"percentCalc/internal/ports"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// Controller — маршруты сервиса процентов: calculate, history.
type Controller struct {
	uc  ports.IPercentageUseCase
	log *slog.Logger
}

// New создаёт контроллер.
func New(uc ports.IPercentageUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/calculate", c.calculate)
	api.GET("/history", c.history)
}

// @Summary Расчёт суммы с процентом
// @Description Принимает два неотрицательных числа, возвращает сумму и сумму с применённым процентом. Процент берётся из Redis, при промахе — из внешнего сервиса.
// @Tags percentage
// @Accept json
// @Produce json
// @Param request body CalculationRequest true "Числа для расчёта"
// @Success 200 {object} CalculationResponse "Результат расчёта"
// @Failure 400 {object} ErrorResponse "Невалидный запрос"
// @Failure 500 {string} string "Внутренняя ошибка сервера"
// @Failure 503 {string} string "Процент недоступен"
// @Router /api/calculate [post]
func (c *Controller) calculate(ctx *gin.Context) {
	var req CalculationRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calculate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	calc, err := c.uc.Calculate(ctx.Request.Context(), *req.Num1, *req.Num2)
	if err != nil {
		if errors.Is(err, domain.ErrPercentageUnavailable) {
			c.log.Error("calculate: percentage unavailable", "error", err)
			ctx.String(http.StatusServiceUnavailable, err.Error())
			return
		}
		c.log.Error("calculate failed", "error", err)
		ctx.String(http.StatusInternalServerError, "An unexpected error occurred: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, CalculationResponse{
		Sum:                  calc.Sum,
		ResultWithPercentage: calc.ResultWithPercentage,
		AppliedPercentage:    calc.AppliedPercentage,
	})
}

// @Summary История вызовов
// @Description Возвращает страницу истории вызовов API (по возрастанию id) с метаданными пагинации.
// @Tags percentage
// @Produce json
// @Param page query int false "Номер страницы (от 1)" default(1)
// @Param size query int false "Размер страницы (от 1)" default(10)
// @Success 200 {object} PaginatedResponse "Страница истории"
// @Failure 400 {object} ErrorResponse "Невалидные параметры пагинации"
// @Failure 500 {string} string "Внутренняя ошибка сервера"
// @Router /api/history [get]
func (c *Controller) history(ctx *gin.Context) {
	page, err := queryInt(ctx, "page", defaultPage)
	if err != nil || page < 1 {
		c.log.Warn("history bad page", "value", ctx.Query("page"))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "page must be an integer >= 1"})
		return
	}
	size, err := queryInt(ctx, "size", defaultSize)
	if err != nil || size < 1 {
		c.log.Warn("history bad size", "value", ctx.Query("size"))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "size must be an integer >= 1"})
		return
	}

	hp, err := c.uc.History(ctx.Request.Context(), page, size)
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.String(http.StatusInternalServerError, "An unexpected error occurred: "+err.Error())
		return
	}

	data := make([]CallHistoryResponse, len(hp.Records))
	for i, rec := range hp.Records {
		data[i] = CallHistoryResponse{
			ID:              rec.ID,
			Date:            rec.Date,
			Endpoint:        rec.Endpoint,
			Parameters:      rec.Parameters,
			ResponseOrError: rec.ResponseOrError,
		}
	}
	ctx.JSON(http.StatusOK, PaginatedResponse{
		Data: data,
		Pagination: Pagination{
			CurrentPage:  hp.CurrentPage,
			TotalItems:   hp.TotalItems,
			TotalPages:   hp.TotalPages,
			ItemsPerPage: len(data),
		},
	})
}

// queryInt читает целочисленный query-параметр с дефолтом.
func queryInt(ctx *gin.Context, name string, def int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
