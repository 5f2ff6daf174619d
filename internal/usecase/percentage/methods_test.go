package percentage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"percentCalc/internal/domain"
	"percentCalc/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// deps — моки всех зависимостей юзкейса.
type deps struct {
	repo      *mocks.MockICallHistoryRepository
	cache     *mocks.MockICache
	provider  *mocks.MockIPercentageProvider
	broker    *mocks.MockIProducer
	analytics *mocks.MockICallAnalytics
}

func newDeps(ctrl *gomock.Controller) deps {
	return deps{
		repo:      mocks.NewMockICallHistoryRepository(ctrl),
		cache:     mocks.NewMockICache(ctrl),
		provider:  mocks.NewMockIPercentageProvider(ctrl),
		broker:    mocks.NewMockIProducer(ctrl),
		analytics: mocks.NewMockICallAnalytics(ctrl),
	}
}

func (d deps) usecase() *UseCase {
	return New(d.repo, d.cache, d.provider, d.broker, d.analytics, newTestLogger())
}

// Тест 1: Cache Hit — процент берётся из кэша, внешний сервис не вызывается.
func TestCalculate_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	d.cache.EXPECT().Get(gomock.Any(), "external_percentage").Return(10.0, true, nil)
	// provider.FetchPercentage НЕ ожидается — при хите внешний сервис не трогаем.
	d.repo.EXPECT().SaveCall(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), []byte("/api/calculate"), gomock.Any()).Return(nil)

	uc := d.usecase()
	calc, err := uc.Calculate(context.Background(), 10, 20)
	uc.auditWG.Wait() // дожидаемся фоновой записи аудита до проверки ожиданий

	require.NoError(t, err)
	assert.Equal(t, 30.0, calc.Sum)
	assert.Equal(t, 33.0, calc.ResultWithPercentage) // 30 + 30*(10/100)
	assert.Equal(t, 10.0, calc.AppliedPercentage)
}

// Тест 2: Cache Miss — полный флоу: внешний сервис → запись в кэш с TTL 1800с → расчёт.
func TestCalculate_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	gomock.InOrder(
		d.cache.EXPECT().Get(gomock.Any(), "external_percentage").Return(0.0, false, nil),
		d.provider.EXPECT().FetchPercentage(gomock.Any()).Return(10.0, true, nil),
		d.cache.EXPECT().SetEx(gomock.Any(), "external_percentage", 10.0, 1800*time.Second).Return(nil),
	)
	d.repo.EXPECT().SaveCall(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), []byte("/api/calculate"), gomock.Any()).Return(nil)

	uc := d.usecase()
	calc, err := uc.Calculate(context.Background(), 10, 20)
	uc.auditWG.Wait()

	require.NoError(t, err)
	assert.Equal(t, 33.0, calc.ResultWithPercentage)
	assert.Equal(t, 10.0, calc.AppliedPercentage)
}

// Тест 3: ошибка чтения кэша — ErrPercentageUnavailable, БЕЗ похода во внешний сервис.
// Недоступный или повреждённый кэш не маскируется фолбэком.
func TestCalculate_CacheReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	d.cache.EXPECT().Get(gomock.Any(), "external_percentage").
		Return(0.0, false, errors.New("connection refused"))
	// provider НЕ ожидается.
	d.repo.EXPECT().SaveCall(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	uc := d.usecase()
	calc, err := uc.Calculate(context.Background(), 10, 20)
	uc.auditWG.Wait()

	assert.Nil(t, calc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPercentageUnavailable)
}

// Тест 4: внешний сервис не вернул значение — ErrPercentageUnavailable.
func TestCalculate_ProviderEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	d.cache.EXPECT().Get(gomock.Any(), "external_percentage").Return(0.0, false, nil)
	d.provider.EXPECT().FetchPercentage(gomock.Any()).Return(0.0, false, nil)
	d.repo.EXPECT().SaveCall(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	uc := d.usecase()
	calc, err := uc.Calculate(context.Background(), 10, 20)
	uc.auditWG.Wait()

	assert.Nil(t, calc)
	assert.ErrorIs(t, err, domain.ErrPercentageUnavailable)
}

// Тест 5: ошибка записи в кэш — тоже ErrPercentageUnavailable, хотя значение получено.
// Успешное кэширование — часть контракта.
func TestCalculate_CacheWriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	gomock.InOrder(
		d.cache.EXPECT().Get(gomock.Any(), "external_percentage").Return(0.0, false, nil),
		d.provider.EXPECT().FetchPercentage(gomock.Any()).Return(10.0, true, nil),
		d.cache.EXPECT().SetEx(gomock.Any(), "external_percentage", 10.0, 1800*time.Second).
			Return(errors.New("write failed")),
	)
	d.repo.EXPECT().SaveCall(gomock.Any(), gomock.Any()).Return(nil)
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	uc := d.usecase()
	calc, err := uc.Calculate(context.Background(), 10, 20)
	uc.auditWG.Wait()

	assert.Nil(t, calc)
	assert.ErrorIs(t, err, domain.ErrPercentageUnavailable)
}

// Тест 6: содержимое записи аудита при успехе — эндпоинт, JSON параметров и JSON ответа.
func TestCalculate_AuditRecordContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	d.cache.EXPECT().Get(gomock.Any(), "external_percentage").Return(10.0, true, nil)

	var saved domain.CallRecord
	d.repo.EXPECT().SaveCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec domain.CallRecord) error {
			saved = rec
			return nil
		})
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	uc := d.usecase()
	_, err := uc.Calculate(context.Background(), 10, 20)
	uc.auditWG.Wait()
	require.NoError(t, err)

	assert.Equal(t, "/api/calculate", saved.Endpoint)
	assert.JSONEq(t, `{"num1":10,"num2":20}`, saved.Parameters)
	assert.JSONEq(t, `{"sum":30,"resultWithPercentage":33,"appliedPercentage":10}`, saved.ResponseOrError)
	assert.False(t, saved.Date.IsZero())
}

// Тест 7: запись аудита при ошибке — responseOrError содержит текст ошибки.
func TestCalculate_AuditRecordOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	d.cache.EXPECT().Get(gomock.Any(), "external_percentage").
		Return(0.0, false, errors.New("boom"))

	var saved domain.CallRecord
	d.repo.EXPECT().SaveCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec domain.CallRecord) error {
			saved = rec
			return nil
		})
	d.broker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	uc := d.usecase()
	_, err := uc.Calculate(context.Background(), 10, 20)
	uc.auditWG.Wait()
	require.Error(t, err)

	assert.Equal(t, "/api/calculate", saved.Endpoint)
	assert.Contains(t, saved.ResponseOrError, "percentage unavailable")
	assert.Contains(t, saved.ResponseOrError, "boom")
}

// Тест 8: ошибка записи аудита проглатывается — расчёт всё равно успешен,
// событие в брокер при этом не публикуется.
func TestCalculate_AuditFailureSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	d.cache.EXPECT().Get(gomock.Any(), "external_percentage").Return(10.0, true, nil)
	d.repo.EXPECT().SaveCall(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	// broker.Send НЕ ожидается: без сохранённой записи событие не публикуется.

	uc := d.usecase()
	calc, err := uc.Calculate(context.Background(), 10, 20)
	uc.auditWG.Wait()

	require.NoError(t, err)
	assert.Equal(t, 33.0, calc.ResultWithPercentage)
}

// Тест 9: брокер может отсутствовать (nil) — аудит пишется, паники нет.
func TestCalculate_NilBroker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	d.cache.EXPECT().Get(gomock.Any(), "external_percentage").Return(10.0, true, nil)
	d.repo.EXPECT().SaveCall(gomock.Any(), gomock.Any()).Return(nil)

	uc := New(d.repo, d.cache, d.provider, nil, nil, newTestLogger())
	calc, err := uc.Calculate(context.Background(), 10, 20)
	uc.auditWG.Wait()

	require.NoError(t, err)
	assert.Equal(t, 33.0, calc.ResultWithPercentage)
}

// Тест 10: история — страница 1 по 10 из 15 записей: totalPages=2, currentPage=1.
func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := make([]domain.CallRecord, 10)
	for i := range records {
		records[i] = domain.CallRecord{ID: int64(i + 1), Endpoint: "/api/calculate"}
	}

	repo := mocks.NewMockICallHistoryRepository(ctrl)
	repo.EXPECT().GetHistory(gomock.Any(), 1, 10).Return(records, int64(15), nil)

	// Для History не нужны cache, provider, broker, analytics — передаём nil.
	uc := New(repo, nil, nil, nil, nil, newTestLogger())

	page, err := uc.History(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Len(t, page.Records, 10)
	assert.Equal(t, int64(15), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	// Порядок — по возрастанию id.
	assert.Equal(t, int64(1), page.Records[0].ID)
	assert.Equal(t, int64(10), page.Records[9].ID)
}

// Тест 11: ошибка репозитория при чтении истории пробрасывается.
func TestHistory_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockICallHistoryRepository(ctrl)
	repo.EXPECT().GetHistory(gomock.Any(), 1, 10).Return(nil, int64(0), errors.New("db down"))

	uc := New(repo, nil, nil, nil, nil, newTestLogger())

	page, err := uc.History(context.Background(), 1, 10)
	assert.Nil(t, page)
	assert.Error(t, err)
}

// Тест 12: событие аудита из Kafka уходит в аналитику.
func TestHandleCallEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	rec := domain.CallRecord{Endpoint: "/api/calculate", Parameters: `{"num1":1,"num2":2}`}
	d.analytics.EXPECT().WriteCall(gomock.Any(), rec).Return(nil)

	uc := d.usecase()
	err := uc.HandleCallEvent(context.Background(), rec)
	assert.NoError(t, err)
}

// Тест 13: событие в брокер — это JSON записи аудита.
func TestCalculate_PublishesAuditEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newDeps(ctrl)
	d.cache.EXPECT().Get(gomock.Any(), "external_percentage").Return(10.0, true, nil)
	d.repo.EXPECT().SaveCall(gomock.Any(), gomock.Any()).Return(nil)

	var published []byte
	d.broker.EXPECT().Send(gomock.Any(), []byte("/api/calculate"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []byte, value []byte) error {
			published = value
			return nil
		})

	uc := d.usecase()
	_, err := uc.Calculate(context.Background(), 5, 5)
	uc.auditWG.Wait()
	require.NoError(t, err)

	var rec domain.CallRecord
	require.NoError(t, json.Unmarshal(published, &rec))
	assert.Equal(t, "/api/calculate", rec.Endpoint)
	assert.JSONEq(t, `{"num1":5,"num2":5}`, rec.Parameters)
}
