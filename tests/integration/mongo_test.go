package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"percentCalc/internal/domain"
	"percentCalc/internal/infrastructure/mongo"
	"percentCalc/tests/integration/testutil"
)

// mongoContainer — контейнер MongoDB, инициализируется в TestMain.
var mongoContainer *testutil.MongoContainer

// setupMongoRepo подключается к тестовой MongoDB и очищает базу.
func setupMongoRepo(t *testing.T) *mongo.CallHistoryRepo {
	t.Helper()

	ctx := context.Background()

	client, err := mongo.New(ctx, &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "testdb",
		Collection: "call_history",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	// Сбрасываем базу целиком: коллекцию записей и счётчик seq
	err = client.Database("testdb").Drop(ctx)
	if err != nil {
		t.Logf("drop database: %v (игнорируем)", err)
	}

	t.Cleanup(func() {
		client.Disconnect(context.Background())
	})

	return mongo.NewCallHistoryRepo(client, newTestLogger())
}

func TestMongoRepo_SaveAndGetHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	ctx := context.Background()

	rec := domain.CallRecord{
		Date:            time.Now(),
		Endpoint:        "/api/calculate",
		Parameters:      `{"num1":10,"num2":20}`,
		ResponseOrError: `{"sum":30,"resultWithPercentage":33,"appliedPercentage":10}`,
	}

	err := repo.SaveCall(ctx, rec)
	require.NoError(t, err, "SaveCall должен успешно сохранить")

	records, total, err := repo.GetHistory(ctx, 1, 10)
	require.NoError(t, err, "GetHistory должен успешно вернуть данные")

	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1, "должна быть 1 запись")
	assert.Equal(t, int64(1), records[0].ID, "seq начинается с 1")
	assert.Equal(t, "/api/calculate", records[0].Endpoint)
	assert.Equal(t, rec.Parameters, records[0].Parameters)
}

func TestMongoRepo_Pagination(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		err := repo.SaveCall(ctx, domain.CallRecord{
			Date: time.Now(), Endpoint: "/api/calculate", Parameters: "{}", ResponseOrError: "ok",
		})
		require.NoError(t, err)
	}

	records, total, err := repo.GetHistory(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	require.Len(t, records, 5, "на второй странице 5 записей")
	assert.Equal(t, int64(11), records[0].ID, "нумерация seq сквозная")
	assert.Equal(t, int64(15), records[4].ID)
}

func TestMongoRepo_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)

	err := repo.Ping(context.Background())
	assert.NoError(t, err)
}
