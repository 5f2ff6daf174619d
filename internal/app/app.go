package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "percentCalc/internal/api/http"
	"percentCalc/internal/api/http/controllers/percentage"
	"percentCalc/internal/api/http/controllers/system"
	"percentCalc/internal/infrastructure/click"
	"percentCalc/internal/infrastructure/external"
	"percentCalc/internal/infrastructure/kafka"
	"percentCalc/internal/infrastructure/mongo"
	"percentCalc/internal/infrastructure/pg"
	"percentCalc/internal/infrastructure/redis"
	"percentCalc/internal/pkg/logger"
	"percentCalc/internal/ports"
	percentageUsecase "percentCalc/internal/usecase/percentage"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (подключения поднимаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключается к хранилищам, инициализирует зависимости и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()

	// История вызовов: PostgreSQL по умолчанию, Mongo по конфигу.
	var repo ports.ICallHistoryRepository
	switch a.cfg.Storage {
	case StorageMongo:
		mcli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
		defer mcli.Close(context.Background())
		repo = mongo.NewCallHistoryRepo(mcli, log)
	case StoragePg:
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		defer db.Close()
		if err := pg.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		repo = pg.NewCallHistoryRepo(db, log)
	default:
		return fmt.Errorf("unknown storage: %q", a.cfg.Storage)
	}

	cache := redis.NewCache(rdb, log)
	provider := external.NewStubProvider(a.cfg.Percentage, log)

	// Аналитика: продюсер шлёт события аудита в Kafka, консьюмер пишет их в ClickHouse.
	// Подключение продюсера ленивое; ClickHouse проверяется на старте, и при
	// отключённой аналитике весь контур не поднимается.
	var broker ports.IProducer
	var analytics ports.ICallAnalytics
	var consumerCfg *kafka.Config
	if a.cfg.Analytics {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		defer producer.Close()
		broker = producer

		ch, err := click.New(&a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		writer := click.NewCallWriter(ch)
		if err := writer.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse ensure table: %w", err)
		}
		analytics = writer
		consumerCfg = &a.cfg.Kafka
	}

	uc := percentageUsecase.New(repo, cache, provider, broker, analytics, log)

	if consumerCfg != nil {
		consumer := kafka.NewConsumer(consumerCfg, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
				slog.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(repo, log),
		percentage.New(uc, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", httpAddr, "storage", a.cfg.Storage)

	return srv.Start(ctx)
}
