package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"percentCalc/internal/api/http"
	"percentCalc/internal/infrastructure/click"
	"percentCalc/internal/infrastructure/kafka"
	"percentCalc/internal/infrastructure/mongo"
	"percentCalc/internal/infrastructure/pg"
	"percentCalc/internal/infrastructure/redis"
)

const AppName = "PERCENT"

// Хранилища истории вызовов (PERCENT_STORAGE).
const (
	StoragePg    = "pg"
	StorageMongo = "mongo"
)

// Config — конфиг приложения. Заполняется через envconfig с префиксом PERCENT.
type Config struct {
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	Storage    string            `envconfig:"STORAGE" default:"pg"` // pg или mongo
	Percentage float64           `envconfig:"STUB_PERCENTAGE" default:"10.0"`
	Analytics  bool              `envconfig:"ANALYTICS_ENABLED" default:"true"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	DB         pg.Config         `envconfig:"DB"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
