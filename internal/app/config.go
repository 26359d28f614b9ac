package app

import (
	"os"
	"strings"
)

// Config описывает настройки запуска сервиса магазина.
type Config struct {
	HTTPAddr     string
	MetricsAddr  string
	PostgresDSN  string
	KafkaBrokers []string
}

// DefaultConfig возвращает базовые адреса API и HTTP-метрик.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8000",
		MetricsAddr: ":9090",
	}
}

// ConfigFromEnv собирает конфигурацию из переменных окружения поверх
// значений по умолчанию. Пустой MALL_POSTGRES_DSN означает работу на
// репозиториях в памяти, пустой KAFKA_BROKERS — без публикации событий.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("MALL_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("MALL_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("MALL_POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		for _, broker := range strings.Split(v, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
			}
		}
	}
	return cfg
}
