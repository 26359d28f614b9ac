package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/storage/memory"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/storage/postgres"
)

// Dependencies содержит все зависимости сервиса магазина.
type Dependencies struct {
	Catalog domain.CatalogRepository
	Cart    domain.CartRepository
	Orders  domain.OrderRepository
	Users   domain.UserRepository

	// Store задан только при работе на PostgreSQL.
	Store *postgres.Store
	// Producer задан только при настроенных брокерах Kafka.
	Producer *kafka.Producer

	Logger *log.Entry
}

// NewDependencies создаёт зависимости по конфигурации: PostgreSQL при
// заданном DSN (с накаткой миграций), иначе засеянные репозитории в
// памяти. Kafka опциональна: без брокеров события просто не публикуются.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps := &Dependencies{Logger: logger}

	if cfg.PostgresDSN != "" {
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := store.MigrateUp(ctx, 0); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}

		deps.Store = store
		deps.Catalog = postgres.NewCatalogRepository(store)
		deps.Cart = postgres.NewCartRepository(store)
		deps.Orders = postgres.NewOrderRepository(store)
		deps.Users = postgres.NewUserRepository(store)
		logger.Info("storage: postgres")
	} else {
		catalog := memory.NewCatalogRepository()
		deps.Catalog = catalog
		deps.Cart = memory.NewCartRepository(catalog)
		deps.Orders = memory.NewOrderRepository()
		deps.Users = memory.NewUserRepository()
		logger.Info("storage: in-memory with seed data")
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		} else {
			deps.Producer = producer
			logger.WithField("brokers", cfg.KafkaBrokers).Info("kafka producer initialized")
		}
	}

	return deps, nil
}

// Close освобождает внешние ресурсы зависимостей.
func (d *Dependencies) Close() {
	if d.Producer != nil {
		if err := d.Producer.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close kafka producer")
		} else {
			d.Logger.Info("kafka producer closed")
		}
	}
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close postgres store")
		}
	}
}
