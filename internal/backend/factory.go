// Package backend builds the persistence gateway and feedback notifier
// selected by configuration.
package backend

import (
	"fmt"

	"budgetly/internal/amqp"
	"budgetly/internal/config"
	"budgetly/internal/database"
	"budgetly/internal/logger"
	"budgetly/internal/services"
	"budgetly/internal/storage"
	"budgetly/internal/storage/memory"
	"budgetly/internal/storage/mongostore"
	"budgetly/internal/storage/redisstore"
	"budgetly/internal/storage/sqlstore"
)

// Result is a ready-to-use gateway plus the function that releases it.
type Result struct {
	Gateway  storage.Gateway
	Notifier services.FeedbackNotifier
	Cleanup  func()
}

// Close runs the cleanup function, if any.
func (r *Result) Close() {
	if r.Cleanup != nil {
		r.Cleanup()
	}
}

// Open creates the gateway for cfg.StorageBackend. SQL backends are migrated
// before they are returned. When AMQP_URL is set a feedback publisher is
// attached; failing to reach the broker only disables delivery.
func Open(cfg *config.Config) (*Result, error) {
	log := logger.Named("backend")

	var (
		gateway storage.Gateway
		cleanup []func()
	)

	switch cfg.StorageBackend {
	case config.BackendMemory:
		gateway = memory.New()

	case config.BackendSQLite, config.BackendPostgres:
		dbConfig, err := database.NewConfig(cfg)
		if err != nil {
			return nil, err
		}
		manager, err := database.NewManager(dbConfig)
		if err != nil {
			return nil, err
		}
		if err := manager.RunMigrations(); err != nil {
			manager.Close()
			return nil, err
		}
		gateway = sqlstore.New(manager.DB())
		cleanup = append(cleanup, func() { manager.Close() })

	case config.BackendRedis:
		client, err := redisstore.Connect(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		store := redisstore.New(client, redisstore.DefaultPrefix)
		gateway = store
		cleanup = append(cleanup, func() { store.Close() })

	case config.BackendMongo:
		client, err := mongostore.Connect(cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		store := mongostore.New(client, cfg.MongoDatabase)
		gateway = store
		cleanup = append(cleanup, func() { store.Close() })

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}

	result := &Result{Gateway: gateway}

	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			log.Warnw("failed to initialize AMQP client, continuing without feedback delivery", "error", err)
		} else {
			result.Notifier = client
			cleanup = append(cleanup, func() { client.Close() })
			log.Infow("initialized AMQP client", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	result.Cleanup = func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}

	log.Infow("initialized storage backend",
		"backend", cfg.StorageBackend,
		"feedback_delivery", result.Notifier != nil,
	)
	return result, nil
}
