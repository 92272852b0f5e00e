package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clarityflow/internal/appointment"
	"clarityflow/internal/company"
	"clarityflow/internal/config"
	"clarityflow/internal/domain"
	"clarityflow/internal/events"
	"clarityflow/internal/messaging/kafka/producer"
	"clarityflow/internal/sale"
	"clarityflow/internal/shared/storage"
	"clarityflow/internal/task"
	"clarityflow/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp merakit infrastruktur (storage substrate, publisher) lalu
// mendaftarkan semua module beserta routes-nya ke router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	store, err := buildStore(cfg)
	if err != nil {
		return err
	}
	zap.L().Info("storage substrate ready", zap.String("driver", cfg.StorageDriver))

	if err := seedCollections(context.Background(), store); err != nil {
		return err
	}

	var publisher events.Publisher
	if cfg.KafkaBrokers != "" {
		writer := producer.NewWriter(strings.Split(cfg.KafkaBrokers, ","))
		publisher = producer.NewKafkaPublisher(writer)
		zap.L().Info("kafka publisher ready", zap.String("brokers", cfg.KafkaBrokers))
	}

	return registerModules(router, cfg, store, publisher)
}

func buildStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(cfg.StorageDir)
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		return storage.NewRedisStore(rdb, "clarityflow"), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// seedCollections memastikan tiap koleksi punya nilai awal; set-if-absent,
// data yang sudah ada tidak pernah ditimpa.
func seedCollections(ctx context.Context, store storage.Store) error {
	seeds := []struct {
		key   string
		value any
	}{
		{task.StorageKey, []task.Task{}},
		{appointment.StorageKey, []appointment.Appointment{}},
		{sale.StorageKey, []sale.Sale{}},
		{user.StorageKey, []domain.User{}},
		{company.StorageKey, []company.Company{}},
	}

	for _, seed := range seeds {
		if err := storage.Initialize(ctx, store, seed.key, seed.value); err != nil {
			return fmt.Errorf("seed %s: %w", seed.key, err)
		}
	}
	return nil
}
