package wire

import (
	"os"
	"sync"

	"pushbridge/cmd/config"
	"pushbridge/internal/infra/cache"
	"pushbridge/internal/infra/pubsub"
	"pushbridge/internal/infra/sql"
)

// Injectors run once per controller but the admin has a single database,
// cache, and event stream. The providers below are once-guarded so every
// injector receives the same instance; without this the local environment
// would hand each controller its own in-memory sqlite and ristretto.
var (
	databaseOnce     sync.Once
	databaseInstance sql.ORM

	cacheOnce     sync.Once
	cacheInstance cache.Cache

	pubSubFactoryOnce     sync.Once
	pubSubFactoryInstance *pubsub.Factory
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func environment() string {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}
	return env
}

func provideDatabase(cfg config.AppConfig) sql.ORM {
	databaseOnce.Do(func() {
		if environment() == "local" {
			orm, err := sql.NewMemoryORM()
			if err != nil {
				panic(err)
			}
			databaseInstance = orm
			return
		}

		orm, err := sql.NewPostgresORM(cfg.Postgresql.DSN)
		if err != nil {
			panic(err)
		}
		databaseInstance = orm
	})

	return databaseInstance
}

func providePubSubFactory(cfg config.AppConfig) *pubsub.Factory {
	pubSubFactoryOnce.Do(func() {
		pubSubFactoryInstance = pubsub.NewFactory(pubsub.FactoryOptions{
			Environment:   environment(),
			KafkaBrokers:  cfg.Kafka.Brokers,
			ConsumerGroup: cfg.Kafka.Group,
		})
	})

	return pubSubFactoryInstance
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideCache(cfg config.AppConfig) cache.Cache {
	cacheOnce.Do(func() {
		if environment() == "local" {
			memoryCache, err := cache.NewMemoryCache()
			if err != nil {
				panic(err)
			}
			cacheInstance = memoryCache
			return
		}

		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			panic(err)
		}
		cacheInstance = redisCache
	})

	return cacheInstance
}
