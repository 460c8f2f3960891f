package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/GoSim-25-26J-441/mongo-gateway/config"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/events"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/repository"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/storage/postgres"
	"github.com/redis/go-redis/v9"
)

// OpenStore creates the store selected by STORE_BACKEND. The returned func
// releases the underlying handle.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, func(), error) {
	switch cfg.App.StoreBackend {
	case config.BackendPostgres:
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewPostgresStore(db, config.CollectionName)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Printf("Using postgres store at %s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
		return store, func() { db.Close() }, nil

	case config.BackendMongo:
		client, err := OpenMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewMongoStoreFromClient(client, config.DatabaseName, config.CollectionName)
		closeFn := func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				log.Printf("mongo disconnect: %v", err)
			}
		}
		return store, closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.App.StoreBackend)
	}
}

// OpenPublisher returns a Redis publisher when REDIS_ADDR is set and a no-op
// publisher otherwise. An unreachable Redis is logged, not fatal.
func OpenPublisher(ctx context.Context, cfg *config.Config) (events.Publisher, func()) {
	if !cfg.EventsEnabled() {
		return events.NoopPublisher{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		log.Printf("Warning: redis not reachable at %s: %v", cfg.Redis.Addr, err)
	} else {
		log.Printf("Publishing entry events to redis %s channel %s", cfg.Redis.Addr, events.StoredChannel)
	}

	return events.NewRedisPublisher(client), func() { _ = client.Close() }
}
