package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/GoSim-25-26J-441/mongo-gateway/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoOptions struct {
	URI    string
	PingTO time.Duration
}

// OpenMongo creates the process-wide client. Connecting is lazy in the
// driver, so an unreachable server does not stop startup; the ping result
// is only logged and requests fail individually until the server is up.
func OpenMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	return openMongo(ctx, MongoOptions{URI: cfg.URI()}, cfg.Redacted())
}

func openMongo(ctx context.Context, opt MongoOptions, display string) (*mongo.Client, error) {
	if opt.URI == "" {
		return nil, fmt.Errorf("mongo uri is not set")
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opt.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		log.Printf("Warning: mongo not reachable at %s yet: %v", display, err)
	} else {
		log.Printf("Connected to mongo at %s", display)
	}

	return client, nil
}
