package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StoredChannel is the Pub/Sub channel for entry-stored events
const StoredChannel = "docgw:entries:stored"

// EntryStored is published after a document is written
type EntryStored struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	StoredAt time.Time `json:"stored_at"`
}

type Publisher interface {
	PublishStored(ctx context.Context, ev EntryStored) error
}

// NoopPublisher is used when no Redis address is configured
type NoopPublisher struct{}

func (NoopPublisher) PublishStored(context.Context, EntryStored) error { return nil }

// RedisPublisher fans events out over Redis Pub/Sub
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client, channel: StoredChannel}
}

func (p *RedisPublisher) PublishStored(ctx context.Context, ev EntryStored) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}
