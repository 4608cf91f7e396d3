package publisher

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tweetsense/sentiment-api/internal/domain/service"
)

// RedisPublisher publishes messages on Redis Pub/Sub channels
type RedisPublisher struct {
	client redis.UniversalClient
}

// NewRedisPublisher creates a publisher backed by client
func NewRedisPublisher(client redis.UniversalClient) service.Publisher {
	return &RedisPublisher{client: client}
}

// Publish sends message to the topic channel. Having no subscribers is not an error.
func (p *RedisPublisher) Publish(ctx context.Context, topic, message string) error {
	if err := p.client.Publish(ctx, topic, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}
