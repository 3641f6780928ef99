package notify

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher fans events out on a pub/sub channel consumed by the
// notification workers.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, payload).Err()
}

var _ Publisher = (*RedisPublisher)(nil)
