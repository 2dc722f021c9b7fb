package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AudienceAll is the wildcard selector meaning "every subscriber".
const AudienceAll = "*"

// Publisher pushes created messages to interested parties. Best-effort,
// at-most-once per call: callers must never fail their own operation on a
// publish error.
type Publisher interface {
	Publish(ctx context.Context, audience []int64, routingKey string, payload any) error
}

// Envelope is what travels on the channel. Audience is either the explicit
// user-id list or the AudienceAll wildcard; subscribers filter on it.
type Envelope struct {
	Audience any    `json:"audience"`
	Name     string `json:"name"`
	Payload  any    `json:"payload"`
}

type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher connects to Redis and verifies the connection before
// returning, so a misconfigured broker fails at startup rather than on the
// first message.
func NewRedisPublisher(redisURL, password string) (*RedisPublisher, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisPublisher{client: rdb}, nil
}

// Publish marshals the envelope and publishes it on the routing-key channel.
// An empty audience list is sent as the wildcard.
func (p *RedisPublisher) Publish(ctx context.Context, audience []int64, routingKey string, payload any) error {
	var aud any = audience
	if len(audience) == 0 {
		aud = AudienceAll
	}

	data, err := json.Marshal(Envelope{
		Audience: aud,
		Name:     routingKey,
		Payload:  payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	return p.client.Publish(ctx, routingKey, data).Err()
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
