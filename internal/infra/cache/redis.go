package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/heritagecuts/barbershop-api/internal/config"
)

// NewRedisClient connects to redis when REDIS_ADDR is configured. A nil
// return disables caching; callers must degrade to uncached operation.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// Listing is a small JSON value cache used in front of the bucket
// listing tier of the gallery. All operations are best-effort: a nil
// client or a redis error just reports a miss.
type Listing struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListing(client *redis.Client, ttl time.Duration) *Listing {
	return &Listing{client: client, ttl: ttl}
}

func (l *Listing) Get(ctx context.Context, key string, dest any) bool {
	if l == nil || l.client == nil {
		return false
	}

	raw, err := l.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (l *Listing) Set(ctx context.Context, key string, value any) {
	if l == nil || l.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	l.client.Set(ctx, key, raw, l.ttl)
}
