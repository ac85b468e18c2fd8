package ledger

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a Ledger backed by a Redis set, for deduplication that survives
// the process and can be shared across runs. SADD's return value makes Add
// atomic without any client-side locking.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis connects to the given Redis URL and uses key as the set holding
// normalized question texts.
func NewRedis(ctx context.Context, url, key string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{client: client, key: key}, nil
}

// Add inserts the normalized text, reporting whether it was newly added.
func (r *Redis) Add(ctx context.Context, text string) (bool, error) {
	added, err := r.client.SAdd(ctx, r.key, Normalize(text)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to add to redis ledger: %w", err)
	}
	return added == 1, nil
}

// Seen reports membership without inserting.
func (r *Redis) Seen(ctx context.Context, text string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.key, Normalize(text)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check redis ledger: %w", err)
	}
	return ok, nil
}

// Len returns the cardinality of the backing set.
func (r *Redis) Len(ctx context.Context) (int, error) {
	n, err := r.client.SCard(ctx, r.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read redis ledger size: %w", err)
	}
	return int(n), nil
}

// Close releases the underlying Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
