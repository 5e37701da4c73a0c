package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobpulse/internal/model"
)

const redisKeyPrefix = "posted:"

// Per-operation deadline; the pipeline treats store errors as degraded mode,
// so a hung Redis must not stall the whole cycle.
const redisOpTimeout = 5 * time.Second

// RedisStore tracks published job fingerprints in Redis. Entries carry a TTL
// equal to the retention window, so expiry needs no sweep of its own.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

type redisEntry struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Level   string `json:"level"`
}

// NewRedisStore parses redisURL, verifies connectivity, and returns a store
// whose entries expire after retention.
func NewRedisStore(ctx context.Context, redisURL string, retention time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{rdb: client, ttl: retention}, nil
}

// HasSeen returns true if the given fingerprint has a live entry.
func (s *RedisStore) HasSeen(fingerprint string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	n, err := s.rdb.Exists(ctx, redisKeyPrefix+fingerprint).Result()
	if err != nil {
		return false, fmt.Errorf("checking seen status for %s: %w", fingerprint, err)
	}
	return n > 0, nil
}

// MarkSeen records a published job. SET NX keeps the call idempotent: an
// existing entry is untouched and its TTL is not refreshed.
func (s *RedisStore) MarkSeen(job model.Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	payload, err := json.Marshal(redisEntry{
		Title:   job.Title,
		Company: job.Company,
		Level:   string(job.Level),
	})
	if err != nil {
		return fmt.Errorf("encoding entry for %s: %w", job.Fingerprint, err)
	}

	if err := s.rdb.SetNX(ctx, redisKeyPrefix+job.Fingerprint, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("marking job %s as seen: %w", job.Fingerprint, err)
	}
	return nil
}

// Expire is a no-op: Redis evicts entries via per-key TTL.
func (s *RedisStore) Expire(_ time.Duration) error {
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
