package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/teamcut/teamcut/pkg/observability"
)

const (
	redisKeyPrefix = "teamcut:result:"
	redisIndexKey  = "teamcut:results"
)

// RedisConfig configures the Redis-backed store.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RedisStore persists records in Redis. Records are stored as JSON values
// under teamcut:result:<id>, with a set of IDs for listing.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Put stores a record.
func (s *RedisStore) Put(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+rec.ID, data, 0)
	pipe.SAdd(ctx, redisIndexKey, rec.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store record %s: %w", rec.ID, err)
	}
	observability.Store().OnPut(ctx, "redis", len(rec.Teams))
	return nil
}

// Get retrieves a record by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (Record, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.Store().OnGet(ctx, "redis", false)
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get record %s: %w", id, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("unmarshal record %s: %w", id, err)
	}
	observability.Store().OnGet(ctx, "redis", true)
	return rec, nil
}

// List returns all records, newest first.
func (s *RedisStore) List(ctx context.Context) ([]Record, error) {
	ids, err := s.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = redisKeyPrefix + id
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}

	out := make([]Record, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			continue // Index entry without a value; skip
		}
		var rec Record
		if err := json.Unmarshal([]byte(str), &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a record.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisKeyPrefix+id)
	pipe.SRem(ctx, redisIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	observability.Store().OnDelete(ctx, "redis")
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
