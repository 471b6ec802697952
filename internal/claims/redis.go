package claims

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "ticket-claimer:claims"

type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	Key         string
	DialTimeout time.Duration
}

// RedisSet stores claims in a Redis set, for deployments without a durable local disk.
type RedisSet struct {
	client *redis.Client
	key    string
}

// NewRedisSet connects and pings the server before returning.
func NewRedisSet(ctx context.Context, cfg RedisConfig) (*RedisSet, error) {
	if cfg.Key == "" {
		cfg.Key = DefaultRedisKey
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return &RedisSet{client: client, key: cfg.Key}, nil
}

func (s *RedisSet) Contains(ctx context.Context, id string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.key, id).Result()
	if err != nil {
		return false, fmt.Errorf("checking claim %s: %w", id, err)
	}
	return ok, nil
}

func (s *RedisSet) Add(ctx context.Context, id string) error {
	if err := s.client.SAdd(ctx, s.key, id).Err(); err != nil {
		return fmt.Errorf("recording claim %s: %w", id, err)
	}
	return nil
}

// IDs returns every claimed id, in no particular order.
func (s *RedisSet) IDs(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}

func (s *RedisSet) Close() error {
	return s.client.Close()
}
