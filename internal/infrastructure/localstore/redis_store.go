package localstore

import (
	"context"
	"errors"
	"fmt"

	"health-tracker/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore backs the key-value store with a Redis instance, for installs
// that already run one locally.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(key string) (string, bool, error) {
	value, err := s.client.Get(context.Background(), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(key, value string) error {
	return s.client.Set(context.Background(), key, value, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
