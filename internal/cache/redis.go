package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	trainsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, trainsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		trainsTTL: trainsTTL,
	}
}

// GetTrains returns the cached list and the current invalidation generation.
// The list is nil on a cache miss.
func (c *RedisCache) GetTrains(ctx context.Context) ([]domain.Train, int64, error) {
	vals, err := c.client.MGet(ctx, trainsKey(), generationKey()).Result()
	if err != nil {
		return nil, 0, err
	}

	generation, err := parseGeneration(vals[1])
	if err != nil {
		return nil, 0, err
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, generation, nil
	}
	var trains []domain.Train
	if err := json.Unmarshal([]byte(raw), &trains); err != nil {
		return nil, generation, err
	}
	return trains, generation, nil
}

// SetTrains stores trains only while the generation still equals the one the
// caller read before loading them. A concurrent InvalidateTrains makes the
// write a no-op.
func (c *RedisCache) SetTrains(ctx context.Context, trains []domain.Train, generation int64) error {
	payload, err := json.Marshal(trains)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey()).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleTrains
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, trainsKey(), payload, c.trainsTTL)
			return nil
		})
		return err
	}, generationKey())

	if errors.Is(err, errStaleTrains) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// InvalidateTrains drops the cached list and bumps the generation.
func (c *RedisCache) InvalidateTrains(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey())
		pipe.Del(ctx, trainsKey())
		return nil
	})
	return err
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

var errStaleTrains = errors.New("trains cache generation moved")

func parseGeneration(v interface{}) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

func trainsKey() string {
	return "cache:trains"
}

func generationKey() string {
	return "cache:trains:generation"
}
