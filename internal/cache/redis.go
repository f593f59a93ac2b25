package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/evseevdm/laundrobook/config"
	"github.com/evseevdm/laundrobook/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client       *redis.Client
	laundriesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, laundriesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:       redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		laundriesTTL: laundriesTTL,
	}
}

func (c *RedisCache) GetLaundries(ctx context.Context) ([]domain.Laundry, error) {
	data, err := c.client.Get(ctx, laundriesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var laundries []domain.Laundry
	if err := json.Unmarshal(data, &laundries); err != nil {
		return nil, err
	}
	return laundries, nil
}

func (c *RedisCache) SetLaundries(ctx context.Context, laundries []domain.Laundry) error {
	payload, err := json.Marshal(laundries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, laundriesKey(), payload, c.laundriesTTL).Err()
}

// InvalidateLaundries drops the listing cache after any laundry mutation.
func (c *RedisCache) InvalidateLaundries(ctx context.Context) error {
	return c.client.Del(ctx, laundriesKey()).Err()
}

func laundriesKey() string {
	return "cache:laundries"
}
