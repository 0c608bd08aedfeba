package cache

import (
	"context"
	"encoding/json"
	"time"

	"cinebooking/config"
	"cinebooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetMovies(ctx context.Context, key string) ([]domain.MovieInfo, error) {
	data, err := c.client.Get(ctx, movieKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var movies []domain.MovieInfo
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *RedisCache) SetMovies(ctx context.Context, key string, movies []domain.MovieInfo) error {
	payload, err := json.Marshal(movies)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, movieKey(key), payload, c.ttl).Err()
}

func movieKey(key string) string {
	return "cache:movies:" + key
}
