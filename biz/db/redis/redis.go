package redis

import (
	"context"
	"fmt"

	"venue_tracker/be/biz/config"

	"github.com/redis/go-redis/v9"
)

func New(conf config.RedisConf) *redis.Client {
	ip := conf.IP
	if ip == "" {
		ip = "127.0.0.1"
	}
	port := conf.Port
	if port == 0 {
		port = 6379
	}
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", ip, port),
		Password: conf.Password,
		DB:       conf.DB,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
