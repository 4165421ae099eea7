package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/config"
)

// NewRedis returns a connected client, or nil when no address is configured.
// A nil client simply disables the list cache.
func NewRedis(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: 100,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("Redis unavailable, list cache disabled: %v", err)
		return nil
	}

	log.Println("Redis connection successfully established.")
	return rdb
}
