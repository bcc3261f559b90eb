package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClients     = make(map[string]*redis.Client)
	redisClientMutex sync.Mutex
)

var RedisTimeout = 5 * time.Second

func RedisHelper(connectionUrl string) (*redis.Client, error) {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	if client, exists := redisClients[connectionUrl]; exists {
		return client, nil
	}

	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.PoolSize = 50
	opt.MinIdleConns = 5
	opt.ConnMaxIdleTime = 200 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	redisClients[connectionUrl] = client

	slog.Info("Connected to Redis", "addr", opt.Addr)

	return client, nil
}

func DisconnectRedis() {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	for url, client := range redisClients {
		if err := client.Close(); err != nil {
			slog.Error("Error disconnecting from Redis", "error", err)
		} else {
			slog.Info("Disconnected from Redis")
		}
		delete(redisClients, url)
	}
}
