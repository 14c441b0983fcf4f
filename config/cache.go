package config

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis returns a Redis client when REDIS_ADDR is set, nil otherwise.
// The room cache treats a nil client as "caching disabled", so Redis stays
// optional.
func ConnectRedis(logger *logrus.Logger) *redis.Client {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		logger.Info("REDIS_ADDR not set, room caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("redis unreachable, room caching disabled")
		return nil
	}

	logger.WithField("addr", addr).Info("redis connected")
	return client
}
