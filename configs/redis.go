package configs

import (
	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds the shared Redis client used for the redemption
// marker store and the status-broadcast relay.
func ConnectRedis(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
}
