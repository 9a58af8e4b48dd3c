package cache

import (
	"os"
	"sync"

	"github.com/redis/go-redis/v9"

	"veriface.io/infrastructure/logger"
)

type RedisClient struct {
	Client *redis.Client
}

var (
	instance *RedisClient
	once     sync.Once
)

func ConnectToCache() {
	GetInstance()
}

func GetInstance() (*RedisClient, error) {
	once.Do(func() {
		instance = &RedisClient{
			Client: redis.NewClient(&redis.Options{
				Addr:     os.Getenv("REDIS_ADDR"),
				Password: os.Getenv("REDIS_PASSWORD"),
				DB:       0,
				PoolSize: 10,
			}),
		}
		logger.Info("connected to redis successfully")
	})
	return instance, nil
}
