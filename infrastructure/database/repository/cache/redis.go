package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	redisClient "veriface.io/infrastructure/database/connection/cache"
	"veriface.io/infrastructure/logger"
)

var Cache = RedisRepository{}

type RedisRepository struct {
	Client *redis.Client
}

func (redisRepo *RedisRepository) preRequest() {
	if redisRepo.Client == nil {
		client, _ := redisClient.GetInstance()
		redisRepo.Client = client.Client
		logger.Info("redis repository initialisation complete")
	}
}

func (redisRepo *RedisRepository) CreateEntry(key string, payload interface{}, ttl time.Duration) bool {
	redisRepo.preRequest()
	ctx := context.Background()
	_, err := redisRepo.Client.Set(ctx, key, payload, ttl).Result()
	if err != nil {
		logger.Error("redis error occured while running CreateEntry", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return false
	}
	return true
}

func (redisRepo *RedisRepository) FindOne(key string) *string {
	redisRepo.preRequest()
	ctx := context.Background()

	result, err := redisRepo.Client.Get(ctx, key).Result()

	if err != nil {
		if err.Error() == "redis: nil" {
			return nil
		}
		logger.Error("redis error occured while running FindOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return nil
	}
	return &result
}

func (redisRepo *RedisRepository) FindOneByteArray(key string) *[]byte {
	redisRepo.preRequest()
	ctx := context.Background()

	result, err := redisRepo.Client.Get(ctx, key).Bytes()

	if err != nil {
		if err.Error() == "redis: nil" {
			return nil
		}
		logger.Error("redis error occured while running FindOneByteArray", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return nil
	}
	return &result
}

func (redisRepo *RedisRepository) DeleteOne(key string) bool {
	redisRepo.preRequest()
	ctx := context.Background()

	result, err := redisRepo.Client.Del(ctx, key).Result()

	if err != nil {
		logger.Error("redis error occured while running DeleteOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return false
	}
	return int(result) == 1
}
