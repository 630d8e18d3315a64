package models

import (
	"context"
	"log"

	"city-portal/config"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis attaches the query-cache backend. Any failure leaves
// RedisClient nil and the portal runs without a cache.
func InitRedis() {
	cfg := config.AppConfig
	if cfg == nil {
		log.Println("Configuration not loaded, running without cache")
		return
	}

	var opt *redis.Options
	if cfg.RedisURL != "" {
		parsedOpt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	}

	RedisClient = redis.NewClient(opt)

	_, err := RedisClient.Ping(context.Background()).Result()
	if err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		RedisClient = nil
		return
	}

	log.Println("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
