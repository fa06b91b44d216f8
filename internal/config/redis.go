package config

import (
	"os"
	"time"
)

type RedisConfig struct {
	DB          int
	Url         string
	Password    string
	QuestionTTL time.Duration
}

func NewRedisConfig() *RedisConfig {
	url := os.Getenv("REDIS_ADDR")
	if url == "" {
		url = "localhost:6379"
	}
	return &RedisConfig{
		DB:          getEnvInt("REDIS_DB", 0),
		Url:         url,
		Password:    os.Getenv("REDIS_PASSWORD"),
		QuestionTTL: time.Duration(getEnvInt("QUESTION_CACHE_TTL_SEC", 600)) * time.Second,
	}
}
