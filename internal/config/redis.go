package config

import "time"

type RedisConfig struct {
	Addr     string
	Password string
	Db       int
	QuoteTTL time.Duration
}

func NewRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "redis:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		Db:       getEnvAsInt("REDIS_DB", 0),
		QuoteTTL: getEnvAsDuration("QUOTE_CACHE_TTL_SEC", 15*time.Minute),
	}
}
