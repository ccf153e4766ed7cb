package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"stockwatch/internal/config"
	"stockwatch/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("not found in cache")

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(cfg config.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.Db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{client: client, ttl: cfg.QuoteTTL}, nil
}

func quoteKey(symbol string) string {
	return "quote:" + symbol
}

func (r *Redis) GetQuote(ctx context.Context, symbol string) (model.Quote, error) {
	body, err := r.client.Get(ctx, quoteKey(symbol)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Quote{}, ErrNotFound
		}
		return model.Quote{}, err
	}

	var quote model.Quote
	if err := json.Unmarshal(body, &quote); err != nil {
		return model.Quote{}, fmt.Errorf("failed to parse cached quote: %w", err)
	}
	return quote, nil
}

func (r *Redis) SetQuote(ctx context.Context, quote model.Quote) error {
	body, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}
	return r.client.Set(ctx, quoteKey(quote.Symbol), body, r.ttl).Err()
}

func (r *Redis) HasQuote(ctx context.Context, symbol string) (bool, error) {
	n, err := r.client.Exists(ctx, quoteKey(symbol)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Redis) DeleteQuote(ctx context.Context, symbol string) error {
	return r.client.Del(ctx, quoteKey(symbol)).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
