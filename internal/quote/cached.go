package quote

import (
	"context"
	"errors"
	"log/slog"
	"stockwatch/internal/cache"
	"stockwatch/internal/lib/sl"
	"stockwatch/internal/model"
)

var _ Fetcher = &CachedFetcher{}

// CachedFetcher serves quotes from the cache when present and falls back
// to the upstream fetcher otherwise. Cache failures are logged, never fatal.
type CachedFetcher struct {
	upstream Fetcher
	cache    *cache.Redis
}

func NewCachedFetcher(upstream Fetcher, cache *cache.Redis) *CachedFetcher {
	return &CachedFetcher{upstream: upstream, cache: cache}
}

func (c *CachedFetcher) Fetch(ctx context.Context, symbol string) (model.Quote, error) {
	cached, err := c.cache.GetQuote(ctx, symbol)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		slog.Warn("failed to read quote from cache", slog.String("symbol", symbol), sl.Error(err))
	}

	quote, err := c.upstream.Fetch(ctx, symbol)
	if err != nil {
		return model.Quote{}, err
	}

	if err := c.cache.SetQuote(ctx, quote); err != nil {
		slog.Warn("failed to cache quote", slog.String("symbol", symbol), sl.Error(err))
	}

	return quote, nil
}
