package cache

import (
	"context"
	"errors"
	"stockwatch/internal/config"
	"stockwatch/internal/model"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestCache(t *testing.T, ttl time.Duration) *Redis {
	t.Helper()

	mr := miniredis.RunT(t)
	cache, err := NewRedis(config.RedisConfig{Addr: mr.Addr(), QuoteTTL: ttl})
	if err != nil {
		t.Fatalf("NewRedis failed: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestQuoteRoundTrip(t *testing.T) {
	cache := newTestCache(t, time.Minute)
	ctx := context.Background()

	quote := model.Quote{
		Symbol:           "TCS",
		Price:            3500.5,
		FiftyTwoWeekHigh: 4200,
		TrailingPE:       28.1,
		PriceToBook:      12.5,
	}
	if err := cache.SetQuote(ctx, quote); err != nil {
		t.Fatalf("SetQuote failed: %v", err)
	}

	got, err := cache.GetQuote(ctx, "TCS")
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}
	if got != quote {
		t.Errorf("GetQuote = %+v, want %+v", got, quote)
	}

	exists, err := cache.HasQuote(ctx, "TCS")
	if err != nil {
		t.Fatalf("HasQuote failed: %v", err)
	}
	if !exists {
		t.Error("expected quote to exist")
	}
}

func TestGetQuoteMissing(t *testing.T) {
	cache := newTestCache(t, time.Minute)

	_, err := cache.GetQuote(context.Background(), "MISSING")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteQuote(t *testing.T) {
	cache := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := cache.SetQuote(ctx, model.Quote{Symbol: "INFY", Price: 1500}); err != nil {
		t.Fatalf("SetQuote failed: %v", err)
	}
	if err := cache.DeleteQuote(ctx, "INFY"); err != nil {
		t.Fatalf("DeleteQuote failed: %v", err)
	}

	exists, err := cache.HasQuote(ctx, "INFY")
	if err != nil {
		t.Fatalf("HasQuote failed: %v", err)
	}
	if exists {
		t.Error("expected quote to be deleted")
	}
}

func TestQuoteExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	cache, err := NewRedis(config.RedisConfig{Addr: mr.Addr(), QuoteTTL: time.Minute})
	if err != nil {
		t.Fatalf("NewRedis failed: %v", err)
	}
	defer cache.Close()
	ctx := context.Background()

	if err := cache.SetQuote(ctx, model.Quote{Symbol: "SBIN", Price: 600}); err != nil {
		t.Fatalf("SetQuote failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, err = cache.GetQuote(ctx, "SBIN")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after expiry, got %v", err)
	}
}
