package quote

import (
	"context"
	"fmt"
	"stockwatch/internal/model"

	"github.com/piquette/finance-go/equity"
)

var _ Fetcher = &YahooFetcher{}

// YahooFetcher fetches quotes from Yahoo Finance. The suffix is appended
// to every symbol before lookup ("RELIANCE" -> "RELIANCE.NS").
type YahooFetcher struct {
	suffix string
}

func NewYahooFetcher(suffix string) *YahooFetcher {
	return &YahooFetcher{suffix: suffix}
}

func (y *YahooFetcher) Fetch(_ context.Context, symbol string) (model.Quote, error) {
	eq, err := equity.Get(symbol + y.suffix)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	if eq == nil {
		return model.Quote{}, fmt.Errorf("no quote found for %s", symbol)
	}

	return model.Quote{
		Symbol:           symbol,
		Price:            eq.RegularMarketPrice,
		FiftyTwoWeekHigh: eq.FiftyTwoWeekHigh,
		TrailingPE:       eq.TrailingPE,
		PriceToBook:      eq.PriceToBook,
	}, nil
}
