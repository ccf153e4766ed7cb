package reader

import (
	"context"
	"fmt"
	"stockwatch/internal/config"
	"stockwatch/internal/model"
	"stockwatch/internal/service"
)

// StocksReader is the read-side abstraction over the stock universe.
// The universe may live in a database or in the consolidated CSV file,
// depending on deployment.
type StocksReader interface {
	ReadAll(ctx context.Context) ([]model.Stock, error)
	ReadByIndustry(ctx context.Context, industry string) ([]model.Stock, error)
}

func New(cfg config.ReaderConfig, stocks *service.StocksService) (StocksReader, error) {
	switch cfg.DataStore {
	case "file":
		return NewFileReader(cfg.AllStocksFile), nil
	case "sql":
		return NewSQLReader(stocks), nil
	default:
		return nil, fmt.Errorf("unknown data store %q", cfg.DataStore)
	}
}
