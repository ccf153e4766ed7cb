package repository

import (
	"context"
	"stockwatch/internal/model"
)

type StocksProvider interface {
	AddStock(ctx context.Context, stock model.Stock) error
	AddStocks(ctx context.Context, stocks []model.Stock) error

	GetStockBySymbol(ctx context.Context, symbol string) (model.Stock, error)
	GetAllStocks(ctx context.Context) ([]model.Stock, error)
	GetStocksByIndustry(ctx context.Context, industry string) ([]model.Stock, error)
}
