package reader

import (
	"context"
	"stockwatch/internal/model"
	"stockwatch/internal/service"
)

type SQLReader struct {
	stocks *service.StocksService
}

func NewSQLReader(stocks *service.StocksService) *SQLReader {
	return &SQLReader{stocks: stocks}
}

func (r *SQLReader) ReadAll(ctx context.Context) ([]model.Stock, error) {
	return r.stocks.GetAllStocks(ctx)
}

func (r *SQLReader) ReadByIndustry(ctx context.Context, industry string) ([]model.Stock, error) {
	return r.stocks.GetStocksByIndustry(ctx, industry)
}
