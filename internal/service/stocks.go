package service

import (
	"context"
	"database/sql"
	"errors"
	"stockwatch/internal/config"
	"stockwatch/internal/model"
	"stockwatch/internal/repository"
)

type StocksService struct {
	stocks repository.StocksProvider
	config config.CommonConfig
}

func NewStocksService(
	stocks repository.StocksProvider,
	config config.CommonConfig,
) *StocksService {
	return &StocksService{
		stocks: stocks,
		config: config,
	}
}

func (s *StocksService) AddStock(ctx context.Context, stock model.Stock) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.DbQueryTimeoutSec)
	defer cancel()

	return s.stocks.AddStock(ctx, stock)
}

func (s *StocksService) AddStocks(ctx context.Context, stocks []model.Stock) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.DbQueryTimeoutSec)
	defer cancel()

	return s.stocks.AddStocks(ctx, stocks)
}

func (s *StocksService) GetStockBySymbol(ctx context.Context, symbol string) (*model.Stock, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.DbQueryTimeoutSec)
	defer cancel()

	stock, err := s.stocks.GetStockBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}

func (s *StocksService) GetAllStocks(ctx context.Context) ([]model.Stock, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.DbQueryTimeoutSec)
	defer cancel()

	return s.stocks.GetAllStocks(ctx)
}

func (s *StocksService) GetStocksByIndustry(
	ctx context.Context,
	industry string,
) ([]model.Stock, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.DbQueryTimeoutSec)
	defer cancel()

	return s.stocks.GetStocksByIndustry(ctx, industry)
}
