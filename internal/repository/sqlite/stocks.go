package sqlite

import (
	"context"
	"database/sql"
	"stockwatch/internal/model"
	"strings"
)

type StocksRepo struct {
	db *sql.DB
}

func NewStocksRepo(db *sql.DB) *StocksRepo {
	return &StocksRepo{db}
}

func (r *StocksRepo) AddStock(ctx context.Context, stock model.Stock) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO stocks (symbol, company_name, industry, isin)
		VALUES (?, ?, ?, ?)`,
		stock.Symbol, stock.CompanyName, stock.Industry, stock.Isin,
	)
	return err
}

func (r *StocksRepo) AddStocks(ctx context.Context, stocks []model.Stock) error {
	if len(stocks) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO stocks (symbol, company_name, industry, isin) VALUES ")
	args := make([]any, 0, len(stocks)*4)
	for i, stock := range stocks {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(?, ?, ?, ?)")
		args = append(args, stock.Symbol, stock.CompanyName, stock.Industry, stock.Isin)
	}
	b.WriteString(" ON CONFLICT (symbol) DO NOTHING")

	_, err := r.db.ExecContext(ctx, b.String(), args...)
	return err
}

func (r *StocksRepo) GetStockBySymbol(ctx context.Context, symbol string) (model.Stock, error) {
	var stock model.Stock
	err := r.db.QueryRowContext(
		ctx,
		`SELECT symbol, company_name, industry, isin, created_at
		FROM stocks
		WHERE symbol = ?`,
		symbol,
	).Scan(&stock.Symbol, &stock.CompanyName, &stock.Industry, &stock.Isin, &stock.CreatedAt)
	return stock, err
}

func (r *StocksRepo) GetAllStocks(ctx context.Context) ([]model.Stock, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT symbol, company_name, industry, isin, created_at
		FROM stocks
		ORDER BY symbol`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStocks(rows)
}

func (r *StocksRepo) GetStocksByIndustry(
	ctx context.Context,
	industry string,
) ([]model.Stock, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT symbol, company_name, industry, isin, created_at
		FROM stocks
		WHERE industry = ?
		ORDER BY symbol`,
		industry,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStocks(rows)
}

func scanStocks(rows *sql.Rows) ([]model.Stock, error) {
	var stocks []model.Stock
	for rows.Next() {
		var stock model.Stock

		err := rows.Scan(
			&stock.Symbol,
			&stock.CompanyName,
			&stock.Industry,
			&stock.Isin,
			&stock.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		stocks = append(stocks, stock)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stocks, nil
}
