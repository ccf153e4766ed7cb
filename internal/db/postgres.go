package db

import (
	"context"
	"database/sql"
	"fmt"
	"stockwatch/internal/repository"
	repo "stockwatch/internal/repository/postgres"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const stocksScheme = `
CREATE TABLE IF NOT EXISTS stocks(
	symbol VARCHAR(20) PRIMARY KEY,
	company_name TEXT,
	industry TEXT,
	isin TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

type Postgres struct {
	db     *sql.DB
	stocks repository.StocksProvider
}

func NewPostgres(url string) (*Postgres, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err = db.ExecContext(ctx, stocksScheme); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Postgres{
		db:     db,
		stocks: repo.NewStocksRepo(db),
	}, nil
}

func (p *Postgres) DB() *sql.DB {
	return p.db
}

func (p *Postgres) StocksRepo() repository.StocksProvider {
	return p.stocks
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
