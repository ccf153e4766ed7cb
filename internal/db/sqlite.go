package db

import (
	"context"
	"database/sql"
	"fmt"
	"stockwatch/internal/repository"
	repo "stockwatch/internal/repository/sqlite"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteStocksScheme = `
CREATE TABLE IF NOT EXISTS stocks(
	symbol VARCHAR(20) PRIMARY KEY,
	company_name TEXT,
	industry TEXT,
	isin TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

type SQLite struct {
	db     *sql.DB
	stocks repository.StocksProvider
}

func NewSQLite(dataSourceName string) (*SQLite, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err = db.ExecContext(ctx, sqliteStocksScheme); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &SQLite{
		db:     db,
		stocks: repo.NewStocksRepo(db),
	}, nil
}

func (s *SQLite) DB() *sql.DB {
	return s.db
}

func (s *SQLite) StocksRepo() repository.StocksProvider {
	return s.stocks
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
