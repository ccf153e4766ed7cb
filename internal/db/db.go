package db

import (
	"database/sql"
	"stockwatch/internal/repository"
)

type Database interface {
	DB() *sql.DB

	StocksRepo() repository.StocksProvider

	Close() error
}
