package db

import (
	"context"
	"stockwatch/internal/model"
	"testing"
)

func TestNewSQLite(t *testing.T) {
	database, err := NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer database.Close()
	ctx := context.Background()

	stock := model.Stock{
		Symbol:      "RELIANCE",
		CompanyName: "Reliance Industries Limited",
		Industry:    "Oil Gas & Consumable Fuels",
		Isin:        "INE002A01018",
	}
	if err := database.StocksRepo().AddStock(ctx, stock); err != nil {
		t.Fatalf("AddStock failed: %v", err)
	}

	got, err := database.StocksRepo().GetStockBySymbol(ctx, "RELIANCE")
	if err != nil {
		t.Fatalf("GetStockBySymbol failed: %v", err)
	}
	if got.CompanyName != stock.CompanyName {
		t.Errorf("company name = %q, want %q", got.CompanyName, stock.CompanyName)
	}

	// Re-running the schema statement must be a no-op.
	if _, err := database.DB().Exec(sqliteStocksScheme); err != nil {
		t.Errorf("repeated schema creation failed: %v", err)
	}
}
