package reader

import (
	"context"
	"os"
	"path/filepath"
	"stockwatch/internal/config"
	"testing"
)

func writeStocksFile(t *testing.T) string {
	t.Helper()

	content := `symbol,company_name,industry,isin
RELIANCE,Reliance Industries Limited,Oil Gas & Consumable Fuels,INE002A01018
TCS,Tata Consultancy Services Limited,Information Technology,INE467B01029
INFY,Infosys Limited,Information Technology,INE009A01021
`
	path := filepath.Join(t.TempDir(), "all_stocks_list.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileReaderReadAll(t *testing.T) {
	r := NewFileReader(writeStocksFile(t))

	stocks, err := r.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	if len(stocks) != 3 {
		t.Fatalf("expected 3 stocks, got %d", len(stocks))
	}
	if stocks[0].Symbol != "RELIANCE" {
		t.Errorf("expected symbol RELIANCE, got %s", stocks[0].Symbol)
	}
	if stocks[0].Isin != "INE002A01018" {
		t.Errorf("expected isin INE002A01018, got %s", stocks[0].Isin)
	}
}

func TestFileReaderReadByIndustry(t *testing.T) {
	r := NewFileReader(writeStocksFile(t))

	stocks, err := r.ReadByIndustry(context.Background(), "Information Technology")
	if err != nil {
		t.Fatalf("ReadByIndustry failed: %v", err)
	}

	if len(stocks) != 2 {
		t.Fatalf("expected 2 stocks, got %d", len(stocks))
	}
	for _, stock := range stocks {
		if stock.Industry != "Information Technology" {
			t.Errorf("unexpected industry %q for %s", stock.Industry, stock.Symbol)
		}
	}
}

func TestNewUnknownDataStore(t *testing.T) {
	if _, err := New(config.ReaderConfig{DataStore: "mongo"}, nil); err == nil {
		t.Error("expected an error for unknown data store")
	}
}

func TestNewFileDataStore(t *testing.T) {
	cfg := config.ReaderConfig{DataStore: "file", AllStocksFile: writeStocksFile(t)}
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := r.(*FileReader); !ok {
		t.Errorf("expected *FileReader, got %T", r)
	}
}
