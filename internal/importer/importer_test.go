package importer

import (
	"os"
	"path/filepath"
	"stockwatch/internal/model"
	"stockwatch/internal/utils"
	"testing"
)

func TestReadExchangeCSVs(t *testing.T) {
	dir := t.TempDir()

	nse := `Symbol,Company Name,Industry,ISIN Code
TCS,Tata Consultancy Services Limited,Information Technology,INE467B01029
SBIN,State Bank of India,Financial Services,INE062A01020
`
	// Different column order and one duplicate row.
	extra := `ISIN Code,Symbol,Company Name,Industry
INE467B01029,TCS,Tata Consultancy Services Limited,Information Technology
INE009A01021,INFY,Infosys Limited,Information Technology
`
	if err := os.WriteFile(filepath.Join(dir, "nse.csv"), []byte(nse), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "extra.csv"), []byte(extra), 0o644); err != nil {
		t.Fatal(err)
	}

	stocks, err := ReadExchangeCSVs(dir)
	if err != nil {
		t.Fatalf("ReadExchangeCSVs failed: %v", err)
	}
	if len(stocks) != 4 {
		t.Fatalf("expected 4 raw rows, got %d", len(stocks))
	}

	stocks = utils.Distinct(stocks)
	if len(stocks) != 3 {
		t.Fatalf("expected 3 distinct stocks, got %d", len(stocks))
	}

	symbols := map[string]bool{}
	for _, stock := range stocks {
		symbols[stock.Symbol] = true
	}
	for _, symbol := range []string{"TCS", "SBIN", "INFY"} {
		if !symbols[symbol] {
			t.Errorf("missing symbol %s", symbol)
		}
	}
}

func TestReadExchangeCSVMissingColumn(t *testing.T) {
	dir := t.TempDir()
	content := `Symbol,Company Name
TCS,Tata Consultancy Services Limited
`
	if err := os.WriteFile(filepath.Join(dir, "bad.csv"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadExchangeCSVs(dir); err == nil {
		t.Error("expected an error for a csv without the ISIN column")
	}
}

func TestWriteAllStocksFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all_stocks_list.csv")

	stocks := []model.Stock{
		{
			Symbol:      "TCS",
			CompanyName: "Tata Consultancy Services Limited",
			Industry:    "Information Technology",
			Isin:        "INE467B01029",
		},
	}
	if err := WriteAllStocksFile(path, stocks); err != nil {
		t.Fatalf("WriteAllStocksFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "symbol,company_name,industry,isin\n" +
		"TCS,Tata Consultancy Services Limited,Information Technology,INE467B01029\n"
	if string(content) != want {
		t.Errorf("written file = %q, want %q", string(content), want)
	}
}
