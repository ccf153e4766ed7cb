package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"stockwatch/internal/model"
	"stockwatch/internal/service"
	"stockwatch/internal/utils"
)

// Column names used by the exchange CSV dumps.
const (
	colSymbol      = "Symbol"
	colCompanyName = "Company Name"
	colIndustry    = "Industry"
	colIsin        = "ISIN Code"
)

type Importer struct {
	stocks *service.StocksService
}

func New(stocks *service.StocksService) *Importer {
	return &Importer{stocks: stocks}
}

// Run merges every CSV under csvDir, drops exact duplicates, saves the
// result to the database (existing symbols are kept as is) and rewrites
// the consolidated all-stocks file.
func (i *Importer) Run(ctx context.Context, csvDir string, allStocksFile string) error {
	stocks, err := ReadExchangeCSVs(csvDir)
	if err != nil {
		return fmt.Errorf("failed to read exchange csvs: %w", err)
	}

	stocks = utils.Distinct(stocks)
	slog.Info("collected stocks from exchange csvs", slog.Int("count", len(stocks)))

	if err := i.stocks.AddStocks(ctx, stocks); err != nil {
		return fmt.Errorf("failed to save stocks to database: %w", err)
	}

	if err := WriteAllStocksFile(allStocksFile, stocks); err != nil {
		return fmt.Errorf("failed to write all stocks file: %w", err)
	}

	return nil
}

// ReadExchangeCSVs reads every *.csv under dir. Each file must carry a
// header row naming at least the Symbol, Company Name, Industry and
// ISIN Code columns; column order does not matter.
func ReadExchangeCSVs(dir string) ([]model.Stock, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}

	var stocks []model.Stock
	for _, path := range paths {
		fileStocks, err := readExchangeCSV(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		stocks = append(stocks, fileStocks...)
	}

	return stocks, nil
}

func readExchangeCSV(path string) ([]model.Stock, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	for _, name := range []string{colSymbol, colCompanyName, colIndustry, colIsin} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var stocks []model.Stock
	for _, record := range records[1:] {
		stocks = append(stocks, model.Stock{
			Symbol:      record[columns[colSymbol]],
			CompanyName: record[columns[colCompanyName]],
			Industry:    record[columns[colIndustry]],
			Isin:        record[columns[colIsin]],
		})
	}

	return stocks, nil
}

// WriteAllStocksFile writes the consolidated CSV consumed by the file
// reader, with the normalized header.
func WriteAllStocksFile(path string, stocks []model.Stock) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"symbol", "company_name", "industry", "isin"}); err != nil {
		return err
	}
	for _, stock := range stocks {
		record := []string{stock.Symbol, stock.CompanyName, stock.Industry, stock.Isin}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
