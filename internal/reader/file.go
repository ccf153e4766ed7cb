package reader

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"stockwatch/internal/model"
)

type FileReader struct {
	path string
}

func NewFileReader(path string) *FileReader {
	return &FileReader{path: path}
}

func (f *FileReader) ReadAll(ctx context.Context) ([]model.Stock, error) {
	return f.read(func(model.Stock) bool { return true })
}

func (f *FileReader) ReadByIndustry(ctx context.Context, industry string) ([]model.Stock, error) {
	return f.read(func(s model.Stock) bool { return s.Industry == industry })
}

func (f *FileReader) read(keep func(model.Stock) bool) ([]model.Stock, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stocks file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read stocks file: %w", err)
	}

	var stocks []model.Stock
	for i, record := range records {
		// First row is the header.
		if i == 0 {
			continue
		}
		if len(record) < 4 {
			continue
		}

		stock := model.Stock{
			Symbol:      record[0],
			CompanyName: record[1],
			Industry:    record[2],
			Isin:        record[3],
		}
		if keep(stock) {
			stocks = append(stocks, stock)
		}
	}

	return stocks, nil
}
