package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"stockwatch/internal/model"
	"strconv"
	"time"
)

var header = []string{
	"Symbol",
	"CompanyName",
	"Price",
	"PE",
	"PB",
	"Discount % (52w High)",
	"Status",
}

// Render encodes report rows as a CSV document. Missing fundamentals
// (zero P/E or P/B) are rendered as N/A, matching the delivered reports.
func Render(rows []model.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := []string{
			row.Symbol,
			row.CompanyName,
			strconv.FormatFloat(row.Price, 'f', 2, 64),
			ratio(row.TrailingPE),
			ratio(row.PriceToBook),
			fmt.Sprintf("%.2f%%", row.DiscountPct),
			row.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ratio(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func Filename(now time.Time) string {
	return "GiftFromDiscountedStocks_" + now.UTC().Format("20060102-150405") + ".csv"
}
