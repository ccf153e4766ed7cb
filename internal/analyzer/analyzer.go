package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"stockwatch/internal/broker"
	"stockwatch/internal/config"
	"stockwatch/internal/lib/sl"
	"stockwatch/internal/model"
	"stockwatch/internal/quote"
	"stockwatch/internal/reader"
	"stockwatch/internal/report"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

type Analyzer struct {
	broker  broker.MessageBroker
	stocks  reader.StocksReader
	fetcher quote.Fetcher
	config  config.AnalyzerConfig
}

func New(
	broker broker.MessageBroker,
	stocks reader.StocksReader,
	fetcher quote.Fetcher,
	config config.AnalyzerConfig,
) *Analyzer {
	return &Analyzer{
		broker:  broker,
		stocks:  stocks,
		fetcher: fetcher,
		config:  config,
	}
}

func (a *Analyzer) Start() {
	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobsQueue, err := a.broker.ConsumeJobs(ctx)
	if err != nil {
		slog.Error("failed to register a consumer for analysis jobs", sl.Error(err))
		return
	}

	g, ctx := errgroup.WithContext(ctx)

	for range a.config.Workers {
		g.Go(func() error {
			return a.workerRoutine(ctx, jobsQueue)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("error from worker", sl.Error(err))
	}
}

func (a *Analyzer) workerRoutine(ctx context.Context, jobsQueue <-chan model.AnalysisJob) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job, ok := <-jobsQueue:
			if !ok {
				return fmt.Errorf("queue with jobs was closed")
			}
			if err := a.handleJob(ctx, job); err != nil {
				return fmt.Errorf("failed to handle analysis job: %w", err)
			}
			slog.Info("successful handling of analysis job", sl.Job(job))
		}
	}
}

func (a *Analyzer) handleJob(ctx context.Context, job model.AnalysisJob) error {
	stocks, err := a.readStocks(ctx, job)
	if err != nil {
		return fmt.Errorf("failed to read stocks: %w", err)
	}

	rows := a.AnalyzeStocks(ctx, stocks)
	if job.OnlyDiscounted {
		rows = onlyDiscounted(rows)
	}

	data, err := report.Render(rows)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	rep := model.Report{
		ChatId:   job.ChatId,
		Filename: report.Filename(time.Now()),
		Caption:  fmt.Sprintf("Analyzed %d stocks, %d in report", len(stocks), len(rows)),
		Data:     data,
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.BrokerTimeoutSec)
	defer cancel()
	return a.broker.PublishReport(ctx, rep)
}

func (a *Analyzer) readStocks(ctx context.Context, job model.AnalysisJob) ([]model.Stock, error) {
	if job.Industry != "" {
		return a.stocks.ReadByIndustry(ctx, job.Industry)
	}
	return a.stocks.ReadAll(ctx)
}

// AnalyzeStocks fetches a quote for every stock and scores it. Stocks
// whose quote cannot be fetched are skipped.
func (a *Analyzer) AnalyzeStocks(ctx context.Context, stocks []model.Stock) []model.ReportRow {
	var rows []model.ReportRow
	for _, stock := range stocks {
		q, err := a.fetcher.Fetch(ctx, stock.Symbol)
		if err != nil {
			slog.Error("unsuccessful fetching of quote", sl.Stock(stock), sl.Error(err))
			continue
		}

		discount := a.CalculateDiscount(q)
		rows = append(rows, model.ReportRow{
			Symbol:      stock.Symbol,
			CompanyName: stock.CompanyName,
			Price:       q.Price,
			TrailingPE:  q.TrailingPE,
			PriceToBook: q.PriceToBook,
			DiscountPct: discount,
			Status:      a.EvaluateStatus(q, discount),
		})
	}
	return rows
}

// CalculateDiscount returns how far the price sits below the 52-week
// high, in percent. Zero when either value is missing.
func (a *Analyzer) CalculateDiscount(q model.Quote) float64 {
	if q.Price == 0 || q.FiftyTwoWeekHigh == 0 {
		return 0
	}
	return (q.FiftyTwoWeekHigh - q.Price) / q.FiftyTwoWeekHigh * 100
}

// EvaluateStatus marks a stock DISCOUNTED when its fundamentals are cheap
// (both P/E and P/B below the configured maxima) or the market discount
// exceeds the threshold.
func (a *Analyzer) EvaluateStatus(q model.Quote, discountPct float64) string {
	fundamentalDiscount := q.TrailingPE != 0 && q.TrailingPE < a.config.MaxTrailingPE &&
		q.PriceToBook != 0 && q.PriceToBook < a.config.MaxPriceToBook
	marketDiscount := discountPct > a.config.DiscountPct

	if fundamentalDiscount || marketDiscount {
		return model.StatusDiscounted
	}
	return model.StatusFairOrHigh
}

func onlyDiscounted(rows []model.ReportRow) []model.ReportRow {
	var filtered []model.ReportRow
	for _, row := range rows {
		if row.Status == model.StatusDiscounted {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
