package main

import (
	"flag"
	"log/slog"
	"os"
	"stockwatch/internal/analyzer"
	"stockwatch/internal/config"
	"stockwatch/internal/lib/setup"
	"stockwatch/internal/lib/sl"
	"stockwatch/internal/quote"
	"stockwatch/internal/reader"
	"stockwatch/internal/service"
)

var envFile = flag.String("env-file", config.DefaultEnvFile, "path to env file")

func main() {
	flag.Parse()
	setup.LoadEnvFile(*envFile)

	cfg := config.NewAnalyzerConfig()

	db := setup.ConnectToDatabase(cfg.DbDriver)
	defer db.Close()

	broker := setup.ConnectToRabbitMQ(config.NewRabbitMQConfig())
	defer broker.Close()

	cache := setup.ConnectToRedis(config.NewRedisConfig())
	defer cache.Close()

	stocksService := service.NewStocksService(db.StocksRepo(), cfg.CommonConfig)

	stocksReader, err := reader.New(config.NewReaderConfig(), stocksService)
	if err != nil {
		slog.Error("failed to create stocks reader", sl.Error(err))
		os.Exit(1)
	}

	fetcher := quote.NewCachedFetcher(quote.NewYahooFetcher(cfg.SymbolSuffix), cache)

	analyzer := analyzer.New(broker, stocksReader, fetcher, cfg)
	slog.Info("starting analyzer service", slog.Int("workers", cfg.Workers))
	analyzer.Start()
}
