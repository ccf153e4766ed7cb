package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"stockwatch/internal/config"
	"stockwatch/internal/importer"
	"stockwatch/internal/lib/setup"
	"stockwatch/internal/lib/sl"
	"stockwatch/internal/service"
	"syscall"
)

var envFile = flag.String("env-file", config.DefaultEnvFile, "path to env file")

func main() {
	flag.Parse()
	setup.LoadEnvFile(*envFile)

	cfg := config.NewImporterConfig()

	db := setup.ConnectToDatabase(cfg.DbDriver)
	defer db.Close()

	stocksService := service.NewStocksService(db.StocksRepo(), cfg.CommonConfig)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info(
		"starting import",
		slog.String("csv_dir", cfg.CsvDir),
		slog.String("all_stocks_file", cfg.AllStocksFile),
	)
	if err := importer.New(stocksService).Run(ctx, cfg.CsvDir, cfg.AllStocksFile); err != nil {
		slog.Error("import failed", sl.Error(err))
		os.Exit(1)
	}
	slog.Info("import finished")
}
