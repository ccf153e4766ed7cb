package main

import (
	"flag"
	"log/slog"
	"net/http"
	"stockwatch/internal/config"
	"stockwatch/internal/lib/setup"
	"stockwatch/internal/lib/sl"
	"stockwatch/internal/server"
	"stockwatch/internal/service"
)

var envFile = flag.String("env-file", config.DefaultEnvFile, "path to env file")

func main() {
	flag.Parse()
	setup.LoadEnvFile(*envFile)

	cfg := config.NewServerConfig()

	db := setup.ConnectToDatabase(cfg.DbDriver)
	defer db.Close()

	broker := setup.ConnectToRabbitMQ(config.NewRabbitMQConfig())
	defer broker.Close()

	stocksService := service.NewStocksService(db.StocksRepo(), cfg.CommonConfig)

	server := server.New(stocksService, broker, cfg)
	slog.Info("starting http server", slog.String("address", cfg.Address))
	if err := server.Start(); err != http.ErrServerClosed {
		slog.Error("error from http server", sl.Error(err))
	}
}
