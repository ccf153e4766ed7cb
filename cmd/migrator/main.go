package main

import (
	"flag"
	"log/slog"
	"os"
	"stockwatch/internal/config"
	"stockwatch/internal/lib/setup"
	"stockwatch/internal/lib/sl"

	"github.com/pressly/goose/v3"
)

var envFile = flag.String("env-file", config.DefaultEnvFile, "path to env file")

func main() {
	flag.Parse()
	setup.LoadEnvFile(*envFile)

	cfg := config.NewMigratorConfig()

	db := setup.ConnectToDatabase(cfg.DbDriver)
	defer db.Close()

	if err := goose.SetDialect(cfg.DbDriver); err != nil {
		slog.Error("failed to set dialect", sl.Error(err))
		os.Exit(1)
	}

	if err := goose.Up(db.DB(), cfg.MigrationsFolder); err != nil {
		slog.Error("failed to apply all available migrations", sl.Error(err))
		os.Exit(1)
	}
}
