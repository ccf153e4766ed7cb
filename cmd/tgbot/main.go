package main

import (
	"flag"
	"log/slog"
	"os"
	"stockwatch/internal/config"
	"stockwatch/internal/lib/setup"
	"stockwatch/internal/lib/sl"
	"stockwatch/internal/notifier/telegram"
)

var envFile = flag.String("env-file", config.DefaultEnvFile, "path to env file")

func main() {
	flag.Parse()
	setup.LoadEnvFile(*envFile)

	cfg := config.NewTelegramBotConfig()
	if cfg.Token == "" {
		slog.Error("telegram token is not found")
		os.Exit(1)
	}

	broker := setup.ConnectToRabbitMQ(config.NewRabbitMQConfig())
	defer broker.Close()

	tgbot, err := telegram.New(broker, cfg)
	if err != nil {
		slog.Error("failed to create tg bot", sl.Error(err))
		os.Exit(1)
	}

	slog.Info("starting telegram bot")
	tgbot.Start()
}
