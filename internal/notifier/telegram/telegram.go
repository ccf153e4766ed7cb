package telegram

import (
	"bytes"
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
	"stockwatch/internal/notifier"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"gopkg.in/telebot.v4"
)

var _ notifier.Notifier = &TGBot{}

type TGBot struct {
	bot    *telebot.Bot
	broker broker.MessageBroker
	config config.TelegramBotConfig
}

func New(broker broker.MessageBroker, config config.TelegramBotConfig) (*TGBot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  config.Token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	t := &TGBot{
		bot:    bot,
		broker: broker,
		config: config,
	}

	bot.Handle("/start", t.startCommand)
	bot.Handle("/discounted", t.discountedCommand)
	bot.Handle("/all", t.allCommand)

	return t, nil
}

func (t *TGBot) Start() {
	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	reports, err := t.broker.ConsumeReports(ctx)
	if err != nil {
		slog.Error("failed to register a consumer for reports", sl.Error(err))
		return
	}

	g.Go(func() error {
		return t.handleReports(ctx, reports)
	})

	g.Go(func() error {
		t.bot.Start()
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		t.bot.Stop()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("error from telegram bot", sl.Error(err))
	}
}

func (t *TGBot) handleReports(ctx context.Context, reports <-chan model.Report) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case report, ok := <-reports:
			if !ok {
				return fmt.Errorf("queue with reports was closed")
			}
			if err := t.SendReport(ctx, report); err != nil {
				return fmt.Errorf("failed to handle report: %w", err)
			}
			slog.Info("successful sending of report", sl.Report(report))
		}
	}
}

func (t *TGBot) SendReport(_ context.Context, report model.Report) error {
	document := &telebot.Document{
		File:     telebot.FromReader(bytes.NewReader(report.Data)),
		FileName: report.Filename,
		Caption:  report.Caption,
		MIME:     "text/csv",
	}

	if _, err := t.bot.Send(telebot.ChatID(report.ChatId), document); err != nil {
		return fmt.Errorf("failed to send document to chat: %w", err)
	}
	return nil
}

func (t *TGBot) startCommand(c telebot.Context) error {
	slog.Info("start command", slog.Int64("chat_id", c.Chat().ID))
	return c.Send(`Commands:
	/discounted - get a report with discounted stocks only
	/all - get a report with all stocks
	`)
}

func (t *TGBot) discountedCommand(c telebot.Context) error {
	return t.publishJob(c, true)
}

func (t *TGBot) allCommand(c telebot.Context) error {
	return t.publishJob(c, false)
}

func (t *TGBot) publishJob(c telebot.Context, onlyDiscounted bool) error {
	chatId := c.Chat().ID
	slog.Info(
		"analysis command",
		slog.Int64("chat_id", chatId),
		slog.Bool("only_discounted", onlyDiscounted),
	)

	ctx, cancel := context.WithTimeout(context.Background(), t.config.BrokerTimeoutSec)
	defer cancel()

	job := model.AnalysisJob{ChatId: chatId, OnlyDiscounted: onlyDiscounted}
	if err := t.broker.PublishJob(ctx, job); err != nil {
		slog.Error("failed to publish analysis job", sl.Job(job), sl.Error(err))
		return nil
	}

	return c.Send("Job has been started. The report will arrive shortly.")
}
