package sl

import (
	"log/slog"
	"stockwatch/internal/model"
)

func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

func Stock(stock model.Stock) slog.Attr {
	return slog.Group("stock",
		slog.String("symbol", stock.Symbol),
		slog.String("industry", stock.Industry),
	)
}

func Job(job model.AnalysisJob) slog.Attr {
	return slog.Group("job",
		slog.Int64("chat_id", job.ChatId),
		slog.String("industry", job.Industry),
		slog.Bool("only_discounted", job.OnlyDiscounted),
	)
}

func Report(report model.Report) slog.Attr {
	return slog.Group("report",
		slog.Int64("chat_id", report.ChatId),
		slog.String("filename", report.Filename),
		slog.Int("size", len(report.Data)),
	)
}
