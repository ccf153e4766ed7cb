package notifier

import (
	"context"
	"stockwatch/internal/model"
)

type Notifier interface {
	SendReport(ctx context.Context, report model.Report) error
}
