package quote

import (
	"context"
	"stockwatch/internal/model"
)

type Fetcher interface {
	Fetch(ctx context.Context, symbol string) (model.Quote, error)
}
