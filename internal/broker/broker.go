package broker

import (
	"context"
	"stockwatch/internal/model"
)

type MessageBroker interface {
	ConsumeJobs(ctx context.Context) (<-chan model.AnalysisJob, error)
	ConsumeReports(ctx context.Context) (<-chan model.Report, error)

	PublishJob(ctx context.Context, job model.AnalysisJob) error
	PublishReport(ctx context.Context, report model.Report) error

	Close()
}
