package jobs

import (
	"context"
	"log/slog"

	"courier/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule logs record counts once a minute.
const DefaultStatsSchedule = "@every 1m"

// RecordStatsJob periodically logs how many shipments, customers and staff
// the record store holds.
type RecordStatsJob struct {
	handler  queries.RecordStatsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRecordStatsJob creates the job. schedule accepts standard cron specs
// with an optional seconds field as well as descriptors like "@every 30s".
func NewRecordStatsJob(handler queries.RecordStatsQueryHandler, schedule string, logger *slog.Logger) *RecordStatsJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	return &RecordStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(parser)),
		logger:   logger.With("component", "record_stats_job"),
	}
}

// Run logs the current counts once.
func (j *RecordStatsJob) Run() {
	ctx := context.Background()

	stats, err := j.handler.Handle(ctx, queries.NewRecordStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Record stats job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Record store stats",
		"shipments", stats.Shipments,
		"customers", stats.Customers,
		"staff", stats.Staff,
	)
}

// Start schedules Run on the configured schedule.
func (j *RecordStatsJob) Start() error {
	if _, err := j.cron.AddJob(j.schedule, j); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Record stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running Run to return.
func (j *RecordStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Record stats job stopped")
}
