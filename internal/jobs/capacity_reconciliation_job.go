package jobs

import (
	"context"
	"log/slog"

	"mailroom/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CapacityReconciliationJob periodically recomputes every site's locker
// counter from a true scan and repairs drift accumulated by the
// non-transactional create and delete paths.
type CapacityReconciliationJob struct {
	handler  commands.ReconcileCapacityCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCapacityReconciliationJob creates the reconciliation job with the given
// cron schedule (standard five-field expression).
func NewCapacityReconciliationJob(
	handler commands.ReconcileCapacityCommandHandler,
	schedule string,
	logger *slog.Logger,
) *CapacityReconciliationJob {
	return &CapacityReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "capacity_reconciliation_job"),
	}
}

// Start schedules the reconciliation pass.
func (j *CapacityReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileCapacityCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Capacity reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *CapacityReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Capacity reconciliation job stopped")
}
