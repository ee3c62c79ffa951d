package jobs

import (
	"context"
	"log/slog"
	"sync"

	"capsule/internal/core/application/usecases/commands"
	"capsule/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultValidationSchedule runs the validation job every five minutes.
const DefaultValidationSchedule = "@every 5m"

type validatePendingAddressesHandler interface {
	Handle(ctx context.Context, cmd commands.ValidatePendingAddressesCommand) (commands.ValidationBatchResult, error)
}

// AddressValidationJob geocodes addresses that are not yet valid, one batch
// per tick. The keyset cursor carries over between ticks so a large backlog is
// walked in order; it wraps to the start once a short batch is seen.
type AddressValidationJob struct {
	handler   validatePendingAddressesHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger

	mu     sync.Mutex
	cursor *kernel.UUID
}

// NewAddressValidationJob creates the job. An empty schedule falls back to
// DefaultValidationSchedule.
func NewAddressValidationJob(
	handler validatePendingAddressesHandler, schedule string, batchSize int, logger *slog.Logger,
) *AddressValidationJob {
	if schedule == "" {
		schedule = DefaultValidationSchedule
	}

	return &AddressValidationJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "address_validation_job"),
	}
}

// Start registers the batch on the schedule and starts the scheduler.
func (j *AddressValidationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Address validation job started",
		"schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// Stop stops the scheduler and waits for a running batch to finish.
func (j *AddressValidationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Address validation job stopped")
}

// RunOnce processes a single batch starting at the stored cursor.
func (j *AddressValidationJob) RunOnce(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	cmd, err := commands.NewValidatePendingAddressesCommand(j.batchSize, j.cursor)
	if err != nil {
		j.logger.ErrorContext(ctx, "Address validation job misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	j.cursor = result.Next
	if err != nil {
		j.logger.ErrorContext(ctx, "Address validation job failed",
			"error", err, "checked", result.Checked, "validated", result.Validated)
		return
	}

	if result.Checked > 0 {
		j.logger.InfoContext(ctx, "Address validation batch done",
			"checked", result.Checked, "validated", result.Validated)
	}
}

// Cursor returns the id the next batch starts after, nil when starting over.
func (j *AddressValidationJob) Cursor() *kernel.UUID {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cursor
}
