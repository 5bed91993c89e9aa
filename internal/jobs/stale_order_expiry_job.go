package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderExpiryJob cancels Pending orders left unconfirmed past the
// configured time-to-live. Runs every minute; the cancellation rules of the
// order aggregate still apply, so the job can never touch an order that
// progressed past Confirmed between scan and write.
type StaleOrderExpiryJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderExpiryJob creates a job expiring Pending orders older than
// ttl.
func NewStaleOrderExpiryJob(
	handler commands.ExpireStaleOrdersCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderExpiryJob {
	return &StaleOrderExpiryJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_expiry_job"),
	}
}

// Start begins the expiry job to run every minute.
func (j *StaleOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireStaleOrdersCommand(time.Now().UTC().Add(-j.ttl))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order expiry job failed", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order expiry job failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pending orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry job.
func (j *StaleOrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order expiry job stopped")
}
