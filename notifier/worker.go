package notifier

import (
	"context"
	"errors"
	"time"

	"github.com/badapples/registry/metrics"
	"github.com/badapples/registry/models"
	"github.com/badapples/registry/repositories"
)

const batchSize = 50

// Worker drains the notification outbox. Delivery failures are logged and
// retried; they never reach the request that queued the message.
type Worker struct {
	outbox      repositories.OutboxRepository
	mailer      Mailer
	interval    time.Duration
	maxAttempts int
}

// NewWorker creates a worker polling every interval. A message is marked
// failed after maxAttempts unsuccessful deliveries.
func NewWorker(outbox repositories.OutboxRepository, mailer Mailer, interval time.Duration, maxAttempts int) *Worker {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Worker{
		outbox:      outbox,
		mailer:      mailer,
		interval:    interval,
		maxAttempts: maxAttempts,
	}
}

// Run drains the outbox until ctx is cancelled
func (w *Worker) Run(ctx context.Context) {
	log.Info("notification worker started", "interval", w.interval, "max_attempts", w.maxAttempts)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.DrainOnce(ctx); err != nil && ctx.Err() == nil {
			log.Error("failed to drain outbox", "err", err)
		}

		select {
		case <-ctx.Done():
			log.Info("notification worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// DrainOnce attempts delivery of one batch of pending messages and returns
// how many were handled
func (w *Worker) DrainOnce(ctx context.Context) (int, error) {
	pending, err := w.outbox.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}

	for _, msg := range pending {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := w.deliver(ctx, msg); err != nil {
			return 0, err
		}
	}

	return len(pending), nil
}

// deliver sends one message and records the outcome. Only store errors are returned.
func (w *Worker) deliver(ctx context.Context, msg models.OutboxMessage) error {
	err := w.mailer.Send(ctx, msg.Notification)

	switch {
	case err == nil:
		metrics.Notifications.WithLabelValues(string(models.OutboxSent)).Inc()
		log.Info("notification sent", "id", msg.ID, "subject", msg.Subject, "recipients", len(msg.Recipients))
		return w.outbox.MarkDelivered(ctx, msg.ID, models.OutboxSent)

	case errors.Is(err, ErrNotConfigured):
		metrics.Notifications.WithLabelValues(string(models.OutboxSkipped)).Inc()
		log.Info("mail not configured, skipping notification", "id", msg.ID, "subject", msg.Subject)
		return w.outbox.MarkDelivered(ctx, msg.ID, models.OutboxSkipped)
	}

	failed := msg.Attempts+1 >= w.maxAttempts
	if failed {
		metrics.Notifications.WithLabelValues(string(models.OutboxFailed)).Inc()
		log.Error("giving up on notification", "id", msg.ID, "attempts", msg.Attempts+1, "err", err)
	} else {
		metrics.Notifications.WithLabelValues("retry").Inc()
		log.Warn("notification delivery failed", "id", msg.ID, "attempt", msg.Attempts+1, "err", err)
	}
	return w.outbox.MarkAttempt(ctx, msg.ID, err.Error(), failed)
}
