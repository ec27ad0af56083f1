package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/repository"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/shared"
)

// Sender delivers one notification payload. The log sender below is the
// only production implementation for now.
type Sender interface {
	Send(ctx context.Context, kind, topic string, payload []byte) error
}

// LogSender writes notifications to the structured log instead of an email
// or push provider.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, kind, topic string, payload []byte) error {
	slog.Info("notification sent", "kind", kind, "topic", topic, "payload", string(payload))
	return nil
}

// Dispatcher drains the notification_jobs outbox in the background. Jobs are
// claimed with row locks, delivered, and marked; a delivery failure marks the
// job failed and never blocks the queue.
type Dispatcher struct {
	uow      shared.UnitOfWork
	jobs     *repository.NotificationRepository
	sender   Sender
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewDispatcher(uow shared.UnitOfWork, sender Sender) *Dispatcher {
	return &Dispatcher{
		uow:      uow,
		jobs:     repository.NewNotificationRepository(),
		sender:   sender,
		interval: 5 * time.Second,
	}
}

func (d *Dispatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})

	go func() {
		defer close(d.done)
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := d.drain(ctx); err != nil {
					slog.Warn("notification drain failed", "error", err.Error())
				}
			}
		}
	}()
}

func (d *Dispatcher) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
}

func (d *Dispatcher) drain(ctx context.Context) error {
	const batchSize = 20

	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := d.jobs.ClaimDueJobs(ctx, tx.DB(), batchSize)
		if err != nil {
			return err
		}

		for _, job := range claimed {
			status := "sent"
			var lastError *string
			if sendErr := d.sender.Send(ctx, job.Kind, job.Topic, job.Payload); sendErr != nil {
				status = "failed"
				msg := sendErr.Error()
				lastError = &msg
				slog.Warn("notification delivery failed", "job_id", job.ID, "error", msg)
			}
			if updateErr := d.jobs.UpdateJobStatus(ctx, tx.DB(), job.ID, status, lastError); updateErr != nil {
				return updateErr
			}
		}
		return nil
	})
}
