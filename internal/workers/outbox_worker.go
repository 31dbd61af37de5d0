package workers

import (
	"context"
	"time"

	"netter/internal/core/outbox"
	outboxPort "netter/internal/ports/outbox"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// OutboxWorker relays committed outbox events to the publisher.
type OutboxWorker struct {
	OutboxRepo   outboxPort.Repository
	Publisher    outboxPort.Publisher
	BatchSize    int
	PollInterval time.Duration
	Logger       *zap.Logger
}

func NewOutboxWorker(
	outboxRepo outboxPort.Repository,
	publisher outboxPort.Publisher,
	batchSize int,
	pollInterval time.Duration,
	logger *zap.Logger,
) *OutboxWorker {
	return &OutboxWorker{
		OutboxRepo:   outboxRepo,
		Publisher:    publisher,
		BatchSize:    batchSize,
		PollInterval: pollInterval,
		Logger:       logger,
	}
}

// Run polls until ctx is cancelled.
func (w *OutboxWorker) Run(ctx context.Context) {
	w.Logger.Info("Outbox worker started", zap.Int("batchSize", w.BatchSize), zap.Duration("pollInterval", w.PollInterval))
	for {
		if _, err := w.RunOnce(ctx); err != nil && ctx.Err() == nil {
			w.Logger.Error("Error fetching pending events", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			w.Logger.Info("Outbox worker stopped")
			return
		case <-time.After(w.PollInterval):
		}
	}
}

// RunOnce relays one batch and reports how many events were published. An event whose
// publish fails stays pending and is retried on a later pass.
func (w *OutboxWorker) RunOnce(ctx context.Context) (int, error) {
	pending, err := w.OutboxRepo.GetPending(ctx, w.BatchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, ev := range pending {
		if ctx.Err() != nil {
			break
		}
		if w.process(ctx, ev) {
			published++
		}
	}
	return published, nil
}

func (w *OutboxWorker) process(ctx context.Context, ev *outbox.Event) bool {
	if ev == nil || ev.ID == uuid.Nil {
		w.Logger.Error("Invalid outbox record", zap.Any("record", ev))
		return false
	}

	if err := w.Publisher.Publish(ctx, ev); err != nil {
		w.Logger.Warn("Could not publish event, will retry",
			zap.String("eventID", ev.ID.String()),
			zap.String("topic", ev.Topic),
			zap.Error(err))
		return false
	}

	if err := w.OutboxRepo.MarkDone(ctx, ev.ID); err != nil {
		w.Logger.Warn("Could not mark outbox event done", zap.String("eventID", ev.ID.String()), zap.Error(err))
		return true
	}
	w.Logger.Debug("Outbox event relayed", zap.String("eventID", ev.ID.String()), zap.String("topic", ev.Topic))
	return true
}
