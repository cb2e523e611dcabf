package service

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"hallohallo/internal/model"
	"hallohallo/internal/pkg"
	"hallohallo/internal/repository/mysql"
)

// Sender delivers one outbox event to the bus.
type Sender func(ctx context.Context, row *model.ContentOutbox) error

// OutboxRelayer drains pending content events (cascade deletes, listing
// publications) to a Sender on a fixed tick.
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		slog.Error("outbox query failed", "err", err)
		return
	}
	for i := range rows {
		row := rows[i]
		if err := r.sender(ctx, &row); err != nil {
			_ = r.repo.MarkFailed(ctx, row.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, row.ID)
	}
}

// KafkaSender publishes events keyed by resource id.
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, row *model.ContentOutbox) error {
		return producer.Send(ctx, pkg.MakeKeyFromID(row.ResourceID), []byte(row.Payload))
	}
}

// LogSender is the fallback when no broker is configured.
func LogSender(ctx context.Context, row *model.ContentOutbox) error {
	slog.Info("outbox event",
		"type", row.EventType,
		"actor_id", row.ActorID,
		"resource_type", row.ResourceType,
		"resource_id", row.ResourceID)
	return nil
}
