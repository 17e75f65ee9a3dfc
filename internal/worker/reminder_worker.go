// Package worker implements the background reminder scan: classify every
// stored item against today and publish a message for each one that
// needs attention.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finmind/internal/amqp"
	"finmind/internal/core"
	"finmind/internal/store"
)

// ReminderPublisher is the outbound side of the reminder bus.
type ReminderPublisher interface {
	PublishReminder(ctx context.Context, msg *amqp.ReminderMessage) error
}

type ReminderWorker struct {
	items     store.Store
	publisher ReminderPublisher
}

func NewReminderWorker(items store.Store, publisher ReminderPublisher) *ReminderWorker {
	return &ReminderWorker{items: items, publisher: publisher}
}

// Scan publishes one reminder per item that is overdue, due today or
// inside its reminder window. Items whose due date cannot be parsed are
// logged and skipped so one bad record does not stall the whole scan.
// Returns the number of reminders published.
func (w *ReminderWorker) Scan(ctx context.Context, today time.Time) (int, error) {
	items, err := w.items.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list items: %w", err)
	}

	published := 0
	for _, it := range items {
		status, err := core.ClassifyStatus(it, today)
		if err != nil {
			var invalid *core.InvalidDateError
			if errors.As(err, &invalid) {
				slog.WarnContext(ctx, "Skipping item with invalid due date",
					"item_id", invalid.ItemID,
					"item_name", invalid.ItemName,
					"due_date", invalid.Raw)
				continue
			}
			return published, fmt.Errorf("classify item %s: %w", it.ID, err)
		}

		if status.State == core.StateUpcoming {
			continue
		}

		msg := amqp.NewReminderMessage(it, status)
		if err := w.publisher.PublishReminder(ctx, msg); err != nil {
			return published, fmt.Errorf("publish reminder for item %s: %w", it.ID, err)
		}
		published++
	}

	slog.InfoContext(ctx, "Reminder scan completed",
		"items", len(items),
		"reminders", published)

	return published, nil
}

// Run scans immediately and then on every tick until the context ends.
func (w *ReminderWorker) Run(ctx context.Context, interval time.Duration) error {
	if _, err := w.Scan(ctx, time.Now()); err != nil {
		slog.ErrorContext(ctx, "Initial reminder scan failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.Scan(ctx, time.Now()); err != nil {
				slog.ErrorContext(ctx, "Reminder scan failed", "error", err)
			}
		}
	}
}
