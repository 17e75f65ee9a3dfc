package worker

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finmind/internal/amqp"
	"finmind/internal/core"
	"finmind/internal/store/memory"
)

type capturePublisher struct {
	messages []*amqp.ReminderMessage
}

func (p *capturePublisher) PublishReminder(_ context.Context, msg *amqp.ReminderMessage) error {
	p.messages = append(p.messages, msg)
	return nil
}

func workerItem(id, dueDate string, reminderDays int) core.FinancialItem {
	return core.FinancialItem{
		ID:                 id,
		Type:               core.TypeBill,
		Name:               "Bill " + id,
		Amount:             decimal.NewFromInt(500),
		DueDate:            dueDate,
		ReminderDaysBefore: reminderDays,
		Priority:           core.PriorityMedium,
	}
}

func TestReminderWorker_Scan(t *testing.T) {
	today := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)

	st := memory.New([]core.FinancialItem{
		workerItem("overdue", "2026-02-10", 3),
		workerItem("due-today", "2026-02-20", 3),
		workerItem("due-soon", "2026-02-22", 3),
		workerItem("upcoming", "2026-06-01", 3),
	})
	pub := &capturePublisher{}
	w := NewReminderWorker(st, pub)

	n, err := w.Scan(context.Background(), today)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if n != 3 {
		t.Fatalf("Scan() published %d reminders, want 3", n)
	}

	states := map[string]core.StatusState{}
	for _, m := range pub.messages {
		states[m.ItemID] = m.State
	}
	if states["overdue"] != core.StateOverdue {
		t.Errorf("overdue item state = %s", states["overdue"])
	}
	if states["due-today"] != core.StateDueToday {
		t.Errorf("due-today item state = %s", states["due-today"])
	}
	if states["due-soon"] != core.StateDueSoon {
		t.Errorf("due-soon item state = %s", states["due-soon"])
	}
	if _, ok := states["upcoming"]; ok {
		t.Error("upcoming item must not produce a reminder")
	}
}

func TestReminderWorker_SkipsInvalidDates(t *testing.T) {
	today := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)

	st := memory.New([]core.FinancialItem{
		workerItem("bad", "someday", 3),
		workerItem("good", "2026-02-20", 3),
	})
	pub := &capturePublisher{}
	w := NewReminderWorker(st, pub)

	n, err := w.Scan(context.Background(), today)
	if err != nil {
		t.Fatalf("Scan() error = %v, invalid dates must be skipped not fatal", err)
	}
	if n != 1 || len(pub.messages) != 1 || pub.messages[0].ItemID != "good" {
		t.Errorf("Scan() published %v, want only the valid item", pub.messages)
	}
}

func TestReminderWorker_EmptyStore(t *testing.T) {
	pub := &capturePublisher{}
	w := NewReminderWorker(memory.New(nil), pub)

	n, err := w.Scan(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if n != 0 || len(pub.messages) != 0 {
		t.Errorf("Scan() on empty store published %d messages", len(pub.messages))
	}
}
