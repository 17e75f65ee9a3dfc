package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func item(dueDate string, reminderDays int) FinancialItem {
	return FinancialItem{
		ID:                 "item-1",
		Type:               TypeBill,
		Name:               "Electricity Bill",
		Amount:             decimal.NewFromInt(1250),
		DueDate:            dueDate,
		ReminderDaysBefore: reminderDays,
		Priority:           PriorityHigh,
	}
}

func TestClassifyStatus(t *testing.T) {
	today := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		dueDate      string
		reminderDays int
		want         Status
	}{
		{
			name:         "due today",
			dueDate:      "2026-02-20",
			reminderDays: 3,
			want:         Status{State: StateDueToday},
		},
		{
			name:         "overdue by 5 days",
			dueDate:      "2026-02-15",
			reminderDays: 3,
			want:         Status{State: StateOverdue, Days: 5},
		},
		{
			name:         "overdue by one day",
			dueDate:      "2026-02-19",
			reminderDays: 0,
			want:         Status{State: StateOverdue, Days: 1},
		},
		{
			name:         "due soon at reminder boundary",
			dueDate:      "2026-02-23",
			reminderDays: 3,
			want:         Status{State: StateDueSoon, Days: 3},
		},
		{
			name:         "upcoming just past reminder window",
			dueDate:      "2026-02-24",
			reminderDays: 3,
			want:         Status{State: StateUpcoming, Days: 4},
		},
		{
			name:         "tomorrow with zero reminder days is upcoming",
			dueDate:      "2026-02-21",
			reminderDays: 0,
			want:         Status{State: StateUpcoming, Days: 1},
		},
		{
			name:         "crosses month boundary",
			dueDate:      "2026-03-02",
			reminderDays: 30,
			want:         Status{State: StateDueSoon, Days: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyStatus(item(tt.dueDate, tt.reminderDays), today)
			if err != nil {
				t.Fatalf("ClassifyStatus() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ClassifyStatus() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassifyStatus_IgnoresTimeOfDay(t *testing.T) {
	// Same calendar date must classify as DueToday no matter the
	// wall-clock time or zone offset of the comparison instant.
	instants := []time.Time{
		time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 20, 23, 59, 59, 0, time.UTC),
		time.Date(2026, 2, 20, 12, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)),
	}

	for _, now := range instants {
		got, err := ClassifyStatus(item("2026-02-20", 3), now)
		if err != nil {
			t.Fatalf("ClassifyStatus() error = %v", err)
		}
		if got.State != StateDueToday {
			t.Errorf("ClassifyStatus() at %v = %+v, want DueToday", now, got)
		}
	}
}

func TestClassifyStatus_InvalidDate(t *testing.T) {
	bad := item("20-02-2026", 3)
	bad.ID = "bad-id"

	_, err := ClassifyStatus(bad, time.Now())
	if err == nil {
		t.Fatal("ClassifyStatus() expected error for unparseable date")
	}

	var invalid *InvalidDateError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *InvalidDateError", err)
	}
	if invalid.ItemID != "bad-id" {
		t.Errorf("InvalidDateError.ItemID = %q, want %q", invalid.ItemID, "bad-id")
	}
	if !errors.Is(err, ErrInvalidDueDate) {
		t.Errorf("errors.Is(err, ErrInvalidDueDate) = false, want true")
	}
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2026, 2, 20, 15, 45, 0, 0, time.UTC)

	tests := []struct {
		dueDate string
		want    int
	}{
		{"2026-02-20", 0},
		{"2026-02-21", 1},
		{"2026-02-15", -5},
		{"2027-02-20", 365},
	}

	for _, tt := range tests {
		got, err := DaysUntil(item(tt.dueDate, 0), today)
		if err != nil {
			t.Fatalf("DaysUntil(%q) error = %v", tt.dueDate, err)
		}
		if got != tt.want {
			t.Errorf("DaysUntil(%q) = %d, want %d", tt.dueDate, got, tt.want)
		}
	}
}
