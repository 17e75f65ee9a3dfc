// Package core holds the domain model and the pure aggregation and
// classification functions. Nothing here touches storage or the network;
// every function is a plain computation over its inputs and the
// caller-supplied "today".
package core

import (
	"fmt"
	"time"
)

const (
	StateOverdue  StatusState = "overdue"
	StateDueToday StatusState = "due_today"
	StateDueSoon  StatusState = "due_soon"
	StateUpcoming StatusState = "upcoming"
)

type (
	StatusState string

	// Status is the due classification of a single item. Days carries the
	// magnitude: days past due for Overdue, days left otherwise, 0 for
	// DueToday.
	Status struct {
		State StatusState `json:"state"`
		Days  int         `json:"days"`
	}
)

// InvalidDateError identifies the item whose due date could not be
// parsed. Classification never falls back to a default bucket: a hidden
// failure would silently misstate the dashboard.
type InvalidDateError struct {
	ItemID   string
	ItemName string
	Raw      string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("item %s (%q): invalid due date %q", e.ItemID, e.ItemName, e.Raw)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDueDate }

// atMidnight strips the time-of-day and timezone so two equal calendar
// dates always subtract to exactly zero.
func atMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the whole-day difference between the item's due date
// and today. Negative means the due date has passed.
func DaysUntil(item FinancialItem, today time.Time) (int, error) {
	due, err := ParseDueDate(item.DueDate)
	if err != nil {
		return 0, &InvalidDateError{ItemID: item.ID, ItemName: item.Name, Raw: item.DueDate}
	}
	diff := atMidnight(due).Sub(atMidnight(today))
	return int(diff / (24 * time.Hour)), nil
}

// ClassifyStatus computes the due status of one item. Rules are checked
// in order, first match wins:
//
//  1. due date in the past        -> Overdue, Days = days past
//  2. due date is today           -> DueToday
//  3. within the reminder window  -> DueSoon, Days = days left
//  4. otherwise                   -> Upcoming, Days = days left
func ClassifyStatus(item FinancialItem, today time.Time) (Status, error) {
	daysLeft, err := DaysUntil(item, today)
	if err != nil {
		return Status{}, err
	}

	switch {
	case daysLeft < 0:
		return Status{State: StateOverdue, Days: -daysLeft}, nil
	case daysLeft == 0:
		return Status{State: StateDueToday}, nil
	case daysLeft <= item.ReminderDaysBefore:
		return Status{State: StateDueSoon, Days: daysLeft}, nil
	default:
		return Status{State: StateUpcoming, Days: daysLeft}, nil
	}
}
