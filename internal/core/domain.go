package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeEMI          ItemType = "EMI"
	TypeBill         ItemType = "Bill"
	TypeSubscription ItemType = "Subscription"
	TypeLoan         ItemType = "Loan"
	TypeOther        ItemType = "Other"
)

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DateLayout is the calendar-date wire format used everywhere: no
// time-of-day, no timezone.
const DateLayout = "2006-01-02"

type (
	ItemType string

	Priority string

	// FinancialItem is one tracked obligation: an EMI, bill,
	// subscription, loan or anything else with a due date attached.
	// DueDate stays a string until classification so a malformed date
	// can be reported per item instead of failing at decode time.
	FinancialItem struct {
		ID                 string          `json:"id"`
		Type               ItemType        `json:"type"`
		Name               string          `json:"name"`
		Amount             decimal.Decimal `json:"amount"`
		DueDate            string          `json:"due_date"`
		ReminderDaysBefore int             `json:"reminder_days_before"`
		Priority           Priority        `json:"priority"`
	}
)

var (
	ErrEmptyID          = errors.New("empty item id")
	ErrEmptyName        = errors.New("empty item name")
	ErrInvalidType      = errors.New("invalid item type")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrNegativeReminder = errors.New("reminder days must not be negative")
	ErrInvalidDueDate   = errors.New("due date is not a valid calendar date")
)

// ItemTypes lists the valid item types in display order.
func ItemTypes() []ItemType {
	return []ItemType{TypeEMI, TypeBill, TypeSubscription, TypeLoan, TypeOther}
}

// Priorities lists the valid priorities in display order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

func (t ItemType) IsValid() bool {
	switch t {
	case TypeEMI, TypeBill, TypeSubscription, TypeLoan, TypeOther:
		return true
	}
	return false
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParseDueDate parses a calendar date in the wire format.
func ParseDueDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDueDate
	}
	return d, nil
}

// Validate checks the item against the admission rules applied at the
// entry and import boundaries. Items already in the store are trusted.
func (i FinancialItem) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if !i.Type.IsValid() {
		return ErrInvalidType
	}
	if !i.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if i.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if i.ReminderDaysBefore < 0 {
		return ErrNegativeReminder
	}
	if _, err := ParseDueDate(i.DueDate); err != nil {
		return err
	}
	return nil
}
