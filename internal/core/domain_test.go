package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func validItem() FinancialItem {
	return FinancialItem{
		ID:                 "a1",
		Type:               TypeLoan,
		Name:               "Home Loan",
		Amount:             decimal.NewFromInt(25000),
		DueDate:            "2026-04-01",
		ReminderDaysBefore: 5,
		Priority:           PriorityMedium,
	}
}

func TestFinancialItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FinancialItem)
		wantErr error
	}{
		{
			name:    "valid item",
			mutate:  func(*FinancialItem) {},
			wantErr: nil,
		},
		{
			name:    "missing id",
			mutate:  func(i *FinancialItem) { i.ID = "  " },
			wantErr: ErrEmptyID,
		},
		{
			name:    "missing name",
			mutate:  func(i *FinancialItem) { i.Name = "" },
			wantErr: ErrEmptyName,
		},
		{
			name:    "unknown type",
			mutate:  func(i *FinancialItem) { i.Type = "Mortgage" },
			wantErr: ErrInvalidType,
		},
		{
			name:    "unknown priority",
			mutate:  func(i *FinancialItem) { i.Priority = "urgent" },
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "negative amount",
			mutate:  func(i *FinancialItem) { i.Amount = decimal.NewFromInt(-1) },
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "zero amount is allowed",
			mutate:  func(i *FinancialItem) { i.Amount = decimal.Zero },
			wantErr: nil,
		},
		{
			name:    "negative reminder days",
			mutate:  func(i *FinancialItem) { i.ReminderDaysBefore = -1 },
			wantErr: ErrNegativeReminder,
		},
		{
			name:    "unparseable due date",
			mutate:  func(i *FinancialItem) { i.DueDate = "April 1st" },
			wantErr: ErrInvalidDueDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := validItem()
			tt.mutate(&it)
			err := it.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseDueDate(t *testing.T) {
	if _, err := ParseDueDate("2026-02-20"); err != nil {
		t.Errorf("ParseDueDate() error = %v, want nil", err)
	}
	if _, err := ParseDueDate(" 2026-02-20 "); err != nil {
		t.Errorf("ParseDueDate() with surrounding spaces error = %v, want nil", err)
	}
	if _, err := ParseDueDate("2026-13-40"); !errors.Is(err, ErrInvalidDueDate) {
		t.Errorf("ParseDueDate() error = %v, want ErrInvalidDueDate", err)
	}
}
