package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"finmind/internal/core"
	"finmind/internal/store"
)

func testItem(id, name string) core.FinancialItem {
	return core.FinancialItem{
		ID:                 id,
		Type:               core.TypeBill,
		Name:               name,
		Amount:             decimal.NewFromInt(100),
		DueDate:            "2026-06-01",
		ReminderDaysBefore: 2,
		Priority:           core.PriorityMedium,
	}
}

func TestStore_AddOrdersMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	s := New(nil)

	if err := s.Add(ctx, testItem("a", "first")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add(ctx, testItem("b", "second")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 2 || items[0].ID != "b" || items[1].ID != "a" {
		t.Errorf("List() order = %v, want [b a]", items)
	}
}

func TestStore_AddDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := New([]core.FinancialItem{testItem("a", "existing")})

	err := s.Add(ctx, testItem("a", "duplicate"))
	if !errors.Is(err, store.ErrDuplicateID) {
		t.Errorf("Add() error = %v, want ErrDuplicateID", err)
	}
}

func TestStore_AddMany(t *testing.T) {
	ctx := context.Background()
	s := New([]core.FinancialItem{testItem("old", "existing")})

	batch := []core.FinancialItem{testItem("x", "one"), testItem("y", "two")}
	if err := s.AddMany(ctx, batch); err != nil {
		t.Fatalf("AddMany() error = %v", err)
	}

	items, _ := s.List(ctx)
	if len(items) != 3 || items[0].ID != "x" || items[2].ID != "old" {
		t.Errorf("List() after AddMany = %v, want imported items first", items)
	}
}

func TestStore_AddManyRejectsDuplicateInBatch(t *testing.T) {
	ctx := context.Background()
	s := New(nil)

	err := s.AddMany(ctx, []core.FinancialItem{testItem("x", "one"), testItem("x", "again")})
	if !errors.Is(err, store.ErrDuplicateID) {
		t.Fatalf("AddMany() error = %v, want ErrDuplicateID", err)
	}

	items, _ := s.List(ctx)
	if len(items) != 0 {
		t.Errorf("List() = %v, want no partial insert", items)
	}
}

func TestStore_RemoveUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s := New([]core.FinancialItem{testItem("a", "keep")})

	if err := s.Remove(ctx, "missing"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	items, _ := s.List(ctx)
	if len(items) != 1 || items[0].ID != "a" {
		t.Errorf("List() = %v, want collection unchanged", items)
	}
}

func TestStore_SnapshotIsStable(t *testing.T) {
	ctx := context.Background()
	s := New([]core.FinancialItem{testItem("a", "one")})

	snapshot, _ := s.List(ctx)

	if err := s.Add(ctx, testItem("b", "two")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if len(snapshot) != 1 || snapshot[0].ID != "a" {
		t.Errorf("snapshot = %v, want the pre-mutation view", snapshot)
	}
}
