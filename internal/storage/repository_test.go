package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"finmind/internal/core"
	"finmind/internal/store"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "finmind.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository() error = %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func storageItem(id string) core.FinancialItem {
	return core.FinancialItem{
		ID:                 id,
		Type:               core.TypeSubscription,
		Name:               "Music Streaming",
		Amount:             decimal.RequireFromString("119.50"),
		DueDate:            "2026-07-10",
		ReminderDaysBefore: 1,
		Priority:           core.PriorityLow,
	}
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	want := storageItem("sub-1")
	if err := repo.Add(ctx, want); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("List() returned %d items, want 1", len(items))
	}

	got := items[0]
	if got.ID != want.ID || got.Type != want.Type || got.Name != want.Name ||
		got.DueDate != want.DueDate || got.ReminderDaysBefore != want.ReminderDaysBefore ||
		got.Priority != want.Priority || !got.Amount.Equal(want.Amount) {
		t.Errorf("List()[0] = %+v, want %+v", got, want)
	}
}

func TestSQLiteRepository_OrderMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, id := range []string{"a", "b", "c"} {
		it := storageItem(id)
		if err := repo.Add(ctx, it); err != nil {
			t.Fatalf("Add(%s) error = %v", id, err)
		}
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 3 || items[0].ID != "c" || items[2].ID != "a" {
		t.Errorf("List() order = %v, want [c b a]", ids(items))
	}
}

func TestSQLiteRepository_AddManyIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if err := repo.Add(ctx, storageItem("dup")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	err := repo.AddMany(ctx, []core.FinancialItem{storageItem("fresh"), storageItem("dup")})
	if !errors.Is(err, store.ErrDuplicateID) {
		t.Fatalf("AddMany() error = %v, want ErrDuplicateID", err)
	}

	items, _ := repo.List(ctx)
	if len(items) != 1 {
		t.Errorf("List() returned %d items after failed batch, want 1 (no partial import)", len(items))
	}
}

func TestSQLiteRepository_RemoveUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if err := repo.Add(ctx, storageItem("keep")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := repo.Remove(ctx, "missing"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	items, _ := repo.List(ctx)
	if len(items) != 1 {
		t.Errorf("List() returned %d items, want collection unchanged", len(items))
	}
}

func ids(items []core.FinancialItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
