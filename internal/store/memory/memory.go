// Package memory provides the default in-process Item Store. The
// collection is held as an immutable slice replaced on every mutation, so
// readers holding a snapshot are never affected by later writes.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"finmind/internal/core"
	"finmind/internal/store"
)

type Store struct {
	mu    sync.Mutex
	items []core.FinancialItem
}

var _ store.Store = (*Store)(nil)

func New(seed []core.FinancialItem) *Store {
	return &Store{items: append([]core.FinancialItem(nil), seed...)}
}

// NewSeeded returns a store preloaded with the demo data set.
func NewSeeded() *Store {
	today := time.Now().UTC().Format(core.DateLayout)
	return New([]core.FinancialItem{
		{
			ID:                 "1",
			Type:               core.TypeEMI,
			Name:               "Bike Loan",
			Amount:             decimal.NewFromInt(3500),
			DueDate:            "2026-02-20",
			ReminderDaysBefore: 3,
			Priority:           core.PriorityHigh,
		},
		{
			ID:                 "2",
			Type:               core.TypeSubscription,
			Name:               "Netflix Premium",
			Amount:             decimal.NewFromInt(649),
			DueDate:            "2024-05-15",
			ReminderDaysBefore: 1,
			Priority:           core.PriorityLow,
		},
		{
			ID:                 "3",
			Type:               core.TypeBill,
			Name:               "Electricity Bill",
			Amount:             decimal.NewFromInt(1250),
			DueDate:            today,
			ReminderDaysBefore: 2,
			Priority:           core.PriorityHigh,
		},
	})
}

func (s *Store) List(_ context.Context) ([]core.FinancialItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items, nil
}

func (s *Store) Add(_ context.Context, item core.FinancialItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contains(item.ID) {
		return fmt.Errorf("add item %s: %w", item.ID, store.ErrDuplicateID)
	}

	next := make([]core.FinancialItem, 0, len(s.items)+1)
	next = append(next, item)
	next = append(next, s.items...)
	s.items = next
	return nil
}

func (s *Store) AddMany(_ context.Context, items []core.FinancialItem) error {
	if len(items) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("add item %s: %w", it.ID, store.ErrDuplicateID)
		}
		seen[it.ID] = struct{}{}
		if s.contains(it.ID) {
			return fmt.Errorf("add item %s: %w", it.ID, store.ErrDuplicateID)
		}
	}

	next := make([]core.FinancialItem, 0, len(s.items)+len(items))
	next = append(next, items...)
	next = append(next, s.items...)
	s.items = next
	return nil
}

func (s *Store) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]core.FinancialItem, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	s.items = next
	return nil
}

// contains assumes s.mu is held.
func (s *Store) contains(id string) bool {
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}
