// Package store defines the Item Store port. The aggregation engine and
// the assistant only ever see this interface; how the collection is
// persisted is an implementation detail of the chosen backend.
package store

import (
	"context"
	"errors"

	"finmind/internal/core"
)

var ErrDuplicateID = errors.New("item id already exists")

// Store owns the ordered item collection: most-recently-added first.
// List returns a snapshot the caller may keep; mutations replace the
// collection wholesale, so a snapshot never observes a partial update.
// Removing an unknown id is a no-op.
type Store interface {
	List(ctx context.Context) ([]core.FinancialItem, error)
	Add(ctx context.Context, item core.FinancialItem) error
	AddMany(ctx context.Context, items []core.FinancialItem) error
	Remove(ctx context.Context, id string) error
}
