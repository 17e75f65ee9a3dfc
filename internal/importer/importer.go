// Package importer is the admission boundary for bulk JSON input. It
// accepts a single item object or an array of them, assigns ids where
// missing, and validates every record before anything is admitted: a
// single bad record rejects the whole batch.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"finmind/internal/core"
)

// ValidationError describes why an import payload was rejected. Index is
// the position of the offending record, or -1 when the payload itself
// could not be decoded.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid import payload: %v", e.Err)
	}
	return fmt.Sprintf("invalid item at index %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Parse decodes and validates an import payload. All-or-nothing: on any
// failure no items are returned.
func Parse(data []byte) ([]core.FinancialItem, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &ValidationError{Index: -1, Err: fmt.Errorf("empty payload")}
	}

	var items []core.FinancialItem

	// A bare object counts as a one-item batch.
	if trimmed[0] == '{' {
		var single core.FinancialItem
		if err := decodeStrict(trimmed, &single); err != nil {
			return nil, &ValidationError{Index: -1, Err: err}
		}
		items = []core.FinancialItem{single}
	} else {
		if err := decodeStrict(trimmed, &items); err != nil {
			return nil, &ValidationError{Index: -1, Err: err}
		}
	}

	seen := make(map[string]struct{}, len(items))
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		if err := items[i].Validate(); err != nil {
			return nil, &ValidationError{Index: i, Err: err}
		}
		if _, dup := seen[items[i].ID]; dup {
			return nil, &ValidationError{Index: i, Err: fmt.Errorf("duplicate id %q in batch", items[i].ID)}
		}
		seen[items[i].ID] = struct{}{}
	}

	return items, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}
