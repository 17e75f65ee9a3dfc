// Package storage implements the Item Store on SQLite. It is the durable
// backend: the collection survives restarts, unlike the in-memory store.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"finmind/internal/core"
	"finmind/internal/store"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ store.Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// List returns all items, most recently added first.
func (r *SQLiteRepository) List(ctx context.Context) ([]core.FinancialItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, name, amount, due_date, reminder_days_before, priority
		FROM items
		ORDER BY position DESC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []core.FinancialItem{}
	for rows.Next() {
		var (
			it     core.FinancialItem
			amount string
		)
		if err := rows.Scan(&it.ID, &it.Type, &it.Name, &amount, &it.DueDate, &it.ReminderDaysBefore, &it.Priority); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("decode amount for item %s: %w", it.ID, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

func (r *SQLiteRepository) Add(ctx context.Context, item core.FinancialItem) error {
	return r.AddMany(ctx, []core.FinancialItem{item})
}

// AddMany inserts a batch inside one transaction: either the whole batch
// lands or none of it does. Positions are assigned so that the last
// element of the batch ends up newest, matching the memory store.
func (r *SQLiteRepository) AddMany(ctx context.Context, items []core.FinancialItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var next int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) FROM items`).Scan(&next); err != nil {
		return fmt.Errorf("read max position: %w", err)
	}

	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		next++
		_, err := tx.ExecContext(ctx, `
			INSERT INTO items (id, type, name, amount, due_date, reminder_days_before, priority, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, string(it.Type), it.Name, it.Amount.String(), it.DueDate, it.ReminderDaysBefore, string(it.Priority), next)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("add item %s: %w", it.ID, store.ErrDuplicateID)
			}
			return fmt.Errorf("insert item %s: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit items: %w", err)
	}

	slog.InfoContext(ctx, "Items saved to SQLite", "count", len(items))
	return nil
}

// Remove deletes by id. An unknown id is a no-op, not an error.
func (r *SQLiteRepository) Remove(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		slog.InfoContext(ctx, "Item deleted from SQLite", "id", id)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	// modernc.org/sqlite reports constraint failures in the error text;
	// there is no portable sentinel to compare against.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
