package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQuantity = errors.New("cart: quantity must be at least 1")
	ErrSKU      = errors.New("cart: sku must not be empty")
)

// Line is one ADD TO CART commit.
type Line struct {
	ID       string
	SKU      string
	Name     string
	Quantity int
	AddedAt  time.Time
}

// Store persists cart lines.
type Store struct {
	db    *sql.DB
	clock func() time.Time
}

// NewStore wraps an opened and migrated database.
func NewStore(db *sql.DB) *Store { return &Store{db: db, clock: now} }

// OpenStore opens the database at path, migrates it and returns a Store.
// Use ":memory:" for a throwaway cart.
func OpenStore(path string) (*Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cart db: %w", err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return NewStore(db), nil
}

func (s *Store) Close() error { return s.db.Close() }

// Add records qty of sku and returns the stored line.
func (s *Store) Add(ctx context.Context, sku, name string, qty int) (Line, error) {
	if sku == "" {
		return Line{}, ErrSKU
	}
	if qty < 1 {
		return Line{}, ErrQuantity
	}
	l := Line{
		ID:       uuid.NewString(),
		SKU:      sku,
		Name:     name,
		Quantity: qty,
		AddedAt:  s.clock(),
	}
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO cart_lines(id, seq, sku, name, quantity, added_at)
	VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM cart_lines), ?, ?, ?, ?);
	`, l.ID, l.SKU, l.Name, l.Quantity, l.AddedAt)
	if err != nil {
		return Line{}, fmt.Errorf("insert cart line: %w", err)
	}
	return l, nil
}

// Lines lists every line in the order it was added.
func (s *Store) Lines(ctx context.Context) ([]Line, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, sku, name, quantity, added_at FROM cart_lines ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ID, &l.SKU, &l.Name, &l.Quantity, &l.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Total sums the quantity committed for sku.
func (s *Store) Total(ctx context.Context, sku string) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM cart_lines WHERE sku = ?`, sku).Scan(&total)
	return total, err
}

// Clear removes every line.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cart_lines`)
	return err
}
