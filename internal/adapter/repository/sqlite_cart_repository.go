package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"cardplanet/internal/domain/entity"
	"cardplanet/internal/domain/repository"
	"cardplanet/pkg/errors"
)

// sqliteCartRepository is the durable mirror of the in-memory cart.
// Items are stored as one JSON document per session, the same shape the
// storefront client persisted before the backend took ownership.
type sqliteCartRepository struct {
	db *sql.DB
}

func NewSQLiteCartRepository(db *sql.DB) repository.CartRepository {
	return &sqliteCartRepository{db: db}
}

func (r *sqliteCartRepository) Save(ctx context.Context, sessionID string, items []entity.CartItem) error {
	if items == nil {
		items = []entity.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return errors.Internal("Failed to encode cart", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO carts (session_id, items, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET items = excluded.items, updated_at = excluded.updated_at`,
		sessionID, string(data), time.Now().UTC())
	if err != nil {
		return errors.Internal("Failed to save cart", err)
	}

	return nil
}

func (r *sqliteCartRepository) Load(ctx context.Context, sessionID string) ([]entity.CartItem, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT items FROM carts WHERE session_id = ?`, sessionID).Scan(&data)
	if err == sql.ErrNoRows {
		return []entity.CartItem{}, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to load cart", err)
	}

	var items []entity.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, errors.Internal("Failed to decode cart", err)
	}
	if items == nil {
		items = []entity.CartItem{}
	}

	return items, nil
}

func (r *sqliteCartRepository) Clear(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE session_id = ?`, sessionID)
	if err != nil {
		return errors.Internal("Failed to clear cart", err)
	}
	return nil
}
