package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"cardplanet/pkg/logger"
)

const cartSchema = `
CREATE TABLE IF NOT EXISTS carts (
    session_id TEXT PRIMARY KEY,
    items      TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);`

// OpenCartDB opens (and initializes) the local cart store.
func OpenCartDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cart database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping cart database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			logger.Warn("Failed to apply %q: %v", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, cartSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cart schema: %w", err)
	}

	return db, nil
}
