// Copyright (c) 2026 ArtStudy. All rights reserved.
// Author: lin.wanqing.art@gmail.com

package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists each key as one row in the app_state table.
//
// The table is created by the 0001_create_app_state migration:
//
//	CREATE TABLE app_state (key TEXT PRIMARY KEY, value JSONB NOT NULL, ...)
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore wraps an already-connected pgx pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get reads the document stored for key, reporting found=false when no row exists.
func (store *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM app_state
		WHERE key = $1;
	`

	var data []byte
	err := store.db.QueryRow(ctx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kvstore: postgres get %q: %w", key, err)
	}

	return data, true, nil
}

// Set upserts the document stored for key, overwriting any previous value.
func (store *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now();
	`

	if _, err := store.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("kvstore: postgres set %q: %w", key, err)
	}

	return nil
}
