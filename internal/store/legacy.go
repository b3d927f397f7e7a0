package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Legacy is the flat string-keyed namespace earlier app versions stored all
// state in: one serialized blob per logical key. It survives only to be read
// by the migration and to hold the migration completion flag.
type Legacy struct {
	db *sql.DB
}

// Get returns the raw blob stored under key, reporting found=false for an
// absent key.
func (l *Legacy) Get(ctx context.Context, key string) (value string, found bool, err error) {
	err = l.db.QueryRowContext(ctx, `SELECT value FROM legacy_kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: legacy get %s: %v", ErrIO, key, err)
	}
	return value, true, nil
}

// Set upserts a raw blob under key.
func (l *Legacy) Set(ctx context.Context, key, value string) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO legacy_kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("%w: legacy set %s: %v", ErrIO, key, err)
	}
	return nil
}

// Delete removes a legacy key; absent keys are a no-op.
func (l *Legacy) Delete(ctx context.Context, key string) error {
	if _, err := l.db.ExecContext(ctx, `DELETE FROM legacy_kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%w: legacy delete %s: %v", ErrIO, key, err)
	}
	return nil
}
