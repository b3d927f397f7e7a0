// Package store implements the local embedded datastore: named collections
// of JSON records over a single SQLite file, each collection keyed by a
// declared primary-key field.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Error constants for the storage layer.
var (
	ErrUnavailable       = StoreError("local database unavailable")
	ErrIO                = StoreError("storage read/write failed")
	ErrUnknownCollection = StoreError("unknown collection")
	ErrMissingKey        = StoreError("record is missing its key field")
)

// StoreError helps distinguish storage errors from other failures.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// Collection declares one named record set and the field its records are
// keyed by. Collections are fixed at Open time.
type Collection struct {
	Name     string
	KeyField string
}

// Store is the process-wide local datastore handle. It is opened once by the
// composition root and shared; the SQLite driver serializes access through a
// single connection.
type Store struct {
	db          *sql.DB
	collections map[string]Collection
}

// Open opens (or creates) the database at path and ensures a table exists
// for every declared collection plus the legacy flat namespace. Re-opening
// an existing database is a no-op for schema: every statement is
// IF NOT EXISTS.
func Open(path string, collections []Collection) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s := &Store{
		db:          db,
		collections: make(map[string]Collection, len(collections)),
	}
	for _, c := range collections {
		stmt := fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %q (key TEXT PRIMARY KEY, value TEXT NOT NULL)`, c.Name)
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: create collection %s: %v", ErrUnavailable, c.Name, err)
		}
		s.collections[c.Name] = c
	}
	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS legacy_kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create legacy namespace: %v", ErrUnavailable, err)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Legacy returns the flat pre-migration namespace backed by the same file.
func (s *Store) Legacy() *Legacy {
	return &Legacy{db: s.db}
}

// Get retrieves the record stored under key and decodes it into dest.
// A missing key is not an error: Get reports found=false and leaves dest
// untouched.
func (s *Store) Get(ctx context.Context, collection, key string, dest any) (found bool, err error) {
	c, ok := s.collections[collection]
	if !ok {
		return false, ErrUnknownCollection
	}
	var raw string
	query := fmt.Sprintf(`SELECT value FROM %q WHERE key = ?`, c.Name)
	err = s.db.QueryRowContext(ctx, query, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: get %s/%s: %v", ErrIO, collection, key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("%w: decode %s/%s: %v", ErrIO, collection, key, err)
	}
	return true, nil
}

// Put upserts record into the collection, keyed by the collection's declared
// key field. The record must serialize to a JSON object containing that
// field as a non-empty string.
func (s *Store) Put(ctx context.Context, collection string, record any) error {
	c, ok := s.collections[collection]
	if !ok {
		return ErrUnknownCollection
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: encode record for %s: %v", ErrIO, collection, err)
	}
	key, err := extractKey(raw, c.KeyField)
	if err != nil {
		return err
	}
	stmt := fmt.Sprintf(
		`INSERT INTO %q (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, c.Name)
	if _, err := s.db.ExecContext(ctx, stmt, key, string(raw)); err != nil {
		return fmt.Errorf("%w: put %s/%s: %v", ErrIO, collection, key, err)
	}
	return nil
}

// Delete removes the record under key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, collection, key string) error {
	c, ok := s.collections[collection]
	if !ok {
		return ErrUnknownCollection
	}
	stmt := fmt.Sprintf(`DELETE FROM %q WHERE key = ?`, c.Name)
	if _, err := s.db.ExecContext(ctx, stmt, key); err != nil {
		return fmt.Errorf("%w: delete %s/%s: %v", ErrIO, collection, key, err)
	}
	return nil
}

// GetAll returns every record in the collection as raw JSON. Order is
// unspecified; callers must not rely on it.
func (s *Store) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	c, ok := s.collections[collection]
	if !ok {
		return nil, ErrUnknownCollection
	}
	query := fmt.Sprintf(`SELECT value FROM %q`, c.Name)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: scan %s: %v", ErrIO, collection, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %v", ErrIO, collection, err)
		}
		records = append(records, json.RawMessage(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan %s: %v", ErrIO, collection, err)
	}
	return records, nil
}

// Clear removes every record in the collection.
func (s *Store) Clear(ctx context.Context, collection string) error {
	c, ok := s.collections[collection]
	if !ok {
		return ErrUnknownCollection
	}
	stmt := fmt.Sprintf(`DELETE FROM %q`, c.Name)
	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("%w: clear %s: %v", ErrIO, collection, err)
	}
	return nil
}

// extractKey pulls the declared key field out of an encoded record.
func extractKey(raw []byte, keyField string) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", fmt.Errorf("%w: record is not an object", ErrMissingKey)
	}
	rawKey, ok := fields[keyField]
	if !ok {
		return "", ErrMissingKey
	}
	var key string
	if err := json.Unmarshal(rawKey, &key); err != nil || key == "" {
		return "", ErrMissingKey
	}
	return key, nil
}
