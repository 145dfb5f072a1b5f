package entitlement

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists the record as a JSON blob in a single-row table.
// The blob column keeps the read-modify-write semantics identical to the
// other backends instead of splitting fields into columns.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite database at path and
// returns a store bound to it. The caller owns closing the database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, *sql.DB, error) {
	if path == "" {
		return nil, nil, ErrInvalidConfig
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	store, err := NewSQLiteStore(ctx, db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, db, nil
}

// NewSQLiteStore binds a store to an existing database handle and ensures
// the schema exists.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, ErrInvalidConfig
	}
	const schema = `
		CREATE TABLE IF NOT EXISTS subscription (
			id   INTEGER PRIMARY KEY CHECK (id = 1),
			data TEXT NOT NULL
		)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads the single row. No row means a fresh installation; an
// unparsable blob means corruption. Both degrade to defaults.
func (s *SQLiteStore) Load(ctx context.Context) (*Subscription, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM subscription WHERE id = 1`).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DefaultSubscription(), nil
		}
		return DefaultSubscription(), fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var sub Subscription
	if err := json.Unmarshal(data, &sub); err != nil {
		return DefaultSubscription(), nil
	}
	return &sub, nil
}

// Save upserts the single row with the full record.
func (s *SQLiteStore) Save(ctx context.Context, sub *Subscription) error {
	if sub == nil {
		return ErrInvalidConfig
	}
	data, err := json.Marshal(sub)
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO subscription (id, data) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data`, string(data))
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}
