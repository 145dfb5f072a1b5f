package entitlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists the record as a JSONB blob in a single-row table.
// Intended for installations that sync their entitlement state through a
// shared database rather than local disk.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore binds a store to a connection pool and ensures the
// schema exists.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, ErrInvalidConfig
	}
	const schema = `
		CREATE TABLE IF NOT EXISTS entitlement_subscription (
			id   smallint PRIMARY KEY CHECK (id = 1),
			data jsonb NOT NULL
		)`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Load reads the single row, degrading to defaults on a missing row or an
// unparsable blob.
func (s *PostgresStore) Load(ctx context.Context) (*Subscription, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM entitlement_subscription WHERE id = 1`).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
func (s *PostgresStore) Save(ctx context.Context, sub *Subscription) error {
	if sub == nil {
		return ErrInvalidConfig
	}
	data, err := json.Marshal(sub)
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO entitlement_subscription (id, data) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data`, data)
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}
