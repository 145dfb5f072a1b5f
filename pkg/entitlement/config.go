package entitlement

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	redisconn "github.com/quotekit/quotekit/pkg/redis"
)

// StoreDriver selects the persistence backend for the record.
type StoreDriver string

const (
	DriverMemory   StoreDriver = "memory"
	DriverFile     StoreDriver = "file"
	DriverRedis    StoreDriver = "redis"
	DriverSQLite   StoreDriver = "sqlite"
	DriverPostgres StoreDriver = "postgres"
)

// StoreConfig selects and configures the persistence backend from the
// environment. Load it with the config package:
//
//	var cfg entitlement.StoreConfig
//	if err := config.Load(&cfg); err != nil { ... }
//	store, cleanup, err := entitlement.NewStore(ctx, cfg)
type StoreConfig struct {
	Driver      StoreDriver `env:"ENTITLEMENT_STORE_DRIVER" envDefault:"file"`
	FilePath    string      `env:"ENTITLEMENT_STORE_PATH" envDefault:"entitlement.json"`
	SQLitePath  string      `env:"ENTITLEMENT_SQLITE_PATH" envDefault:"entitlement.db"`
	RedisKey    string      `env:"ENTITLEMENT_REDIS_KEY" envDefault:"entitlement:subscription"`
	Redis       redisconn.Config
	PostgresURL string `env:"ENTITLEMENT_POSTGRES_URL"`
}

// NewStore builds the configured Store. The returned cleanup function
// closes any connection the factory opened; it is always safe to call.
func NewStore(ctx context.Context, cfg StoreConfig) (Store, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryStore(), noop, nil

	case DriverFile, "":
		store, err := NewFileStore(cfg.FilePath)
		return store, noop, err

	case DriverRedis:
		client, err := redisconn.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		store, err := NewRedisStore(client, cfg.RedisKey)
		if err != nil {
			client.Close()
			return nil, noop, err
		}
		return store, func() { client.Close() }, nil

	case DriverSQLite:
		store, db, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { db.Close() }, nil

	case DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		store, err := NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, noop, err
		}
		return store, func() { pool.Close() }, nil
	}

	return nil, noop, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.Driver)
}
