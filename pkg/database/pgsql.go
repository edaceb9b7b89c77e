package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPingTimeout = 5 * time.Second

// PoolOptions tunes the connection pool built by NewPgxPool.
type PoolOptions struct {
	// Ping verifies connectivity before the pool is returned.
	Ping bool
	// MaxConns overrides pool_max_conns from the URL when positive.
	MaxConns int32
	// PingTimeout bounds the initial ping. Zero means five seconds.
	PingTimeout time.Duration
}

// NewPgxPool creates a PostgreSQL connection pool for the credential and property stores.
func NewPgxPool(ctx context.Context, databaseURL string, opts PoolOptions) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if opts.Ping {
		timeout := opts.PingTimeout
		if timeout <= 0 {
			timeout = defaultPingTimeout
		}
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		slog.Info("Connected to PostgreSQL", slog.Int("max_conns", int(config.MaxConns)))
	}

	return pool, nil
}

// ClosePgxPool closes the pool if one was created.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	pool.Close()
	slog.Info("PostgreSQL connection pool closed")
}
