package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pavlenko-transit/pickboard/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Executor is satisfied by both *pgxpool.Pool and pgx.Tx. Repositories
// are built against this interface so a service can run several
// repositories' writes inside one caller-supplied transaction (the
// Assignment Engine's commit, the Preference Store's upsert) while
// plain reads keep hitting the pool directly.
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Client represents a PostgreSQL client
type Client struct {
	Pool *pgxpool.Pool
}

// TxRunner is satisfied by *Client; service layers depend on this
// narrower interface (instead of *Client directly) so tests can
// substitute a fake that runs fn against a mocked Executor without a
// real database.
type TxRunner interface {
	WithSerializableTx(ctx context.Context, fn func(ctx context.Context, tx Executor) error) error
}

// WithSerializableTx runs fn inside a SERIALIZABLE transaction,
// committing on success and rolling back on error or panic. The
// Assignment Engine's commit and the Preference Store's
// upsert-against-period-status check both need this isolation level
// to avoid racing a concurrent writer. fn receives the Executor (not
// the concrete pgx.Tx) so repositories composed inside it are built
// the same way whether they run against a transaction or the bare
// pool.
func (c *Client) WithSerializableTx(ctx context.Context, fn func(ctx context.Context, tx Executor) error) error {
	tx, err := c.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// New creates a new PostgreSQL client
func New(ctx context.Context, cfg config.DatabaseConfig) (*Client, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	// Set connection pool settings
	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &Client{Pool: pool}, nil
}

// Close closes the database connection pool
func (c *Client) Close() {
	c.Pool.Close()
}

// Health checks the database health
func (c *Client) Health(ctx context.Context) error {
	return c.Pool.Ping(ctx)
}
