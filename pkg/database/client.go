// Package database provides the durable-store client: a pgx-backed ent
// client over ProcessDefinition/ProcessInstance/Variable/ActivityLog.
//
// Schema migrations and database bootstrap are an external collaborator of
// this engine; the embedder is responsible for running
// them before the engine starts. Client exposes the underlying *sql.DB so an
// embedder's own migrator (golang-migrate, atlas, a SQL file runner) can use
// the same pool; in development and tests, EnsureSchema uses ent's built-in
// schema creation instead.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx driver for database/sql

	"github.com/codeready-toolchain/pythmata/ent"
)

// Config holds durable-store connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Client wraps the generated ent client and the pool it rides on.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB returns the underlying *sql.DB for health checks and an embedder's own
// migration tooling.
func (c *Client) DB() *stdsql.DB { return c.db }

// NewClientFromEnt wraps an existing ent client — used by tests that build
// their own client against a testcontainers Postgres instance.
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{Client: entClient, db: db}
}

// NewClient opens a pooled connection and wraps it in an ent client. It does
// not run migrations — see the package doc comment.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := stdsql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	return &Client{Client: entClient, db: db}, nil
}

// EnsureSchema creates the durable-store tables via ent's built-in schema
// creation. Intended for local development and integration tests; production
// deployments are expected to apply the embedder's own migrations before the
// engine starts (see package doc comment).
func (c *Client) EnsureSchema(ctx context.Context) error {
	return c.Client.Schema.Create(ctx)
}

// Close releases the pool and the ent client.
func (c *Client) Close() error {
	return c.Client.Close()
}
