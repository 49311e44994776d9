package sqlapply

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// NewClient creates a Client based on the provided configuration and
// database connection.
func NewClient(cfg Config, db *sql.DB) (Client, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverSqlite3, DriverSqlite:
		return NewSqliteClient(cfg, db), nil
	case DriverPg:
		return NewPostgresClient(cfg, db), nil
	default:
		return nil, fmt.Errorf("db driver '%s' not supported. Must be one of: sqlite3, sqlite or pg", cfg.Driver)
	}
}

// Client defines the interface for script execution clients.
type Client interface {
	RunScript(ctx context.Context, script string) error
	Ping(ctx context.Context) error
}

// BaseClient provides the common implementation.
type BaseClient struct {
	Config Config
	DB     *sql.DB
}

// RunScript executes a whole SQL script in a single call. No statement
// splitting is performed and no transaction boundaries are imposed; whatever
// multi-statement semantics the engine provides are inherited as-is.
func (c *BaseClient) RunScript(ctx context.Context, script string) error {
	_, err := c.DB.ExecContext(ctx, script)
	return err
}

// Ping verifies the connection before any script runs.
func (c *BaseClient) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
