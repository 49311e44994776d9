package sqlapply

import (
	"database/sql"
)

// SqliteClient implements Client for SQLite and embeds BaseClient. It serves
// both the "sqlite3" (CGo) and "sqlite" (pure Go) drivers; script execution
// behaves identically under either, and a whole multi-statement script runs
// as one opaque unit the way sqlite3_exec does.
type SqliteClient struct {
	BaseClient
}

// NewSqliteClient creates a new SqliteClient.
func NewSqliteClient(cfg Config, db *sql.DB) *SqliteClient {
	return &SqliteClient{
		BaseClient: BaseClient{
			Config: cfg,
			DB:     db,
		},
	}
}
