package sqlapply

import (
	"database/sql"
)

// PostgresClient implements Client for PostgreSQL and embeds BaseClient.
type PostgresClient struct {
	BaseClient
}

// NewPostgresClient creates a new PostgresClient.
func NewPostgresClient(cfg Config, db *sql.DB) *PostgresClient {
	return &PostgresClient{
		BaseClient: BaseClient{
			Config: cfg,
			DB:     db,
		},
	}
}
