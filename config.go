package sqlapply

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Driver names accepted in SQL_DRIVER.
const (
	// DriverSqlite3 is the CGo SQLite driver (github.com/mattn/go-sqlite3).
	DriverSqlite3 = "sqlite3"

	// DriverSqlite is the pure-Go SQLite driver (modernc.org/sqlite).
	DriverSqlite = "sqlite"

	// DriverPg is the PostgreSQL driver (github.com/jackc/pgx/v5/stdlib).
	DriverPg = "pg"
)

// Config holds the settings for a run.
type Config struct {
	// Driver selects the database driver: "sqlite3" (default), "sqlite"
	// or "pg".
	Driver string `env:"SQL_DRIVER"`

	// DatabasePath is the SQLite database file. Required for the SQLite
	// drivers; the parent directory is created before connecting.
	DatabasePath string `env:"SQLITE_DB_PATH"`

	// DatabaseURL is the connection URL for the pg driver.
	DatabaseURL string `env:"DATABASE_URL"`
}

// LoadConfig builds a Config from the process environment after merging in
// the environment definition file at envFile. It reports whether the file
// was found so callers can warn when it is missing; a missing file is not an
// error and the ambient environment applies as-is. Variables already present
// in the environment take precedence over the file.
func LoadConfig(envFile string) (Config, bool, error) {
	found := true
	if err := godotenv.Load(envFile); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, false, fmt.Errorf("loading %s: %w", envFile, err)
		}
		found = false
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, found, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSqlite3
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, found, err
	}
	return cfg, found, nil
}

// Validate checks that the variables required by the selected driver are set.
func (c Config) Validate() error {
	switch strings.ToLower(c.Driver) {
	case DriverSqlite3, DriverSqlite:
		if c.DatabasePath == "" {
			return errors.New("SQLITE_DB_PATH is not set")
		}
	case DriverPg:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is not set")
		}
	default:
		return fmt.Errorf("db driver '%s' not supported. Must be one of: sqlite3, sqlite or pg", c.Driver)
	}
	return nil
}

// DataSourceName returns the database/sql driver name and the data source
// string for the configured target.
func (c Config) DataSourceName() (driver, dsn string) {
	if strings.ToLower(c.Driver) == DriverPg {
		return "pgx", c.DatabaseURL
	}
	return strings.ToLower(c.Driver), c.DatabasePath
}

// EnsureTargetDir creates the parent directory of the database file,
// including intermediate directories. The pg driver has no filesystem
// target, so this is a no-op for it.
func (c Config) EnsureTargetDir() error {
	if strings.ToLower(c.Driver) == DriverPg {
		return nil
	}
	dir := filepath.Dir(c.DatabasePath)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
