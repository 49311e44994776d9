// SPDX-License-Identifier: MIT

// Package sqlapply batch-applies SQL script files to a database.  It expands
// file and directory arguments into a deterministically sorted list of *.sql*
// scripts and executes each script, in order, over a single connection to the
// configured target.
//
// The package does no SQL parsing, no statement splitting and no migration
// version tracking: every script is one opaque execution unit, and whatever
// atomicity the underlying engine provides for a multi-statement script is
// inherited as-is.  A failing script aborts the run immediately; effects of
// scripts that already ran are kept.
//
// # Quick start
//
//	import (
//	    "context"
//
//	    _ "github.com/mattn/go-sqlite3" // or modernc.org/sqlite, pgx
//	    "sqlapply"
//	)
//
//	func main() {
//	    cfg, _, _ := sqlapply.LoadConfig(".env")
//	    scripts, _ := sqlapply.CollectScripts([]string{"seed.sql", "migrations/"})
//	    sqlapply.NewRunner(cfg).Apply(context.Background(), scripts)
//	}
//
// # Configuration
//
// Configuration comes from the process environment, optionally merged from an
// environment definition file (default ".env"):
//
//   - SQLITE_DB_PATH — target database file; required for the SQLite drivers.
//     The parent directory is created before connecting.
//   - SQL_DRIVER     — "sqlite3" (default, CGo), "sqlite" (pure Go) or "pg".
//   - DATABASE_URL   — connection URL; required when SQL_DRIVER is "pg".
//
// A missing environment file is a warning, not an error.  A missing required
// variable is a configuration error and nothing is executed.
//
// # Resolution rules
//
// A file argument is included when it has the .sql extension.  A directory
// argument is searched recursively at any depth.  Arguments that do not exist
// contribute nothing.  The final list is sorted ascending by full path
// string, so execution order is independent of argument order.
//
// # CLI
//
// The companion command lives under cmd/sqlapply:
//
//	sqlapply [-env .env] <path> [path ...]
//
// Exit status is 0 on success (including "no scripts found"), 1 when required
// configuration is missing, and non-zero when a script fails.
package sqlapply
