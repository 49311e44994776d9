package sqlapply

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
)

// Runner applies resolved SQL scripts to the configured database target.
//
// The connection is scoped to a single Apply call: it is opened only once
// there is at least one script to run, and released on every exit path.
type Runner struct {
	cfg Config

	// Out receives operator-facing progress output. Defaults to os.Stdout.
	Out io.Writer
}

// NewRunner creates a Runner for the given configuration.
func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg, Out: os.Stdout}
}

// Apply executes every script in list order against one connection.
//
// An empty list is reported and succeeds without opening a connection. The
// first failing script aborts the run; effects already applied by earlier
// scripts are kept.
func (r *Runner) Apply(ctx context.Context, scripts []string) error {
	if len(scripts) == 0 {
		fmt.Fprintln(r.Out, "No .sql files found to execute.")
		return nil
	}

	if err := r.cfg.EnsureTargetDir(); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	driver, dsn := r.cfg.DataSourceName()
	fmt.Fprintf(r.Out, "Connecting to %s database: %s\n", driver, dsn)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	client, err := NewClient(r.cfg, db)
	if err != nil {
		return err
	}
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	return r.runAll(ctx, client, scripts)
}

// runAll executes scripts in order against an already connected client.
func (r *Runner) runAll(ctx context.Context, client Client, scripts []string) error {
	for _, script := range scripts {
		fmt.Fprintf(r.Out, "Executing: %s\n", script)
		contents, err := os.ReadFile(script)
		if err != nil {
			return fmt.Errorf("reading %s: %w", script, err)
		}
		if err := client.RunScript(ctx, string(contents)); err != nil {
			return fmt.Errorf("executing %s: %w", script, err)
		}
	}
	fmt.Fprintln(r.Out, "Execution complete.")
	return nil
}
