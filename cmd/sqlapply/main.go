// Package main implements the sqlapply CLI.  It resolves the given file and
// directory arguments into a sorted list of SQL scripts and applies them to
// the database configured through the environment (typically a .env file
// providing SQLITE_DB_PATH).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver (CGo)
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"sqlapply"
)

var versionString = sqlapply.Version + " (" + sqlapply.GitCommit + ")"

// usage prints the help text.
func usage() {
	header := `Usage:
  sqlapply [options] <path> [path ...]

Applies every .sql file named by the arguments to the configured database,
in ascending path order.  File arguments are used directly; directory
arguments are searched recursively.  The database target is read from the
environment (SQLITE_DB_PATH, or DATABASE_URL when SQL_DRIVER is "pg"),
optionally loaded from an environment definition file.

Options:`
	fmt.Fprintln(os.Stderr, header)
	flag.PrintDefaults()
}

func main() {
	envFile := flag.String("env", ".env", "Path to the environment definition file")
	helpFlag := flag.Bool("help", false, "Show help message")
	versionFlag := flag.Bool("version", false, "Show version")

	flag.Usage = usage
	flag.Parse()

	if *helpFlag {
		usage()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Println("sqlapply version:", versionString)
		os.Exit(0)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one file or directory path is required.")
		usage()
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	sugar := logger.Sugar()

	cfg, envFound, err := sqlapply.LoadConfig(*envFile)
	if !envFound {
		sugar.Warnw("env file not found, proceeding with ambient environment", "path", *envFile)
	}
	if err != nil {
		sugar.Errorw("invalid configuration", "error", err)
		os.Exit(1)
	}

	scripts, err := sqlapply.CollectScripts(paths)
	if err != nil {
		sugar.Fatalw("resolving script paths", "error", err)
	}

	runner := sqlapply.NewRunner(cfg)
	if err := runner.Apply(context.Background(), scripts); err != nil {
		sugar.Fatalw("applying scripts", "error", err)
	}
}
