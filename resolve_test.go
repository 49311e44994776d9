package sqlapply

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// touchScript creates path and any missing parent directories with
// placeholder SQL content, returning the path.
func touchScript(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("SELECT 1;\n"), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// TestCollectScriptsSortedAcrossArguments verifies that the result is sorted
// by full path string and does not depend on argument order.
func TestCollectScriptsSortedAcrossArguments(t *testing.T) {
	tmp := t.TempDir()
	seed := touchScript(t, filepath.Join(tmp, "seed.sql"))
	migDir := filepath.Join(tmp, "migrations")
	second := touchScript(t, filepath.Join(migDir, "002_add_index.sql"))
	first := touchScript(t, filepath.Join(migDir, "001_create_table.sql"))

	want := []string{first, second, seed}

	got, err := CollectScripts([]string{seed, migDir})
	if err != nil {
		t.Fatalf("CollectScripts failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Same inputs, reversed argument order.
	got, err = CollectScripts([]string{migDir, seed})
	if err != nil {
		t.Fatalf("CollectScripts (reversed args) failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v after reordering arguments, got %v", want, got)
	}
}

// TestCollectScriptsIgnoresOtherExtensions verifies that only .sql files are
// included, whether named directly or found inside a directory.
func TestCollectScriptsIgnoresOtherExtensions(t *testing.T) {
	tmp := t.TempDir()
	touchScript(t, filepath.Join(tmp, "notes.txt"))
	touchScript(t, filepath.Join(tmp, "schema.sql.bak"))
	query := touchScript(t, filepath.Join(tmp, "query.sql"))
	readme := touchScript(t, filepath.Join(tmp, "readme.md"))

	got, err := CollectScripts([]string{tmp, readme})
	if err != nil {
		t.Fatalf("CollectScripts failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{query}) {
		t.Errorf("expected only %s, got %v", query, got)
	}
}

// TestCollectScriptsRecursive verifies that directory search descends to any
// depth.
func TestCollectScriptsRecursive(t *testing.T) {
	tmp := t.TempDir()
	deep := touchScript(t, filepath.Join(tmp, "a", "b", "c", "deep.sql"))

	got, err := CollectScripts([]string{tmp})
	if err != nil {
		t.Fatalf("CollectScripts failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{deep}) {
		t.Errorf("expected %s at depth three, got %v", deep, got)
	}
}

// TestCollectScriptsMissingPathSkipped verifies that nonexistent arguments
// contribute nothing and raise no error.
func TestCollectScriptsMissingPathSkipped(t *testing.T) {
	tmp := t.TempDir()
	real := touchScript(t, filepath.Join(tmp, "real.sql"))
	missing := filepath.Join(tmp, "does-not-exist")

	got, err := CollectScripts([]string{missing, real})
	if err != nil {
		t.Fatalf("CollectScripts failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{real}) {
		t.Errorf("expected %v, got %v", []string{real}, got)
	}
}

// TestCollectScriptsEmptyResult verifies that an empty result is a valid
// outcome, not an error.
func TestCollectScriptsEmptyResult(t *testing.T) {
	got, err := CollectScripts([]string{t.TempDir()})
	if err != nil {
		t.Fatalf("CollectScripts failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no scripts, got %v", got)
	}
}
