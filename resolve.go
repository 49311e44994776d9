// Package sqlapply batch-applies SQL script files to a database.
package sqlapply

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ScriptExt is the file extension that identifies an executable SQL script.
const ScriptExt = ".sql"

// CollectScripts expands a mix of file and directory paths into a flat,
// lexicographically sorted list of SQL script paths.
//
// A file argument is included when it carries the .sql extension. A directory
// argument is searched recursively and every .sql file below it is included,
// regardless of depth. Arguments that do not exist, or files with any other
// extension, contribute nothing and raise no error. The returned order
// depends only on the path strings, never on the argument order, so the same
// set of inputs always yields the same execution order.
func CollectScripts(paths []string) ([]string, error) {
	var scripts []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			// Arguments that cannot be resolved are skipped, not fatal.
			continue
		}
		if info.IsDir() {
			found, err := findScripts(p)
			if err != nil {
				return nil, err
			}
			scripts = append(scripts, found...)
			continue
		}
		if isScript(p) {
			scripts = append(scripts, p)
		}
	}
	sort.Strings(scripts)
	return scripts, nil
}

// findScripts walks dir and returns every .sql file below it in lexical order.
func findScripts(dir string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isScript(path) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", dir, err)
	}
	return found, nil
}

// isScript reports whether path has the recognized SQL script extension.
func isScript(path string) bool {
	return filepath.Ext(path) == ScriptExt
}
