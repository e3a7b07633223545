// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
)

// FindUp searches start and each of its parent directories for a regular
// file named one of names. Within a directory, earlier names win. It returns
// the full path of the first match.
func FindUp(start string, names ...string) (string, bool) {
	if len(names) == 0 {
		panic("names must not be empty")
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
