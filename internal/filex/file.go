// Package filex holds small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir makes sure dir exists and returns its absolute path. A leading
// "~" expands to the user's home directory; relative paths resolve against
// the working directory.
func EnsureDir(dir string) (string, error) {
	path, err := Resolve(dir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(path, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", path, err)
	}

	return path, nil
}

// Resolve expands "~" and makes path absolute without touching the disk.
func Resolve(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("home dir: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}
	return abs, nil
}

// SafeName strips directory components from a remote object key so it can be
// used as a local file name.
func SafeName(key string) string {
	name := filepath.Base(filepath.FromSlash(key))
	if name == "." || name == string(filepath.Separator) || name == ".." {
		return ""
	}
	return name
}
