package workflow

import (
	"os"
	"path/filepath"
)

// DefaultGlob matches the workflow document format's extension.
const DefaultGlob = "*.json"

// ScanDirectory returns workflow files in dir whose base name matches
// pattern, in sorted order. The scan is non-recursive. A missing path or
// a non-directory yields an empty slice, not an error.
func ScanDirectory(dir, pattern string) []string {
	if pattern == "" {
		pattern = DefaultGlob
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(pattern, e.Name()); ok {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files
}
