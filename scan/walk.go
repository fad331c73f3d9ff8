package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// qualifyingExtensions are the three supported documentation formats.
var qualifyingExtensions = []string{".md", ".ipynb", ".py"}

// resolveTask expands and resolves one task path. It returns the display
// form (home directory abbreviated back to ~) and the resolved absolute
// path, or an error when the path does not exist.
func resolveTask(raw string) (display, root string, err error) {
	path := raw
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, herr := os.UserHomeDir()
		if herr == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", "", err
	}
	abs = strings.TrimSuffix(abs, string(filepath.Separator))
	if _, err := os.Stat(abs); err != nil {
		return "", "", err
	}
	return unexpandHome(abs), abs, nil
}

// unexpandHome abbreviates the user's home directory prefix to ~.
func unexpandHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~" + string(filepath.Separator) + rest
	}
	return path
}

// listFiles walks root and returns the qualifying files in deterministic
// lexical order: supported extensions only, ignored directories pruned,
// ignore patterns applied to the full path. A root that is itself a file
// yields that single file, subject to the same filters.
func (s *Scanner) listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if slices.Contains(s.IgnoreDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !slices.Contains(qualifyingExtensions, filepath.Ext(path)) {
			return nil
		}
		for _, re := range s.IgnoreFiles {
			if re.MatchString(path) {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
