// Package fs provides the file-based project store: the task list, ignore
// lists, allow-list, and report output files of one project directory.
package fs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/docspell/docspell"
)

// Project directory file names.
const (
	TasksFile       = "tasks.txt"
	IgnoreDirsFile  = "xxxDir.txt"
	IgnoreFilesFile = "xxxFile.txt"
	AllowedFile     = "allowed.txt"
	SummaryFile     = "summary.txt"
	LocationsFile   = "locations.txt"
)

// Project is one project directory under the projects root.
type Project struct {
	dir string
}

// NewProject opens (creating if needed) the project directory name under
// root.
func NewProject(root, name string) (*Project, error) {
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Project{dir: dir}, nil
}

// Dir returns the project directory path.
func (p *Project) Dir() string {
	return p.dir
}

// HasTasks reports whether the project has a task list file.
func (p *Project) HasTasks() bool {
	info, err := os.Stat(filepath.Join(p.dir, TasksFile))
	return err == nil && !info.IsDir()
}

// Tasks returns the task paths from the task list, in file order. Lines
// starting with # are comments; blank lines are skipped.
func (p *Project) Tasks() ([]string, error) {
	lines, err := readLines(filepath.Join(p.dir, TasksFile))
	if err != nil {
		return nil, err
	}
	var tasks []string
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		tasks = append(tasks, line)
	}
	return tasks, nil
}

// IgnoreDirs returns the directory basenames excluded from the walk.
// A missing list means nothing is excluded.
func (p *Project) IgnoreDirs() ([]string, error) {
	lines, err := readLines(filepath.Join(p.dir, IgnoreDirsFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return lines, err
}

// IgnoreFiles returns the compiled file-exclusion patterns, matched against
// full file paths during the walk. A missing list means nothing is
// excluded; an invalid pattern is a configuration error.
func (p *Project) IgnoreFiles() ([]*regexp.Regexp, error) {
	lines, err := readLines(filepath.Join(p.dir, IgnoreFilesFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	patterns := make([]*regexp.Regexp, 0, len(lines))
	for _, line := range lines {
		re, err := regexp.Compile(line)
		if err != nil {
			return nil, docspell.Errorf(docspell.EINVALID, "invalid ignore pattern %q: %s", line, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

// Allowlist returns the allowed words as a case-sensitive set. A missing
// file is an empty allow-list.
func (p *Project) Allowlist() (map[string]struct{}, error) {
	lines, err := readLines(filepath.Join(p.dir, AllowedFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	allowed := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		allowed[line] = struct{}{}
	}
	return allowed, nil
}

// RewriteAllowlist writes the allow-list back sorted case-insensitively and
// deduplicated, one word per line with a trailing newline. The rewrite is
// idempotent and independent of scan results.
func (p *Project) RewriteAllowlist(allowed map[string]struct{}) error {
	words := make([]string, 0, len(allowed))
	for word := range allowed {
		words = append(words, word)
	}
	docspell.SortWords(words)
	return WriteFile(filepath.Join(p.dir, AllowedFile), []byte(strings.Join(words, "\n")+"\n"))
}

// WriteSummary writes the summary report file.
func (p *Project) WriteSummary(content []byte) error {
	return WriteFile(filepath.Join(p.dir, SummaryFile), content)
}

// WriteLocations writes the locations report file.
func (p *Project) WriteLocations(content []byte) error {
	return WriteFile(filepath.Join(p.dir, LocationsFile), content)
}

// readLines returns the trimmed non-blank lines of path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
