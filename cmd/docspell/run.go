package main

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/docspell/docspell"
	"github.com/docspell/docspell/fs"
	dsjson "github.com/docspell/docspell/json"
	"github.com/docspell/docspell/levenshtein"
	"github.com/docspell/docspell/scan"
	"github.com/docspell/docspell/treesitter"
)

// taskNumberRE accepts positive decimal integers without leading zeros.
var taskNumberRE = regexp.MustCompile(`^[1-9][0-9]*$`)

// Run executes a spell-check run for the selected project.
func (c *CLI) Run(deps *Dependencies) error {
	only := 0
	if c.Task != "" {
		if !taskNumberRE.MatchString(c.Task) {
			fmt.Fprintf(deps.Stderr, "Invalid task number: %s\n", c.Task)
			return docspell.Errorf(docspell.EINVALID, "task number must be a positive decimal integer, got %q", c.Task)
		}
		only, _ = strconv.Atoi(c.Task)
	}

	project, err := fs.NewProject(deps.ProjectsRoot, c.Project)
	if err != nil {
		return fmt.Errorf("failed to open project %q: %w", c.Project, err)
	}

	// The allow-list file is normalized on every run start, independent of
	// scan results.
	allowed, err := project.Allowlist()
	if err != nil {
		return fmt.Errorf("failed to read allow-list: %w", err)
	}
	if err := project.RewriteAllowlist(allowed); err != nil {
		return fmt.Errorf("failed to rewrite allow-list: %w", err)
	}

	if !project.HasTasks() {
		fmt.Fprintf(deps.Stdout, "No tasks.txt file in project %s. Nothing to do!\n", c.Project)
		return nil
	}
	tasks, err := project.Tasks()
	if err != nil {
		return fmt.Errorf("failed to read task list: %w", err)
	}

	ignoreDirs, err := project.IgnoreDirs()
	if err != nil {
		return fmt.Errorf("failed to read ignore directories: %w", err)
	}
	ignoreFiles, err := project.IgnoreFiles()
	if err != nil {
		return fmt.Errorf("failed to read ignore patterns: %w", err)
	}

	begin := time.Now()
	dict, err := levenshtein.Load(deps.DictionaryPath, 0, 1)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Set DOCSPELL_DICTIONARY to use a different dictionary path")
		return fmt.Errorf("failed to load dictionary at %q: %w", deps.DictionaryPath, err)
	}
	deps.Logger.Info("dictionary loaded",
		"path", deps.DictionaryPath,
		"terms", dict.Len(),
		"duration", time.Since(begin),
	)

	scanner := &scan.Scanner{
		Extractors: map[string]docspell.Extractor{
			".md":    docspell.NewMarkdownExtractor(),
			".ipynb": dsjson.NewNotebookExtractor(),
			".py":    treesitter.NewPythonExtractor(),
		},
		Dictionary:  dict,
		IgnoreDirs:  ignoreDirs,
		IgnoreFiles: ignoreFiles,
		Only:        only,
		Logger:      deps.Logger,
	}

	res, err := scanner.Run(tasks, allowed)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := docspell.WriteSummary(&buf, res.Wrong); err != nil {
		return err
	}
	if err := project.WriteSummary(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write summary report: %w", err)
	}

	buf.Reset()
	if err := docspell.WriteLocations(&buf, res.Index, res.Wrong, res.Tasks); err != nil {
		return err
	}
	if err := project.WriteLocations(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write locations report: %w", err)
	}

	if err := docspell.WriteRunTable(deps.Stdout, res.Rows); err != nil {
		return err
	}

	if res.Diagnostics.Empty() {
		fmt.Fprintln(deps.Stdout, "All went well.")
		return nil
	}
	fmt.Fprintln(deps.Stdout, "Errors and warnings:")
	for _, task := range res.Diagnostics.Tasks() {
		fmt.Fprintf(deps.Stdout, "%s:\n", task)
		for _, msg := range res.Diagnostics.Messages(task) {
			fmt.Fprintln(deps.Stdout, msg)
		}
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}
