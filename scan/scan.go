// Package scan provides run orchestration: it resolves tasks, discovers
// qualifying files, extracts and normalizes their prose, folds every word
// into the occurrence index, and classifies the index once at the end.
package scan

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/docspell/docspell"
)

// Scanner orchestrates one spell-check run. Tasks, files, and chunks are
// processed strictly sequentially; the index and statistics are mutated by
// a single thread of control.
type Scanner struct {
	// Extractors maps a file extension (with dot) to its format adapter.
	Extractors map[string]docspell.Extractor

	// Dictionary classifies indexed words after extraction.
	Dictionary docspell.Dictionary

	// IgnoreDirs lists directory basenames skipped during the walk.
	IgnoreDirs []string

	// IgnoreFiles lists patterns matched against full file paths; matching
	// files are skipped.
	IgnoreFiles []*regexp.Regexp

	// Only restricts the run to a single 1-based task index; 0 runs all.
	Only int

	Logger *slog.Logger
}

// Result holds the outcome of a run.
type Result struct {
	// Tasks are the display paths of the scanned tasks, in run order.
	Tasks []string

	// Index is the accumulated occurrence index.
	Index *docspell.Index

	// Wrong maps each wrong word to its best correction.
	Wrong map[string]string

	// Rows are the run statistics: one row per scanned task plus TOTAL.
	Rows []docspell.TaskStats

	// Diagnostics are all non-fatal problems, grouped by task.
	Diagnostics *docspell.Diagnostics
}

// Run scans every task and classifies the accumulated index against the
// allow-list. Task paths that do not resolve, files that do not parse, and
// chunks with ambiguous markup are recorded as diagnostics, never errors;
// the run always completes.
func (s *Scanner) Run(tasks []string, allowed map[string]struct{}) (*Result, error) {
	logger := s.logger()
	res := &Result{
		Index:       docspell.NewIndex(),
		Diagnostics: docspell.NewDiagnostics(),
	}

	var rows []docspell.TaskStats
	total := docspell.TaskStats{Task: docspell.TotalTask}

	begin := time.Now()
	for i, raw := range tasks {
		if s.Only != 0 && i+1 != s.Only {
			continue
		}

		display, root, err := resolveTask(raw)
		if err != nil {
			res.Diagnostics.Add(raw, "not an existing file or directory")
			continue
		}

		files, err := s.listFiles(root)
		if err != nil {
			res.Diagnostics.Addf(display, "walk failed: %s", err)
			continue
		}

		row := docspell.TaskStats{Task: display, Files: len(files)}
		for _, path := range files {
			rel := strings.TrimPrefix(strings.TrimPrefix(path, root), string(filepath.Separator))
			if rel == "" {
				rel = filepath.Base(path)
			}
			rawLines, filteredLines := s.scanFile(res, display, path, rel)
			row.RawLines += rawLines
			row.FilteredLines += filteredLines
		}

		logger.Info("scanned task",
			"task", display,
			"files", row.Files,
			"lines", row.RawLines,
		)

		res.Tasks = append(res.Tasks, display)
		rows = append(rows, row)
		total.Files += row.Files
		total.RawLines += row.RawLines
		total.FilteredLines += row.FilteredLines
	}
	logger.Info("extraction done", "words", res.Index.Len(), "duration", time.Since(begin))

	begin = time.Now()
	res.Wrong = docspell.Classify(res.Index, allowed, s.Dictionary)
	logger.Info("spellcheck done", "wrong", len(res.Wrong), "duration", time.Since(begin))

	rows = append(rows, total)
	docspell.ComputeWordStats(rows, res.Index, res.Wrong)
	res.Rows = rows

	return res, nil
}

// scanFile extracts one file and folds its words into the index. Returns
// the raw and filtered line counts the file contributed.
func (s *Scanner) scanFile(res *Result, task, path, rel string) (rawLines, filteredLines int) {
	extractor := s.Extractors[filepath.Ext(path)]
	if extractor == nil {
		return 0, 0
	}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Diagnostics.Addf(task, "%s: %s", rel, err)
		return 0, 0
	}

	extracted, err := extractor.Extract(content)
	if err != nil {
		res.Diagnostics.Addf(task, "%s: %s", rel, docspell.ErrorMessage(err))
		return 0, 0
	}
	for _, diag := range extracted.Diagnostics {
		res.Diagnostics.Addf(task, "%s: %s", rel, diag)
	}

	for _, chunk := range extracted.Chunks {
		rawLines += chunk.LineCount()

		text, diags := docspell.Normalize(chunk.Lines)
		for _, diag := range diags {
			res.Diagnostics.Addf(task, "%s: %s", rel, diag)
		}

		for _, line := range strings.Split(text, "\n") {
			if line == "" {
				continue
			}
			filteredLines++
			for _, word := range docspell.Tokenize(line) {
				res.Index.Record(word, task, rel, chunk.Section)
			}
		}
	}
	return rawLines, filteredLines
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
