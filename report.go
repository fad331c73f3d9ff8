package docspell

import (
	"fmt"
	"io"
	"strings"
)

// WriteSummary renders the summary report: one "word=>correction" line per
// distinct wrong word, sorted case-insensitively.
func WriteSummary(w io.Writer, wrong map[string]string) error {
	for _, word := range sortedWrongWords(wrong) {
		if _, err := fmt.Fprintf(w, "%s=>%s\n", word, wrong[word]); err != nil {
			return err
		}
	}
	return nil
}

// WriteLocations renders the locations report. Words appear in the same
// order as the summary; tasks are visited in run order. A "=<task>" line is
// emitted whenever the task changes from the previously emitted line, so a
// run of occurrences under one task shares a single separator. A trailing
// blank line terminates the report.
func WriteLocations(w io.Writer, ix *Index, wrong map[string]string, tasks []string) error {
	lastTask := ""
	for _, word := range sortedWrongWords(wrong) {
		corr := wrong[word]
		for _, task := range tasks {
			if !ix.HasTask(word, task) {
				continue
			}
			if task != lastTask {
				if _, err := fmt.Fprintf(w, "=%s\n", task); err != nil {
					return err
				}
				lastTask = task
			}
			for _, file := range ix.Files(word, task) {
				for _, section := range ix.Sections(word, task, file) {
					if _, err := fmt.Fprintf(w, "%s|%s|%s|%s\n", word, corr, file, section.Render()); err != nil {
						return err
					}
				}
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteRunTable renders the run summary table: one row per task plus the
// aggregate row, separated from the task rows by a rule.
func WriteRunTable(w io.Writer, rows []TaskStats) error {
	if _, err := fmt.Fprintf(w, "%3s | %-40s | %5s | %6s | %6s | %5s | %5s | %6s\n",
		"n", "task", "files", "lines", "text", "words", "wrong", "occs"); err != nil {
		return err
	}
	rule := fmt.Sprintf("%s | %s | %s | %s | %s | %s | %s | %s",
		strings.Repeat("-", 3), strings.Repeat("-", 40), strings.Repeat("-", 5),
		strings.Repeat("-", 6), strings.Repeat("-", 6), strings.Repeat("-", 5),
		strings.Repeat("-", 5), strings.Repeat("-", 6))
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}

	for i, row := range rows {
		index := fmt.Sprintf("%d", i+1)
		if row.Task == TotalTask {
			index = ""
			if _, err := fmt.Fprintln(w, rule); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%3s | %-40s | %5d | %6d | %6d | %5d | %5d | %6d\n",
			index, row.Task, row.Files, row.RawLines, row.FilteredLines,
			row.Words, row.Wrong, row.Locations); err != nil {
			return err
		}
	}
	return nil
}

func sortedWrongWords(wrong map[string]string) []string {
	words := make([]string, 0, len(wrong))
	for word := range wrong {
		words = append(words, word)
	}
	SortWords(words)
	return words
}
