package docspell

// TotalTask is the pseudo-task name of the aggregate statistics row.
const TotalTask = "TOTAL"

// TaskStats holds the run statistics of one task, or of the whole run when
// Task == TotalTask.
type TaskStats struct {
	Task string

	// Files is the number of qualifying files scanned.
	Files int

	// RawLines counts every raw line ingested from extracted chunks.
	RawLines int

	// FilteredLines counts non-blank lines after normalization.
	FilteredLines int

	// Words is the number of distinct indexed words seen under the task.
	Words int

	// Wrong is how many of those words are in the wrong-word map.
	Wrong int

	// Locations sums the distinct (file, section) occurrences of the
	// task's wrong words.
	Locations int
}

// ComputeWordStats fills the Words, Wrong and Locations columns of rows
// from the index and the wrong-word map. Rows name scanned tasks in run
// order; a trailing TotalTask row aggregates over every indexed word.
func ComputeWordStats(rows []TaskStats, ix *Index, wrong map[string]string) {
	for i := range rows {
		row := &rows[i]
		isTotal := row.Task == TotalTask

		for _, word := range ix.Words() {
			if !isTotal && !ix.HasTask(word, row.Task) {
				continue
			}
			row.Words++
			if _, ok := wrong[word]; !ok {
				continue
			}
			row.Wrong++
			if isTotal {
				for j := range rows {
					if rows[j].Task != TotalTask {
						row.Locations += ix.LocationCount(word, rows[j].Task)
					}
				}
			} else {
				row.Locations += ix.LocationCount(word, row.Task)
			}
		}
	}
}
