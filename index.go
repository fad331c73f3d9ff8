package docspell

import (
	"sort"
	"strings"
)

// Index is the occurrence index: word → task → file → set of sections.
// Every reachable entry corresponds to at least one literal appearance of
// that exact word in normalized text of that section. It is built by a
// single thread of control during extraction and read-only afterward.
type Index struct {
	words map[string]map[string]map[string]map[Section]struct{}
}

// NewIndex returns an empty occurrence index.
func NewIndex() *Index {
	return &Index{words: make(map[string]map[string]map[string]map[Section]struct{})}
}

// Record inserts one occurrence. Inserts are idempotent at every level:
// recording the same (word, task, file, section) twice stores one entry.
func (ix *Index) Record(word, task, file string, section Section) {
	tasks, ok := ix.words[word]
	if !ok {
		tasks = make(map[string]map[string]map[Section]struct{})
		ix.words[word] = tasks
	}
	files, ok := tasks[task]
	if !ok {
		files = make(map[string]map[Section]struct{})
		tasks[task] = files
	}
	sections, ok := files[file]
	if !ok {
		sections = make(map[Section]struct{})
		files[file] = sections
	}
	sections[section] = struct{}{}
}

// Len returns the number of distinct words in the index.
func (ix *Index) Len() int {
	return len(ix.words)
}

// Words returns all distinct words sorted case-insensitively, with
// case-sensitive order breaking ties, so iteration order never depends on
// map layout.
func (ix *Index) Words() []string {
	words := make([]string, 0, len(ix.words))
	for word := range ix.words {
		words = append(words, word)
	}
	SortWords(words)
	return words
}

// HasTask reports whether word occurred anywhere under task.
func (ix *Index) HasTask(word, task string) bool {
	_, ok := ix.words[word][task]
	return ok
}

// Files returns the sorted relative paths under task where word occurred.
func (ix *Index) Files(word, task string) []string {
	entries := ix.words[word][task]
	files := make([]string, 0, len(entries))
	for file := range entries {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// Sections returns the sorted sections of file under task where word
// occurred.
func (ix *Index) Sections(word, task, file string) []Section {
	entries := ix.words[word][task][file]
	sections := make([]Section, 0, len(entries))
	for section := range entries {
		sections = append(sections, section)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].Less(sections[j]) })
	return sections
}

// LocationCount returns the number of distinct (file, section) occurrences
// of word under task.
func (ix *Index) LocationCount(word, task string) int {
	n := 0
	for _, sections := range ix.words[word][task] {
		n += len(sections)
	}
	return n
}

// SortWords sorts words in place: case-insensitively, ties broken
// case-sensitively.
func SortWords(words []string) {
	sort.Slice(words, func(i, j int) bool {
		a, b := strings.ToLower(words[i]), strings.ToLower(words[j])
		if a != b {
			return a < b
		}
		return words[i] < words[j]
	})
}
