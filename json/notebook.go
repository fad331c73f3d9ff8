// Package json provides Jupyter notebook parsing backed by encoding/json.
package json

import (
	"encoding/json"
	"strings"

	"github.com/docspell/docspell"
)

// Notebook is the subset of the notebook document format this tool reads.
type Notebook struct {
	Cells []Cell `json:"cells"`
}

// Cell is one notebook cell. Only markdown cells carry prose.
type Cell struct {
	Type   string     `json:"cell_type"`
	Source CellSource `json:"source"`
}

// CellSource accepts both encodings the notebook format allows for cell
// source: a single string or an array of line strings.
type CellSource string

// UnmarshalJSON implements json.Unmarshaler.
func (s *CellSource) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = CellSource(single)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	*s = CellSource(strings.Join(lines, ""))
	return nil
}

// Ensure NotebookExtractor implements docspell.Extractor at compile time.
var _ docspell.Extractor = (*NotebookExtractor)(nil)

// NotebookExtractor extracts the markdown cells of a notebook document.
// Each markdown cell becomes one chunk whose section is the cell's position
// among all cells; code and raw cells are skipped entirely, so no code-cell
// text ever reaches normalization.
type NotebookExtractor struct{}

// NewNotebookExtractor returns a new NotebookExtractor.
func NewNotebookExtractor() *NotebookExtractor {
	return &NotebookExtractor{}
}

// Extract parses content as a notebook and returns one chunk per markdown
// cell. A document that is not valid notebook JSON fails the whole file.
func (e *NotebookExtractor) Extract(content []byte) (*docspell.ExtractResult, error) {
	var nb Notebook
	if err := json.Unmarshal(content, &nb); err != nil {
		return nil, docspell.Errorf(docspell.EINVALID, "could not parse: %s", err)
	}

	result := &docspell.ExtractResult{}
	for i, cell := range nb.Cells {
		if cell.Type != "markdown" {
			continue
		}
		result.Chunks = append(result.Chunks, docspell.Chunk{
			Section: docspell.CellSection(i),
			Lines:   strings.Split(string(cell.Source), "\n"),
		})
	}
	return result, nil
}
