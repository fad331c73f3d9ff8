package docspell

import "strings"

// Ensure MarkdownExtractor implements Extractor at compile time.
var _ Extractor = (*MarkdownExtractor)(nil)

// MarkdownExtractor treats a whole plain documentation file as one chunk
// under the empty section label.
type MarkdownExtractor struct{}

// NewMarkdownExtractor returns a new MarkdownExtractor.
func NewMarkdownExtractor() *MarkdownExtractor {
	return &MarkdownExtractor{}
}

// Extract returns the file's lines as a single whole-file chunk.
func (e *MarkdownExtractor) Extract(content []byte) (*ExtractResult, error) {
	text := strings.TrimSuffix(string(content), "\n")
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	return &ExtractResult{
		Chunks: []Chunk{{
			Section: FileSection(),
			Lines:   lines,
		}},
	}, nil
}
