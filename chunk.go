package docspell

// Chunk is one contiguous unit of raw prose text extracted from a section
// of a documentation file: all lines of a markdown file, one notebook
// markdown cell, or one docstring.
type Chunk struct {
	Section Section
	Lines   []string
}

// LineCount returns the number of raw lines in the chunk.
func (c *Chunk) LineCount() int {
	return len(c.Lines)
}
