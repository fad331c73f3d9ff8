package docspell

// ExtractResult holds the chunks extracted from one documentation file.
type ExtractResult struct {
	// Chunks are the prose units found, in document order.
	Chunks []Chunk

	// Diagnostics reports per-block problems that did not fail the file,
	// such as a single docstring that could not be retrieved. Messages do
	// not name the file; the caller adds that context.
	Diagnostics []string
}

// Extractor turns the content of one documentation file into prose chunks.
// Implementations exist per supported format: markdown files, Jupyter
// notebooks, and Python source files.
type Extractor interface {
	// Extract parses content and returns the prose chunks it contains.
	// A file that cannot be parsed at all returns an error and no result;
	// the file then contributes zero occurrences.
	Extract(content []byte) (*ExtractResult, error)
}
