package mock

import "github.com/docspell/docspell"

var _ docspell.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docspell.Extractor.
type Extractor struct {
	ExtractFn func(content []byte) (*docspell.ExtractResult, error)
}

func (e *Extractor) Extract(content []byte) (*docspell.ExtractResult, error) {
	return e.ExtractFn(content)
}
