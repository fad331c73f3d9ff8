package mock

import "github.com/docspell/docspell"

var _ docspell.Dictionary = (*Dictionary)(nil)

// Dictionary is a mock implementation of docspell.Dictionary.
type Dictionary struct {
	SuggestFn func(word string, maxDist int) []docspell.Suggestion
}

func (d *Dictionary) Suggest(word string, maxDist int) []docspell.Suggestion {
	return d.SuggestFn(word, maxDist)
}
