package docspell

// Suggestion is one ranked correction candidate returned by a Dictionary.
type Suggestion struct {
	// Term is the candidate word, with the query's casing transferred.
	Term string

	// Distance is the edit distance between the query and the candidate.
	Distance int

	// Count is the candidate's corpus frequency, used for ranking.
	Count int64
}

// Dictionary is the fuzzy-matching dictionary capability: given a word,
// return zero or more correction candidates within an edit-distance budget,
// best first. Implementations must be deterministic: identical queries
// yield identically ordered results.
type Dictionary interface {
	Suggest(word string, maxDist int) []Suggestion
}

// NoCorrection is the correction sentinel recorded for a wrong word the
// dictionary has no suggestion for.
const NoCorrection = "XX"
