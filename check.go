package docspell

// Classify checks every distinct indexed word and returns the wrong-word
// map: word → best correction, or NoCorrection when the dictionary has no
// suggestion. Words in the allow-list are skipped. Words are visited in the
// index's stable sorted order so that ties in the dictionary's ranking
// resolve identically across runs.
//
// The dictionary transfers the query's casing onto its suggestions;
// equality between a word and its top suggestion is case-sensitive after
// that transfer, so a surviving case difference counts as wrong.
func Classify(ix *Index, allowed map[string]struct{}, dict Dictionary) map[string]string {
	wrong := make(map[string]string)

	for _, word := range ix.Words() {
		if _, ok := allowed[word]; ok {
			continue
		}
		suggestions := dict.Suggest(word, 2)
		if len(suggestions) == 0 {
			wrong[word] = NoCorrection
			continue
		}
		if corr := suggestions[0].Term; corr != word {
			wrong[word] = corr
		}
	}
	return wrong
}
