package docspell

import "regexp"

var wordRE = regexp.MustCompile(`\w+`)

// Exclusion patterns for tokens that are never prose: bare numbers,
// hex-looking strings, "80s"-style numeric plurals, sizes and ordinals
// like 10MB or 3rd, and initials (a capital with at most one letter after).
var tokenExclusions = []*regexp.Regexp{
	regexp.MustCompile(`^[0-9]+$`),
	regexp.MustCompile(`(?i)^[a-f0-9]+$`),
	regexp.MustCompile(`(?i)^[0-9]+s$`),
	regexp.MustCompile(`(?i)^[0-9][0-9.]*(?:th|st|nd|rd|x|pt|(?:[KMGTP]B?))$`),
	regexp.MustCompile(`^[A-Z][a-z]?$`),
}

// Tokenize splits normalized text into its distinct candidate words, in
// first-seen order. Excluded token classes never reach the occurrence
// index. Case is preserved as seen.
func Tokenize(text string) []string {
	seen := make(map[string]struct{})
	var words []string

tokens:
	for _, word := range wordRE.FindAllString(text, -1) {
		if _, ok := seen[word]; ok {
			continue
		}
		for _, re := range tokenExclusions {
			if re.MatchString(word) {
				continue tokens
			}
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words
}
