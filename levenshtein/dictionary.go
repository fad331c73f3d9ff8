// Package levenshtein provides the fuzzy-matching dictionary service,
// backed by agext/levenshtein for edit-distance verification.
//
// Lookup uses the symspell scheme: every dictionary term contributes the
// delete-variants of its prefix to an index; a query generates the same
// variants and intersects them with the index, and survivors are verified
// against the full query with a real edit-distance computation. A Bloom
// filter over the delete keys screens out missing keys before the map is
// consulted.
package levenshtein

import (
	"bufio"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	agext "github.com/agext/levenshtein"
	"github.com/bits-and-blooms/bloom/v3"

	"github.com/docspell/docspell"
)

const (
	// prefixLength bounds the portion of a term that contributes delete
	// variants, keeping the index size manageable.
	prefixLength = 7

	// maxEditDistance bounds the deletions indexed per term.
	maxEditDistance = 2

	// filterFalsePositiveRate is the accepted Bloom filter error rate.
	filterFalsePositiveRate = 0.01
)

// Ensure Dictionary implements docspell.Dictionary at compile time.
var _ docspell.Dictionary = (*Dictionary)(nil)

// Dictionary is a frequency-ranked fuzzy dictionary.
type Dictionary struct {
	terms   map[string]int64
	deletes map[string][]string
	filter  *bloom.BloomFilter
}

// New builds a Dictionary from term frequencies. Terms are matched
// case-insensitively; keys are expected lowercase.
func New(terms map[string]int64) *Dictionary {
	d := &Dictionary{
		terms:   terms,
		deletes: make(map[string][]string),
	}
	for term := range terms {
		for _, key := range deleteVariants(prefix(term), maxEditDistance) {
			d.deletes[key] = append(d.deletes[key], term)
		}
	}
	d.filter = bloom.NewWithEstimates(uint(len(d.deletes))+1, filterFalsePositiveRate)
	for key := range d.deletes {
		d.filter.AddString(key)
	}
	return d
}

// Load reads a term-frequency dictionary file: one entry per line, with the
// term and its corpus count at the given space-separated column indices.
func Load(path string, termIndex, countIndex int) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, docspell.Errorf(docspell.ENOTFOUND, "dictionary %s: %s", path, err)
	}
	defer f.Close()

	terms := make(map[string]int64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if termIndex >= len(fields) || countIndex >= len(fields) {
			continue
		}
		count, err := strconv.ParseInt(fields[countIndex], 10, 64)
		if err != nil {
			continue
		}
		terms[strings.ToLower(fields[termIndex])] = count
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(terms), nil
}

// Len returns the number of dictionary terms.
func (d *Dictionary) Len() int {
	return len(d.terms)
}

// Suggest returns correction candidates for word within maxDist edits,
// best first: distance ascending, corpus count descending, term ascending.
// The query's casing is transferred onto every returned term. An exact
// (case-insensitive) dictionary hit returns the word itself at distance 0.
func (d *Dictionary) Suggest(word string, maxDist int) []docspell.Suggestion {
	query := strings.ToLower(word)

	if count, ok := d.terms[query]; ok {
		return []docspell.Suggestion{{Term: transferCase(word, query), Distance: 0, Count: count}}
	}

	candidates := make(map[string]struct{})
	for _, key := range deleteVariants(prefix(query), maxEditDistance) {
		if !d.filter.TestString(key) {
			continue
		}
		for _, term := range d.deletes[key] {
			candidates[term] = struct{}{}
		}
	}

	var suggestions []docspell.Suggestion
	for term := range candidates {
		dist := agext.Distance(query, term, nil)
		if dist > maxDist {
			continue
		}
		suggestions = append(suggestions, docspell.Suggestion{
			Term:     transferCase(word, term),
			Distance: dist,
			Count:    d.terms[term],
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Term < b.Term
	})
	return suggestions
}

func prefix(term string) string {
	runes := []rune(term)
	if len(runes) > prefixLength {
		return string(runes[:prefixLength])
	}
	return term
}

// deleteVariants returns word and every string reachable from it by up to
// maxDeletes single-rune deletions.
func deleteVariants(word string, maxDeletes int) []string {
	seen := map[string]struct{}{word: {}}
	frontier := []string{word}
	for i := 0; i < maxDeletes; i++ {
		var next []string
		for _, w := range frontier {
			runes := []rune(w)
			for j := range runes {
				variant := string(runes[:j]) + string(runes[j+1:])
				if _, ok := seen[variant]; ok {
					continue
				}
				seen[variant] = struct{}{}
				next = append(next, variant)
			}
		}
		frontier = next
	}
	variants := make([]string, 0, len(seen))
	for v := range seen {
		variants = append(variants, v)
	}
	sort.Strings(variants)
	return variants
}

// transferCase carries the query's casing onto a suggested term: an
// all-uppercase query uppercases the term, a capitalized query capitalizes
// it, anything else keeps the dictionary casing.
func transferCase(query, term string) string {
	if term == "" || query == "" {
		return term
	}
	if isUpper(query) {
		return strings.ToUpper(term)
	}
	first := []rune(query)[0]
	if unicode.IsUpper(first) {
		runes := []rune(term)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	}
	return term
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter && len([]rune(s)) > 1
}
