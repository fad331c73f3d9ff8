// Package docspell provides a spell checker for documentation prose.
// It extracts human-readable text from markdown files, Python docstrings,
// and Jupyter notebook markdown cells, strips everything that is not
// natural-language prose, and checks the remaining words against a
// fuzzy-matching dictionary, reporting likely misspellings together with
// every location they occur in.
//
// This package contains domain types, interfaces, and the pure core logic
// (normalization, tokenization, occurrence indexing, classification,
// report rendering) following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., treesitter/, levenshtein/, json/, fs/).
package docspell
