package docspell

import "strconv"

// SectionKind discriminates the documentation unit a chunk came from.
type SectionKind int

// Section kinds in sort order: whole file, notebook cell, code block.
const (
	SectionFile SectionKind = iota
	SectionCell
	SectionBlock
)

// Section identifies the documentation unit a chunk of text belongs to:
// the whole file, a notebook cell by position, or a named code block.
// The zero value is the whole-file section.
// Sections are comparable and usable as map keys.
type Section struct {
	Kind SectionKind
	Cell int    // valid when Kind == SectionCell
	Name string // valid when Kind == SectionBlock
}

// FileSection returns the section for a whole plain-documentation file.
func FileSection() Section {
	return Section{Kind: SectionFile}
}

// CellSection returns the section for the notebook cell at index i.
func CellSection(i int) Section {
	return Section{Kind: SectionCell, Cell: i}
}

// BlockSection returns the section for a named code block, e.g.
// "class Spell" or "def normalize". An empty name denotes the module block
// and renders like a whole-file section.
func BlockSection(name string) Section {
	if name == "" {
		return Section{Kind: SectionFile}
	}
	return Section{Kind: SectionBlock, Name: name}
}

// Render returns the section's form in the locations report: the literal
// cell index, the block label, or "e" for the empty label.
func (s Section) Render() string {
	switch s.Kind {
	case SectionCell:
		return strconv.Itoa(s.Cell)
	case SectionBlock:
		return s.Name
	default:
		return "e"
	}
}

// Less orders sections deterministically: by kind, then by cell index or
// block name.
func (s Section) Less(o Section) bool {
	if s.Kind != o.Kind {
		return s.Kind < o.Kind
	}
	switch s.Kind {
	case SectionCell:
		return s.Cell < o.Cell
	case SectionBlock:
		return s.Name < o.Name
	default:
		return false
	}
}
