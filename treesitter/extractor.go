// Package treesitter provides Python docstring extraction backed by
// Tree-sitter's Python grammar.
package treesitter

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/docspell/docspell"
)

// Ensure PythonExtractor implements docspell.Extractor at compile time.
var _ docspell.Extractor = (*PythonExtractor)(nil)

// PythonExtractor extracts documentation blocks from Python source files.
// The module docstring maps to the empty section; class and function
// docstrings map to kind-qualified sections ("class Name" / "def Name").
// Definitions are found at any nesting depth, decorated or not. A block
// without a docstring contributes no chunk.
type PythonExtractor struct {
	parser *sitter.Parser
}

// NewPythonExtractor returns a new PythonExtractor.
func NewPythonExtractor() *PythonExtractor {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	return &PythonExtractor{parser: parser}
}

// Extract parses content as Python source and returns one chunk per
// documented block. A file that does not parse cleanly fails as a whole and
// contributes zero chunks.
func (e *PythonExtractor) Extract(content []byte) (*docspell.ExtractResult, error) {
	tree, err := e.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, docspell.Errorf(docspell.EINVALID, "could not parse: %s", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, docspell.Errorf(docspell.EINVALID, "could not parse: syntax error")
	}

	result := &docspell.ExtractResult{}
	if doc, ok := docstring(root, content); ok {
		appendChunk(result, docspell.FileSection(), doc)
	}
	walk(root, content, result)
	return result, nil
}

// walk visits every node, collecting docstrings of class and function
// definitions. Decorated definitions need no special casing: their inner
// definition node is visited like any other child.
func walk(node *sitter.Node, content []byte, result *docspell.ExtractResult) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		var kind string
		switch child.Type() {
		case "class_definition":
			kind = "class"
		case "function_definition":
			kind = "def"
		}
		if kind != "" {
			name := fieldText(child, "name", content)
			body := child.ChildByFieldName("body")
			if body != nil && name != "" {
				if doc, ok := docstring(body, content); ok {
					appendChunk(result, docspell.BlockSection(kind+" "+name), doc)
				}
			}
		}

		walk(child, content, result)
	}
}

func appendChunk(result *docspell.ExtractResult, section docspell.Section, doc string) {
	result.Chunks = append(result.Chunks, docspell.Chunk{
		Section: section,
		Lines:   strings.Split(doc, "\n"),
	})
}

func fieldText(node *sitter.Node, field string, content []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return string(content[child.StartByte():child.EndByte()])
}

// docstring returns the cleaned docstring of a module or definition body:
// the leading statement, when it is a plain string expression.
func docstring(body *sitter.Node, content []byte) (string, bool) {
	if body.NamedChildCount() == 0 {
		return "", false
	}
	stmt := body.NamedChild(0)
	if stmt.Type() != "expression_statement" || stmt.NamedChildCount() == 0 {
		return "", false
	}
	str := stmt.NamedChild(0)
	if str.Type() != "string" {
		return "", false
	}
	doc := cleanDocstring(stripQuotes(string(content[str.StartByte():str.EndByte()])))
	if doc == "" {
		return "", false
	}
	return doc, true
}

// stripQuotes removes string prefixes (r, b, u, f in any combination) and
// the surrounding single or triple quotes from a string literal.
func stripQuotes(literal string) string {
	s := strings.TrimLeft(literal, "rRbBuUfF")
	for _, quote := range []string{`"""`, "'''", `"`, "'"} {
		if strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote) && len(s) >= 2*len(quote) {
			return s[len(quote) : len(s)-len(quote)]
		}
	}
	return s
}

// cleanDocstring normalizes docstring indentation: the first line is
// trimmed, the common leading whitespace of the remaining lines is removed,
// and leading and trailing blank lines are dropped.
func cleanDocstring(doc string) string {
	lines := strings.Split(doc, "\n")
	lines[0] = strings.TrimSpace(lines[0])

	margin := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	for i, line := range lines[1:] {
		if len(line) >= margin && margin > 0 {
			lines[i+1] = line[margin:]
		} else {
			lines[i+1] = strings.TrimLeft(line, " \t")
		}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
