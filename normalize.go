package docspell

import (
	"fmt"
	"regexp"
	"strings"
)

// Normalization replaces non-prose material with sentinel words so that the
// tokenizer only sees natural language. The sentinels are ordinary words
// downstream: they are indexed and checked like anything else unless they
// are pre-seeded into the allow-list.
//
// The pipeline is an ordered list of (matcher, rewrite) rules applied
// left-to-right over the whole chunk text. Order matters: later patterns
// assume earlier ones have already removed ambiguous material (e.g. inline
// backtick spans are only unambiguous once fenced blocks are gone).

// nameLikeRE matches text that looks like a plain identifier or filename
// rather than prose. Heading and link texts matching it carry no prose and
// are replaced by sentinels; anything else is kept for spell checking.
var nameLikeRE = regexp.MustCompile(`^[a-zA-Z0-9~_.()-]+$`)

// rule is one step of the pipeline: a matcher and its rewrite.
type rule struct {
	re   *regexp.Regexp
	repl string
	fn   func(match string) string
}

func (r rule) apply(text string) string {
	if r.fn != nil {
		return r.re.ReplaceAllStringFunc(text, r.fn)
	}
	return r.re.ReplaceAllString(text, r.repl)
}

// deleteElems builds one deletion rule per tag name. Go's RE2 syntax has no
// backreferences, so the open/close pair cannot be matched with a single
// `<(a|b)>.*?</\1>` pattern.
func deleteElems(tags ...string) []rule {
	rules := make([]rule, 0, len(tags))
	for _, tag := range tags {
		rules = append(rules, rule{
			re:   regexp.MustCompile(`(?si)<` + tag + `\b[^>]*>.*?</` + tag + `>`),
			repl: " ",
		})
	}
	return rules
}

var headingRE = regexp.MustCompile(`(?m)(?:^|")#+\s+(.*?)\s*(?:$|\\n)`)
var inlineLinkRE = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

// preTickRules run before the backtick balance check.
var preTickRules = func() []rule {
	rules := []rule{
		// Markup comments.
		{re: regexp.MustCompile(`(?s)<!--.*?-->`), repl: " "},
	}
	// Table and code elements carry no prose; drop them with their content.
	rules = append(rules, deleteElems("td", "th", "pre", "code")...)
	rules = append(rules, []rule{
		// Colon-fenced directive lines.
		{re: regexp.MustCompile(`(?m)^[ #]*:::.*$`), repl: " REFERENCE "},
		// Headings: identifier-like titles become HEAD, prose titles stay.
		{re: headingRE, fn: func(match string) string {
			title := headingRE.FindStringSubmatch(match)[1]
			if nameLikeRE.MatchString(title) {
				return " HEAD "
			}
			return title
		}},
		// Reference-style and image links.
		{re: regexp.MustCompile(`\[[^\]]+\]\[[^\]]+\]`), repl: " LINK "},
		{re: regexp.MustCompile(`!\[[^\]]+\]\([^)]+\)`), repl: "LINK "},
		// Inline links: identifier-like text becomes LINK, prose text stays.
		{re: inlineLinkRE, fn: func(match string) string {
			body := inlineLinkRE.FindStringSubmatch(match)[1]
			if nameLikeRE.MatchString(body) {
				return " LINK "
			}
			return body
		}},
		// Bare URLs.
		{re: regexp.MustCompile(`https?://[a-z0-9_./-]*`), repl: " LINK "},
		// Fenced code blocks.
		{re: regexp.MustCompile("(?s)```.*?```"), repl: "\nCODE\n"},
		// Math spans: display, \(...\), then inline.
		{re: regexp.MustCompile(`(?s)\$\$.+?\$\$`), repl: " MATH "},
		{re: regexp.MustCompile(`(?s)\\\(.+?\\\)`), repl: " MATH "},
		{re: regexp.MustCompile(`\$[^$\n]+\$`), repl: " MATH "},
		// Template expressions.
		{re: regexp.MustCompile(`(?s)\{\{.+?\}\}`), repl: " VAR "},
	}...)
	return rules
}()

// tickRules replace inline code spans. They are skipped for chunks whose
// backticks do not balance: an unmatched backtick makes span boundaries
// ambiguous, and the safe behavior is to treat them literally and report.
var tickRules = []rule{
	{re: regexp.MustCompile("``[^`\n]*``"), repl: " CODE "},
	{re: regexp.MustCompile("`[^`]*`"), repl: " CODE "},
}

// postTickRules run after inline code handling.
var postTickRules = func() []rule {
	rules := []rule{
		// Custom symbol placeholders.
		{re: regexp.MustCompile(`«[a-zA-Z0-9_]*»`), repl: ""},
	}
	rules = append(rules, deleteElems("style", "script", "span")...)
	// Unwrap any remaining tag, keeping its inner text.
	rules = append(rules, rule{
		re:   regexp.MustCompile(`(?i)</?[a-z]+[0-9]*\b[^>]*>`),
		repl: " ",
	})
	return rules
}()

// Line-level rules, applied last.
var (
	// A line holding only a bare return type declaration.
	returnTypeRE = regexp.MustCompile(`^\s*(?:string|boolean|integer|tuple|list|dict|function|set|frozenset|iterable|object|mixed|AttrDict)\s*$`)

	// A line starting with a parameter type declaration.
	paramDeclRE = regexp.MustCompile(`^[a-zA-Z0-9_]+(?:,\s*[a-zA-Z0-9]+)*:\s+(?:string|boolean|integer|float|tuple|list|dict|function|set|frozenset|iterable|object|mixed|void|AttrDict|np array|image as np array)`)

	// Dotted or slash-joined path-like tokens, e.g. a.b/c-d.
	dottedPathRE = regexp.MustCompile(`\b[a-zA-Z0-9_-]+(?:[./][a-zA-Z0-9_-]+)+\b`)
)

// Normalize turns the raw lines of one chunk into cleaned text with
// non-prose material replaced by sentinel words. Diagnostics report
// backtick-balance problems; they do not name the file, the caller adds
// that context.
func Normalize(lines []string) (text string, diags []string) {
	text = strings.Join(lines, "\n")

	for _, r := range preTickRules {
		text = r.apply(text)
	}

	balanced := true
	for i, line := range strings.Split(text, "\n") {
		if n := strings.Count(line, "`"); n%2 == 1 {
			balanced = false
			diags = append(diags, fmt.Sprintf("line %d: odd number (%d) of ticks in: %s", i+1, n, line))
		}
	}
	if balanced {
		for _, r := range tickRules {
			text = r.apply(text)
		}
	} else {
		diags = append(diags, "no code replacement because of unmatched backticks")
	}

	for _, r := range postTickRules {
		text = r.apply(text)
	}

	processed := strings.Split(text, "\n")
	for i, line := range processed {
		processed[i] = normalizeLine(line)
	}
	return strings.Join(processed, "\n"), diags
}

// normalizeLine applies the per-line rules: drop type declaration lines,
// strip admonition markers, remove path-like tokens, collapse whitespace.
func normalizeLine(line string) string {
	line = strings.TrimSpace(line)
	if returnTypeRE.MatchString(line) || paramDeclRE.MatchString(line) {
		return ""
	}
	if strings.HasPrefix(line, "!!! ") {
		line = line[4:]
	}
	line = dottedPathRE.ReplaceAllString(line, " ")
	return strings.Join(strings.Fields(line), " ")
}
