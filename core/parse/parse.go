// Package parse extracts verse entries from verse-per-line text sources.
//
// A source line is matched against an ordered list of grammars; the first
// grammar that matches wins. Lines matching no grammar are not errors,
// callers skip and count them.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Entry is one parsed verse line. Book carries the raw token exactly as it
// appeared in the source; book-name normalization happens downstream.
type Entry struct {
	Book    string
	Chapter int
	Verse   int
	Text    string
}

// Grammar is one compiled line shape. The pattern captures exactly four
// groups, in order: book, chapter, verse, text.
type Grammar struct {
	Name string
	re   *regexp.Regexp
}

// Built-in grammars, in priority order.
var (
	// "123#1. Mose#1#1#Am Anfang schuf Gott Himmel und Erde."
	hashDelimited = Grammar{
		Name: "hash-delimited",
		re:   regexp.MustCompile(`^\d+#(.+?)#(\d+)#(\d+)#(.+)$`),
	}

	// "1. Mose 3:16 Und Gott sprach..." (book part may contain spaces)
	spacedReference = Grammar{
		Name: "spaced-reference",
		re:   regexp.MustCompile(`^(.+?)\s+(\d+):(\d+)\s+(.+)$`),
	}

	// "Joh 3:16 Also hat Gott die Welt geliebt..."
	abbreviatedReference = Grammar{
		Name: "abbreviated-reference",
		re:   regexp.MustCompile(`^(\w+)\s+(\d+):(\d+)\s+(.+)$`),
	}
)

// DefaultGrammars returns the built-in grammars in priority order:
// hash-delimited, spaced-reference, abbreviated-reference.
func DefaultGrammars() []Grammar {
	return []Grammar{hashDelimited, spacedReference, abbreviatedReference}
}

// NewGrammar compiles a custom line grammar. The pattern must capture
// exactly four groups: book, chapter, verse, text.
func NewGrammar(name, pattern string) (Grammar, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Grammar{}, fmt.Errorf("invalid grammar %q: %w", name, err)
	}
	if re.NumSubexp() != 4 {
		return Grammar{}, fmt.Errorf("invalid grammar %q: pattern must capture 4 groups, has %d", name, re.NumSubexp())
	}
	return Grammar{Name: name, re: re}, nil
}

// Match tries the grammar against one line. A match requires positive
// chapter and verse numbers and non-empty book and text after trimming.
func (g Grammar) Match(line string) (Entry, bool) {
	m := g.re.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}

	chapter, err := strconv.Atoi(m[2])
	if err != nil || chapter < 1 {
		return Entry{}, false
	}
	verse, err := strconv.Atoi(m[3])
	if err != nil || verse < 1 {
		return Entry{}, false
	}

	book := strings.TrimSpace(m[1])
	text := strings.TrimSpace(m[4])
	if book == "" || text == "" {
		return Entry{}, false
	}

	return Entry{Book: book, Chapter: chapter, Verse: verse, Text: text}, true
}

// Line parses one source line with the given grammars (DefaultGrammars
// when nil). Blank lines and lines matching no grammar return ok=false.
func Line(s string, grammars []Grammar) (Entry, bool) {
	line := strings.TrimSpace(s)
	if line == "" {
		return Entry{}, false
	}
	if grammars == nil {
		grammars = DefaultGrammars()
	}
	for _, g := range grammars {
		if e, ok := g.Match(line); ok {
			return e, true
		}
	}
	return Entry{}, false
}
