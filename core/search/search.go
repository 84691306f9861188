// Package search implements containment search and reference queries
// over a loaded translation.
package search

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/FocuswithJustin/CedarBible/core/bible"
	"github.com/FocuswithJustin/CedarBible/core/errors"
	"github.com/FocuswithJustin/CedarBible/core/scripture"
)

// contextWindow is the number of characters kept on each side of the
// first query occurrence in a result context.
const contextWindow = 50

// Options narrows and pages a text search.
type Options struct {
	Book      string              // limit to one book, matched case-insensitively
	Testament scripture.Testament // limit to one testament, "" means both
	Page      int
	PerPage   int
}

// Result is one matching verse with its relevance score and context
// window.
type Result struct {
	Verse     scripture.Verse `json:"verse"`
	Relevance float64         `json:"relevance"`
	Context   string          `json:"context"`
}

// Response is one page of search results.
type Response struct {
	Query       string   `json:"query"`
	Translation string   `json:"translation"`
	Results     []Result `json:"results"`
	TotalCount  int      `json:"total_count"`
	Page        int      `json:"page"`
	PerPage     int      `json:"per_page"`
	HasNext     bool     `json:"has_next"`
	HasPrev     bool     `json:"has_prev"`
}

// Engine searches one translation.
type Engine struct {
	tr *bible.Translation
}

// New creates a search engine over one translation.
func New(tr *bible.Translation) *Engine {
	return &Engine{tr: tr}
}

// Search runs a case-insensitive containment search.
//
// Matches are ordered by canonical traversal (book, chapter, verse), not
// by relevance. TotalCount counts every match; Results carries only the
// requested page, and relevance and context are computed for that page
// only. The only error condition is invalid pagination.
func (e *Engine) Search(query string, opts Options) (*Response, error) {
	if opts.Page < 1 {
		return nil, errors.NewValidation("page", "must be at least 1")
	}
	if opts.PerPage < 1 {
		return nil, errors.NewValidation("per_page", "must be at least 1")
	}

	needle := strings.ToLower(query)

	books := e.tr.SortedBookNames()
	if opts.Book != "" {
		if name, ok := e.tr.ResolveBook(opts.Book); ok {
			books = []string{name}
		} else {
			books = nil // unknown book filter matches nothing
		}
	}
	if opts.Testament != "" {
		filtered := make([]string, 0, len(books))
		for _, b := range books {
			if scripture.InTestament(b, opts.Testament) {
				filtered = append(filtered, b)
			}
		}
		books = filtered
	}

	var matches []scripture.Verse
	for _, book := range books {
		chapters, _ := e.tr.Book(book)
		for _, chapter := range slices.Sorted(maps.Keys(chapters)) {
			verses := chapters[chapter]
			for _, verse := range slices.Sorted(maps.Keys(verses)) {
				text := verses[verse]
				if strings.Contains(strings.ToLower(text), needle) {
					matches = append(matches, scripture.Verse{
						Translation: e.tr.Name,
						Book:        book,
						Chapter:     chapter,
						Verse:       verse,
						Text:        text,
					})
				}
			}
		}
	}

	total := len(matches)
	offset := (opts.Page - 1) * opts.PerPage

	var page []scripture.Verse
	if offset >= 0 && offset < total {
		end := offset + opts.PerPage
		if end > total || end < 0 {
			end = total
		}
		page = matches[offset:end]
	}

	results := make([]Result, 0, len(page))
	for _, v := range page {
		results = append(results, Result{
			Verse:     v,
			Relevance: Relevance(v.Text, query),
			Context:   Context(v.Text, query),
		})
	}

	return &Response{
		Query:       query,
		Translation: e.tr.Name,
		Results:     results,
		TotalCount:  total,
		Page:        opts.Page,
		PerPage:     opts.PerPage,
		HasNext:     total > opts.Page*opts.PerPage,
		HasPrev:     opts.Page > 1,
	}, nil
}

// ByReference resolves a human-typed reference like "John 3:16" or
// "1. Mose 3:16-18" (inclusive verse range). The verse part follows the
// last colon; the chapter follows the last space before it. Anything
// unparseable yields an empty result, never an error.
func (e *Engine) ByReference(ref string) []scripture.Verse {
	ref = strings.TrimSpace(ref)

	colon := strings.LastIndex(ref, ":")
	if colon < 0 {
		return nil
	}
	bookChapter := ref[:colon]
	versePart := ref[colon+1:]

	space := strings.LastIndex(bookChapter, " ")
	if space < 0 {
		return nil
	}
	bookName := strings.TrimSpace(bookChapter[:space])
	chapter, err := strconv.Atoi(strings.TrimSpace(bookChapter[space+1:]))
	if err != nil {
		return nil
	}

	book, ok := e.tr.ResolveBook(bookName)
	if !ok {
		return nil
	}

	if strings.Contains(versePart, "-") {
		parts := strings.Split(versePart, "-")
		if len(parts) != 2 {
			return nil
		}
		start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil
		}
		end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil
		}

		var out []scripture.Verse
		for n := start; n <= end; n++ {
			if v, ok := e.tr.Verse(book, chapter, n); ok {
				out = append(out, v)
			}
		}
		return out
	}

	verse, err := strconv.Atoi(strings.TrimSpace(versePart))
	if err != nil {
		return nil
	}
	if v, ok := e.tr.Verse(book, chapter, verse); ok {
		return []scripture.Verse{v}
	}
	return nil
}

// Relevance scores how strongly a verse matches a query:
// min(1.0, occurrences*10/word_count), rounded to two decimal places.
// Occurrences are counted case-insensitively and non-overlapping;
// word_count is the number of whitespace-separated words in the text.
func Relevance(text, query string) float64 {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	occurrences := strings.Count(lowerText, lowerQuery)
	if occurrences == 0 {
		return 0
	}
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}

	relevance := math.Min(1.0, float64(occurrences*10)/float64(words))
	return math.Round(relevance*100) / 100
}

// Context returns a window of the verse text around the first
// case-insensitive query occurrence: contextWindow characters on each
// side, with "..." marking a clipped edge. Window positions are measured
// in runes so multi-byte text is never split.
func Context(text, query string) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	runes := []rune(text)
	byteIdx := strings.Index(lowerText, lowerQuery)
	if byteIdx < 0 {
		if len(runes) > 2*contextWindow {
			return string(runes[:2*contextWindow]) + "..."
		}
		return text
	}

	idx := utf8.RuneCountInString(lowerText[:byteIdx])
	qlen := utf8.RuneCountInString(lowerQuery)

	start := max(idx-contextWindow, 0)
	end := min(idx+qlen+contextWindow, len(runes))

	out := string(runes[start:end])
	if start > 0 {
		out = "..." + out
	}
	if end < len(runes) {
		out += "..."
	}
	return out
}
