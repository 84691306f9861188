// Package bible holds loaded translations in memory.
package bible

import (
	"maps"
	"slices"
	"strings"

	"github.com/FocuswithJustin/CedarBible/core/scripture"
)

// Translation is one loaded translation: a three-level map of
// book -> chapter -> verse -> text. It is built once during load and
// read-only afterwards, so concurrent reads need no locking.
type Translation struct {
	Name string

	books     map[string]map[int]map[int]string
	bookOrder []string
}

// NewTranslation creates an empty translation store.
func NewTranslation(name string) *Translation {
	return &Translation{
		Name:  name,
		books: make(map[string]map[int]map[int]string),
	}
}

// Insert adds one verse, creating book and chapter levels on demand.
// Inserting an existing (book, chapter, verse) overwrites the text.
func (t *Translation) Insert(book string, chapter, verse int, text string) {
	chapters, ok := t.books[book]
	if !ok {
		chapters = make(map[int]map[int]string)
		t.books[book] = chapters
		t.bookOrder = append(t.bookOrder, book)
	}
	verses, ok := chapters[chapter]
	if !ok {
		verses = make(map[int]string)
		chapters[chapter] = verses
	}
	verses[verse] = text
}

// VerseText looks up one verse. A missing book, chapter, or verse returns
// ok=false; lookups never panic.
func (t *Translation) VerseText(book string, chapter, verse int) (string, bool) {
	chapters, ok := t.books[book]
	if !ok {
		return "", false
	}
	verses, ok := chapters[chapter]
	if !ok {
		return "", false
	}
	text, ok := verses[verse]
	return text, ok
}

// Verse is VerseText returning a full verse value.
func (t *Translation) Verse(book string, chapter, verse int) (scripture.Verse, bool) {
	text, ok := t.VerseText(book, chapter, verse)
	if !ok {
		return scripture.Verse{}, false
	}
	return scripture.Verse{
		Translation: t.Name,
		Book:        book,
		Chapter:     chapter,
		Verse:       verse,
		Text:        text,
	}, true
}

// Chapter returns the verse map of one chapter. The returned map is the
// store's own; callers must not modify it.
func (t *Translation) Chapter(book string, chapter int) (map[int]string, bool) {
	chapters, ok := t.books[book]
	if !ok {
		return nil, false
	}
	verses, ok := chapters[chapter]
	return verses, ok
}

// Book returns the chapter map of one book; callers must not modify it.
func (t *Translation) Book(book string) (map[int]map[int]string, bool) {
	chapters, ok := t.books[book]
	return chapters, ok
}

// BookNames returns the book names in insertion order.
func (t *Translation) BookNames() []string {
	return slices.Clone(t.bookOrder)
}

// ResolveBook matches a book name case-insensitively against stored
// names, returning the first insertion-order match.
func (t *Translation) ResolveBook(name string) (string, bool) {
	needle := strings.ToLower(name)
	for _, b := range t.bookOrder {
		if strings.ToLower(b) == needle {
			return b, true
		}
	}
	return "", false
}

// Books returns the number of books.
func (t *Translation) Books() int {
	return len(t.bookOrder)
}

// ChapterCount returns the number of chapters in a book, 0 when the book
// is absent.
func (t *Translation) ChapterCount(book string) int {
	return len(t.books[book])
}

// VerseCount returns the number of verses in a chapter, 0 when the book
// or chapter is absent.
func (t *Translation) VerseCount(book string, chapter int) int {
	return len(t.books[book][chapter])
}

// TotalVerses returns the number of verses across all books.
func (t *Translation) TotalVerses() int {
	total := 0
	for _, chapters := range t.books {
		for _, verses := range chapters {
			total += len(verses)
		}
	}
	return total
}

// SortedBookNames returns the book names in ascending lexicographic
// order, independent of insertion order.
func (t *Translation) SortedBookNames() []string {
	names := slices.Clone(t.bookOrder)
	slices.Sort(names)
	return names
}

// All returns every verse in canonical traversal order: books ascending
// lexicographically, then chapter, then verse number. The order depends
// only on content, never on insertion order.
func (t *Translation) All() []scripture.Verse {
	out := make([]scripture.Verse, 0, t.TotalVerses())
	for _, book := range t.SortedBookNames() {
		chapters := t.books[book]
		for _, chapter := range slices.Sorted(maps.Keys(chapters)) {
			verses := chapters[chapter]
			for _, verse := range slices.Sorted(maps.Keys(verses)) {
				out = append(out, scripture.Verse{
					Translation: t.Name,
					Book:        book,
					Chapter:     chapter,
					Verse:       verse,
					Text:        verses[verse],
				})
			}
		}
	}
	return out
}

// ChapterVerses returns one chapter as verses in ascending verse order.
func (t *Translation) ChapterVerses(book string, chapter int) []scripture.Verse {
	verses, ok := t.Chapter(book, chapter)
	if !ok {
		return nil
	}
	out := make([]scripture.Verse, 0, len(verses))
	for _, verse := range slices.Sorted(maps.Keys(verses)) {
		out = append(out, scripture.Verse{
			Translation: t.Name,
			Book:        book,
			Chapter:     chapter,
			Verse:       verse,
			Text:        verses[verse],
		})
	}
	return out
}
