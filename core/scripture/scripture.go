// Package scripture defines the shared Scripture types: verses, testaments,
// and the canonical book catalog used for testament filtering and book
// metadata lookups.
package scripture

import (
	"fmt"
	"strings"
)

// Testament identifies one of the two divisions of the canon.
type Testament string

// Testament constants.
const (
	OldTestament Testament = "OLD"
	NewTestament Testament = "NEW"
)

// IsValid returns true if the testament is one of the two known divisions.
func (t Testament) IsValid() bool {
	return t == OldTestament || t == NewTestament
}

// ParseTestament converts user input such as "old" or "NEW" to a Testament.
// The empty result carries ok=false; callers decide whether that is an error.
func ParseTestament(s string) (Testament, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(OldTestament):
		return OldTestament, true
	case string(NewTestament):
		return NewTestament, true
	}
	return "", false
}

// Verse is a single verse of a loaded translation.
type Verse struct {
	Translation string `json:"translation,omitempty"`
	Book        string `json:"book"`
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
	Text        string `json:"text"`
}

// Reference renders the human-readable reference, e.g. "John 3:16".
func (v Verse) Reference() string {
	return fmt.Sprintf("%s %d:%d", v.Book, v.Chapter, v.Verse)
}

// Book describes one canonical book.
type Book struct {
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Testament    Testament `json:"testament"`
	Chapters     int       `json:"chapters"`
}
