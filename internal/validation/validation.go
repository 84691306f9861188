// Package validation validates and normalizes API request parameters.
// All failures are *errors.ValidationError values, so handlers can map
// them to HTTP 400 uniformly.
package validation

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/FocuswithJustin/CedarBible/core/errors"
	"github.com/FocuswithJustin/CedarBible/core/scripture"
	"github.com/FocuswithJustin/CedarBible/internal/server"
)

// Request limits.
const (
	// DefaultPageSize is the page size used when per_page is absent.
	DefaultPageSize = 20
	// MaxPageSize is the largest accepted per_page value.
	MaxPageSize = 100
	// MinQueryLength is the shortest accepted search query, in characters.
	MinQueryLength = 3
	// MaxQueryLength caps search queries before any other handling.
	MaxQueryLength = 256
)

// Query sanitizes a search query and enforces the length bounds.
func Query(raw string) (string, error) {
	q := server.SanitizeUserInput(server.LimitStringLength(raw, MaxQueryLength))
	if utf8.RuneCountInString(q) < MinQueryLength {
		return "", errors.NewValidation("q",
			fmt.Sprintf("query must be at least %d characters", MinQueryLength))
	}
	return q, nil
}

// Clean sanitizes an optional free-form parameter such as a book name.
// Empty input stays empty.
func Clean(raw string) string {
	return server.SanitizeUserInput(server.LimitStringLength(raw, MaxQueryLength))
}

// Pagination parses page and per_page query values. Absent values fall
// back to page 1 and DefaultPageSize.
func Pagination(pageRaw, perPageRaw string) (page, perPage int, err error) {
	page = 1
	if pageRaw != "" {
		page, err = strconv.Atoi(pageRaw)
		if err != nil {
			return 0, 0, errors.NewValidation("page", "must be an integer")
		}
	}
	if page < 1 {
		return 0, 0, errors.NewValidation("page", "must be 1 or greater")
	}

	perPage = DefaultPageSize
	if perPageRaw != "" {
		perPage, err = strconv.Atoi(perPageRaw)
		if err != nil {
			return 0, 0, errors.NewValidation("per_page", "must be an integer")
		}
	}
	if perPage < 1 {
		return 0, 0, errors.NewValidation("per_page", "must be 1 or greater")
	}
	if perPage > MaxPageSize {
		return 0, 0, errors.NewValidation("per_page",
			fmt.Sprintf("must be %d or less", MaxPageSize))
	}

	return page, perPage, nil
}

// Testament parses an optional testament filter. Empty input means no
// filter.
func Testament(raw string) (scripture.Testament, error) {
	if raw == "" {
		return "", nil
	}
	t, ok := scripture.ParseTestament(raw)
	if !ok {
		return "", errors.NewValidation("testament", "must be OLD or NEW")
	}
	return t, nil
}

// PositiveInt parses a path parameter that must be a positive integer,
// such as a chapter or verse number.
func PositiveInt(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidation(name, "must be an integer")
	}
	if n < 1 {
		return 0, errors.NewValidation(name, "must be 1 or greater")
	}
	return n, nil
}

// TranslationName validates an optional translation parameter. Empty
// input stays empty; anything else must be a plain identifier.
func TranslationName(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if !server.ValidateIdentifier(raw) {
		return "", errors.NewValidation("translation", "must be a plain identifier")
	}
	return raw, nil
}
