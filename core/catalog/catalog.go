// Package catalog discovers translation source files in a directory,
// parses them through their matching profiles, and holds the resulting
// translations for lookup.
package catalog

import (
	"slices"

	"github.com/FocuswithJustin/CedarBible/core/bible"
)

// Catalog is a loaded set of translations. Load builds it completely
// before returning; afterwards it is read-only and safe for concurrent
// use.
type Catalog struct {
	translations map[string]*bible.Translation
	names        []string // registration order
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{translations: make(map[string]*bible.Translation)}
}

// Add registers a translation. Registering a name twice replaces the
// earlier translation but keeps its original position.
func (c *Catalog) Add(tr *bible.Translation) {
	if tr == nil {
		return
	}
	if _, exists := c.translations[tr.Name]; !exists {
		c.names = append(c.names, tr.Name)
	}
	c.translations[tr.Name] = tr
}

// Get returns the translation registered under the exact name.
func (c *Catalog) Get(name string) (*bible.Translation, bool) {
	tr, ok := c.translations[name]
	return tr, ok
}

// Names returns the translation names in registration order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of registered translations.
func (c *Catalog) Len() int {
	return len(c.translations)
}

// Default returns the preferred translation when it is registered,
// otherwise the first registered one. It returns false only for an
// empty catalog.
func (c *Catalog) Default(preferred string) (*bible.Translation, bool) {
	if preferred != "" {
		if tr, ok := c.translations[preferred]; ok {
			return tr, true
		}
	}
	if len(c.names) == 0 {
		return nil, false
	}
	return c.translations[c.names[0]], true
}

// Stats summarizes the catalog contents.
type Stats struct {
	Translations int `json:"translations"`
	Books        int `json:"books"`
	Verses       int `json:"verses"`
}

// Stats counts translations, books, and verses across the catalog.
func (c *Catalog) Stats() Stats {
	s := Stats{Translations: len(c.translations)}
	for _, tr := range c.translations {
		s.Books += tr.Books()
		s.Verses += tr.TotalVerses()
	}
	return s
}
