// Package normalize maps raw book-name tokens from source files to
// canonical book names.
//
// Tables are exact-token lookups with a pass-through fallback: a token
// without a mapping is returned unchanged, never rejected. Normalization
// is pure and does no I/O.
package normalize

// Table is an immutable book-name lookup built from one or more layers.
type Table struct {
	layers []map[string]string
}

// NewTable builds a table from lookup layers; earlier layers win.
func NewTable(layers ...map[string]string) Table {
	return Table{layers: layers}
}

// Normalize resolves one raw token to its canonical book name. Unknown
// tokens pass through unchanged.
func (t Table) Normalize(token string) string {
	for _, layer := range t.layers {
		if name, ok := layer[token]; ok {
			return name
		}
	}
	return token
}

// None returns the empty table: every token passes through.
func None() Table {
	return Table{}
}
