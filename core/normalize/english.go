package normalize

import "github.com/FocuswithJustin/CedarBible/core/scripture"

// englishTable maps canonical abbreviations (Gen, Exo, ...) to full
// English book names. Full names already pass through unchanged.
var englishTable = func() Table {
	abbrevs := make(map[string]string, 66)
	for _, b := range scripture.Books() {
		abbrevs[b.Abbreviation] = b.Name
	}
	return NewTable(abbrevs)
}()

// English returns the table for English translations.
func English() Table {
	return englishTable
}
