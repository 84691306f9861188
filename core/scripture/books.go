package scripture

import "strings"

// canon lists the 66 books of the Protestant canon in canonical order.
var canon = []Book{
	// Old Testament
	{"Genesis", "Gen", OldTestament, 50},
	{"Exodus", "Exo", OldTestament, 40},
	{"Leviticus", "Lev", OldTestament, 27},
	{"Numbers", "Num", OldTestament, 36},
	{"Deuteronomy", "Deu", OldTestament, 34},
	{"Joshua", "Jos", OldTestament, 24},
	{"Judges", "Jdg", OldTestament, 21},
	{"Ruth", "Rut", OldTestament, 4},
	{"1 Samuel", "1Sa", OldTestament, 31},
	{"2 Samuel", "2Sa", OldTestament, 24},
	{"1 Kings", "1Ki", OldTestament, 22},
	{"2 Kings", "2Ki", OldTestament, 25},
	{"1 Chronicles", "1Ch", OldTestament, 29},
	{"2 Chronicles", "2Ch", OldTestament, 36},
	{"Ezra", "Ezr", OldTestament, 10},
	{"Nehemiah", "Neh", OldTestament, 13},
	{"Esther", "Est", OldTestament, 10},
	{"Job", "Job", OldTestament, 42},
	{"Psalm", "Psa", OldTestament, 150},
	{"Proverbs", "Pro", OldTestament, 31},
	{"Ecclesiastes", "Ecc", OldTestament, 12},
	{"Song of Solomon", "Sol", OldTestament, 8},
	{"Isaiah", "Isa", OldTestament, 66},
	{"Jeremiah", "Jer", OldTestament, 52},
	{"Lamentations", "Lam", OldTestament, 5},
	{"Ezekiel", "Eze", OldTestament, 48},
	{"Daniel", "Dan", OldTestament, 12},
	{"Hosea", "Hos", OldTestament, 14},
	{"Joel", "Joe", OldTestament, 3},
	{"Amos", "Amo", OldTestament, 9},
	{"Obadiah", "Oba", OldTestament, 1},
	{"Jonah", "Jon", OldTestament, 4},
	{"Micah", "Mic", OldTestament, 7},
	{"Nahum", "Nah", OldTestament, 3},
	{"Habakkuk", "Hab", OldTestament, 3},
	{"Zephaniah", "Zep", OldTestament, 3},
	{"Haggai", "Hag", OldTestament, 2},
	{"Zechariah", "Zec", OldTestament, 14},
	{"Malachi", "Mal", OldTestament, 4},
	// New Testament
	{"Matthew", "Mat", NewTestament, 28},
	{"Mark", "Mar", NewTestament, 16},
	{"Luke", "Luk", NewTestament, 24},
	{"John", "Joh", NewTestament, 21},
	{"Acts", "Act", NewTestament, 28},
	{"Romans", "Rom", NewTestament, 16},
	{"1 Corinthians", "1Co", NewTestament, 16},
	{"2 Corinthians", "2Co", NewTestament, 13},
	{"Galatians", "Gal", NewTestament, 6},
	{"Ephesians", "Eph", NewTestament, 6},
	{"Philippians", "Phi", NewTestament, 4},
	{"Colossians", "Col", NewTestament, 4},
	{"1 Thessalonians", "1Th", NewTestament, 5},
	{"2 Thessalonians", "2Th", NewTestament, 3},
	{"1 Timothy", "1Ti", NewTestament, 6},
	{"2 Timothy", "2Ti", NewTestament, 4},
	{"Titus", "Tit", NewTestament, 3},
	{"Philemon", "Phm", NewTestament, 1},
	{"Hebrews", "Heb", NewTestament, 13},
	{"James", "Jam", NewTestament, 5},
	{"1 Peter", "1Pe", NewTestament, 5},
	{"2 Peter", "2Pe", NewTestament, 3},
	{"1 John", "1Jo", NewTestament, 5},
	{"2 John", "2Jo", NewTestament, 1},
	{"3 John", "3Jo", NewTestament, 1},
	{"Jude", "Jud", NewTestament, 1},
	{"Revelation", "Rev", NewTestament, 22},
}

// Books returns the canonical book catalog in canonical order.
// The returned slice is a copy; callers may modify it freely.
func Books() []Book {
	out := make([]Book, len(canon))
	copy(out, canon)
	return out
}

// BooksByTestament returns the canonical books of one testament in
// canonical order.
func BooksByTestament(t Testament) []Book {
	var out []Book
	for _, b := range canon {
		if b.Testament == t {
			out = append(out, b)
		}
	}
	return out
}

// BookByName finds a canonical book by full name or abbreviation,
// case-insensitively.
func BookByName(name string) (Book, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, b := range canon {
		if strings.ToLower(b.Name) == needle || strings.ToLower(b.Abbreviation) == needle {
			return b, true
		}
	}
	return Book{}, false
}

// InTestament reports whether the named book belongs to the given
// testament. Names outside the canonical catalog belong to no testament.
func InTestament(book string, t Testament) bool {
	b, ok := BookByName(book)
	return ok && b.Testament == t
}
