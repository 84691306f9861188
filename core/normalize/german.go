package normalize

// germanAbbreviations maps the abbreviation set used by German source
// texts to German canonical book names.
var germanAbbreviations = map[string]string{
	"1Mos":   "1. Mose",
	"2Mos":   "2. Mose",
	"3Mos":   "3. Mose",
	"4Mos":   "4. Mose",
	"5Mos":   "5. Mose",
	"Jos":    "Josua",
	"Ri":     "Richter",
	"Ruth":   "Ruth",
	"1Sam":   "1. Samuel",
	"2Sam":   "2. Samuel",
	"1Kön":   "1. Könige",
	"2Kön":   "2. Könige",
	"1Chr":   "1. Chronik",
	"2Chr":   "2. Chronik",
	"Esr":    "Esra",
	"Neh":    "Nehemia",
	"Est":    "Esther",
	"Hi":     "Hiob",
	"Ps":     "Psalmen",
	"Spr":    "Sprüche",
	"Pred":   "Prediger",
	"Hld":    "Hohelied",
	"Jes":    "Jesaja",
	"Jer":    "Jeremia",
	"Kla":    "Klagelieder",
	"Hes":    "Hesekiel",
	"Dan":    "Daniel",
	"Hos":    "Hosea",
	"Joe":    "Joel",
	"Am":     "Amos",
	"Ob":     "Obadja",
	"Jon":    "Jona",
	"Mi":     "Micha",
	"Nah":    "Nahum",
	"Hab":    "Habakuk",
	"Zef":    "Zefanja",
	"Hag":    "Haggai",
	"Sach":   "Sacharja",
	"Mal":    "Maleachi",
	"Mt":     "Matthäus",
	"Mk":     "Markus",
	"Lk":     "Lukas",
	"Joh":    "Johannes",
	"Apg":    "Apostelgeschichte",
	"Röm":    "Römer",
	"1Kor":   "1. Korinther",
	"2Kor":   "2. Korinther",
	"Gal":    "Galater",
	"Eph":    "Epheser",
	"Phil":   "Philipper",
	"Kol":    "Kolosser",
	"1Thess": "1. Thessalonicher",
	"2Thess": "2. Thessalonicher",
	"1Tim":   "1. Timotheus",
	"2Tim":   "2. Timotheus",
	"Tit":    "Titus",
	"Phlm":   "Philemon",
	"Hebr":   "Hebräer",
	"Jak":    "Jakobus",
	"1Petr":  "1. Petrus",
	"2Petr":  "2. Petrus",
	"1Joh":   "1. Johannes",
	"2Joh":   "2. Johannes",
	"3Joh":   "3. Johannes",
	"Jud":    "Judas",
	"Offb":   "Offenbarung",
}

// germanVariations maps English book names to German canonical names,
// for German sources that carry English headings.
var germanVariations = map[string]string{
	"Genesis":         "1. Mose",
	"Exodus":          "2. Mose",
	"Leviticus":       "3. Mose",
	"Numbers":         "4. Mose",
	"Deuteronomy":     "5. Mose",
	"Joshua":          "Josua",
	"Judges":          "Richter",
	"1 Samuel":        "1. Samuel",
	"2 Samuel":        "2. Samuel",
	"1 Kings":         "1. Könige",
	"2 Kings":         "2. Könige",
	"1 Chronicles":    "1. Chronik",
	"2 Chronicles":    "2. Chronik",
	"Ezra":            "Esra",
	"Nehemiah":        "Nehemia",
	"Esther":          "Esther",
	"Job":             "Hiob",
	"Psalms":          "Psalmen",
	"Proverbs":        "Sprüche",
	"Ecclesiastes":    "Prediger",
	"Song of Solomon": "Hohelied",
	"Isaiah":          "Jesaja",
	"Jeremiah":        "Jeremia",
	"Lamentations":    "Klagelieder",
	"Ezekiel":         "Hesekiel",
	"Daniel":          "Daniel",
	"Hosea":           "Hosea",
	"Joel":            "Joel",
	"Amos":            "Amos",
	"Obadiah":         "Obadja",
	"Jonah":           "Jona",
	"Micah":           "Micha",
	"Nahum":           "Nahum",
	"Habakkuk":        "Habakuk",
	"Zephaniah":       "Zefanja",
	"Haggai":          "Haggai",
	"Zechariah":       "Sacharja",
	"Malachi":         "Maleachi",
	"Matthew":         "Matthäus",
	"Mark":            "Markus",
	"Luke":            "Lukas",
	"John":            "Johannes",
	"Acts":            "Apostelgeschichte",
	"Romans":          "Römer",
	"1 Corinthians":   "1. Korinther",
	"2 Corinthians":   "2. Korinther",
	"Galatians":       "Galater",
	"Ephesians":       "Epheser",
	"Philippians":     "Philipper",
	"Colossians":      "Kolosser",
	"1 Thessalonians": "1. Thessalonicher",
	"2 Thessalonians": "2. Thessalonicher",
	"1 Timothy":       "1. Timotheus",
	"2 Timothy":       "2. Timotheus",
	"Titus":           "Titus",
	"Philemon":        "Philemon",
	"Hebrews":         "Hebräer",
	"James":           "Jakobus",
	"1 Peter":         "1. Petrus",
	"2 Peter":         "2. Petrus",
	"1 John":          "1. Johannes",
	"2 John":          "2. Johannes",
	"3 John":          "3. Johannes",
	"Jude":            "Judas",
	"Revelation":      "Offenbarung",
}

var germanTable = NewTable(germanAbbreviations, germanVariations)

// German returns the table for German translations: the German
// abbreviation set first, then English-name variations.
func German() Table {
	return germanTable
}
