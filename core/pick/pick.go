// Package pick selects verses: the deterministic verse of the day and
// uniform random picks. A pick over an empty verse set is a "not found"
// result, never an error.
package pick

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/FocuswithJustin/CedarBible/core/bible"
	"github.com/FocuswithJustin/CedarBible/core/scripture"
)

// Daily returns the verse of the day for the given instant, evaluated at
// its UTC date. The pick is a pure function of the date and the
// translation's content: the first eight hex digits of md5(YYYY-MM-DD),
// i.e. the first four digest bytes big-endian, taken modulo the verse
// count, index into the canonical traversal order. Same date and same
// content always select the same verse, regardless of load order.
func Daily(tr *bible.Translation, day time.Time) (scripture.Verse, bool) {
	verses := tr.All()
	if len(verses) == 0 {
		return scripture.Verse{}, false
	}

	date := day.UTC().Format("2006-01-02")
	sum := md5.Sum([]byte(date))
	seed := uint64(binary.BigEndian.Uint32(sum[:4]))

	return verses[seed%uint64(len(verses))], true
}

// Today returns the verse of the day for the current UTC date.
func Today(tr *bible.Translation) (scripture.Verse, bool) {
	return Daily(tr, time.Now())
}

// Random returns a uniformly random verse, optionally limited to one
// testament. Books outside the canonical catalog belong to no testament,
// so a testament filter excludes them.
func Random(tr *bible.Translation, testament scripture.Testament) (scripture.Verse, bool) {
	verses := tr.All()
	if testament != "" {
		kept := make([]scripture.Verse, 0, len(verses))
		for _, v := range verses {
			if scripture.InTestament(v.Book, testament) {
				kept = append(kept, v)
			}
		}
		verses = kept
	}
	if len(verses) == 0 {
		return scripture.Verse{}, false
	}
	return verses[rand.IntN(len(verses))], true
}
