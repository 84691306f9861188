// Package zefania parses Zefania XML Bible modules.
//
// A Zefania document nests XMLBIBLE > BIBLEBOOK (bnumber, bname) >
// CHAPTER (cnumber) > VERS (vnumber). Book names come from the bname
// attribute, falling back to the canonical English name for the book
// number; downstream they are normalized like any other raw book token.
package zefania

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/CedarBible/core/errors"
	"github.com/FocuswithJustin/CedarBible/core/parse"
	"github.com/FocuswithJustin/CedarBible/core/scripture"
)

var (
	bookQuery    = xpath.MustCompile("//BIBLEBOOK")
	chapterQuery = xpath.MustCompile("CHAPTER")
	verseQuery   = xpath.MustCompile("VERS")
	titleQuery   = xpath.MustCompile("//INFORMATION/title")
)

// Parse extracts verse entries from a Zefania XML document. Books,
// chapters, and verses with missing or non-positive numbers are skipped;
// malformed XML is a parse error.
func Parse(data []byte) ([]parse.Entry, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewParse("Zefania XML", "", err.Error())
	}

	var entries []parse.Entry
	for _, book := range xmlquery.QuerySelectorAll(doc, bookQuery) {
		name := bookName(book)
		if name == "" {
			continue
		}
		for _, chapter := range xmlquery.QuerySelectorAll(book, chapterQuery) {
			cnum := intAttr(chapter, "cnumber")
			if cnum < 1 {
				continue
			}
			for _, verse := range xmlquery.QuerySelectorAll(chapter, verseQuery) {
				vnum := intAttr(verse, "vnumber")
				if vnum < 1 {
					continue
				}
				text := strings.Join(strings.Fields(verse.InnerText()), " ")
				if text == "" {
					continue
				}
				entries = append(entries, parse.Entry{
					Book:    name,
					Chapter: cnum,
					Verse:   vnum,
					Text:    text,
				})
			}
		}
	}
	return entries, nil
}

// Title returns the module title from the INFORMATION block, or "".
func Title(data []byte) string {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	if node := xmlquery.QuerySelector(doc, titleQuery); node != nil {
		return strings.TrimSpace(node.InnerText())
	}
	return ""
}

// bookName prefers the bname attribute and falls back to the canonical
// English name for the bnumber (1..66).
func bookName(book *xmlquery.Node) string {
	if name := strings.TrimSpace(book.SelectAttr("bname")); name != "" {
		return name
	}
	n := intAttr(book, "bnumber")
	books := scripture.Books()
	if n >= 1 && n <= len(books) {
		return books[n-1].Name
	}
	return ""
}

func intAttr(node *xmlquery.Node, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(node.SelectAttr(name)))
	if err != nil {
		return 0
	}
	return n
}
