// Package snapshot exports a loaded catalog to a SQLite database and
// restores catalogs from such databases. Snapshots let deployments
// skip text parsing at startup and give external tools a queryable
// view of the corpus.
package snapshot

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/FocuswithJustin/CedarBible/core/bible"
	"github.com/FocuswithJustin/CedarBible/core/catalog"
	"github.com/FocuswithJustin/CedarBible/core/errors"
	"github.com/FocuswithJustin/CedarBible/core/sqlite"
)

// schema is the snapshot database layout. Positions record
// registration order for translations and insertion order for books,
// so a restored catalog iterates the same way the loaded one did.
const schema = `
CREATE TABLE translations (
	name TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	books INTEGER NOT NULL,
	verses INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE books (
	translation TEXT NOT NULL,
	name TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (translation, name)
);
CREATE TABLE verses (
	translation TEXT NOT NULL,
	book TEXT NOT NULL,
	chapter INTEGER NOT NULL,
	verse INTEGER NOT NULL,
	text TEXT NOT NULL,
	PRIMARY KEY (translation, book, chapter, verse)
);
CREATE INDEX idx_verses_translation ON verses (translation);
`

// Write exports the catalog to a SQLite database at path. An existing
// file at path is replaced.
func Write(ctx context.Context, path string, c *catalog.Catalog) error {
	if c == nil {
		return errors.NewValidation("catalog", "cannot snapshot a nil catalog")
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.NewIO("remove", path, err)
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return errors.NewIO("open", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "create snapshot schema")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin snapshot transaction")
	}
	defer tx.Rollback()

	insTranslation, err := tx.PrepareContext(ctx,
		`INSERT INTO translations (name, position, books, verses, created_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare translation insert")
	}
	defer insTranslation.Close()

	insBook, err := tx.PrepareContext(ctx,
		`INSERT INTO books (translation, name, position) VALUES (?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare book insert")
	}
	defer insBook.Close()

	insVerse, err := tx.PrepareContext(ctx,
		`INSERT INTO verses (translation, book, chapter, verse, text) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare verse insert")
	}
	defer insVerse.Close()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	for i, name := range c.Names() {
		tr, ok := c.Get(name)
		if !ok {
			continue
		}
		if _, err := insTranslation.ExecContext(ctx, name, i, tr.Books(), tr.TotalVerses(), createdAt); err != nil {
			return errors.Wrapf(err, "insert translation %s", name)
		}
		for j, book := range tr.BookNames() {
			if _, err := insBook.ExecContext(ctx, name, book, j); err != nil {
				return errors.Wrapf(err, "insert book %s/%s", name, book)
			}
		}
		for _, v := range tr.All() {
			if _, err := insVerse.ExecContext(ctx, name, v.Book, v.Chapter, v.Verse, v.Text); err != nil {
				return errors.Wrapf(err, "insert verse %s %s", name, v.Reference())
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit snapshot")
	}
	return nil
}

// Read restores a catalog from a snapshot database.
func Read(ctx context.Context, path string) (*catalog.Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewIO("stat", path, err)
	}

	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT name FROM translations ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "query translations")
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "scan translation")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, errors.Wrap(err, "read translations")
	}
	rows.Close()

	c := catalog.New()
	for _, name := range names {
		tr, err := readTranslation(ctx, db, name)
		if err != nil {
			return nil, err
		}
		c.Add(tr)
	}
	return c, nil
}

// readTranslation rebuilds one translation. Ordering by book position
// replays verses in the original insertion order, so BookNames on the
// restored translation matches the exported one.
func readTranslation(ctx context.Context, db *sql.DB, name string) (*bible.Translation, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT v.book, v.chapter, v.verse, v.text
		FROM verses v
		JOIN books b ON b.translation = v.translation AND b.name = v.book
		WHERE v.translation = ?
		ORDER BY b.position, v.chapter, v.verse`, name)
	if err != nil {
		return nil, errors.Wrapf(err, "query verses for %s", name)
	}
	defer rows.Close()

	tr := bible.NewTranslation(name)
	for rows.Next() {
		var (
			book          string
			chapter, vnum int
			text          string
		)
		if err := rows.Scan(&book, &chapter, &vnum, &text); err != nil {
			return nil, errors.Wrapf(err, "scan verse for %s", name)
		}
		tr.Insert(book, chapter, vnum, text)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "read verses for %s", name)
	}
	return tr, nil
}
