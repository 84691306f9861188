package catalog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"

	"github.com/FocuswithJustin/CedarBible/core/bible"
	"github.com/FocuswithJustin/CedarBible/core/errors"
	"github.com/FocuswithJustin/CedarBible/core/parse"
	"github.com/FocuswithJustin/CedarBible/core/zefania"
)

// FileReport records how one candidate file loaded.
type FileReport struct {
	File         string `json:"file"`
	Profile      string `json:"profile,omitempty"`
	Translation  string `json:"translation,omitempty"`
	Books        int    `json:"books,omitempty"`
	Verses       int    `json:"verses,omitempty"`
	SkippedLines int    `json:"skipped_lines,omitempty"`
	Hash         string `json:"hash,omitempty"` // BLAKE3 of the decompressed content
	Skipped      string `json:"skipped,omitempty"`
}

// Loaded reports whether the file contributed a translation.
func (fr FileReport) Loaded() bool {
	return fr.Skipped == "" && fr.Translation != ""
}

// Report is the diagnostic record of one Load run.
type Report struct {
	ID       string       `json:"id"`
	Dir      string       `json:"dir"`
	Started  time.Time    `json:"started"`
	Finished time.Time    `json:"finished"`
	Files    []FileReport `json:"files"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Loaded counts the files that contributed a translation.
func (r *Report) Loaded() int {
	n := 0
	for _, fr := range r.Files {
		if fr.Loaded() {
			n++
		}
	}
	return n
}

type fileResult struct {
	report FileReport
	tr     *bible.Translation
}

// Load scans dir for translation source files and parses them through
// the registry. Files are processed in parallel but registered in
// sorted file-name order, so the catalog is deterministic for a given
// directory. Problems never abort the load; they are recorded in the
// report and the affected file is skipped.
func Load(ctx context.Context, dir string, reg Registry) (*Catalog, *Report) {
	report := &Report{ID: uuid.NewString(), Dir: dir, Started: time.Now().UTC()}
	c := New()

	entries, err := os.ReadDir(dir)
	if err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf("cannot read texts directory: %v", err))
		report.Finished = time.Now().UTC()
		return c, report
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !isSource(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range files {
		g.Go(func() error {
			results[i] = loadFile(gctx, filepath.Join(dir, name), name, reg)
			return nil
		})
	}
	// Workers report failures through their FileReport, never an error.
	_ = g.Wait()

	for _, res := range results {
		report.Files = append(report.Files, res.report)
		if res.tr == nil {
			continue
		}
		if _, exists := c.Get(res.tr.Name); exists {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("translation %s registered more than once; keeping %s", res.tr.Name, res.report.File))
		}
		c.Add(res.tr)
	}

	report.Finished = time.Now().UTC()
	return c, report
}

// isSource reports whether the file name has a recognized source
// extension. Anything else in the directory is ignored without a
// report entry.
func isSource(name string) bool {
	stem := strings.TrimSuffix(name, ".xz")
	return strings.HasSuffix(stem, ".txt") || strings.HasSuffix(stem, ".xml")
}

func loadFile(ctx context.Context, path, name string, reg Registry) fileResult {
	fr := FileReport{File: name}

	if err := ctx.Err(); err != nil {
		fr.Skipped = "load canceled"
		return fileResult{report: fr}
	}

	profile, ok := reg.Find(name)
	if !ok {
		fr.Skipped = "no translation profile matches"
		return fileResult{report: fr}
	}
	fr.Profile = profile.Name

	data, err := readSource(path)
	if err != nil {
		fr.Skipped = err.Error()
		return fileResult{report: fr}
	}
	fr.Hash = contentHash(data)

	tr := bible.NewTranslation(profile.Name)
	stem := strings.TrimSuffix(name, ".xz")
	switch {
	case strings.HasSuffix(stem, ".xml"):
		entries, err := zefania.Parse(data)
		if err != nil {
			fr.Skipped = err.Error()
			return fileResult{report: fr}
		}
		for _, e := range entries {
			tr.Insert(profile.Names.Normalize(e.Book), e.Chapter, e.Verse, e.Text)
		}
	default:
		fr.SkippedLines = scanText(tr, data, profile)
	}

	fr.Books = tr.Books()
	fr.Verses = tr.TotalVerses()
	if fr.Verses == 0 {
		fr.Skipped = "no verses parsed"
		return fileResult{report: fr}
	}

	fr.Translation = profile.Name
	return fileResult{report: fr, tr: tr}
}

// scanText parses line-oriented verse text into tr and returns the
// count of non-blank lines no grammar matched.
func scanText(tr *bible.Translation, data []byte, profile Profile) int {
	grammars := profile.Grammars
	if grammars == nil {
		grammars = parse.DefaultGrammars()
	}

	skipped := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, ok := parse.Line(line, grammars)
		if !ok {
			skipped++
			continue
		}
		tr.Insert(profile.Names.Normalize(entry.Book), entry.Chapter, entry.Verse, entry.Text)
	}
	return skipped
}

// readSource reads a source file, transparently decompressing .xz.
func readSource(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		r = xzr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return data, nil
}

func contentHash(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
