package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/FocuswithJustin/CedarBible/core/bible"
	"github.com/FocuswithJustin/CedarBible/core/catalog"
	"github.com/FocuswithJustin/CedarBible/internal/snapshot"
)

const kjvFixture = `John 3:16 For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.
John 3:17 For God sent not his Son into the world to condemn the world; but that the world through him might be saved.
Genesis 1:1 In the beginning God created the heaven and the earth.
Matthew 5:9 Blessed are the peacemakers: for they shall be called the children of God.
`

const nivFixture = `John 1:1 In the beginning was the Word, and the Word was with God, and the Word was God.
John 1:2 He was with God in the beginning.
`

// Test helper functions

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

// kjvTexts returns a texts directory holding one small KJV source file.
func kjvTexts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	createTestFile(t, dir, "kjv.txt", kjvFixture)
	return dir
}

// setTexts points the global texts flag at dir for one test.
func setTexts(t *testing.T, dir string) {
	t.Helper()
	orig := CLI.Texts
	CLI.Texts = dir
	t.Cleanup(func() { CLI.Texts = orig })
}

// setProfiles points the global profiles flag at path for one test.
func setProfiles(t *testing.T, path string) {
	t.Helper()
	orig := CLI.Profiles
	CLI.Profiles = path
	t.Cleanup(func() { CLI.Profiles = orig })
}

// Tests for LoadCmd

func TestLoadCmd_Run(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		json  bool
	}{
		{
			name:  "single source",
			files: map[string]string{"kjv.txt": kjvFixture},
		},
		{
			name:  "json report",
			files: map[string]string{"kjv.txt": kjvFixture},
			json:  true,
		},
		{
			name: "two translations",
			files: map[string]string{
				"kjv.txt": kjvFixture,
				"niv.txt": nivFixture,
			},
		},
		{
			name: "unmatched file is skipped not fatal",
			files: map[string]string{
				"kjv.txt":     kjvFixture,
				"unknown.txt": "some text without a profile",
			},
		},
		{
			name: "non-source files are ignored",
			files: map[string]string{
				"kjv.txt":  kjvFixture,
				"notes.md": "not a translation",
			},
		},
		{
			name:  "empty directory",
			files: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				createTestFile(t, dir, name, content)
			}
			setTexts(t, dir)

			cmd := &LoadCmd{JSON: tt.json}
			if err := cmd.Run(); err != nil {
				t.Errorf("LoadCmd.Run() error = %v, want nil", err)
			}
		})
	}
}

func TestLoadCmd_Run_MissingDir(t *testing.T) {
	setTexts(t, filepath.Join(t.TempDir(), "absent"))

	// Load problems go into the report; they never fail the command.
	cmd := &LoadCmd{}
	if err := cmd.Run(); err != nil {
		t.Errorf("LoadCmd.Run() error = %v, want nil", err)
	}
}

// Tests for LookupCmd

func TestLookupCmd_Run(t *testing.T) {
	tests := []struct {
		name        string
		translation string
		ref         string
		json        bool
		wantErr     bool
	}{
		{
			name:        "single verse",
			translation: "KJV",
			ref:         "John 3:16",
		},
		{
			name:        "verse range",
			translation: "KJV",
			ref:         "John 3:16-17",
		},
		{
			name:        "book name is case insensitive",
			translation: "KJV",
			ref:         "john 3:16",
		},
		{
			name:        "json output",
			translation: "KJV",
			ref:         "Genesis 1:1",
			json:        true,
		},
		{
			name:        "unknown translation",
			translation: "ESV",
			ref:         "John 3:16",
			wantErr:     true,
		},
		{
			name:        "reference without verse",
			translation: "KJV",
			ref:         "John 3",
			wantErr:     true,
		},
		{
			name:        "missing chapter",
			translation: "KJV",
			ref:         "John 99:1",
			wantErr:     true,
		},
	}

	setTexts(t, kjvTexts(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &LookupCmd{Translation: tt.translation, Ref: tt.ref, JSON: tt.json}
			err := cmd.Run()
			if (err != nil) != tt.wantErr {
				t.Errorf("LookupCmd.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Tests for SearchCmd

func TestSearchCmd_Run(t *testing.T) {
	tests := []struct {
		name        string
		translation string
		query       string
		book        string
		testament   string
		page        int
		perPage     int
		json        bool
		wantErr     bool
	}{
		{
			name:        "match",
			translation: "KJV",
			query:       "world",
			page:        1,
			perPage:     20,
		},
		{
			name:        "no match is not an error",
			translation: "KJV",
			query:       "chrysanthemum",
			page:        1,
			perPage:     20,
		},
		{
			name:        "book filter",
			translation: "KJV",
			query:       "world",
			book:        "John",
			page:        1,
			perPage:     20,
		},
		{
			name:        "testament filter",
			translation: "KJV",
			query:       "God",
			testament:   "old",
			page:        1,
			perPage:     20,
		},
		{
			name:        "json output",
			translation: "KJV",
			query:       "beginning",
			page:        1,
			perPage:     20,
			json:        true,
		},
		{
			name:        "query below minimum length",
			translation: "KJV",
			query:       "ab",
			page:        1,
			perPage:     20,
			wantErr:     true,
		},
		{
			name:        "invalid testament",
			translation: "KJV",
			query:       "world",
			testament:   "middle",
			page:        1,
			perPage:     20,
			wantErr:     true,
		},
		{
			name:        "page zero rejected",
			translation: "KJV",
			query:       "world",
			page:        0,
			perPage:     20,
			wantErr:     true,
		},
		{
			name:        "page beyond results is empty not an error",
			translation: "KJV",
			query:       "world",
			page:        50,
			perPage:     20,
		},
		{
			name:        "unknown translation",
			translation: "ESV",
			query:       "world",
			page:        1,
			perPage:     20,
			wantErr:     true,
		},
	}

	setTexts(t, kjvTexts(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &SearchCmd{
				Translation: tt.translation,
				Query:       tt.query,
				Book:        tt.book,
				Testament:   tt.testament,
				Page:        tt.page,
				PerPage:     tt.perPage,
				JSON:        tt.json,
			}
			err := cmd.Run()
			if (err != nil) != tt.wantErr {
				t.Errorf("SearchCmd.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Tests for DailyCmd

func TestDailyCmd_Run(t *testing.T) {
	tests := []struct {
		name        string
		translation string
		date        string
		json        bool
		wantErr     bool
	}{
		{
			name: "default translation",
		},
		{
			name:        "named translation",
			translation: "KJV",
		},
		{
			name:        "fixed date",
			translation: "KJV",
			date:        "2026-01-15",
		},
		{
			name:        "json output",
			translation: "KJV",
			date:        "2026-01-15",
			json:        true,
		},
		{
			name:        "invalid date",
			translation: "KJV",
			date:        "Jan 15",
			wantErr:     true,
		},
		{
			name:        "unknown translation",
			translation: "ESV",
			wantErr:     true,
		},
	}

	setTexts(t, kjvTexts(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &DailyCmd{Translation: tt.translation, Date: tt.date, JSON: tt.json}
			err := cmd.Run()
			if (err != nil) != tt.wantErr {
				t.Errorf("DailyCmd.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Tests for RandomCmd

func TestRandomCmd_Run(t *testing.T) {
	tests := []struct {
		name        string
		translation string
		testament   string
		json        bool
		wantErr     bool
	}{
		{
			name: "default translation",
		},
		{
			name:        "named translation",
			translation: "KJV",
		},
		{
			name:        "old testament",
			translation: "KJV",
			testament:   "old",
		},
		{
			name:        "new testament",
			translation: "KJV",
			testament:   "new",
		},
		{
			name:        "json output",
			translation: "KJV",
			json:        true,
		},
		{
			name:        "invalid testament",
			translation: "KJV",
			testament:   "central",
			wantErr:     true,
		},
		{
			name:        "unknown translation",
			translation: "World",
			wantErr:     true,
		},
	}

	setTexts(t, kjvTexts(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RandomCmd{Translation: tt.translation, Testament: tt.testament, JSON: tt.json}
			err := cmd.Run()
			if (err != nil) != tt.wantErr {
				t.Errorf("RandomCmd.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRandomCmd_Run_EmptyTestament(t *testing.T) {
	dir := t.TempDir()
	createTestFile(t, dir, "niv.txt", nivFixture)
	setTexts(t, dir)

	// The fixture holds only New Testament verses.
	cmd := &RandomCmd{Translation: "NIV", Testament: "old"}
	if err := cmd.Run(); err == nil {
		t.Error("RandomCmd.Run() expected error for a testament with no verses")
	}
}

// Tests for BooksCmd

func TestBooksCmd_Run(t *testing.T) {
	tests := []struct {
		name        string
		translation string
		testament   string
		json        bool
		wantErr     bool
	}{
		{
			name: "canonical catalog",
		},
		{
			name:      "canonical old testament",
			testament: "old",
		},
		{
			name:      "canonical new testament",
			testament: "new",
		},
		{
			name: "canonical json",
			json: true,
		},
		{
			name:        "stored names",
			translation: "KJV",
		},
		{
			name:        "stored names with testament filter",
			translation: "KJV",
			testament:   "old",
		},
		{
			name:        "stored names json",
			translation: "KJV",
			json:        true,
		},
		{
			name:      "invalid testament",
			testament: "sideways",
			wantErr:   true,
		},
		{
			name:        "unknown translation",
			translation: "ESV",
			wantErr:     true,
		},
	}

	setTexts(t, kjvTexts(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &BooksCmd{Translation: tt.translation, Testament: tt.testament, JSON: tt.json}
			err := cmd.Run()
			if (err != nil) != tt.wantErr {
				t.Errorf("BooksCmd.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Tests for TranslationsCmd

func TestTranslationsCmd_Run(t *testing.T) {
	dir := t.TempDir()
	createTestFile(t, dir, "kjv.txt", kjvFixture)
	createTestFile(t, dir, "niv.txt", nivFixture)
	setTexts(t, dir)

	for _, json := range []bool{false, true} {
		cmd := &TranslationsCmd{JSON: json}
		if err := cmd.Run(); err != nil {
			t.Errorf("TranslationsCmd.Run() json=%v error = %v, want nil", json, err)
		}
	}
}

func TestTranslationsCmd_Run_EmptyDir(t *testing.T) {
	setTexts(t, t.TempDir())

	cmd := &TranslationsCmd{}
	if err := cmd.Run(); err == nil {
		t.Error("TranslationsCmd.Run() expected error for an empty texts directory")
	}
}

// Tests for ExportCmd

func TestExportCmd_Run(t *testing.T) {
	setTexts(t, kjvTexts(t))
	out := filepath.Join(t.TempDir(), "corpus.db")

	cmd := &ExportCmd{Out: out}
	if err := cmd.Run(); err != nil {
		t.Fatalf("ExportCmd.Run() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("snapshot file not created: %v", err)
	}

	restored, err := snapshot.Read(context.Background(), out)
	if err != nil {
		t.Fatalf("failed to read snapshot back: %v", err)
	}
	if restored.Len() != 1 {
		t.Errorf("restored catalog has %d translations, want 1", restored.Len())
	}
	tr, ok := restored.Get("KJV")
	if !ok {
		t.Fatal("restored catalog is missing KJV")
	}
	if got := tr.TotalVerses(); got != 4 {
		t.Errorf("restored KJV has %d verses, want 4", got)
	}
}

func TestExportCmd_Run_EmptyCatalog(t *testing.T) {
	setTexts(t, t.TempDir())

	cmd := &ExportCmd{Out: filepath.Join(t.TempDir(), "corpus.db")}
	if err := cmd.Run(); err == nil {
		t.Error("ExportCmd.Run() expected error for an empty catalog")
	}
}

// Tests for ServeCmd

func TestServeCmd_Run_MissingSnapshot(t *testing.T) {
	cmd := &ServeCmd{
		Port:     0,
		Snapshot: filepath.Join(t.TempDir(), "absent.db"),
	}
	if err := cmd.Run(); err == nil {
		t.Error("ServeCmd.Run() expected error for a missing snapshot file")
	}
}

func TestServeCmd_Run_EmptyTextsDir(t *testing.T) {
	setTexts(t, t.TempDir())

	cmd := &ServeCmd{Port: 0}
	if err := cmd.Run(); err == nil {
		t.Error("ServeCmd.Run() expected error for an empty texts directory")
	}
}

// Tests for VersionCmd

func TestVersionCmd_Run(t *testing.T) {
	cmd := &VersionCmd{}
	if err := cmd.Run(); err != nil {
		t.Errorf("VersionCmd.Run() error = %v", err)
	}
}

// Tests for helpers

func TestProfileRegistry(t *testing.T) {
	t.Run("builtin by default", func(t *testing.T) {
		setProfiles(t, "")

		reg, err := profileRegistry()
		if err != nil {
			t.Fatalf("profileRegistry() error = %v", err)
		}
		p, ok := reg.Find("kjv.txt")
		if !ok {
			t.Fatal("builtin registry does not match kjv.txt")
		}
		if p.Name != "KJV" {
			t.Errorf("profile name = %q, want KJV", p.Name)
		}
	})

	t.Run("custom registry file", func(t *testing.T) {
		dir := t.TempDir()
		path := createTestFile(t, dir, "profiles.yaml", `profiles:
  - name: Test
    match: test
    names: english
`)
		setProfiles(t, path)

		reg, err := profileRegistry()
		if err != nil {
			t.Fatalf("profileRegistry() error = %v", err)
		}
		p, ok := reg.Find("test.txt")
		if !ok {
			t.Fatal("custom registry does not match test.txt")
		}
		if p.Name != "Test" {
			t.Errorf("profile name = %q, want Test", p.Name)
		}
	})

	t.Run("missing registry file", func(t *testing.T) {
		setProfiles(t, filepath.Join(t.TempDir(), "absent.yaml"))

		if _, err := profileRegistry(); err == nil {
			t.Error("profileRegistry() expected error for a missing file")
		}
	})
}

func TestFindTranslation(t *testing.T) {
	cat := catalog.New()
	kjv := bible.NewTranslation("KJV")
	kjv.Insert("John", 3, 16, "For God so loved the world")
	cat.Add(kjv)

	tests := []struct {
		name        string
		translation string
		wantErr     bool
	}{
		{name: "registered", translation: "KJV"},
		{name: "not loaded", translation: "ESV", wantErr: true},
		{name: "invalid identifier", translation: "no such!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := findTranslation(cat, tt.translation)
			if (err != nil) != tt.wantErr {
				t.Errorf("findTranslation(%q) error = %v, wantErr %v", tt.translation, err, tt.wantErr)
				return
			}
			if !tt.wantErr && tr.Name != tt.translation {
				t.Errorf("findTranslation(%q).Name = %q", tt.translation, tr.Name)
			}
		})
	}
}

func TestPickTranslation(t *testing.T) {
	cat := catalog.New()
	cat.Add(bible.NewTranslation("World"))
	cat.Add(bible.NewTranslation("KJV"))

	t.Run("empty name falls back to first registered", func(t *testing.T) {
		tr, err := pickTranslation(cat, "")
		if err != nil {
			t.Fatalf("pickTranslation() error = %v", err)
		}
		if tr.Name != "World" {
			t.Errorf("pickTranslation(\"\").Name = %q, want World", tr.Name)
		}
	})

	t.Run("named translation", func(t *testing.T) {
		tr, err := pickTranslation(cat, "KJV")
		if err != nil {
			t.Fatalf("pickTranslation() error = %v", err)
		}
		if tr.Name != "KJV" {
			t.Errorf("pickTranslation(\"KJV\").Name = %q", tr.Name)
		}
	})

	t.Run("unknown name is an error", func(t *testing.T) {
		if _, err := pickTranslation(cat, "ESV"); err == nil {
			t.Error("pickTranslation(\"ESV\") expected error")
		}
	})
}
