// Command cedar is the CLI tool for Cedar Bible.
// It provides commands for loading translations, querying verses, and
// running the HTTP/WebSocket API server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/CedarBible/core/bible"
	"github.com/FocuswithJustin/CedarBible/core/catalog"
	"github.com/FocuswithJustin/CedarBible/core/pick"
	"github.com/FocuswithJustin/CedarBible/core/scripture"
	"github.com/FocuswithJustin/CedarBible/core/search"
	"github.com/FocuswithJustin/CedarBible/internal/api"
	"github.com/FocuswithJustin/CedarBible/internal/logging"
	"github.com/FocuswithJustin/CedarBible/internal/snapshot"
	"github.com/FocuswithJustin/CedarBible/internal/validation"
)

const version = "1.0.0"

// CLI defines the command-line interface for cedar.
var CLI struct {
	// Global flags
	Texts     string `help:"Directory containing translation source files" default:"texts" type:"path"`
	Profiles  string `help:"YAML profile registry replacing the built-in profiles" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `name:"log-format" help:"Log format (json, text)" enum:"json,text" default:"json"`

	Load         LoadCmd         `cmd:"" help:"Load translations and report what was ingested"`
	Serve        ServeCmd        `cmd:"" help:"Start the HTTP/WebSocket API server"`
	Lookup       LookupCmd       `cmd:"" help:"Look up verses by reference"`
	Search       SearchCmd       `cmd:"" help:"Search verse text"`
	Daily        DailyCmd        `cmd:"" help:"Show the verse of the day"`
	Random       RandomCmd       `cmd:"" help:"Show a random verse"`
	Books        BooksCmd        `cmd:"" help:"List books"`
	Translations TranslationsCmd `cmd:"" help:"List loaded translations"`
	Export       ExportCmd       `cmd:"" help:"Export the loaded catalog to a snapshot file"`
	Version      VersionCmd      `cmd:"" help:"Print version information"`
}

// LoadCmd loads every recognized source file under the texts directory
// and prints the ingest report.
type LoadCmd struct {
	JSON bool `help:"Print the report as JSON"`
}

func (c *LoadCmd) Run() error {
	cat, rep, err := buildCatalog(context.Background())
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(rep)
	}

	for _, fr := range rep.Files {
		if fr.Loaded() {
			fmt.Printf("loaded  %s: %s (%d books, %d verses)\n", fr.File, fr.Translation, fr.Books, fr.Verses)
			if fr.SkippedLines > 0 {
				fmt.Printf("        %d lines did not match any grammar\n", fr.SkippedLines)
			}
		} else {
			fmt.Printf("skipped %s: %s\n", fr.File, fr.Skipped)
		}
	}
	for _, w := range rep.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	st := cat.Stats()
	fmt.Printf("%d translations, %d books, %d verses in %s\n",
		st.Translations, st.Books, st.Verses, rep.Finished.Sub(rep.Started).Round(time.Millisecond))
	return nil
}

// ServeCmd starts the REST API and WebSocket server.
type ServeCmd struct {
	Port           int      `help:"HTTP server port" default:"8080" env:"CEDAR_PORT"`
	Translation    string   `help:"Default translation for requests that name none" default:"KJV" env:"CEDAR_TRANSLATION"`
	Snapshot       string   `help:"Serve from a snapshot file instead of the texts directory" type:"existingfile" env:"CEDAR_SNAPSHOT"`
	AllowedOrigins []string `name:"allowed-origins" help:"Allowed CORS origins" env:"CEDAR_ALLOWED_ORIGINS"`
	CacheSize      int      `name:"cache-size" help:"Search result cache capacity" default:"100" env:"CEDAR_CACHE_SIZE"`
	RateLimit      int      `name:"rate-limit" help:"Requests per minute per client IP (0 disables limiting)" env:"CEDAR_RATE_LIMIT"`
	RateBurst      int      `name:"rate-burst" help:"Rate limit burst capacity" env:"CEDAR_RATE_BURST"`
	TLSCert        string   `name:"tls-cert" help:"TLS certificate file" type:"existingfile" env:"CEDAR_TLS_CERT"`
	TLSKey         string   `name:"tls-key" help:"TLS private key file" type:"existingfile" env:"CEDAR_TLS_KEY"`
}

func (c *ServeCmd) Run() error {
	ctx := context.Background()

	var cat *catalog.Catalog
	if c.Snapshot != "" {
		var err error
		cat, err = snapshot.Read(ctx, c.Snapshot)
		if err != nil {
			return fmt.Errorf("restore snapshot: %w", err)
		}
		if cat.Len() == 0 {
			return fmt.Errorf("snapshot %s contains no translations", c.Snapshot)
		}
	} else {
		var rep *catalog.Report
		var err error
		cat, rep, err = requireCatalog(ctx)
		if err != nil {
			return err
		}
		logReport(rep)
	}

	cfg := api.Config{
		Port:               c.Port,
		DefaultTranslation: c.Translation,
		AllowedOrigins:     c.AllowedOrigins,
		SearchCacheSize:    c.CacheSize,
		RateLimitRequests:  c.RateLimit,
		RateLimitBurst:     c.RateBurst,
	}
	if c.TLSCert != "" || c.TLSKey != "" {
		cfg.TLS = api.TLSConfig{Enabled: true, CertFile: c.TLSCert, KeyFile: c.TLSKey}
	}
	return api.New(cfg, cat).Start()
}

// LookupCmd resolves a verse reference such as "John 3:16" or
// "John 3:16-18" against one translation.
type LookupCmd struct {
	Translation string `arg:"" help:"Translation name"`
	Ref         string `arg:"" help:"Verse reference, e.g. 'John 3:16' or 'John 3:16-18'"`
	JSON        bool   `help:"Print verses as JSON"`
}

func (c *LookupCmd) Run() error {
	cat, _, err := requireCatalog(context.Background())
	if err != nil {
		return err
	}
	tr, err := findTranslation(cat, c.Translation)
	if err != nil {
		return err
	}

	verses := search.New(tr).ByReference(c.Ref)
	if len(verses) == 0 {
		return fmt.Errorf("no verses match %q in %s", c.Ref, tr.Name)
	}

	if c.JSON {
		return printJSON(verses)
	}
	for _, v := range verses {
		printVerse(v)
	}
	return nil
}

// SearchCmd runs a case-insensitive substring search over one
// translation.
type SearchCmd struct {
	Translation string `arg:"" help:"Translation name"`
	Query       string `arg:"" help:"Text to search for"`
	Book        string `help:"Restrict matches to one book"`
	Testament   string `help:"Restrict matches to a testament (old or new)"`
	Page        int    `help:"Result page" default:"1"`
	PerPage     int    `name:"per-page" help:"Results per page" default:"20"`
	JSON        bool   `help:"Print the full response as JSON"`
}

func (c *SearchCmd) Run() error {
	cat, _, err := requireCatalog(context.Background())
	if err != nil {
		return err
	}
	tr, err := findTranslation(cat, c.Translation)
	if err != nil {
		return err
	}

	q, err := validation.Query(c.Query)
	if err != nil {
		return err
	}
	testament, err := validation.Testament(c.Testament)
	if err != nil {
		return err
	}

	resp, err := search.New(tr).Search(q, search.Options{
		Book:      c.Book,
		Testament: testament,
		Page:      c.Page,
		PerPage:   c.PerPage,
	})
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(resp)
	}

	if resp.TotalCount == 0 {
		fmt.Printf("no matches for %q in %s\n", resp.Query, tr.Name)
		return nil
	}
	fmt.Printf("%d matches for %q in %s (page %d of %d per page)\n",
		resp.TotalCount, resp.Query, tr.Name, resp.Page, resp.PerPage)
	for _, r := range resp.Results {
		printVerse(r.Verse)
	}
	if resp.HasNext {
		fmt.Printf("more matches: rerun with --page %d\n", resp.Page+1)
	}
	return nil
}

// DailyCmd prints the deterministic verse of the day.
type DailyCmd struct {
	Translation string `arg:"" optional:"" help:"Translation name (default: first loaded)"`
	Date        string `help:"Pick for a specific date (YYYY-MM-DD) instead of today"`
	JSON        bool   `help:"Print the verse as JSON"`
}

func (c *DailyCmd) Run() error {
	cat, _, err := requireCatalog(context.Background())
	if err != nil {
		return err
	}
	tr, err := pickTranslation(cat, c.Translation)
	if err != nil {
		return err
	}

	day := time.Now().UTC()
	if c.Date != "" {
		day, err = time.Parse("2006-01-02", c.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", c.Date)
		}
	}

	v, ok := pick.Daily(tr, day)
	if !ok {
		return fmt.Errorf("translation %s has no verses", tr.Name)
	}

	if c.JSON {
		return printJSON(v)
	}
	fmt.Printf("verse of the day for %s (%s)\n", day.Format("2006-01-02"), tr.Name)
	printVerse(v)
	return nil
}

// RandomCmd prints a uniformly random verse.
type RandomCmd struct {
	Translation string `arg:"" optional:"" help:"Translation name (default: first loaded)"`
	Testament   string `help:"Restrict to a testament (old or new)"`
	JSON        bool   `help:"Print the verse as JSON"`
}

func (c *RandomCmd) Run() error {
	cat, _, err := requireCatalog(context.Background())
	if err != nil {
		return err
	}
	tr, err := pickTranslation(cat, c.Translation)
	if err != nil {
		return err
	}
	testament, err := validation.Testament(c.Testament)
	if err != nil {
		return err
	}

	v, ok := pick.Random(tr, testament)
	if !ok {
		if testament != "" {
			return fmt.Errorf("translation %s has no verses in the %s testament", tr.Name, strings.ToLower(string(testament)))
		}
		return fmt.Errorf("translation %s has no verses", tr.Name)
	}

	if c.JSON {
		return printJSON(v)
	}
	printVerse(v)
	return nil
}

// BooksCmd lists the canonical book catalog, or the books stored in a
// loaded translation.
type BooksCmd struct {
	Translation string `help:"List the book names stored in this translation"`
	Testament   string `help:"Restrict to a testament (old or new)"`
	JSON        bool   `help:"Print books as JSON"`
}

func (c *BooksCmd) Run() error {
	testament, err := validation.Testament(c.Testament)
	if err != nil {
		return err
	}

	if c.Translation != "" {
		cat, _, err := requireCatalog(context.Background())
		if err != nil {
			return err
		}
		tr, err := findTranslation(cat, c.Translation)
		if err != nil {
			return err
		}
		names := tr.BookNames()
		if testament != "" {
			kept := names[:0]
			for _, name := range names {
				if scripture.InTestament(name, testament) {
					kept = append(kept, name)
				}
			}
			names = kept
		}
		if c.JSON {
			return printJSON(names)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	books := scripture.Books()
	if testament != "" {
		books = scripture.BooksByTestament(testament)
	}
	if c.JSON {
		return printJSON(books)
	}
	for _, b := range books {
		fmt.Printf("%-15s %-6s %-3s %d chapters\n", b.Name, b.Abbreviation, b.Testament, b.Chapters)
	}
	return nil
}

// TranslationsCmd lists the loaded translations with their sizes.
type TranslationsCmd struct {
	JSON bool `help:"Print translations as JSON"`
}

// translationInfo is one row of the translations listing.
type translationInfo struct {
	Name   string `json:"name"`
	Books  int    `json:"books"`
	Verses int    `json:"verses"`
}

func (c *TranslationsCmd) Run() error {
	cat, _, err := requireCatalog(context.Background())
	if err != nil {
		return err
	}

	infos := make([]translationInfo, 0, cat.Len())
	for _, name := range cat.Names() {
		tr, ok := cat.Get(name)
		if !ok {
			continue
		}
		infos = append(infos, translationInfo{Name: name, Books: tr.Books(), Verses: tr.TotalVerses()})
	}

	if c.JSON {
		return printJSON(struct {
			Translations []translationInfo `json:"translations"`
			Totals       catalog.Stats     `json:"totals"`
		}{infos, cat.Stats()})
	}

	for _, info := range infos {
		fmt.Printf("%s: %d books, %d verses\n", info.Name, info.Books, info.Verses)
	}
	st := cat.Stats()
	fmt.Printf("total: %d translations, %d verses\n", st.Translations, st.Verses)
	return nil
}

// ExportCmd writes the loaded catalog to a SQLite snapshot file.
type ExportCmd struct {
	Out string `required:"" help:"Output snapshot path" type:"path"`
}

func (c *ExportCmd) Run() error {
	ctx := context.Background()
	cat, _, err := requireCatalog(ctx)
	if err != nil {
		return err
	}
	if err := snapshot.Write(ctx, c.Out, cat); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	st := cat.Stats()
	fmt.Printf("exported %d translations (%d verses) to %s\n", st.Translations, st.Verses, c.Out)
	return nil
}

// VersionCmd prints the cedar version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("cedar version %s\n", version)
	return nil
}

// Helper functions

// profileRegistry returns the active profile registry: the built-in
// profiles, or the YAML registry named by --profiles.
func profileRegistry() (catalog.Registry, error) {
	if CLI.Profiles == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadRegistry(CLI.Profiles)
}

// buildCatalog loads the texts directory through the active registry.
func buildCatalog(ctx context.Context) (*catalog.Catalog, *catalog.Report, error) {
	reg, err := profileRegistry()
	if err != nil {
		return nil, nil, err
	}
	cat, rep := catalog.Load(ctx, CLI.Texts, reg)
	return cat, rep, nil
}

// requireCatalog is buildCatalog for commands that cannot work with an
// empty catalog.
func requireCatalog(ctx context.Context) (*catalog.Catalog, *catalog.Report, error) {
	cat, rep, err := buildCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	if cat.Len() == 0 {
		if len(rep.Warnings) > 0 {
			return nil, nil, fmt.Errorf("no translations loaded from %s: %s", CLI.Texts, rep.Warnings[0])
		}
		return nil, nil, fmt.Errorf("no translations loaded from %s", CLI.Texts)
	}
	return cat, rep, nil
}

// logReport emits the load report through the structured logger.
func logReport(rep *catalog.Report) {
	for _, fr := range rep.Files {
		if fr.Loaded() {
			logging.TranslationLoaded(fr.Translation, fr.File, fr.Books, fr.Verses,
				"hash", fr.Hash, "skipped_lines", fr.SkippedLines)
		} else {
			logging.LoadSkipped(fr.File, fr.Skipped)
		}
	}
	for _, w := range rep.Warnings {
		logging.Warn("Load warning", "detail", w)
	}
}

// findTranslation resolves a translation the user named explicitly.
func findTranslation(cat *catalog.Catalog, name string) (*bible.Translation, error) {
	clean, err := validation.TranslationName(name)
	if err != nil {
		return nil, err
	}
	tr, ok := cat.Get(clean)
	if !ok {
		return nil, fmt.Errorf("translation %q is not loaded (loaded: %s)", name, strings.Join(cat.Names(), ", "))
	}
	return tr, nil
}

// pickTranslation resolves an optional translation argument, falling
// back to the first loaded translation.
func pickTranslation(cat *catalog.Catalog, name string) (*bible.Translation, error) {
	if name == "" {
		tr, _ := cat.Default("")
		return tr, nil
	}
	return findTranslation(cat, name)
}

func printVerse(v scripture.Verse) {
	fmt.Printf("%s  %s\n", v.Reference(), v.Text)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cedar"),
		kong.Description("Cedar Bible - Scripture ingestion and query engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level, _ := logging.ParseLevel(CLI.LogLevel)
	format, _ := logging.ParseFormat(CLI.LogFormat)
	logging.InitLogger(level, format)

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
