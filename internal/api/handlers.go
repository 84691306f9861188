package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/FocuswithJustin/CedarBible/core/bible"
	"github.com/FocuswithJustin/CedarBible/core/cache"
	"github.com/FocuswithJustin/CedarBible/core/errors"
	"github.com/FocuswithJustin/CedarBible/core/pick"
	"github.com/FocuswithJustin/CedarBible/core/scripture"
	"github.com/FocuswithJustin/CedarBible/core/search"
	"github.com/FocuswithJustin/CedarBible/core/sqlite"
	"github.com/FocuswithJustin/CedarBible/internal/validation"
)

const (
	appName    = "Cedar Bible API"
	appVersion = "1.0.0"
)

// dateLayout renders UTC dates the way daily-verse keys and events do.
const dateLayout = "2006-01-02"

// APIResponse is the standard API response wrapper.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Total     int    `json:"total,omitempty"`
	Timestamp string `json:"timestamp"`
}

// HealthInfo is the health check response.
type HealthInfo struct {
	Status       string `json:"status"`
	Application  string `json:"application"`
	Version      string `json:"version"`
	Uptime       string `json:"uptime"`
	Translations int    `json:"translations"`
}

// TranslationInfo describes one loaded translation.
type TranslationInfo struct {
	Name   string `json:"name"`
	Books  int    `json:"books"`
	Verses int    `json:"verses"`
}

// ChapterInfo is a complete chapter with its verses in ascending order.
type ChapterInfo struct {
	Translation string            `json:"translation"`
	Book        string            `json:"book"`
	Chapter     int               `json:"chapter"`
	Verses      []scripture.Verse `json:"verses"`
	VerseCount  int               `json:"verse_count"`
}

// DailyVerse is the verse of the day with the UTC date that selected it.
type DailyVerse struct {
	Date  string          `json:"date"`
	Verse scripture.Verse `json:"verse"`
}

// StatsInfo reports corpus totals across all loaded translations.
type StatsInfo struct {
	Translations        int            `json:"translations"`
	Books               int            `json:"books"`
	Verses              int            `json:"verses"`
	VersesByTranslation map[string]int `json:"verses_by_translation"`
	CanonBooks          int            `json:"canon_books"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found")
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{
		"name":    appName,
		"version": appVersion,
		"endpoints": []string{
			"GET /health",
			"GET /info",
			"GET /api/v1/books",
			"GET /api/v1/books/{testament}",
			"GET /api/v1/books/info/{name}",
			"GET /api/v1/books/available/{translation}",
			"GET /api/v1/verse/{book}/{chapter}/{verse}",
			"GET /api/v1/verse/random",
			"GET /api/v1/verse/today",
			"GET /api/v1/chapter/{book}/{chapter}",
			"GET /api/v1/search",
			"GET /api/v1/search/reference",
			"GET /api/v1/translations",
			"GET /api/v1/stats",
			"WS /api/v1/ws",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	respond(w, http.StatusOK, HealthInfo{
		Status:       "UP",
		Application:  appName,
		Version:      appVersion,
		Uptime:       time.Since(s.started).String(),
		Translations: s.catalog.Len(),
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{
		"name":        appName,
		"version":     appVersion,
		"description": "Scripture ingestion and query service",
		"storage":     sqlite.GetInfo(),
		"endpoints": map[string]string{
			"health":    "/health",
			"api":       "/api/v1",
			"websocket": "/api/v1/ws",
		},
	})
}

func (s *Server) handleBooks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	books := scripture.Books()
	respondList(w, http.StatusOK, books, len(books))
}

func (s *Server) handleBooksByTestament(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	testament, err := validation.Testament(r.PathValue("testament"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	books := scripture.BooksByTestament(testament)
	respondList(w, http.StatusOK, books, len(books))
}

func (s *Server) handleBookInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	name := validation.Clean(r.PathValue("name"))
	book, ok := scripture.BookByName(name)
	if !ok {
		respondDomainError(w, errors.NewNotFound("book", name))
		return
	}

	respond(w, http.StatusOK, book)
}

func (s *Server) handleAvailableBooks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	name, err := validation.TranslationName(r.PathValue("translation"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	tr, ok := s.catalog.Get(name)
	if !ok {
		respondDomainError(w, errors.NewNotFound("translation", name))
		return
	}

	books := tr.BookNames()
	respondList(w, http.StatusOK, books, len(books))
}

func (s *Server) handleVerse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	chapter, err := validation.PositiveInt("chapter", r.PathValue("chapter"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	verse, err := validation.PositiveInt("verse", r.PathValue("verse"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	tr, err := s.translation(r)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	book, ok := tr.ResolveBook(validation.Clean(r.PathValue("book")))
	if !ok {
		respondDomainError(w, errors.NewNotFound("book", r.PathValue("book")))
		return
	}
	v, ok := tr.Verse(book, chapter, verse)
	if !ok {
		ref := fmt.Sprintf("%s %d:%d (%s)", book, chapter, verse, tr.Name)
		respondDomainError(w, errors.NewNotFound("verse", ref))
		return
	}

	respond(w, http.StatusOK, v)
}

func (s *Server) handleRandomVerse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	testament, err := validation.Testament(r.URL.Query().Get("testament"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	tr, err := s.translation(r)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	v, ok := pick.Random(tr, testament)
	if !ok {
		respondDomainError(w, errors.NewNotFound("verse", "random pick over empty set"))
		return
	}

	respond(w, http.StatusOK, v)
}

func (s *Server) handleDailyVerse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	tr, err := s.translation(r)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	now := time.Now()
	v, ok := s.dailyVerse(tr, now)
	if !ok {
		respondDomainError(w, errors.NewNotFound("verse of the day", tr.Name))
		return
	}

	respond(w, http.StatusOK, DailyVerse{
		Date:  now.UTC().Format(dateLayout),
		Verse: v,
	})
}

func (s *Server) handleChapter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	chapter, err := validation.PositiveInt("chapter", r.PathValue("chapter"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	tr, err := s.translation(r)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	book, ok := tr.ResolveBook(validation.Clean(r.PathValue("book")))
	if !ok {
		respondDomainError(w, errors.NewNotFound("book", r.PathValue("book")))
		return
	}
	verses := tr.ChapterVerses(book, chapter)
	if len(verses) == 0 {
		ref := fmt.Sprintf("%s %d (%s)", book, chapter, tr.Name)
		respondDomainError(w, errors.NewNotFound("chapter", ref))
		return
	}

	respond(w, http.StatusOK, ChapterInfo{
		Translation: tr.Name,
		Book:        book,
		Chapter:     chapter,
		Verses:      verses,
		VerseCount:  len(verses),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	q := r.URL.Query()
	query, err := validation.Query(q.Get("q"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	page, perPage, err := validation.Pagination(q.Get("page"), q.Get("per_page"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	testament, err := validation.Testament(q.Get("testament"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	tr, err := s.translation(r)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	opts := search.Options{
		Book:      validation.Clean(q.Get("book")),
		Testament: testament,
		Page:      page,
		PerPage:   perPage,
	}

	key := cache.SearchKey(tr.Name, query, opts)
	if resp, ok := s.searchCache.Get(key); ok {
		respondList(w, http.StatusOK, resp, resp.TotalCount)
		return
	}

	resp, err := search.New(tr).Search(query, opts)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	s.searchCache.Put(key, resp)

	respondList(w, http.StatusOK, resp, resp.TotalCount)
}

func (s *Server) handleSearchReference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	ref := validation.Clean(r.URL.Query().Get("ref"))
	if ref == "" {
		respondDomainError(w, errors.NewValidation("ref", "reference is required"))
		return
	}
	tr, err := s.translation(r)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	// An unparseable reference is an empty result, not an error.
	verses := search.New(tr).ByReference(ref)
	if verses == nil {
		verses = []scripture.Verse{}
	}

	respondList(w, http.StatusOK, verses, len(verses))
}

func (s *Server) handleTranslations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	names := s.catalog.Names()
	infos := make([]TranslationInfo, 0, len(names))
	for _, name := range names {
		tr, ok := s.catalog.Get(name)
		if !ok {
			continue
		}
		infos = append(infos, TranslationInfo{
			Name:   tr.Name,
			Books:  tr.Books(),
			Verses: tr.TotalVerses(),
		})
	}

	respondList(w, http.StatusOK, infos, len(infos))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	stats := s.catalog.Stats()
	byTranslation := make(map[string]int, s.catalog.Len())
	for _, name := range s.catalog.Names() {
		if tr, ok := s.catalog.Get(name); ok {
			byTranslation[name] = tr.TotalVerses()
		}
	}

	respond(w, http.StatusOK, StatsInfo{
		Translations:        stats.Translations,
		Books:               stats.Books,
		Verses:              stats.Verses,
		VersesByTranslation: byTranslation,
		CanonBooks:          len(scripture.Books()),
	})
}

// Helper functions

// translation resolves the translation named by the request's
// ?translation= parameter, falling back to the configured default.
func (s *Server) translation(r *http.Request) (*bible.Translation, error) {
	name, err := validation.TranslationName(r.URL.Query().Get("translation"))
	if err != nil {
		return nil, err
	}
	if name != "" {
		tr, ok := s.catalog.Get(name)
		if !ok {
			return nil, errors.NewNotFound("translation", name)
		}
		return tr, nil
	}

	tr, ok := s.catalog.Default(s.cfg.DefaultTranslation)
	if !ok {
		name = s.cfg.DefaultTranslation
		if name == "" {
			name = "default"
		}
		return nil, errors.NewNotFound("translation", name)
	}
	return tr, nil
}

// dailyVerse returns the verse of the day, cached per translation and
// UTC date.
func (s *Server) dailyVerse(tr *bible.Translation, now time.Time) (scripture.Verse, bool) {
	key := tr.Name + "|" + now.UTC().Format(dateLayout)
	if v, ok := s.daily.Get(key); ok {
		return v, true
	}

	v, ok := pick.Daily(tr, now)
	if !ok {
		return scripture.Verse{}, false
	}
	s.daily.Set(key, v)
	return v, true
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func respondList(w http.ResponseWriter, status int, data interface{}, total int) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Total:     total,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	response := APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// respondDomainError maps domain errors to their HTTP status and code.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errors.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, errors.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
