package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FocuswithJustin/CedarBible/core/bible"
	"github.com/FocuswithJustin/CedarBible/core/catalog"
)

func testCatalog() *catalog.Catalog {
	kjv := bible.NewTranslation("KJV")
	kjv.Insert("John", 3, 16, "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.")
	kjv.Insert("John", 3, 17, "For God sent not his Son into the world to condemn the world; but that the world through him might be saved.")
	kjv.Insert("Genesis", 1, 1, "In the beginning God created the heaven and the earth.")

	elb := bible.NewTranslation("Elberfelder1905")
	elb.Insert("1. Mose", 1, 1, "Im Anfang schuf Gott die Himmel und die Erde.")

	cat := catalog.New()
	cat.Add(kjv)
	cat.Add(elb)
	return cat
}

func newTestServer() *Server {
	cfg := DefaultConfig()
	cfg.DefaultTranslation = "KJV"
	return New(cfg, testCatalog())
}

// do routes one request through the server's mux and returns the
// recorded response.
func do(s *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.NewDecoder(w.Result().Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func dataMap(t *testing.T, resp APIResponse) map[string]interface{} {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected data to be a map, got %T", resp.Data)
	}
	return data
}

func dataList(t *testing.T, resp APIResponse) []interface{} {
	t.Helper()
	data, ok := resp.Data.([]interface{})
	if !ok {
		t.Fatalf("expected data to be an array, got %T", resp.Data)
	}
	return data
}

func wantError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Errorf("expected status %d, got %d", status, w.Code)
	}
	resp := decode(t, w)
	if resp.Success {
		t.Error("expected success to be false")
	}
	if resp.Error == nil {
		t.Fatal("expected error to be present")
	}
	if resp.Error.Code != code {
		t.Errorf("expected error code %s, got %s", code, resp.Error.Code)
	}
}

func TestHandleRoot(t *testing.T) {
	s := newTestServer()
	w := do(s, http.MethodGet, "/")

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	resp := decode(t, w)
	if !resp.Success {
		t.Error("expected success to be true")
	}

	data := dataMap(t, resp)
	if data["name"] != appName {
		t.Errorf("expected name %q, got %v", appName, data["name"])
	}
	if data["version"] != appVersion {
		t.Errorf("expected version %q, got %v", appVersion, data["version"])
	}

	endpoints, ok := data["endpoints"].([]interface{})
	if !ok || len(endpoints) == 0 {
		t.Error("expected a non-empty endpoint list")
	}
}

func TestHandleRootNotFound(t *testing.T) {
	s := newTestServer()
	w := do(s, http.MethodGet, "/nonexistent")
	wantError(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestUnknownAPIPath(t *testing.T) {
	s := newTestServer()
	w := do(s, http.MethodGet, "/api/v1/nope")
	wantError(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	w := do(s, http.MethodGet, "/health")

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	data := dataMap(t, decode(t, w))
	if data["status"] != "UP" {
		t.Errorf("expected status UP, got %v", data["status"])
	}
	if data["application"] != appName {
		t.Errorf("expected application %q, got %v", appName, data["application"])
	}
	if data["version"] != appVersion {
		t.Errorf("expected version %q, got %v", appVersion, data["version"])
	}
	if data["translations"] != float64(2) {
		t.Errorf("expected 2 translations, got %v", data["translations"])
	}
}

func TestHandleHealthMethodNotAllowed(t *testing.T) {
	s := newTestServer()
	w := do(s, http.MethodPost, "/health")
	wantError(t, w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED")
}

func TestHandleInfo(t *testing.T) {
	s := newTestServer()
	w := do(s, http.MethodGet, "/info")

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	data := dataMap(t, decode(t, w))
	if data["name"] != appName {
		t.Errorf("expected name %q, got %v", appName, data["name"])
	}

	storage, ok := data["storage"].(map[string]interface{})
	if !ok {
		t.Fatal("expected storage info map")
	}
	if storage["driver_name"] == "" {
		t.Error("expected storage driver name to be set")
	}

	endpoints, ok := data["endpoints"].(map[string]interface{})
	if !ok {
		t.Fatal("expected endpoints map")
	}
	if endpoints["api"] != "/api/v1" {
		t.Errorf("expected api endpoint /api/v1, got %v", endpoints["api"])
	}
}

func TestHandleBooks(t *testing.T) {
	s := newTestServer()
	w := do(s, http.MethodGet, "/api/v1/books")

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	resp := decode(t, w)
	books := dataList(t, resp)
	if len(books) != 66 {
		t.Fatalf("expected 66 books, got %d", len(books))
	}
	if resp.Meta == nil || resp.Meta.Total != 66 {
		t.Error("expected meta total 66")
	}

	first := books[0].(map[string]interface{})
	if first["name"] != "Genesis" {
		t.Errorf("expected first book Genesis, got %v", first["name"])
	}
	last := books[65].(map[string]interface{})
	if last["name"] != "Revelation" {
		t.Errorf("expected last book Revelation, got %v", last["name"])
	}
}

func TestHandleBooksByTestament(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		testament string
		want      int
	}{
		{"old", 39},
		{"OLD", 39},
		{"new", 27},
		{"NEW", 27},
	}

	for _, tt := range tests {
		t.Run(tt.testament, func(t *testing.T) {
			w := do(s, http.MethodGet, "/api/v1/books/"+tt.testament)
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			books := dataList(t, decode(t, w))
			if len(books) != tt.want {
				t.Errorf("expected %d books, got %d", tt.want, len(books))
			}
		})
	}

	t.Run("invalid", func(t *testing.T) {
		w := do(s, http.MethodGet, "/api/v1/books/middle")
		wantError(t, w, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestHandleBookInfo(t *testing.T) {
	s := newTestServer()

	w := do(s, http.MethodGet, "/api/v1/books/info/John")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	data := dataMap(t, decode(t, w))
	if data["name"] != "John" {
		t.Errorf("expected name John, got %v", data["name"])
	}
	if data["testament"] != "NEW" {
		t.Errorf("expected testament NEW, got %v", data["testament"])
	}
	if data["chapters"] != float64(21) {
		t.Errorf("expected 21 chapters, got %v", data["chapters"])
	}

	w = do(s, http.MethodGet, "/api/v1/books/info/Gandalf")
	wantError(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestHandleBookInfoByAbbreviation(t *testing.T) {
	s := newTestServer()
	w := do(s, http.MethodGet, "/api/v1/books/info/joh")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	data := dataMap(t, decode(t, w))
	if data["name"] != "John" {
		t.Errorf("expected name John, got %v", data["name"])
	}
}

func TestHandleAvailableBooks(t *testing.T) {
	s := newTestServer()

	w := do(s, http.MethodGet, "/api/v1/books/available/KJV")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	books := dataList(t, decode(t, w))
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0] != "John" || books[1] != "Genesis" {
		t.Errorf("expected insertion order [John Genesis], got %v", books)
	}

	w = do(s, http.MethodGet, "/api/v1/books/available/Vulgate")
	wantError(t, w, http.StatusNotFound, "NOT_FOUND")

	w = do(s, http.MethodGet, "/api/v1/books/available/1905er")
	wantError(t, w, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestHandleVerse(t *testing.T) {
	s := newTestServer()

	w := do(s, http.MethodGet, "/api/v1/verse/John/3/16")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	data := dataMap(t, decode(t, w))
	if data["book"] != "John" {
		t.Errorf("expected book John, got %v", data["book"])
	}
	if data["chapter"] != float64(3) || data["verse"] != float64(16) {
		t.Errorf("expected John 3:16, got %v %v", data["chapter"], data["verse"])
	}
	if data["translation"] != "KJV" {
		t.Errorf("expected translation KJV, got %v", data["translation"])
	}
	if data["text"] == "" {
		t.Error("expected verse text to be set")
	}
}

func TestHandleVerseCaseInsensitiveBook(t *testing.T) {
	s := newTestServer()
	w := do(s, http.MethodGet, "/api/v1/verse/john/3/16")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	data := dataMap(t, decode(t, w))
	if data["book"] != "John" {
		t.Errorf("expected stored book name John, got %v", data["book"])
	}
}

func TestHandleVerseGermanTranslation(t *testing.T) {
	s := newTestServer()
	w := do(s, http.MethodGet, "/api/v1/verse/1.%20Mose/1/1?translation=Elberfelder1905")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	data := dataMap(t, decode(t, w))
	if data["book"] != "1. Mose" {
		t.Errorf("expected book '1. Mose', got %v", data["book"])
	}
	if data["text"] != "Im Anfang schuf Gott die Himmel und die Erde." {
		t.Errorf("unexpected verse text: %v", data["text"])
	}
}

func TestHandleVerseErrors(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"unknown book", "/api/v1/verse/Atlantis/1/1", http.StatusNotFound, "NOT_FOUND"},
		{"missing chapter", "/api/v1/verse/John/99/1", http.StatusNotFound, "NOT_FOUND"},
		{"missing verse", "/api/v1/verse/John/3/99", http.StatusNotFound, "NOT_FOUND"},
		{"non-numeric chapter", "/api/v1/verse/John/three/16", http.StatusBadRequest, "VALIDATION_FAILED"},
		{"non-numeric verse", "/api/v1/verse/John/3/sixteen", http.StatusBadRequest, "VALIDATION_FAILED"},
		{"zero chapter", "/api/v1/verse/John/0/16", http.StatusBadRequest, "VALIDATION_FAILED"},
		{"unknown translation", "/api/v1/verse/John/3/16?translation=Vulgate", http.StatusNotFound, "NOT_FOUND"},
		{"invalid translation name", "/api/v1/verse/John/3/16?translation=no%20such", http.StatusBadRequest, "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(s, http.MethodGet, tt.target)
			wantError(t, w, tt.status, tt.code)
		})
	}
}

func TestHandleRandomVerse(t *testing.T) {
	s := newTestServer()

	w := do(s, http.MethodGet, "/api/v1/verse/random")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	data := dataMap(t, decode(t, w))
	if data["text"] == "" {
		t.Error("expected verse text to be set")
	}

	// The only Old Testament book in the fixture is Genesis.
	for i := 0; i < 10; i++ {
		w = do(s, http.MethodGet, "/api/v1/verse/random?testament=OLD")
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		data = dataMap(t, decode(t, w))
		if data["book"] != "Genesis" {
			t.Errorf("expected Genesis for OLD testament, got %v", data["book"])
		}
	}

	w = do(s, http.MethodGet, "/api/v1/verse/random?testament=sideways")
	wantError(t, w, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestHandleRandomVerseEmptySet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultTranslation = "Empty"
	cat := catalog.New()
	cat.Add(bible.NewTranslation("Empty"))
	s := New(cfg, cat)

	w := do(s, http.MethodGet, "/api/v1/verse/random")
	wantError(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestHandleDailyVerse(t *testing.T) {
	s := newTestServer()

	w := do(s, http.MethodGet, "/api/v1/verse/today")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	data := dataMap(t, decode(t, w))
	if data["date"] != time.Now().UTC().Format(dateLayout) {
		t.Errorf("expected today's UTC date, got %v", data["date"])
	}
	verse, ok := data["verse"].(map[string]interface{})
	if !ok {
		t.Fatal("expected verse to be a map")
	}
	if verse["text"] == "" {
		t.Error("expected verse text to be set")
	}

	// Deterministic: a second request returns the identical verse.
	w2 := do(s, http.MethodGet, "/api/v1/verse/today")
	data2 := dataMap(t, decode(t, w2))
	verse2 := data2["verse"].(map[string]interface{})
	if verse["book"] != verse2["book"] || verse["chapter"] != verse2["chapter"] || verse["verse"] != verse2["verse"] {
		t.Errorf("daily verse changed between calls: %v vs %v", verse, verse2)
	}
}

func TestHandleChapter(t *testing.T) {
	s := newTestServer()

	w := do(s, http.MethodGet, "/api/v1/chapter/John/3")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	data := dataMap(t, decode(t, w))
	if data["book"] != "John" || data["chapter"] != float64(3) {
		t.Errorf("expected John 3, got %v %v", data["book"], data["chapter"])
	}
	if data["verse_count"] != float64(2) {
		t.Errorf("expected verse_count 2, got %v", data["verse_count"])
	}

	verses, ok := data["verses"].([]interface{})
	if !ok || len(verses) != 2 {
		t.Fatalf("expected 2 verses, got %v", data["verses"])
	}
	first := verses[0].(map[string]interface{})
	second := verses[1].(map[string]interface{})
	if first["verse"] != float64(16) || second["verse"] != float64(17) {
		t.Errorf("expected ascending verses 16, 17, got %v, %v", first["verse"], second["verse"])
	}

	w = do(s, http.MethodGet, "/api/v1/chapter/John/99")
	wantError(t, w, http.StatusNotFound, "NOT_FOUND")

	w = do(s, http.MethodGet, "/api/v1/chapter/John/zero")
	wantError(t, w, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestHandleSearch(t *testing.T) {
	s := newTestServer()

	w := do(s, http.MethodGet, "/api/v1/search?q=love")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	resp := decode(t, w)
	data := dataMap(t, resp)
	if data["query"] != "love" {
		t.Errorf("expected query love, got %v", data["query"])
	}
	if data["translation"] != "KJV" {
		t.Errorf("expected translation KJV, got %v", data["translation"])
	}
	if data["total_count"] != float64(1) {
		t.Errorf("expected total_count 1, got %v", data["total_count"])
	}
	if resp.Meta == nil || resp.Meta.Total != 1 {
		t.Error("expected meta total 1")
	}

	results, ok := data["results"].([]interface{})
	if !ok || len(results) != 1 {
		t.Fatalf("expected 1 result, got %v", data["results"])
	}
	result := results[0].(map[string]interface{})
	verse := result["verse"].(map[string]interface{})
	if verse["book"] != "John" || verse["verse"] != float64(16) {
		t.Errorf("expected John 3:16, got %v", verse)
	}
	if result["relevance"] == float64(0) {
		t.Error("expected a non-zero relevance score")
	}
}

func TestHandleSearchPagination(t *testing.T) {
	s := newTestServer()

	w := do(s, http.MethodGet, "/api/v1/search?q=world&per_page=1&page=2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	data := dataMap(t, decode(t, w))
	if data["total_count"] != float64(2) {
		t.Errorf("expected total_count 2, got %v", data["total_count"])
	}
	if data["has_prev"] != true {
		t.Error("expected has_prev true on page 2")
	}
	if data["has_next"] != false {
		t.Error("expected has_next false on last page")
	}
	results := data["results"].([]interface{})
	if len(results) != 1 {
		t.Fatalf("expected 1 result on page 2, got %d", len(results))
	}
}

func TestHandleSearchCaching(t *testing.T) {
	s := newTestServer()

	do(s, http.MethodGet, "/api/v1/search?q=love")
	if s.searchCache.Len() != 1 {
		t.Fatalf("expected 1 cached response, got %d", s.searchCache.Len())
	}

	do(s, http.MethodGet, "/api/v1/search?q=love")
	if hits := s.searchCache.Stats().Hits; hits != 1 {
		t.Errorf("expected 1 cache hit, got %d", hits)
	}

	// A different page is a different cache entry.
	do(s, http.MethodGet, "/api/v1/search?q=love&page=2")
	if s.searchCache.Len() != 2 {
		t.Errorf("expected 2 cached responses, got %d", s.searchCache.Len())
	}
}

func TestHandleSearchErrors(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"missing query", "/api/v1/search", http.StatusBadRequest, "VALIDATION_FAILED"},
		{"short query", "/api/v1/search?q=ab", http.StatusBadRequest, "VALIDATION_FAILED"},
		{"bad page", "/api/v1/search?q=love&page=zero", http.StatusBadRequest, "VALIDATION_FAILED"},
		{"zero page", "/api/v1/search?q=love&page=0", http.StatusBadRequest, "VALIDATION_FAILED"},
		{"per_page too large", "/api/v1/search?q=love&per_page=1000", http.StatusBadRequest, "VALIDATION_FAILED"},
		{"bad testament", "/api/v1/search?q=love&testament=both", http.StatusBadRequest, "VALIDATION_FAILED"},
		{"unknown translation", "/api/v1/search?q=love&translation=Vulgate", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(s, http.MethodGet, tt.target)
			wantError(t, w, tt.status, tt.code)
		})
	}
}

func TestHandleSearchReference(t *testing.T) {
	s := newTestServer()

	w := do(s, http.MethodGet, "/api/v1/search/reference?ref=John%203:16-17")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	verses := dataList(t, decode(t, w))
	if len(verses) != 2 {
		t.Fatalf("expected 2 verses, got %d", len(verses))
	}
	first := verses[0].(map[string]interface{})
	if first["verse"] != float64(16) {
		t.Errorf("expected range to start at verse 16, got %v", first["verse"])
	}
}

func TestHandleSearchReferenceUnparseable(t *testing.T) {
	s := newTestServer()

	// A book-and-chapter reference without a verse is not an error,
	// just an empty result.
	w := do(s, http.MethodGet, "/api/v1/search/reference?ref=John%203")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	verses := dataList(t, decode(t, w))
	if len(verses) != 0 {
		t.Errorf("expected empty result, got %d verses", len(verses))
	}

	w = do(s, http.MethodGet, "/api/v1/search/reference")
	wantError(t, w, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestHandleTranslations(t *testing.T) {
	s := newTestServer()

	w := do(s, http.MethodGet, "/api/v1/translations")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	resp := decode(t, w)
	translations := dataList(t, resp)
	if len(translations) != 2 {
		t.Fatalf("expected 2 translations, got %d", len(translations))
	}
	if resp.Meta == nil || resp.Meta.Total != 2 {
		t.Error("expected meta total 2")
	}

	first := translations[0].(map[string]interface{})
	if first["name"] != "KJV" {
		t.Errorf("expected first translation KJV, got %v", first["name"])
	}
	if first["books"] != float64(2) || first["verses"] != float64(3) {
		t.Errorf("expected KJV with 2 books and 3 verses, got %v", first)
	}
}

func TestHandleStats(t *testing.T) {
	s := newTestServer()

	w := do(s, http.MethodGet, "/api/v1/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	data := dataMap(t, decode(t, w))
	if data["translations"] != float64(2) {
		t.Errorf("expected 2 translations, got %v", data["translations"])
	}
	if data["books"] != float64(3) {
		t.Errorf("expected 3 books, got %v", data["books"])
	}
	if data["verses"] != float64(4) {
		t.Errorf("expected 4 verses, got %v", data["verses"])
	}
	if data["canon_books"] != float64(66) {
		t.Errorf("expected 66 canon books, got %v", data["canon_books"])
	}

	byTranslation, ok := data["verses_by_translation"].(map[string]interface{})
	if !ok {
		t.Fatal("expected verses_by_translation map")
	}
	if byTranslation["KJV"] != float64(3) || byTranslation["Elberfelder1905"] != float64(1) {
		t.Errorf("unexpected per-translation counts: %v", byTranslation)
	}
}

func TestTranslationFallback(t *testing.T) {
	s := newTestServer()

	// An explicitly empty translation parameter falls back to the default.
	w := do(s, http.MethodGet, "/api/v1/verse/John/3/16?translation=")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	data := dataMap(t, decode(t, w))
	if data["translation"] != "KJV" {
		t.Errorf("expected default translation KJV, got %v", data["translation"])
	}
}

func TestTranslationFallbackEmptyCatalog(t *testing.T) {
	s := New(DefaultConfig(), catalog.New())
	w := do(s, http.MethodGet, "/api/v1/verse/John/3/16")
	wantError(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestDailyVerseCaching(t *testing.T) {
	s := newTestServer()
	tr, _ := s.catalog.Get("KJV")

	now := time.Now()
	v1, ok := s.dailyVerse(tr, now)
	if !ok {
		t.Fatal("expected a daily verse")
	}
	if s.daily.Len() != 1 {
		t.Fatalf("expected 1 cached daily verse, got %d", s.daily.Len())
	}

	v2, ok := s.dailyVerse(tr, now)
	if !ok {
		t.Fatal("expected a cached daily verse")
	}
	if v1 != v2 {
		t.Errorf("cached daily verse differs: %v vs %v", v1, v2)
	}
}
