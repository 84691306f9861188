// Package api provides the Cedar Bible REST API server.
package api

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"github.com/FocuswithJustin/CedarBible/core/cache"
	"github.com/FocuswithJustin/CedarBible/core/catalog"
	"github.com/FocuswithJustin/CedarBible/core/scripture"
	"github.com/FocuswithJustin/CedarBible/internal/logging"
	"github.com/FocuswithJustin/CedarBible/internal/server"
)

// dailyPollInterval is how often the daily-verse watcher checks whether
// the UTC date rolled over.
const dailyPollInterval = time.Minute

// dailyTTL bounds how long cached daily verses are kept. The cache key
// carries the date, so the TTL only limits memory, not correctness.
const dailyTTL = 24 * time.Hour

// defaultBurstSize is the rate limiter burst capacity when the
// configuration leaves it unset.
const defaultBurstSize = 10

// Server serves the REST API over one loaded catalog. The catalog is
// frozen after load, so handlers read it without locking.
type Server struct {
	cfg         Config
	catalog     *catalog.Catalog
	searchCache *cache.SearchCache
	daily       *cache.TTLCache[string, scripture.Verse]
	hub         *Hub
	limiter     *RateLimiter
	upgrader    websocket.Upgrader
	started     time.Time
}

// New creates a server over the given catalog. The hub's event loop and
// the daily-verse watcher start with Start.
func New(cfg Config, cat *catalog.Catalog) *Server {
	searchCache := cache.NewDefaultSearchCache()
	if cfg.SearchCacheSize > 0 {
		config := cache.DefaultConfig()
		config.MaxSize = cfg.SearchCacheSize
		searchCache = cache.NewSearchCache(config)
	}

	s := &Server{
		cfg:         cfg,
		catalog:     cat,
		searchCache: searchCache,
		daily:       cache.NewTTL[string, scripture.Verse](dailyTTL),
		hub:         NewHub(),
		started:     time.Now(),
	}
	if cfg.RateLimitRequests > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = defaultBurstSize
		}
		s.limiter = NewRateLimiter(RateLimiterConfig{
			RequestsPerMinute: cfg.RateLimitRequests,
			BurstSize:         burst,
		})
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if originAllowed(cfg.AllowedOrigins, origin) {
				return true
			}
			logging.SecurityEvent("origin_rejected", "websocket", "origin", origin)
			return false
		},
	}
	return s
}

// originAllowed reports whether the Origin header passes the allow list.
// Non-browser clients send no Origin header and are always allowed.
func originAllowed(allowed []string, origin string) bool {
	if origin == "" || len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if origin == a {
			return true
		}
	}
	return false
}

// Start validates the configuration, starts the WebSocket hub and the
// daily-verse watcher, and serves until the listener fails.
func (s *Server) Start() error {
	// Validate TLS configuration if enabled
	if s.cfg.TLS.Enabled {
		if s.cfg.TLS.CertFile == "" || s.cfg.TLS.KeyFile == "" {
			return fmt.Errorf("TLS enabled but cert or key file not specified")
		}
		if _, err := os.Stat(s.cfg.TLS.CertFile); err != nil {
			return fmt.Errorf("TLS cert file not found: %w", err)
		}
		if _, err := os.Stat(s.cfg.TLS.KeyFile); err != nil {
			return fmt.Errorf("TLS key file not found: %w", err)
		}
	}

	go s.hub.Run()
	go s.watchDaily(dailyPollInterval)

	// Log server startup with appropriate protocol
	protocol := "http"
	wsProtocol := "ws"
	if s.cfg.TLS.Enabled {
		protocol = "https"
		wsProtocol = "wss"
		logging.Info("TLS enabled", "cert_file", s.cfg.TLS.CertFile)
	} else {
		logging.Warn("TLS disabled - using plain HTTP",
			"recommendation", "consider using TLS or reverse proxy for production")
	}
	logging.ServerStartup("rest_api", protocol, s.cfg.Port,
		"websocket_protocol", wsProtocol,
		"translations", len(s.catalog.Names()),
		"default_translation", s.cfg.DefaultTranslation)

	if len(s.cfg.AllowedOrigins) > 0 {
		logging.SecurityEvent("cors_configured", "api",
			"mode", "restricted",
			"allowed_origins_count", len(s.cfg.AllowedOrigins))
	} else {
		logging.SecurityEvent("cors_configured", "api",
			"mode", "permissive",
			"note", "allowing all origins (*) - consider restricting for production")
	}

	if s.limiter != nil {
		logging.SecurityEvent("rate_limiting_enabled", "api",
			"requests_per_minute", s.limiter.config.RequestsPerMinute,
			"burst_size", s.limiter.config.BurstSize)
	}

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	if s.cfg.TLS.Enabled {
		return http.ListenAndServeTLS(addr, s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile, s.Handler())
	}
	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the routed API wrapped in the middleware chain, CORS
// outermost so preflight requests short-circuit before anything else.
// Rate limiting sits inside logging so rejected requests still show up
// in the access log.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.routes()
	if s.limiter != nil {
		handler = s.limiter.Middleware(handler)
	}
	handler = logging.CombinedMiddleware(handler)
	handler = server.SecurityHeadersMiddleware(handler)
	handler = server.CORSMiddlewareWithConfig(server.CORSConfig{AllowedOrigins: s.cfg.AllowedOrigins}, handler)
	return handler
}

// routes configures all HTTP routes.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/info", s.handleInfo)
	mux.HandleFunc("/api/v1/books", s.handleBooks)
	mux.HandleFunc("/api/v1/books/{testament}", s.handleBooksByTestament)
	mux.HandleFunc("/api/v1/books/info/{name}", s.handleBookInfo)
	mux.HandleFunc("/api/v1/books/available/{translation}", s.handleAvailableBooks)
	mux.HandleFunc("/api/v1/verse/random", s.handleRandomVerse)
	mux.HandleFunc("/api/v1/verse/today", s.handleDailyVerse)
	mux.HandleFunc("/api/v1/verse/{book}/{chapter}/{verse}", s.handleVerse)
	mux.HandleFunc("/api/v1/chapter/{book}/{chapter}", s.handleChapter)
	mux.HandleFunc("/api/v1/search", s.handleSearch)
	mux.HandleFunc("/api/v1/search/reference", s.handleSearchReference)
	mux.HandleFunc("/api/v1/translations", s.handleTranslations)
	mux.HandleFunc("/api/v1/stats", s.handleStats)
	mux.HandleFunc("/api/v1/ws", s.handleWebSocket)

	return mux
}
