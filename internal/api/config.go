package api

// Config holds server configuration.
type Config struct {
	Port               int
	DefaultTranslation string   // translation assumed when a request names none
	AllowedOrigins     []string // CORS allowed origins (empty = allow all)
	SearchCacheSize    int      // max cached search responses (0 = default)
	RateLimitRequests  int      // requests per minute per client IP (0 = unlimited)
	RateLimitBurst     int      // burst capacity (0 = default)
	TLS                TLSConfig
}

// TLSConfig holds TLS/HTTPS configuration.
type TLSConfig struct {
	Enabled  bool   // Enable HTTPS
	CertFile string // Path to TLS certificate file
	KeyFile  string // Path to TLS private key file
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Port:               8080,
		DefaultTranslation: "KJV",
	}
}
