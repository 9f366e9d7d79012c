package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr              = ":8080"
	defaultSireneBaseURL     = "https://api.insee.fr/api-sirene/3.11"
	defaultRNEBaseURL        = "https://registre-national-entreprises.inpi.fr"
	defaultVIESBaseURL       = "https://ec.europa.eu/taxation_customs/vies/rest-api"
	defaultBANBaseURL        = "https://api-adresse.data.gouv.fr"
	defaultNominatimBaseURL  = "https://nominatim.openstreetmap.org"
	defaultNominatimAgent    = "siren-search-widget/1.0"
	defaultUpstreamTimeout   = 5 * time.Second
	defaultGeocodePacing     = 1200 * time.Millisecond
	defaultGeocodeCacheTTL   = 30 * time.Minute
	defaultDocumentsPageSize = 20
	defaultRedisPoolSize     = 10
)

// Config captures everything main needs to wire the service.
type Config struct {
	Addr      string
	LogLevel  string
	LogFormat string

	Sirene    Sirene
	RNE       RNE
	VIES      VIES
	Geocoding Geocoding
	Redis     RedisConfig

	UpstreamTimeout   time.Duration
	DocumentsPageSize int

	problems []error
}

type Sirene struct {
	BaseURL string
	APIKey  string
}

type RNE struct {
	BaseURL string
	Token   string
}

type VIES struct {
	BaseURL string
}

type Geocoding struct {
	BANBaseURL         string
	NominatimBaseURL   string
	NominatimUserAgent string
	// Pacing is the fixed delay between two provider calls of a batch.
	Pacing time.Duration
	// CacheTTL only applies to the Redis cache store.
	CacheTTL time.Duration
}

// RedisConfig holds the Redis connection settings. An empty URL means the
// geocode batch cache stays in memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
// Malformed values fall back to their defaults and are reported by Validate.
func FromEnv() Config {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Config {
	cfg := Config{}
	env := envReader{getenv: getenv, cfg: &cfg}

	cfg.Addr = env.str("SIREN_ADDR", defaultAddr)
	cfg.LogLevel = strings.ToLower(env.str("LOG_LEVEL", "info"))
	cfg.LogFormat = strings.ToLower(env.str("LOG_FORMAT", "json"))

	cfg.Sirene = Sirene{
		BaseURL: env.str("SIRENE_BASE_URL", defaultSireneBaseURL),
		APIKey:  env.str("SIRENE_API_KEY", ""),
	}
	cfg.RNE = RNE{
		BaseURL: env.str("RNE_BASE_URL", defaultRNEBaseURL),
		Token:   env.str("RNE_TOKEN", ""),
	}
	cfg.VIES = VIES{BaseURL: env.str("VIES_BASE_URL", defaultVIESBaseURL)}
	cfg.Geocoding = Geocoding{
		BANBaseURL:         env.str("BAN_BASE_URL", defaultBANBaseURL),
		NominatimBaseURL:   env.str("NOMINATIM_BASE_URL", defaultNominatimBaseURL),
		NominatimUserAgent: env.str("NOMINATIM_USER_AGENT", defaultNominatimAgent),
		Pacing:             env.duration("GEOCODE_PACING", defaultGeocodePacing),
		CacheTTL:           env.duration("GEOCODE_CACHE_TTL", defaultGeocodeCacheTTL),
	}
	cfg.Redis = RedisConfig{
		URL:          env.str("REDIS_URL", ""),
		PoolSize:     env.positiveInt("REDIS_POOL_SIZE", defaultRedisPoolSize),
		MinIdleConns: 1,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	cfg.UpstreamTimeout = env.duration("UPSTREAM_TIMEOUT", defaultUpstreamTimeout)
	cfg.DocumentsPageSize = env.positiveInt("DOCUMENTS_PAGE_SIZE", defaultDocumentsPageSize)

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		cfg.problems = append(cfg.problems, fmt.Errorf("LOG_LEVEL: unknown level %q", cfg.LogLevel))
		cfg.LogLevel = "info"
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		cfg.problems = append(cfg.problems, fmt.Errorf("LOG_FORMAT: unknown format %q", cfg.LogFormat))
		cfg.LogFormat = "json"
	}
	return cfg
}

// Validate reports every value that could not be used as given.
func (c Config) Validate() error {
	return errors.Join(c.problems...)
}

type envReader struct {
	getenv func(string) string
	cfg    *Config
}

func (e envReader) str(key, fallback string) string {
	if v := strings.TrimSpace(e.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e envReader) duration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(e.getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		e.cfg.problems = append(e.cfg.problems, fmt.Errorf("%s: invalid duration %q", key, raw))
		return fallback
	}
	return d
}

func (e envReader) positiveInt(key string, fallback int) int {
	raw := strings.TrimSpace(e.getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		e.cfg.problems = append(e.cfg.problems, fmt.Errorf("%s: invalid positive integer %q", key, raw))
		return fallback
	}
	return n
}
