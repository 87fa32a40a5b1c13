package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile        = ".env"
	defaultPort           = "8080"
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultIdleTimeout    = 120 * time.Second
	defaultFetchTimeout   = 10 * time.Second
	defaultStorageBackend = "sqlite"
	defaultSQLitePath     = "storefront.db"
	defaultCartKey        = "cart"
)

// StorageBackend enumerates the supported durable storage drivers.
type StorageBackend string

const (
	// StorageMemory keeps the cart in process memory only.
	StorageMemory StorageBackend = "memory"
	// StorageSQLite persists the cart in a local SQLite file.
	StorageSQLite StorageBackend = "sqlite"
	// StorageRedis persists the cart in a redis instance.
	StorageRedis StorageBackend = "redis"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Storage StorageConfig
	Site    SiteConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// CatalogConfig locates the product catalog resource.
type CatalogConfig struct {
	URL          string
	FetchTimeout time.Duration
}

// StorageConfig selects and parameterises the durable cart storage.
type StorageConfig struct {
	Backend    StorageBackend
	SQLitePath string
	RedisURL   string
	CartKey    string
}

// SiteConfig points at the optional site settings file.
type SiteConfig struct {
	SettingsPath string
}

// Load reads the optional .env file and assembles configuration from the environment.
func Load() (Config, error) {
	// Missing .env is the normal case outside local development.
	if _, err := os.Stat(defaultEnvFile); err == nil {
		if err := godotenv.Load(defaultEnvFile); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", defaultEnvFile, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv assembles configuration from the provided lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	var errs []error

	cfg := Config{
		Server: ServerConfig{
			Port:         stringOrDefault(getenv("PORT"), defaultPort),
			ReadTimeout:  durationOrDefault(getenv("SERVER_READ_TIMEOUT"), defaultReadTimeout, &errs),
			WriteTimeout: durationOrDefault(getenv("SERVER_WRITE_TIMEOUT"), defaultWriteTimeout, &errs),
			IdleTimeout:  durationOrDefault(getenv("SERVER_IDLE_TIMEOUT"), defaultIdleTimeout, &errs),
		},
		Catalog: CatalogConfig{
			URL:          strings.TrimSpace(getenv("CATALOG_URL")),
			FetchTimeout: durationOrDefault(getenv("CATALOG_FETCH_TIMEOUT"), defaultFetchTimeout, &errs),
		},
		Storage: StorageConfig{
			Backend:    StorageBackend(strings.ToLower(stringOrDefault(getenv("STORAGE_BACKEND"), defaultStorageBackend))),
			SQLitePath: stringOrDefault(getenv("STORAGE_SQLITE_PATH"), defaultSQLitePath),
			RedisURL:   strings.TrimSpace(getenv("STORAGE_REDIS_URL")),
			CartKey:    stringOrDefault(getenv("STORAGE_CART_KEY"), defaultCartKey),
		},
		Site: SiteConfig{
			SettingsPath: strings.TrimSpace(getenv("SITE_SETTINGS_PATH")),
		},
	}

	if cfg.Catalog.URL == "" {
		errs = append(errs, errors.New("config: CATALOG_URL is required"))
	}

	switch cfg.Storage.Backend {
	case StorageMemory, StorageSQLite:
	case StorageRedis:
		if cfg.Storage.RedisURL == "" {
			errs = append(errs, errors.New("config: STORAGE_REDIS_URL is required for the redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("config: unknown storage backend %q", cfg.Storage.Backend))
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func stringOrDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func durationOrDefault(value string, fallback time.Duration, errs *[]error) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("config: invalid duration %q: %w", value, err))
		return fallback
	}
	return parsed
}
