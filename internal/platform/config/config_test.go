package config

import (
	"strings"
	"testing"
	"time"
)

func envFunc(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envFunc(map[string]string{
		"CATALOG_URL": "https://example.com/products.json",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Fatalf("unexpected read timeout %v", cfg.Server.ReadTimeout)
	}
	if cfg.Storage.Backend != StorageSQLite {
		t.Fatalf("expected sqlite default backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.CartKey != "cart" {
		t.Fatalf("expected default cart key, got %q", cfg.Storage.CartKey)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envFunc(map[string]string{
		"PORT":                  "9191",
		"SERVER_READ_TIMEOUT":   "5s",
		"CATALOG_URL":           "https://example.com/products.json",
		"CATALOG_FETCH_TIMEOUT": "2s",
		"STORAGE_BACKEND":       "redis",
		"STORAGE_REDIS_URL":     "redis://localhost:6379/0",
		"STORAGE_CART_KEY":      "cart-v2",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9191" {
		t.Fatalf("unexpected port %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("unexpected read timeout %v", cfg.Server.ReadTimeout)
	}
	if cfg.Catalog.URL != "https://example.com/products.json" {
		t.Fatalf("unexpected catalog url %q", cfg.Catalog.URL)
	}
	if cfg.Catalog.FetchTimeout != 2*time.Second {
		t.Fatalf("unexpected fetch timeout %v", cfg.Catalog.FetchTimeout)
	}
	if cfg.Storage.Backend != StorageRedis {
		t.Fatalf("unexpected backend %q", cfg.Storage.Backend)
	}
	if cfg.Storage.CartKey != "cart-v2" {
		t.Fatalf("unexpected cart key %q", cfg.Storage.CartKey)
	}
}

func TestFromEnvValidation(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		_, err := FromEnv(envFunc(map[string]string{"STORAGE_BACKEND": "papyrus"}))
		if err == nil || !strings.Contains(err.Error(), "unknown storage backend") {
			t.Fatalf("expected unknown backend error, got %v", err)
		}
	})

	t.Run("redis requires url", func(t *testing.T) {
		_, err := FromEnv(envFunc(map[string]string{"STORAGE_BACKEND": "redis"}))
		if err == nil || !strings.Contains(err.Error(), "STORAGE_REDIS_URL") {
			t.Fatalf("expected redis url error, got %v", err)
		}
	})

	t.Run("catalog url required", func(t *testing.T) {
		_, err := FromEnv(envFunc(nil))
		if err == nil || !strings.Contains(err.Error(), "CATALOG_URL") {
			t.Fatalf("expected catalog url error, got %v", err)
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, err := FromEnv(envFunc(map[string]string{"SERVER_READ_TIMEOUT": "soon"}))
		if err == nil || !strings.Contains(err.Error(), "invalid duration") {
			t.Fatalf("expected duration error, got %v", err)
		}
	})
}
