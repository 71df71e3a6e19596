// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, duration parsing, and defaults

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	configContent := `
server:
  http_addr: "0.0.0.0:8000"

database:
  path: "./test.db"

session:
  idle_window: "20m"
  max_context_turns: 8

specialists:
  dispatch_timeout: "45s"

weather:
  api_key: "test-key"
  base_url: "http://localhost:9999"

caches:
  weather:
    ttl: "5m"
    max_size: 100
  market:
    ttl: "10m"
    max_size: 200
  knowledge:
    ttl: "30m"
    max_size: 500

logging:
  level: "debug"
  format: "json"
`
	cfg, err := Load(writeConfig(t, configContent))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.HTTPAddr != "0.0.0.0:8000" {
		t.Errorf("HTTPAddr = %q, want 0.0.0.0:8000", cfg.Server.HTTPAddr)
	}
	if cfg.Database.Path != "./test.db" {
		t.Errorf("Database.Path = %q, want ./test.db", cfg.Database.Path)
	}
	if cfg.Session.IdleWindow != 20*time.Minute {
		t.Errorf("IdleWindow = %v, want 20m", cfg.Session.IdleWindow)
	}
	if cfg.Session.MaxContextTurns != 8 {
		t.Errorf("MaxContextTurns = %d, want 8", cfg.Session.MaxContextTurns)
	}
	if cfg.Specialists.DispatchTimeout != 45*time.Second {
		t.Errorf("DispatchTimeout = %v, want 45s", cfg.Specialists.DispatchTimeout)
	}
	if cfg.Weather.APIKey != "test-key" {
		t.Errorf("Weather.APIKey = %q, want test-key", cfg.Weather.APIKey)
	}
	if cfg.Caches.Knowledge.TTL != 30*time.Minute {
		t.Errorf("Knowledge.TTL = %v, want 30m", cfg.Caches.Knowledge.TTL)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoad_Defaults(t *testing.T) {
	configContent := `
server:
  http_addr: ":8000"
database:
  path: "./test.db"
`
	cfg, err := Load(writeConfig(t, configContent))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Session.IdleWindow != DefaultIdleWindow {
		t.Errorf("IdleWindow = %v, want default %v", cfg.Session.IdleWindow, DefaultIdleWindow)
	}
	if cfg.Session.MaxContextTurns != DefaultMaxContextTurns {
		t.Errorf("MaxContextTurns = %d, want default %d", cfg.Session.MaxContextTurns, DefaultMaxContextTurns)
	}
	if cfg.Specialists.DispatchTimeout != DefaultDispatchTimeout {
		t.Errorf("DispatchTimeout = %v, want default %v", cfg.Specialists.DispatchTimeout, DefaultDispatchTimeout)
	}
	if cfg.Caches.Weather.TTL != 5*time.Minute || cfg.Caches.Weather.MaxSize != 100 {
		t.Errorf("weather cache = %v/%d, want 5m/100", cfg.Caches.Weather.TTL, cfg.Caches.Weather.MaxSize)
	}
	if cfg.Caches.Market.TTL != 10*time.Minute || cfg.Caches.Market.MaxSize != 200 {
		t.Errorf("market cache = %v/%d, want 10m/200", cfg.Caches.Market.TTL, cfg.Caches.Market.MaxSize)
	}
	if cfg.Caches.Knowledge.TTL != 30*time.Minute || cfg.Caches.Knowledge.MaxSize != 500 {
		t.Errorf("knowledge cache = %v/%d, want 30m/500", cfg.Caches.Knowledge.TTL, cfg.Caches.Knowledge.MaxSize)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("FARMSMART_TEST_WEATHER_KEY", "secret-from-env")

	configContent := `
server:
  http_addr: ":8000"
database:
  path: "./test.db"
weather:
  api_key: "${FARMSMART_TEST_WEATHER_KEY}"
`
	cfg, err := Load(writeConfig(t, configContent))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Weather.APIKey != "secret-from-env" {
		t.Errorf("Weather.APIKey = %q, want secret-from-env", cfg.Weather.APIKey)
	}
}

func TestLoad_UnsetEnvVarBecomesEmpty(t *testing.T) {
	configContent := `
server:
  http_addr: ":8000"
database:
  path: "./test.db"
weather:
  api_key: "${FARMSMART_TEST_DOES_NOT_EXIST}"
`
	cfg, err := Load(writeConfig(t, configContent))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Weather.APIKey != "" {
		t.Errorf("Weather.APIKey = %q, want empty", cfg.Weather.APIKey)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("Load() should fail for missing file")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	configContent := `
server:
  http_addr: ":8000"
database:
  path: "./test.db"
session:
  idle_window: "fifteen minutes"
`
	_, err := Load(writeConfig(t, configContent))
	if err == nil {
		t.Fatal("Load() should fail for invalid duration")
	}
	if !strings.Contains(err.Error(), "idle_window") {
		t.Errorf("error %q should mention idle_window", err)
	}
}

func TestLoad_InvalidCacheTTL(t *testing.T) {
	configContent := `
server:
  http_addr: ":8000"
database:
  path: "./test.db"
caches:
  market:
    ttl: "soon"
`
	_, err := Load(writeConfig(t, configContent))
	if err == nil {
		t.Fatal("Load() should fail for invalid cache ttl")
	}
}

func TestLoad_MissingHTTPAddr(t *testing.T) {
	configContent := `
database:
  path: "./test.db"
`
	_, err := Load(writeConfig(t, configContent))
	if err == nil {
		t.Fatal("Load() should fail without server.http_addr")
	}
}

func TestLoad_MissingDatabasePath(t *testing.T) {
	configContent := `
server:
  http_addr: ":8000"
`
	_, err := Load(writeConfig(t, configContent))
	if err == nil {
		t.Fatal("Load() should fail without database.path")
	}
}
