// ABOUTME: Configuration loading and parsing for farmsmart-gateway
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file leaves a field empty.
const (
	DefaultIdleWindow      = 15 * time.Minute
	DefaultMaxContextTurns = 10
	DefaultDispatchTimeout = 30 * time.Second
)

// Config represents the complete farmsmart-gateway configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Session     SessionConfig     `yaml:"session"`
	Specialists SpecialistsConfig `yaml:"specialists"`
	Weather     WeatherConfig     `yaml:"weather"`
	Caches      CachesConfig      `yaml:"caches"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ServerConfig holds server address configuration
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SessionConfig holds session continuity configuration
type SessionConfig struct {
	IdleWindow      time.Duration `yaml:"-"`
	MaxContextTurns int           `yaml:"max_context_turns"`

	// Raw string value for YAML unmarshaling
	IdleWindowRaw string `yaml:"idle_window"`
}

// SpecialistsConfig holds specialist dispatch configuration
type SpecialistsConfig struct {
	DispatchTimeout time.Duration `yaml:"-"`

	DispatchTimeoutRaw string `yaml:"dispatch_timeout"`
}

// WeatherConfig holds the upstream weather API configuration
type WeatherConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"` // empty means the production endpoint
}

// CachesConfig holds the three lookup cache tiers
type CachesConfig struct {
	Weather   CacheConfig `yaml:"weather"`
	Market    CacheConfig `yaml:"market"`
	Knowledge CacheConfig `yaml:"knowledge"`
}

// CacheConfig bounds one cache: entry lifetime and entry count
type CacheConfig struct {
	TTL     time.Duration `yaml:"-"`
	MaxSize int           `yaml:"max_size"`

	TTLRaw string `yaml:"ttl"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Parse duration fields
	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	cfg.applyDefaults()

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	// Match ${VAR_NAME} pattern
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR_NAME}
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyDefaults fills in the tuning knobs the file left unset
func (c *Config) applyDefaults() {
	if c.Session.IdleWindow == 0 {
		c.Session.IdleWindow = DefaultIdleWindow
	}
	if c.Session.MaxContextTurns == 0 {
		c.Session.MaxContextTurns = DefaultMaxContextTurns
	}
	if c.Specialists.DispatchTimeout == 0 {
		c.Specialists.DispatchTimeout = DefaultDispatchTimeout
	}
	applyCacheDefaults(&c.Caches.Weather, 5*time.Minute, 100)
	applyCacheDefaults(&c.Caches.Market, 10*time.Minute, 200)
	applyCacheDefaults(&c.Caches.Knowledge, 30*time.Minute, 500)
}

func applyCacheDefaults(cc *CacheConfig, ttl time.Duration, maxSize int) {
	if cc.TTL == 0 {
		cc.TTL = ttl
	}
	if cc.MaxSize == 0 {
		cc.MaxSize = maxSize
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if c.Session.IdleWindow < 0 {
		return fmt.Errorf("session.idle_window must not be negative")
	}

	for name, cc := range map[string]CacheConfig{
		"caches.weather":   c.Caches.Weather,
		"caches.market":    c.Caches.Market,
		"caches.knowledge": c.Caches.Knowledge,
	} {
		if cc.TTL < 0 {
			return fmt.Errorf("%s.ttl must not be negative", name)
		}
		if cc.MaxSize < 0 {
			return fmt.Errorf("%s.max_size must not be negative", name)
		}
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Session.IdleWindowRaw != "" {
		cfg.Session.IdleWindow, err = time.ParseDuration(cfg.Session.IdleWindowRaw)
		if err != nil {
			return fmt.Errorf("parsing idle_window %q: %w", cfg.Session.IdleWindowRaw, err)
		}
	}

	if cfg.Specialists.DispatchTimeoutRaw != "" {
		cfg.Specialists.DispatchTimeout, err = time.ParseDuration(cfg.Specialists.DispatchTimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing dispatch_timeout %q: %w", cfg.Specialists.DispatchTimeoutRaw, err)
		}
	}

	for name, cc := range map[string]*CacheConfig{
		"caches.weather.ttl":   &cfg.Caches.Weather,
		"caches.market.ttl":    &cfg.Caches.Market,
		"caches.knowledge.ttl": &cfg.Caches.Knowledge,
	} {
		if cc.TTLRaw == "" {
			continue
		}
		cc.TTL, err = time.ParseDuration(cc.TTLRaw)
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", name, cc.TTLRaw, err)
		}
	}

	return nil
}
