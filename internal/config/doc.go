// Package config handles configuration loading for farmsmart-gateway.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	weather:
//	  api_key: "${WEATHER_API_KEY}"
//
// Syntax: ${VAR_NAME}
//
// # Duration Parsing
//
// Duration values use Go's time.ParseDuration syntax:
//
//	session:
//	  idle_window: "15m"
//	specialists:
//	  dispatch_timeout: "30s"
//
// Supported units: ns, us, ms, s, m, h
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "0.0.0.0:8000"
//
// Database:
//
//	database:
//	  path: "/var/lib/farmsmart/sessions.db"
//
// Session continuity:
//
//	session:
//	  idle_window: "15m"      # how long a session stays warm
//	  max_context_turns: 10   # transcript depth fed to specialists
//
// Lookup caches (TTL and entry bound per tier):
//
//	caches:
//	  weather:
//	    ttl: "5m"
//	    max_size: 100
//	  market:
//	    ttl: "10m"
//	    max_size: 200
//	  knowledge:
//	    ttl: "30m"
//	    max_size: 500
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load("/etc/farmsmart/gateway.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
