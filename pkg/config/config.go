// Package config provides unified configuration for the skillgate
// gateway.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (SKILLGATE_ prefix)
//  4. File reference resolution (_file suffix fields)
//  5. Validation
package config

import "time"

// Config holds all configuration for the skillgate gateway.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Providers     ProvidersConfig     `yaml:"providers"`
	Auth          AuthConfig          `yaml:"auth"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `yaml:"port"`          // default: 8080
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"` // default: 120s
}

// ProvidersConfig holds the backend provider settings.
type ProvidersConfig struct {
	// Default names the provider used when a request does not select
	// one. Default: "anthropic".
	Default string `yaml:"default"`

	Anthropic ProviderConfig `yaml:"anthropic"`
	OpenAI    ProviderConfig `yaml:"openai"`
}

// ProviderConfig holds per-provider connection settings. An empty APIKey
// falls back to the provider's environment variable at call time.
type ProviderConfig struct {
	APIKey     string        `yaml:"api_key"`
	APIKeyFile string        `yaml:"api_key_file"` // _file variant for api_key
	APIBase    string        `yaml:"api_base"`
	Timeout    time.Duration `yaml:"timeout"` // default: 60s
}

// AuthConfig holds inbound authentication settings.
type AuthConfig struct {
	Type    string         `yaml:"type"`     // "none", "apikey", or "jwt", default: "none"
	APIKeys []APIKeyConfig `yaml:"api_keys"` // entries for type=apikey
	JWT     JWTConfig      `yaml:"jwt"`      // settings for type=jwt
}

// APIKeyConfig describes a single inbound API key entry.
type APIKeyConfig struct {
	Key     string   `yaml:"key"`
	KeyFile string   `yaml:"key_file"` // _file variant for key
	Subject string   `yaml:"subject"`
	Scopes  []string `yaml:"scopes"`
}

// JWTConfig holds HMAC JWT validation settings.
type JWTConfig struct {
	Secret     string `yaml:"secret"`
	SecretFile string `yaml:"secret_file"` // _file variant for secret
	Issuer     string `yaml:"issuer"`
	Audience   string `yaml:"audience"`
}

// ObservabilityConfig holds monitoring settings.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // default: true
	Path    string `yaml:"path"`    // default: "/metrics"
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
		},
		Providers: ProvidersConfig{
			Default: "anthropic",
			Anthropic: ProviderConfig{
				Timeout: 60 * time.Second,
			},
			OpenAI: ProviderConfig{
				Timeout: 60 * time.Second,
			},
		},
		Auth: AuthConfig{
			Type: "none",
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: true,
				Path:    "/metrics",
			},
		},
	}
}
