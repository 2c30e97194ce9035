package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, SKILLGATE_CONFIG env,
//     ./config.yaml, /etc/skillgate/config.yaml)
//  3. Environment variable overrides
//  4. File reference resolution (_file suffix)
//  5. Validation
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	if err := resolveFileReferences(&cfg); err != nil {
		return nil, fmt.Errorf("resolving file references: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
// explicit argument, SKILLGATE_CONFIG, ./config.yaml,
// /etc/skillgate/config.yaml. Returns empty string if none is found.
func discoverConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if envPath := os.Getenv("SKILLGATE_CONFIG"); envPath != "" {
		return envPath
	}

	candidates := []string{
		"config.yaml",
		"/etc/skillgate/config.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps SKILLGATE_* environment variables onto the
// config. Provider API keys are deliberately not handled here: the
// adapters read ANTHROPIC_API_KEY / OPENAI_API_KEY themselves.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SKILLGATE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SKILLGATE_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("SKILLGATE_DEFAULT_PROVIDER"); v != "" {
		cfg.Providers.Default = v
	}
	if v := os.Getenv("SKILLGATE_ANTHROPIC_API_BASE"); v != "" {
		cfg.Providers.Anthropic.APIBase = v
	}
	if v := os.Getenv("SKILLGATE_OPENAI_API_BASE"); v != "" {
		cfg.Providers.OpenAI.APIBase = v
	}
	if v := os.Getenv("SKILLGATE_METRICS_ENABLED"); v != "" {
		cfg.Observability.Metrics.Enabled = strings.EqualFold(v, "true") || v == "1"
	}
	return nil
}

// resolveFileReferences loads secrets referenced by _file fields. A set
// value always wins over its _file counterpart.
func resolveFileReferences(cfg *Config) error {
	if err := resolveRef(&cfg.Providers.Anthropic.APIKey, cfg.Providers.Anthropic.APIKeyFile); err != nil {
		return err
	}
	if err := resolveRef(&cfg.Providers.OpenAI.APIKey, cfg.Providers.OpenAI.APIKeyFile); err != nil {
		return err
	}
	if err := resolveRef(&cfg.Auth.JWT.Secret, cfg.Auth.JWT.SecretFile); err != nil {
		return err
	}
	for i := range cfg.Auth.APIKeys {
		if err := resolveRef(&cfg.Auth.APIKeys[i].Key, cfg.Auth.APIKeys[i].KeyFile); err != nil {
			return err
		}
	}
	return nil
}

func resolveRef(target *string, path string) error {
	if path == "" || *target != "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	*target = strings.TrimSpace(string(data))
	return nil
}
