package config

import "fmt"

// Validate checks the configuration for inconsistencies that would
// surface as confusing runtime failures.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Providers.Default {
	case "anthropic", "openai":
	default:
		return fmt.Errorf("providers.default must be %q or %q, got %q", "anthropic", "openai", c.Providers.Default)
	}

	switch c.Auth.Type {
	case "none":
	case "apikey":
		if len(c.Auth.APIKeys) == 0 {
			return fmt.Errorf("auth.type is %q but no auth.api_keys are configured", c.Auth.Type)
		}
		for i, k := range c.Auth.APIKeys {
			if k.Key == "" {
				return fmt.Errorf("auth.api_keys[%d] has no key or key_file", i)
			}
			if k.Subject == "" {
				return fmt.Errorf("auth.api_keys[%d] has no subject", i)
			}
		}
	case "jwt":
		if c.Auth.JWT.Secret == "" {
			return fmt.Errorf("auth.type is %q but auth.jwt.secret is empty", c.Auth.Type)
		}
	default:
		return fmt.Errorf("auth.type must be one of none, apikey, jwt; got %q", c.Auth.Type)
	}

	if c.Observability.Metrics.Enabled && c.Observability.Metrics.Path == "" {
		return fmt.Errorf("observability.metrics.path is empty")
	}

	return nil
}
