package provider

import (
	"fmt"
	"sort"

	"github.com/skillgate/skillgate/pkg/api"
)

// DefaultProvider is used when a caller does not name a provider.
// Anthropic's Skills API predates the others here, so it stays the
// backward-compatible default.
const DefaultProvider = "anthropic"

// Registry resolves provider identifiers to their adapter. It is
// read-only after construction and safe for concurrent use.
type Registry struct {
	configs map[string]Config
}

// NewRegistry builds a registry from the given adapters, keyed by their
// Name(). A later adapter with the same name replaces an earlier one.
func NewRegistry(configs ...Config) *Registry {
	r := &Registry{configs: make(map[string]Config, len(configs))}
	for _, c := range configs {
		r.configs[c.Name()] = c
	}
	return r
}

// Get resolves a provider name to its adapter. An empty name resolves to
// DefaultProvider. An unknown name is a configuration error: a provider
// can support other surfaces without having a Skills API adapter.
func (r *Registry) Get(name string) (Config, error) {
	if name == "" {
		name = DefaultProvider
	}
	c, ok := r.configs[name]
	if !ok {
		return nil, api.NewConfigurationError(
			fmt.Sprintf("no skills API configuration registered for provider %q", name))
	}
	return c, nil
}

// Names returns the registered provider identifiers, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
