// Package client exposes the public Skills API verbs. Each verb follows
// one fixed orchestration sequence: resolve the provider adapter from
// the registry, build the canonical request merging caller extras,
// validate the environment into final headers, run the adapter's request
// transform, execute over the transport handler, and parse the response
// through the adapter's response transform. Exactly one error boundary
// wraps the whole sequence per call; there is no retry and no partial
// result.
//
// All verbs take a context.Context and block until the provider
// responds; run them in a goroutine for asynchronous use.
package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"github.com/skillgate/skillgate/pkg/api"
	"github.com/skillgate/skillgate/pkg/observability"
	"github.com/skillgate/skillgate/pkg/provider"
	"github.com/skillgate/skillgate/pkg/provider/anthropic"
	"github.com/skillgate/skillgate/pkg/provider/openai"
	"github.com/skillgate/skillgate/pkg/transport"
)

// Config holds construction options for a Client. Zero values select the
// defaults: the built-in registry (Anthropic and OpenAI with environment
// credentials) and the net/http transport handler.
type Config struct {
	Registry *provider.Registry
	Handler  transport.Handler
	Logger   *slog.Logger
}

// Client is the provider-agnostic Skills API client. It holds no mutable
// state beyond its read-only collaborators and is safe for concurrent
// use.
type Client struct {
	registry *provider.Registry
	handler  transport.Handler
	logger   *slog.Logger
}

// New creates a Client.
func New(cfg Config) *Client {
	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistry()
	}
	if cfg.Handler == nil {
		cfg.Handler = transport.NewHTTPHandler(0)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		registry: cfg.Registry,
		handler:  cfg.Handler,
		logger:   cfg.Logger,
	}
}

// DefaultRegistry returns a registry with the Anthropic and OpenAI
// adapters, both resolving credentials from their environment variables.
func DefaultRegistry() *provider.Registry {
	return provider.NewRegistry(
		anthropic.New(anthropic.Config{}),
		openai.New(openai.Config{}),
	)
}

// Options carries the per-call parameters every verb accepts. A nil
// Options selects the default provider with no overrides.
type Options struct {
	// Provider names the backend adapter. Empty resolves to the
	// registry default ("anthropic").
	Provider string

	// APIKey and APIBase override the adapter's construction defaults
	// for this call only.
	APIKey  string
	APIBase string

	// Timeout bounds the HTTP request and is passed to the transport
	// handler unchanged.
	Timeout time.Duration

	// ExtraHeaders, ExtraQuery, and ExtraBody are merged verbatim into
	// the transformed request artifacts.
	ExtraHeaders map[string]string
	ExtraQuery   url.Values
	ExtraBody    map[string]any
}

func (o *Options) providerName() string {
	if o == nil || o.Provider == "" {
		return provider.DefaultProvider
	}
	return o.Provider
}

func (o *Options) params() *provider.Params {
	if o == nil {
		return &provider.Params{}
	}
	return &provider.Params{
		APIKey:       o.APIKey,
		APIBase:      o.APIBase,
		Timeout:      o.Timeout,
		ExtraHeaders: o.ExtraHeaders,
		ExtraQuery:   o.ExtraQuery,
		ExtraBody:    o.ExtraBody,
	}
}

// resolve looks up the provider adapter and builds the call parameters.
func (c *Client) resolve(opts *Options) (provider.Config, *provider.Params, error) {
	cfg, err := c.registry.Get(opts.providerName())
	if err != nil {
		return nil, nil, err
	}
	return cfg, opts.params(), nil
}

// execute serializes the body, folds the caller's extra query
// parameters into the request, emits the pre-call log line, runs the
// request through the transport handler, and records provider metrics.
func (c *Client) execute(ctx context.Context, cfg provider.Config, params *provider.Params, operation, method, reqURL string, headers map[string]string, query url.Values, body map[string]any) (*transport.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, api.NewServerError("failed to marshal request body: " + err.Error())
		}
	}

	c.logger.Debug("skills provider request",
		"provider", cfg.Name(),
		"operation", operation,
		"method", method,
		"url", reqURL,
	)

	start := time.Now()
	resp, err := c.handler.Do(ctx, &transport.Request{
		Method:  method,
		URL:     reqURL,
		Headers: headers,
		Query:   provider.MergeExtraQuery(query, params),
		Body:    payload,
		Timeout: params.Timeout,
	})

	status := "ok"
	if err != nil {
		status = "error"
	}
	observability.ObserveProviderRequest(cfg.Name(), operation, status, time.Since(start).Seconds())

	return resp, err
}

// skillsURL builds the collection URL for the resolved provider.
func skillsURL(cfg provider.Config, params *provider.Params) (string, error) {
	base, err := cfg.ResolveAPIBase(params)
	if err != nil {
		return "", err
	}
	return cfg.CompleteURL(base, "skills", "")
}
