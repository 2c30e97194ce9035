// Command skillgate runs the skills normalization gateway: a single
// canonical Skills API over HTTP, backed by the Anthropic and OpenAI
// adapters.
//
// Configuration is loaded from a YAML file (see pkg/config for the
// discovery order) with SKILLGATE_* environment overrides. The -config
// flag names an explicit file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillgate/skillgate/pkg/auth"
	"github.com/skillgate/skillgate/pkg/auth/apikey"
	authjwt "github.com/skillgate/skillgate/pkg/auth/jwt"
	"github.com/skillgate/skillgate/pkg/client"
	"github.com/skillgate/skillgate/pkg/config"
	"github.com/skillgate/skillgate/pkg/gateway"
	"github.com/skillgate/skillgate/pkg/observability"
	"github.com/skillgate/skillgate/pkg/provider"
	"github.com/skillgate/skillgate/pkg/provider/anthropic"
	"github.com/skillgate/skillgate/pkg/provider/openai"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	registry := provider.NewRegistry(
		anthropic.New(anthropic.Config{
			APIKey:  cfg.Providers.Anthropic.APIKey,
			APIBase: cfg.Providers.Anthropic.APIBase,
		}),
		openai.New(openai.Config{
			APIKey:  cfg.Providers.OpenAI.APIKey,
			APIBase: cfg.Providers.OpenAI.APIBase,
		}),
	)

	skills := client.New(client.Config{Registry: registry})

	adapter := gateway.NewAdapter(skills, gateway.Config{
		DefaultProvider: cfg.Providers.Default,
		ProviderTimeouts: map[string]time.Duration{
			"anthropic": cfg.Providers.Anthropic.Timeout,
			"openai":    cfg.Providers.OpenAI.Timeout,
		},
	})

	mux := http.NewServeMux()
	mux.Handle("/v1/skills", adapter.Handler())
	mux.Handle("/v1/skills/", adapter.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	bypass := []string{"/healthz"}
	if cfg.Observability.Metrics.Enabled {
		mux.Handle("GET "+cfg.Observability.Metrics.Path, promhttp.Handler())
		bypass = append(bypass, cfg.Observability.Metrics.Path)
		slog.Info("metrics enabled", "path", cfg.Observability.Metrics.Path)
	}

	handler := observability.MetricsMiddleware(mux)
	if chain := buildAuthChain(cfg); chain != nil {
		handler = auth.Middleware(chain, bypass)(handler)
		slog.Info("auth enabled", "type", cfg.Auth.Type)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting",
			"port", cfg.Server.Port,
			"default_provider", cfg.Providers.Default,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// buildAuthChain constructs the inbound auth chain, or nil when auth is
// disabled.
func buildAuthChain(cfg *config.Config) *auth.Chain {
	switch cfg.Auth.Type {
	case "apikey":
		entries := make([]apikey.RawKeyEntry, 0, len(cfg.Auth.APIKeys))
		for _, k := range cfg.Auth.APIKeys {
			entries = append(entries, apikey.RawKeyEntry{
				Key: k.Key,
				Identity: auth.Identity{
					Subject: k.Subject,
					Scopes:  k.Scopes,
				},
			})
		}
		return &auth.Chain{
			Authenticators:  []auth.Authenticator{apikey.New(entries)},
			DefaultDecision: auth.No,
		}
	case "jwt":
		return &auth.Chain{
			Authenticators: []auth.Authenticator{authjwt.New(authjwt.Config{
				Secret:   cfg.Auth.JWT.Secret,
				Issuer:   cfg.Auth.JWT.Issuer,
				Audience: cfg.Auth.JWT.Audience,
			})},
			DefaultDecision: auth.No,
		}
	default:
		return nil
	}
}
