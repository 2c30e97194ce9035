// Package gateway serves the canonical Skills API over HTTP. It accepts
// canonical JSON shapes, routes each request to a backend provider
// adapter selected with the ?provider query parameter, and maps the
// APIError taxonomy onto HTTP status codes.
package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/skillgate/skillgate/pkg/api"
	"github.com/skillgate/skillgate/pkg/client"
)

// SkillsService is the slice of the skills client the gateway consumes.
// *client.Client satisfies it; tests substitute a stub.
type SkillsService interface {
	CreateSkill(ctx context.Context, req *api.CreateSkillRequest, opts *client.Options) (*api.Skill, error)
	ListSkills(ctx context.Context, listParams *api.ListSkillsParams, opts *client.Options) (*api.ListSkillsResponse, error)
	GetSkill(ctx context.Context, skillID string, opts *client.Options) (*api.Skill, error)
	DeleteSkill(ctx context.Context, skillID string, opts *client.Options) (*api.DeleteSkillResponse, error)
	UpdateSkill(ctx context.Context, skillID string, req *api.UpdateSkillRequest, opts *client.Options) (*api.Skill, error)
	GetSkillContent(ctx context.Context, skillID string, opts *client.Options) (*api.SkillContent, error)
	CreateSkillVersion(ctx context.Context, skillID string, opts *client.Options) (*api.SkillVersion, error)
	ListSkillVersions(ctx context.Context, skillID string, listParams *api.ListSkillsParams, opts *client.Options) (*api.ListSkillVersionsResponse, error)
	GetSkillVersion(ctx context.Context, skillID, version string, opts *client.Options) (*api.SkillVersion, error)
	DeleteSkillVersion(ctx context.Context, skillID, version string, opts *client.Options) (*api.DeleteSkillResponse, error)
	GetSkillVersionContent(ctx context.Context, skillID, version string, opts *client.Options) (*api.SkillContent, error)
}

// Ensure the client satisfies the service contract.
var _ SkillsService = (*client.Client)(nil)

// Config holds gateway settings.
type Config struct {
	// MaxBodySize caps request bodies. Default 1 MB.
	MaxBodySize int64

	// DefaultProvider is used when a request does not select one with
	// ?provider=. Empty falls through to the registry default.
	DefaultProvider string

	// ProviderTimeouts bounds upstream calls per provider name.
	// Providers not listed fall back to ProviderTimeout.
	ProviderTimeouts map[string]time.Duration

	// ProviderTimeout bounds upstream calls for providers without an
	// entry in ProviderTimeouts. Zero leaves the transport default in
	// place.
	ProviderTimeout time.Duration
}

// DefaultConfig returns the default gateway configuration.
func DefaultConfig() Config {
	return Config{
		MaxBodySize: 1 << 20,
	}
}

// Adapter routes canonical Skills API requests to the service.
type Adapter struct {
	service SkillsService
	mux     *http.ServeMux
	config  Config
}

// NewAdapter creates the gateway adapter and registers its routes.
func NewAdapter(service SkillsService, cfg Config) *Adapter {
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = DefaultConfig().MaxBodySize
	}
	a := &Adapter{
		service: service,
		mux:     http.NewServeMux(),
		config:  cfg,
	}

	a.mux.HandleFunc("POST /v1/skills", a.handleCreateSkill)
	a.mux.HandleFunc("GET /v1/skills", a.handleListSkills)
	a.mux.HandleFunc("GET /v1/skills/{id}", a.handleGetSkill)
	// Update is served on PATCH and on POST, OpenAI's native verb.
	a.mux.HandleFunc("PATCH /v1/skills/{id}", a.handleUpdateSkill)
	a.mux.HandleFunc("POST /v1/skills/{id}", a.handleUpdateSkill)
	a.mux.HandleFunc("DELETE /v1/skills/{id}", a.handleDeleteSkill)
	a.mux.HandleFunc("GET /v1/skills/{id}/content", a.handleGetSkillContent)
	a.mux.HandleFunc("POST /v1/skills/{id}/versions", a.handleCreateSkillVersion)
	a.mux.HandleFunc("GET /v1/skills/{id}/versions", a.handleListSkillVersions)
	a.mux.HandleFunc("GET /v1/skills/{id}/versions/{version}", a.handleGetSkillVersion)
	a.mux.HandleFunc("DELETE /v1/skills/{id}/versions/{version}", a.handleDeleteSkillVersion)
	a.mux.HandleFunc("GET /v1/skills/{id}/versions/{version}/content", a.handleGetSkillVersionContent)

	return a
}

// Handler returns the http.Handler for this adapter, wrapped with
// request-ID propagation.
func (a *Adapter) Handler() http.Handler {
	return requestIDMiddleware(a.mux)
}

// callOptions builds the per-call options from the request's query
// string. Unknown query parameters are forwarded to the provider.
func (a *Adapter) callOptions(r *http.Request) *client.Options {
	q := r.URL.Query()
	opts := &client.Options{
		Provider: q.Get("provider"),
	}
	if opts.Provider == "" {
		opts.Provider = a.config.DefaultProvider
	}
	opts.Timeout = a.config.ProviderTimeout
	if d, ok := a.config.ProviderTimeouts[opts.Provider]; ok {
		opts.Timeout = d
	}

	extra := url.Values{}
	for k, vs := range q {
		switch k {
		case "provider", "limit", "page", "source":
			// consumed by the gateway itself
		default:
			extra[k] = vs
		}
	}
	if len(extra) > 0 {
		opts.ExtraQuery = extra
	}
	return opts
}

func listParamsFromQuery(q url.Values) (*api.ListSkillsParams, error) {
	p := &api.ListSkillsParams{
		Page:   q.Get("page"),
		Source: q.Get("source"),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return nil, api.NewInvalidRequestError("limit", "limit must be a non-negative integer")
		}
		p.Limit = limit
	}
	return p, nil
}

func (a *Adapter) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var req api.CreateSkillRequest
	if !a.decodeBody(w, r, &req) {
		return
	}
	skill, err := a.service.CreateSkill(r.Context(), &req, a.callOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

func (a *Adapter) handleListSkills(w http.ResponseWriter, r *http.Request) {
	listParams, err := listParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := a.service.ListSkills(r.Context(), listParams, a.callOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *Adapter) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	skill, err := a.service.GetSkill(r.Context(), r.PathValue("id"), a.callOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

func (a *Adapter) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateSkillRequest
	if !a.decodeBody(w, r, &req) {
		return
	}
	skill, err := a.service.UpdateSkill(r.Context(), r.PathValue("id"), &req, a.callOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

func (a *Adapter) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	out, err := a.service.DeleteSkill(r.Context(), r.PathValue("id"), a.callOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *Adapter) handleGetSkillContent(w http.ResponseWriter, r *http.Request) {
	content, err := a.service.GetSkillContent(r.Context(), r.PathValue("id"), a.callOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeContent(w, content)
}

func (a *Adapter) handleCreateSkillVersion(w http.ResponseWriter, r *http.Request) {
	opts := a.callOptions(r)
	// Version payloads are provider-specific; forward the body verbatim.
	var body map[string]any
	if !a.decodeBody(w, r, &body) {
		return
	}
	if len(body) > 0 {
		opts.ExtraBody = body
	}
	v, err := a.service.CreateSkillVersion(r.Context(), r.PathValue("id"), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (a *Adapter) handleListSkillVersions(w http.ResponseWriter, r *http.Request) {
	listParams, err := listParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := a.service.ListSkillVersions(r.Context(), r.PathValue("id"), listParams, a.callOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *Adapter) handleGetSkillVersion(w http.ResponseWriter, r *http.Request) {
	v, err := a.service.GetSkillVersion(r.Context(), r.PathValue("id"), r.PathValue("version"), a.callOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (a *Adapter) handleDeleteSkillVersion(w http.ResponseWriter, r *http.Request) {
	out, err := a.service.DeleteSkillVersion(r.Context(), r.PathValue("id"), r.PathValue("version"), a.callOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *Adapter) handleGetSkillVersionContent(w http.ResponseWriter, r *http.Request) {
	content, err := a.service.GetSkillVersionContent(r.Context(), r.PathValue("id"), r.PathValue("version"), a.callOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeContent(w, content)
}

// decodeBody reads a bounded JSON body into v. An empty body is allowed
// and leaves v at its zero value. Returns false after writing an error
// response.
func (a *Adapter) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, a.config.MaxBodySize))
	if err != nil {
		writeError(w, api.NewInvalidRequestError("body", "failed to read request body: "+err.Error()))
		return false
	}
	if len(body) == 0 {
		return true
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeError(w, api.NewInvalidRequestError("body", "invalid JSON body: "+err.Error()))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeContent(w http.ResponseWriter, content *api.SkillContent) {
	ct := content.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	w.Write(content.Data)
}
