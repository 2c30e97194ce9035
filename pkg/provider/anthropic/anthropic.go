package anthropic

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/skillgate/skillgate/pkg/api"
	"github.com/skillgate/skillgate/pkg/provider"
	"github.com/skillgate/skillgate/pkg/transport"
)

const (
	// Name is the provider identifier this adapter registers under.
	Name = "anthropic"

	defaultAPIBase = "https://api.anthropic.com"
	apiVersion     = "2023-06-01"

	// skillsBetaFlag unlocks the Skills API surface.
	skillsBetaFlag = "skills-2025-10-02"

	headerAPIKey      = "x-api-key"
	headerVersion     = "anthropic-version"
	headerBeta        = "anthropic-beta"
	headerContentType = "content-type"

	envAPIKey = "ANTHROPIC_API_KEY"
)

// Config holds construction-time defaults for the adapter. Both fields
// are optional: the key falls back to ANTHROPIC_API_KEY and the base to
// the Anthropic API root.
type Config struct {
	APIKey  string
	APIBase string
}

// Adapter implements provider.Config for the Anthropic Skills API.
// The extended operations (update, content, versioning) are not part of
// Anthropic's surface and inherit the not_supported defaults.
type Adapter struct {
	provider.UnsupportedExtendedOps

	apiKey  string
	apiBase string
}

// Ensure Adapter implements provider.Config at compile time.
var _ provider.Config = (*Adapter)(nil)

// New creates an Anthropic Skills API adapter.
func New(cfg Config) *Adapter {
	return &Adapter{
		UnsupportedExtendedOps: provider.UnsupportedExtendedOps{Provider: Name},
		apiKey:                 cfg.APIKey,
		apiBase:                cfg.APIBase,
	}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return Name
}

// ValidateEnvironment injects the Anthropic auth and capability headers.
// The skills beta flag is appended to any anthropic-beta value already
// present, since other features may have set the header first.
func (a *Adapter) ValidateEnvironment(headers map[string]string, params *provider.Params) (map[string]string, error) {
	key := provider.ResolveAPIKey(params, a.apiKey, envAPIKey)
	if key == "" {
		return nil, api.NewConfigurationError(
			"missing Anthropic API key: pass api_key or set " + envAPIKey)
	}

	out := provider.CloneHeaders(headers)
	if params != nil {
		for k, v := range params.ExtraHeaders {
			out[k] = v
		}
	}

	out[headerAPIKey] = key
	out[headerVersion] = apiVersion
	if k, _ := canonicalLookup(out, headerContentType); k == "" {
		out[headerContentType] = "application/json"
	}

	betaKey, existing := canonicalLookup(out, headerBeta)
	if betaKey == "" {
		betaKey = headerBeta
	}
	out[betaKey] = mergeBetaFlags(existing, skillsBetaFlag)

	return out, nil
}

// ResolveAPIBase returns the effective base URL for this call.
func (a *Adapter) ResolveAPIBase(params *provider.Params) (string, error) {
	if params != nil && params.APIBase != "" {
		return params.APIBase, nil
	}
	if a.apiBase != "" {
		return a.apiBase, nil
	}
	return defaultAPIBase, nil
}

// CompleteURL builds the absolute skills URL. Every skills URL, including
// per-resource ones, carries beta=true. A base that already ends in /v1
// is not versioned again.
func (a *Adapter) CompleteURL(apiBase, endpoint, skillID string) (string, error) {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	base := strings.TrimRight(apiBase, "/")
	if !strings.HasSuffix(base, "/v1") {
		base += "/v1"
	}
	u := base + "/" + endpoint
	if skillID != "" {
		u += "/" + url.PathEscape(skillID)
	}
	return u + "?beta=true", nil
}

// TransformCreateSkillRequest maps the canonical create request into the
// Anthropic body. Field names already match; absent fields are dropped.
func (a *Adapter) TransformCreateSkillRequest(req *api.CreateSkillRequest, params *provider.Params) (map[string]any, error) {
	body := make(map[string]any)
	if req != nil {
		if req.DisplayTitle != "" {
			body["display_title"] = req.DisplayTitle
		}
		if len(req.Files) > 0 {
			body["files"] = req.Files
		}
	}
	return provider.MergeExtraBody(body, params), nil
}

// TransformCreateSkillResponse decodes the Anthropic skill payload, which
// is already in canonical shape.
func (a *Adapter) TransformCreateSkillResponse(resp *transport.Response) (*api.Skill, error) {
	return decodeSkill(resp)
}

// TransformListSkillsRequest passes limit, page, and source through
// unchanged; Anthropic uses the canonical parameter names.
func (a *Adapter) TransformListSkillsRequest(listParams *api.ListSkillsParams, params *provider.Params) (url.Values, error) {
	query := url.Values{}
	if listParams != nil {
		if listParams.Limit > 0 {
			query.Set("limit", strconv.Itoa(listParams.Limit))
		}
		if listParams.Page != "" {
			query.Set("page", listParams.Page)
		}
		if listParams.Source != "" {
			query.Set("source", listParams.Source)
		}
	}
	return query, nil
}

// TransformListSkillsResponse decodes the Anthropic list payload directly
// into the canonical envelope.
func (a *Adapter) TransformListSkillsResponse(resp *transport.Response) (*api.ListSkillsResponse, error) {
	var out api.ListSkillsResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, decodeError(resp, err)
	}
	return &out, nil
}

// TransformGetSkillRequest returns the per-resource URL for a skill.
func (a *Adapter) TransformGetSkillRequest(skillID string, params *provider.Params) (string, error) {
	base, err := a.ResolveAPIBase(params)
	if err != nil {
		return "", err
	}
	return a.CompleteURL(base, "skills", skillID)
}

// TransformGetSkillResponse decodes the Anthropic skill payload.
func (a *Adapter) TransformGetSkillResponse(resp *transport.Response) (*api.Skill, error) {
	return decodeSkill(resp)
}

// TransformDeleteSkillRequest returns the per-resource URL for a skill.
func (a *Adapter) TransformDeleteSkillRequest(skillID string, params *provider.Params) (string, error) {
	base, err := a.ResolveAPIBase(params)
	if err != nil {
		return "", err
	}
	return a.CompleteURL(base, "skills", skillID)
}

// TransformDeleteSkillResponse decodes the deletion confirmation.
func (a *Adapter) TransformDeleteSkillResponse(resp *transport.Response) (*api.DeleteSkillResponse, error) {
	var out api.DeleteSkillResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, decodeError(resp, err)
	}
	return &out, nil
}

func decodeSkill(resp *transport.Response) (*api.Skill, error) {
	var skill api.Skill
	if err := json.Unmarshal(resp.Body, &skill); err != nil {
		return nil, decodeError(resp, err)
	}
	return &skill, nil
}

func decodeError(resp *transport.Response, err error) error {
	return api.NewProviderError(resp.StatusCode,
		fmt.Sprintf("failed to decode Anthropic skills response: %s", err),
		string(resp.Body))
}

// canonicalLookup finds a header key case-insensitively and returns the
// key as stored plus its value.
func canonicalLookup(headers map[string]string, name string) (string, string) {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return k, v
		}
	}
	return "", ""
}

// mergeBetaFlags appends flag to a comma-separated anthropic-beta value,
// de-duplicating entries and preserving their order.
func mergeBetaFlags(existing, flag string) string {
	if existing == "" {
		return flag
	}
	flags := strings.Split(existing, ",")
	out := make([]string, 0, len(flags)+1)
	seen := make(map[string]bool, len(flags)+1)
	for _, f := range append(flags, flag) {
		f = strings.TrimSpace(f)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return strings.Join(out, ",")
}
