package openai

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
	Name = "openai"

	defaultAPIBase = "https://api.openai.com"

	envAPIKey = "OPENAI_API_KEY"
)

// Config holds construction-time defaults for the adapter. Both fields
// are optional: the key falls back to OPENAI_API_KEY and the base to the
// OpenAI API root.
type Config struct {
	APIKey  string
	APIBase string
}

// Adapter implements provider.Config for the OpenAI Skills API,
// including the extended update/content/versioning operations.
type Adapter struct {
	apiKey  string
	apiBase string
}

// Ensure Adapter implements provider.Config at compile time.
var _ provider.Config = (*Adapter)(nil)

// New creates an OpenAI Skills API adapter.
func New(cfg Config) *Adapter {
	return &Adapter{
		apiKey:  cfg.APIKey,
		apiBase: cfg.APIBase,
	}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return Name
}

// ValidateEnvironment injects the bearer authorization and content-type
// headers. Key resolution order: call params, construction default,
// OPENAI_API_KEY.
func (a *Adapter) ValidateEnvironment(headers map[string]string, params *provider.Params) (map[string]string, error) {
	key := provider.ResolveAPIKey(params, a.apiKey, envAPIKey)
	if key == "" {
		return nil, api.NewConfigurationError(
			"missing OpenAI API key: pass api_key or set " + envAPIKey)
	}

	out := provider.CloneHeaders(headers)
	if params != nil {
		for k, v := range params.ExtraHeaders {
			out[k] = v
		}
	}
	out["Authorization"] = "Bearer " + key
	out["Content-Type"] = "application/json"
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

// CompleteURL builds the absolute skills URL. A base that already ends
// in /v1 is not versioned again.
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
	return u, nil
}

// TransformCreateSkillRequest maps the canonical create request into the
// OpenAI body: display_title becomes name, absent fields are dropped.
func (a *Adapter) TransformCreateSkillRequest(req *api.CreateSkillRequest, params *provider.Params) (map[string]any, error) {
	body := make(map[string]any)
	if req != nil {
		if req.DisplayTitle != "" {
			body["name"] = req.DisplayTitle
		}
		if len(req.Files) > 0 {
			body["files"] = req.Files
		}
	}
	return provider.MergeExtraBody(body, params), nil
}

// TransformCreateSkillResponse parses the OpenAI skill payload into the
// canonical shape.
func (a *Adapter) TransformCreateSkillResponse(resp *transport.Response) (*api.Skill, error) {
	return a.decodeSkill(resp)
}

// TransformListSkillsRequest maps canonical list parameters into the
// OpenAI query: limit passes through, page is renamed to after, and
// source is dropped because OpenAI has no custom-vs-vendor distinction.
func (a *Adapter) TransformListSkillsRequest(listParams *api.ListSkillsParams, params *provider.Params) (url.Values, error) {
	query := url.Values{}
	if listParams != nil {
		if listParams.Limit > 0 {
			query.Set("limit", strconv.Itoa(listParams.Limit))
		}
		if listParams.Page != "" {
			query.Set("after", listParams.Page)
		}
	}
	return query, nil
}

// TransformListSkillsResponse parses the OpenAI list payload, mapping
// each element through the single-item transform and last_id into the
// canonical next_page cursor.
func (a *Adapter) TransformListSkillsResponse(resp *transport.Response) (*api.ListSkillsResponse, error) {
	var raw listObject
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		return nil, a.decodeError(resp, err)
	}
	out := &api.ListSkillsResponse{
		Data:     make([]api.Skill, 0, len(raw.Data)),
		NextPage: raw.LastID,
		HasMore:  raw.HasMore,
	}
	for _, item := range raw.Data {
		out.Data = append(out.Data, skillToCanonical(item))
	}
	return out, nil
}

// TransformGetSkillRequest returns the per-resource URL for a skill.
func (a *Adapter) TransformGetSkillRequest(skillID string, params *provider.Params) (string, error) {
	return a.resourceURL(params, skillID)
}

// TransformGetSkillResponse parses the OpenAI skill payload.
func (a *Adapter) TransformGetSkillResponse(resp *transport.Response) (*api.Skill, error) {
	return a.decodeSkill(resp)
}

// TransformDeleteSkillRequest returns the per-resource URL for a skill.
func (a *Adapter) TransformDeleteSkillRequest(skillID string, params *provider.Params) (string, error) {
	return a.resourceURL(params, skillID)
}

// TransformDeleteSkillResponse maps the OpenAI delete confirmation into
// the canonical shape. The boolean deleted flag is dropped and type is
// fixed to "skill_deleted".
func (a *Adapter) TransformDeleteSkillResponse(resp *transport.Response) (*api.DeleteSkillResponse, error) {
	var raw deleteObject
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		return nil, a.decodeError(resp, err)
	}
	return &api.DeleteSkillResponse{
		ID:   raw.ID,
		Type: api.TypeSkillDeleted,
	}, nil
}

func (a *Adapter) resourceURL(params *provider.Params, skillID string) (string, error) {
	base, err := a.ResolveAPIBase(params)
	if err != nil {
		return "", err
	}
	return a.CompleteURL(base, "skills", skillID)
}

func (a *Adapter) decodeSkill(resp *transport.Response) (*api.Skill, error) {
	var raw skillObject
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		return nil, a.decodeError(resp, err)
	}
	skill := skillToCanonical(raw)
	return &skill, nil
}

func (a *Adapter) decodeError(resp *transport.Response, err error) error {
	return api.NewProviderError(resp.StatusCode,
		fmt.Sprintf("failed to decode OpenAI skills response: %s", err),
		string(resp.Body))
}
