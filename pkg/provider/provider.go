package provider

import (
	"net/url"

	"github.com/skillgate/skillgate/pkg/api"
	"github.com/skillgate/skillgate/pkg/transport"
)

// Config is the uniform operation contract a Skills API provider adapter
// implements. For each CRUD operation there is a request transform that
// produces the provider's native wire artifacts (URL, query, body) and a
// response transform that parses the raw bytes into the canonical shape.
//
// The extended operations (update, content fetch, versioning) are
// provider-specific. Adapters that do not support them embed
// UnsupportedExtendedOps, whose methods return a not_supported APIError;
// callers must treat that outcome as expected, not exceptional.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Config interface {
	// Name returns the provider identifier (e.g., "anthropic", "openai").
	Name() string

	// ValidateEnvironment returns the caller headers augmented with the
	// provider's authentication and content-type headers. The API key is
	// resolved from params, then the adapter's construction-time default,
	// then the provider's environment variable, in that order. A
	// configuration error is returned when no key can be resolved.
	ValidateEnvironment(headers map[string]string, params *Params) (map[string]string, error)

	// ResolveAPIBase returns the effective base URL: an explicit override
	// in params wins over the adapter default, which wins over the
	// provider's hardcoded root.
	ResolveAPIBase(params *Params) (string, error)

	// CompleteURL constructs the absolute URL for an endpoint and an
	// optional resource id. The versioned path prefix is not duplicated
	// when apiBase already carries it.
	CompleteURL(apiBase, endpoint, skillID string) (string, error)

	TransformCreateSkillRequest(req *api.CreateSkillRequest, params *Params) (map[string]any, error)
	TransformCreateSkillResponse(resp *transport.Response) (*api.Skill, error)

	// TransformListSkillsRequest maps canonical list parameters into
	// the provider's native query parameter names. Extra query values
	// from params are folded in later, at request execution.
	TransformListSkillsRequest(listParams *api.ListSkillsParams, params *Params) (url.Values, error)
	TransformListSkillsResponse(resp *transport.Response) (*api.ListSkillsResponse, error)

	TransformGetSkillRequest(skillID string, params *Params) (string, error)
	TransformGetSkillResponse(resp *transport.Response) (*api.Skill, error)

	TransformDeleteSkillRequest(skillID string, params *Params) (string, error)
	TransformDeleteSkillResponse(resp *transport.Response) (*api.DeleteSkillResponse, error)

	ExtendedConfig
}

// ExtendedConfig holds the optional operation set. The request transforms
// return the target URL (and body where the operation carries one); the
// response transforms parse the provider payload into canonical types.
type ExtendedConfig interface {
	TransformUpdateSkillRequest(skillID string, req *api.UpdateSkillRequest, params *Params) (string, map[string]any, error)
	TransformUpdateSkillResponse(resp *transport.Response) (*api.Skill, error)

	TransformGetSkillContentRequest(skillID string, params *Params) (string, error)
	TransformGetSkillContentResponse(resp *transport.Response) (*api.SkillContent, error)

	TransformCreateSkillVersionRequest(skillID string, params *Params) (string, map[string]any, error)
	TransformCreateSkillVersionResponse(resp *transport.Response) (*api.SkillVersion, error)

	TransformListSkillVersionsRequest(skillID string, listParams *api.ListSkillsParams, params *Params) (string, url.Values, error)
	TransformListSkillVersionsResponse(resp *transport.Response) (*api.ListSkillVersionsResponse, error)

	TransformGetSkillVersionRequest(skillID, version string, params *Params) (string, error)
	TransformGetSkillVersionResponse(resp *transport.Response) (*api.SkillVersion, error)

	TransformDeleteSkillVersionRequest(skillID, version string, params *Params) (string, error)
	TransformDeleteSkillVersionResponse(resp *transport.Response) (*api.DeleteSkillResponse, error)

	TransformGetSkillVersionContentRequest(skillID, version string, params *Params) (string, error)
	TransformGetSkillVersionContentResponse(resp *transport.Response) (*api.SkillContent, error)
}
