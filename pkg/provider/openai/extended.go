package openai

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/skillgate/skillgate/pkg/api"
	"github.com/skillgate/skillgate/pkg/provider"
	"github.com/skillgate/skillgate/pkg/transport"
)

// TransformUpdateSkillRequest builds the update URL and body. Zero-value
// fields are stripped, and a numeric default_version arriving through
// extra body values is stringified the way OpenAI expects.
func (a *Adapter) TransformUpdateSkillRequest(skillID string, req *api.UpdateSkillRequest, params *provider.Params) (string, map[string]any, error) {
	u, err := a.resourceURL(params, skillID)
	if err != nil {
		return "", nil, err
	}
	body := make(map[string]any)
	if req != nil {
		if req.DisplayTitle != "" {
			body["name"] = req.DisplayTitle
		}
		if req.DefaultVersion != "" {
			body["default_version"] = req.DefaultVersion
		}
	}
	body = provider.MergeExtraBody(body, params)
	if dv, ok := body["default_version"]; ok {
		body["default_version"] = stringifyVersion(dv)
	}
	return u, body, nil
}

// TransformUpdateSkillResponse parses the updated skill payload.
func (a *Adapter) TransformUpdateSkillResponse(resp *transport.Response) (*api.Skill, error) {
	return a.decodeSkill(resp)
}

// TransformGetSkillContentRequest returns the skill content URL.
func (a *Adapter) TransformGetSkillContentRequest(skillID string, params *provider.Params) (string, error) {
	u, err := a.resourceURL(params, skillID)
	if err != nil {
		return "", err
	}
	return u + "/content", nil
}

// TransformGetSkillContentResponse wraps the raw content bytes.
func (a *Adapter) TransformGetSkillContentResponse(resp *transport.Response) (*api.SkillContent, error) {
	return &api.SkillContent{
		ContentType: resp.Header.Get("Content-Type"),
		Data:        resp.Body,
	}, nil
}

// TransformCreateSkillVersionRequest builds the version-creation URL and
// body. Version payload fields (files and friends) arrive via extra body
// values and pass through verbatim.
func (a *Adapter) TransformCreateSkillVersionRequest(skillID string, params *provider.Params) (string, map[string]any, error) {
	u, err := a.resourceURL(params, skillID)
	if err != nil {
		return "", nil, err
	}
	body := provider.MergeExtraBody(make(map[string]any), params)
	return u + "/versions", body, nil
}

// TransformCreateSkillVersionResponse parses the created version payload.
func (a *Adapter) TransformCreateSkillVersionResponse(resp *transport.Response) (*api.SkillVersion, error) {
	return a.decodeVersion(resp)
}

// TransformListSkillVersionsRequest builds the version-list URL and
// query. The canonical page cursor is renamed to after, as for skills.
func (a *Adapter) TransformListSkillVersionsRequest(skillID string, listParams *api.ListSkillsParams, params *provider.Params) (string, url.Values, error) {
	u, err := a.resourceURL(params, skillID)
	if err != nil {
		return "", nil, err
	}
	query := url.Values{}
	if listParams != nil {
		if listParams.Limit > 0 {
			query.Set("limit", strconv.Itoa(listParams.Limit))
		}
		if listParams.Page != "" {
			query.Set("after", listParams.Page)
		}
	}
	return u + "/versions", query, nil
}

// TransformListSkillVersionsResponse parses the version-list payload.
func (a *Adapter) TransformListSkillVersionsResponse(resp *transport.Response) (*api.ListSkillVersionsResponse, error) {
	var raw versionListObject
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		return nil, a.decodeError(resp, err)
	}
	out := &api.ListSkillVersionsResponse{
		Data:     make([]api.SkillVersion, 0, len(raw.Data)),
		NextPage: raw.LastID,
		HasMore:  raw.HasMore,
	}
	for _, item := range raw.Data {
		out.Data = append(out.Data, versionToCanonical(item))
	}
	return out, nil
}

// TransformGetSkillVersionRequest returns the per-version URL.
func (a *Adapter) TransformGetSkillVersionRequest(skillID, version string, params *provider.Params) (string, error) {
	return a.versionURL(params, skillID, version)
}

// TransformGetSkillVersionResponse parses a single version payload.
func (a *Adapter) TransformGetSkillVersionResponse(resp *transport.Response) (*api.SkillVersion, error) {
	return a.decodeVersion(resp)
}

// TransformDeleteSkillVersionRequest returns the per-version URL.
func (a *Adapter) TransformDeleteSkillVersionRequest(skillID, version string, params *provider.Params) (string, error) {
	return a.versionURL(params, skillID, version)
}

// TransformDeleteSkillVersionResponse maps the delete confirmation into
// the canonical shape.
func (a *Adapter) TransformDeleteSkillVersionResponse(resp *transport.Response) (*api.DeleteSkillResponse, error) {
	return a.TransformDeleteSkillResponse(resp)
}

// TransformGetSkillVersionContentRequest returns the version content URL.
func (a *Adapter) TransformGetSkillVersionContentRequest(skillID, version string, params *provider.Params) (string, error) {
	u, err := a.versionURL(params, skillID, version)
	if err != nil {
		return "", err
	}
	return u + "/content", nil
}

// TransformGetSkillVersionContentResponse wraps the raw content bytes.
func (a *Adapter) TransformGetSkillVersionContentResponse(resp *transport.Response) (*api.SkillContent, error) {
	return a.TransformGetSkillContentResponse(resp)
}

func (a *Adapter) versionURL(params *provider.Params, skillID, version string) (string, error) {
	u, err := a.resourceURL(params, skillID)
	if err != nil {
		return "", err
	}
	return u + "/versions/" + url.PathEscape(version), nil
}

func (a *Adapter) decodeVersion(resp *transport.Response) (*api.SkillVersion, error) {
	var raw versionObject
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		return nil, a.decodeError(resp, err)
	}
	v := versionToCanonical(raw)
	return &v, nil
}

// stringifyVersion normalizes a default_version value to a string.
// Callers may supply it as an integer through extra body values.
func stringifyVersion(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatInt(int64(t), 10)
	default:
		return fmt.Sprintf("%v", t)
	}
}
