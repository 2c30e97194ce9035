package client

import (
	"context"
	"net/http"

	"github.com/skillgate/skillgate/pkg/api"
)

// The extended verbs cover the provider-specific operation set. A
// provider without support returns a not_supported error before any
// network call; callers should treat that as an expected outcome.

// UpdateSkill updates a skill's mutable fields and returns the freshly
// parsed canonical Skill.
func (c *Client) UpdateSkill(ctx context.Context, skillID string, req *api.UpdateSkillRequest, opts *Options) (*api.Skill, error) {
	skill, err := c.updateSkill(ctx, skillID, req, opts)
	if err != nil {
		return nil, api.Normalize(opts.providerName(), "update_skill", err)
	}
	return skill, nil
}

func (c *Client) updateSkill(ctx context.Context, skillID string, req *api.UpdateSkillRequest, opts *Options) (*api.Skill, error) {
	if skillID == "" {
		return nil, api.NewInvalidRequestError("skill_id", "skill_id is required")
	}
	cfg, params, err := c.resolve(opts)
	if err != nil {
		return nil, err
	}
	headers, err := cfg.ValidateEnvironment(nil, params)
	if err != nil {
		return nil, err
	}
	reqURL, body, err := cfg.TransformUpdateSkillRequest(skillID, req, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, cfg, params, "update_skill", http.MethodPost, reqURL, headers, nil, body)
	if err != nil {
		return nil, err
	}
	return cfg.TransformUpdateSkillResponse(resp)
}

// GetSkillContent fetches the raw content bundle of a skill.
func (c *Client) GetSkillContent(ctx context.Context, skillID string, opts *Options) (*api.SkillContent, error) {
	content, err := c.getSkillContent(ctx, skillID, opts)
	if err != nil {
		return nil, api.Normalize(opts.providerName(), "get_skill_content", err)
	}
	return content, nil
}

func (c *Client) getSkillContent(ctx context.Context, skillID string, opts *Options) (*api.SkillContent, error) {
	if skillID == "" {
		return nil, api.NewInvalidRequestError("skill_id", "skill_id is required")
	}
	cfg, params, err := c.resolve(opts)
	if err != nil {
		return nil, err
	}
	headers, err := cfg.ValidateEnvironment(nil, params)
	if err != nil {
		return nil, err
	}
	reqURL, err := cfg.TransformGetSkillContentRequest(skillID, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, cfg, params, "get_skill_content", http.MethodGet, reqURL, headers, nil, nil)
	if err != nil {
		return nil, err
	}
	return cfg.TransformGetSkillContentResponse(resp)
}

// CreateSkillVersion creates a new version of a skill. Version payload
// fields are provider-specific and travel via Options.ExtraBody.
func (c *Client) CreateSkillVersion(ctx context.Context, skillID string, opts *Options) (*api.SkillVersion, error) {
	v, err := c.createSkillVersion(ctx, skillID, opts)
	if err != nil {
		return nil, api.Normalize(opts.providerName(), "create_skill_version", err)
	}
	return v, nil
}

func (c *Client) createSkillVersion(ctx context.Context, skillID string, opts *Options) (*api.SkillVersion, error) {
	if skillID == "" {
		return nil, api.NewInvalidRequestError("skill_id", "skill_id is required")
	}
	cfg, params, err := c.resolve(opts)
	if err != nil {
		return nil, err
	}
	headers, err := cfg.ValidateEnvironment(nil, params)
	if err != nil {
		return nil, err
	}
	reqURL, body, err := cfg.TransformCreateSkillVersionRequest(skillID, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, cfg, params, "create_skill_version", http.MethodPost, reqURL, headers, nil, body)
	if err != nil {
		return nil, err
	}
	return cfg.TransformCreateSkillVersionResponse(resp)
}

// ListSkillVersions lists the versions of a skill, caller-paginated like
// ListSkills.
func (c *Client) ListSkillVersions(ctx context.Context, skillID string, listParams *api.ListSkillsParams, opts *Options) (*api.ListSkillVersionsResponse, error) {
	out, err := c.listSkillVersions(ctx, skillID, listParams, opts)
	if err != nil {
		return nil, api.Normalize(opts.providerName(), "list_skill_versions", err)
	}
	return out, nil
}

func (c *Client) listSkillVersions(ctx context.Context, skillID string, listParams *api.ListSkillsParams, opts *Options) (*api.ListSkillVersionsResponse, error) {
	if skillID == "" {
		return nil, api.NewInvalidRequestError("skill_id", "skill_id is required")
	}
	cfg, params, err := c.resolve(opts)
	if err != nil {
		return nil, err
	}
	headers, err := cfg.ValidateEnvironment(nil, params)
	if err != nil {
		return nil, err
	}
	reqURL, query, err := cfg.TransformListSkillVersionsRequest(skillID, listParams, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, cfg, params, "list_skill_versions", http.MethodGet, reqURL, headers, query, nil)
	if err != nil {
		return nil, err
	}
	return cfg.TransformListSkillVersionsResponse(resp)
}

// GetSkillVersion fetches a single version of a skill.
func (c *Client) GetSkillVersion(ctx context.Context, skillID, version string, opts *Options) (*api.SkillVersion, error) {
	v, err := c.getSkillVersion(ctx, skillID, version, opts)
	if err != nil {
		return nil, api.Normalize(opts.providerName(), "get_skill_version", err)
	}
	return v, nil
}

func (c *Client) getSkillVersion(ctx context.Context, skillID, version string, opts *Options) (*api.SkillVersion, error) {
	if skillID == "" || version == "" {
		return nil, api.NewInvalidRequestError("skill_id", "skill_id and version are required")
	}
	cfg, params, err := c.resolve(opts)
	if err != nil {
		return nil, err
	}
	headers, err := cfg.ValidateEnvironment(nil, params)
	if err != nil {
		return nil, err
	}
	reqURL, err := cfg.TransformGetSkillVersionRequest(skillID, version, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, cfg, params, "get_skill_version", http.MethodGet, reqURL, headers, nil, nil)
	if err != nil {
		return nil, err
	}
	return cfg.TransformGetSkillVersionResponse(resp)
}

// DeleteSkillVersion deletes a single version of a skill.
func (c *Client) DeleteSkillVersion(ctx context.Context, skillID, version string, opts *Options) (*api.DeleteSkillResponse, error) {
	out, err := c.deleteSkillVersion(ctx, skillID, version, opts)
	if err != nil {
		return nil, api.Normalize(opts.providerName(), "delete_skill_version", err)
	}
	return out, nil
}

func (c *Client) deleteSkillVersion(ctx context.Context, skillID, version string, opts *Options) (*api.DeleteSkillResponse, error) {
	if skillID == "" || version == "" {
		return nil, api.NewInvalidRequestError("skill_id", "skill_id and version are required")
	}
	cfg, params, err := c.resolve(opts)
	if err != nil {
		return nil, err
	}
	headers, err := cfg.ValidateEnvironment(nil, params)
	if err != nil {
		return nil, err
	}
	reqURL, err := cfg.TransformDeleteSkillVersionRequest(skillID, version, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, cfg, params, "delete_skill_version", http.MethodDelete, reqURL, headers, nil, nil)
	if err != nil {
		return nil, err
	}
	return cfg.TransformDeleteSkillVersionResponse(resp)
}

// GetSkillVersionContent fetches the raw content bundle of one version.
func (c *Client) GetSkillVersionContent(ctx context.Context, skillID, version string, opts *Options) (*api.SkillContent, error) {
	content, err := c.getSkillVersionContent(ctx, skillID, version, opts)
	if err != nil {
		return nil, api.Normalize(opts.providerName(), "get_skill_version_content", err)
	}
	return content, nil
}

func (c *Client) getSkillVersionContent(ctx context.Context, skillID, version string, opts *Options) (*api.SkillContent, error) {
	if skillID == "" || version == "" {
		return nil, api.NewInvalidRequestError("skill_id", "skill_id and version are required")
	}
	cfg, params, err := c.resolve(opts)
	if err != nil {
		return nil, err
	}
	headers, err := cfg.ValidateEnvironment(nil, params)
	if err != nil {
		return nil, err
	}
	reqURL, err := cfg.TransformGetSkillVersionContentRequest(skillID, version, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, cfg, params, "get_skill_version_content", http.MethodGet, reqURL, headers, nil, nil)
	if err != nil {
		return nil, err
	}
	return cfg.TransformGetSkillVersionContentResponse(resp)
}
