package client

import (
	"context"
	"net/http"

	"github.com/skillgate/skillgate/pkg/api"
)

// CreateSkill creates a skill on the resolved provider and returns the
// canonical Skill parsed from the provider response.
func (c *Client) CreateSkill(ctx context.Context, req *api.CreateSkillRequest, opts *Options) (*api.Skill, error) {
	skill, err := c.createSkill(ctx, req, opts)
	if err != nil {
		return nil, api.Normalize(opts.providerName(), "create_skill", err)
	}
	return skill, nil
}

func (c *Client) createSkill(ctx context.Context, req *api.CreateSkillRequest, opts *Options) (*api.Skill, error) {
	cfg, params, err := c.resolve(opts)
	if err != nil {
		return nil, err
	}
	headers, err := cfg.ValidateEnvironment(nil, params)
	if err != nil {
		return nil, err
	}
	body, err := cfg.TransformCreateSkillRequest(req, params)
	if err != nil {
		return nil, err
	}
	reqURL, err := skillsURL(cfg, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, cfg, params, "create_skill", http.MethodPost, reqURL, headers, nil, body)
	if err != nil {
		return nil, err
	}
	return cfg.TransformCreateSkillResponse(resp)
}

// ListSkills lists skills. Pagination is caller-driven: pass the
// returned NextPage cursor back in via ListSkillsParams.Page.
func (c *Client) ListSkills(ctx context.Context, listParams *api.ListSkillsParams, opts *Options) (*api.ListSkillsResponse, error) {
	out, err := c.listSkills(ctx, listParams, opts)
	if err != nil {
		return nil, api.Normalize(opts.providerName(), "list_skills", err)
	}
	return out, nil
}

func (c *Client) listSkills(ctx context.Context, listParams *api.ListSkillsParams, opts *Options) (*api.ListSkillsResponse, error) {
	cfg, params, err := c.resolve(opts)
	if err != nil {
		return nil, err
	}
	headers, err := cfg.ValidateEnvironment(nil, params)
	if err != nil {
		return nil, err
	}
	query, err := cfg.TransformListSkillsRequest(listParams, params)
	if err != nil {
		return nil, err
	}
	reqURL, err := skillsURL(cfg, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, cfg, params, "list_skills", http.MethodGet, reqURL, headers, query, nil)
	if err != nil {
		return nil, err
	}
	return cfg.TransformListSkillsResponse(resp)
}

// GetSkill fetches a single skill by id.
func (c *Client) GetSkill(ctx context.Context, skillID string, opts *Options) (*api.Skill, error) {
	skill, err := c.getSkill(ctx, skillID, opts)
	if err != nil {
		return nil, api.Normalize(opts.providerName(), "get_skill", err)
	}
	return skill, nil
}

func (c *Client) getSkill(ctx context.Context, skillID string, opts *Options) (*api.Skill, error) {
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
	reqURL, err := cfg.TransformGetSkillRequest(skillID, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, cfg, params, "get_skill", http.MethodGet, reqURL, headers, nil, nil)
	if err != nil {
		return nil, err
	}
	return cfg.TransformGetSkillResponse(resp)
}

// DeleteSkill deletes a skill by id and returns the canonical
// confirmation.
func (c *Client) DeleteSkill(ctx context.Context, skillID string, opts *Options) (*api.DeleteSkillResponse, error) {
	out, err := c.deleteSkill(ctx, skillID, opts)
	if err != nil {
		return nil, api.Normalize(opts.providerName(), "delete_skill", err)
	}
	return out, nil
}

func (c *Client) deleteSkill(ctx context.Context, skillID string, opts *Options) (*api.DeleteSkillResponse, error) {
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
	reqURL, err := cfg.TransformDeleteSkillRequest(skillID, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.execute(ctx, cfg, params, "delete_skill", http.MethodDelete, reqURL, headers, nil, nil)
	if err != nil {
		return nil, err
	}
	return cfg.TransformDeleteSkillResponse(resp)
}
