package provider

import (
	"net/url"

	"github.com/skillgate/skillgate/pkg/api"
	"github.com/skillgate/skillgate/pkg/transport"
)

// UnsupportedExtendedOps provides the default "not supported for provider
// X" behavior for the extended operation set. Adapters embed it and
// override exactly the subset they support.
type UnsupportedExtendedOps struct {
	// Provider names the adapter in the returned errors.
	Provider string
}

// Extended operation names as they appear in not_supported errors.
const (
	OpUpdateSkill            = "update_skill"
	OpGetSkillContent        = "get_skill_content"
	OpCreateSkillVersion     = "create_skill_version"
	OpListSkillVersions      = "list_skill_versions"
	OpGetSkillVersion        = "get_skill_version"
	OpDeleteSkillVersion     = "delete_skill_version"
	OpGetSkillVersionContent = "get_skill_version_content"
)

func (u UnsupportedExtendedOps) TransformUpdateSkillRequest(string, *api.UpdateSkillRequest, *Params) (string, map[string]any, error) {
	return "", nil, api.NewNotSupportedError(OpUpdateSkill, u.Provider)
}

func (u UnsupportedExtendedOps) TransformUpdateSkillResponse(*transport.Response) (*api.Skill, error) {
	return nil, api.NewNotSupportedError(OpUpdateSkill, u.Provider)
}

func (u UnsupportedExtendedOps) TransformGetSkillContentRequest(string, *Params) (string, error) {
	return "", api.NewNotSupportedError(OpGetSkillContent, u.Provider)
}

func (u UnsupportedExtendedOps) TransformGetSkillContentResponse(*transport.Response) (*api.SkillContent, error) {
	return nil, api.NewNotSupportedError(OpGetSkillContent, u.Provider)
}

func (u UnsupportedExtendedOps) TransformCreateSkillVersionRequest(string, *Params) (string, map[string]any, error) {
	return "", nil, api.NewNotSupportedError(OpCreateSkillVersion, u.Provider)
}

func (u UnsupportedExtendedOps) TransformCreateSkillVersionResponse(*transport.Response) (*api.SkillVersion, error) {
	return nil, api.NewNotSupportedError(OpCreateSkillVersion, u.Provider)
}

func (u UnsupportedExtendedOps) TransformListSkillVersionsRequest(string, *api.ListSkillsParams, *Params) (string, url.Values, error) {
	return "", nil, api.NewNotSupportedError(OpListSkillVersions, u.Provider)
}

func (u UnsupportedExtendedOps) TransformListSkillVersionsResponse(*transport.Response) (*api.ListSkillVersionsResponse, error) {
	return nil, api.NewNotSupportedError(OpListSkillVersions, u.Provider)
}

func (u UnsupportedExtendedOps) TransformGetSkillVersionRequest(string, string, *Params) (string, error) {
	return "", api.NewNotSupportedError(OpGetSkillVersion, u.Provider)
}

func (u UnsupportedExtendedOps) TransformGetSkillVersionResponse(*transport.Response) (*api.SkillVersion, error) {
	return nil, api.NewNotSupportedError(OpGetSkillVersion, u.Provider)
}

func (u UnsupportedExtendedOps) TransformDeleteSkillVersionRequest(string, string, *Params) (string, error) {
	return "", api.NewNotSupportedError(OpDeleteSkillVersion, u.Provider)
}

func (u UnsupportedExtendedOps) TransformDeleteSkillVersionResponse(*transport.Response) (*api.DeleteSkillResponse, error) {
	return nil, api.NewNotSupportedError(OpDeleteSkillVersion, u.Provider)
}

func (u UnsupportedExtendedOps) TransformGetSkillVersionContentRequest(string, string, *Params) (string, error) {
	return "", api.NewNotSupportedError(OpGetSkillVersionContent, u.Provider)
}

func (u UnsupportedExtendedOps) TransformGetSkillVersionContentResponse(*transport.Response) (*api.SkillContent, error) {
	return nil, api.NewNotSupportedError(OpGetSkillVersionContent, u.Provider)
}
