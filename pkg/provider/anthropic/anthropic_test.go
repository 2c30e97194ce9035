package anthropic

import (
	"errors"
	"strings"
	"testing"

	"github.com/skillgate/skillgate/pkg/api"
	"github.com/skillgate/skillgate/pkg/provider"
	"github.com/skillgate/skillgate/pkg/transport"
)

func TestValidateEnvironmentHeaders(t *testing.T) {
	a := New(Config{APIKey: "sk-ant-test"})

	headers, err := a.ValidateEnvironment(nil, nil)
	if err != nil {
		t.Fatalf("ValidateEnvironment: %v", err)
	}
	if headers["x-api-key"] != "sk-ant-test" {
		t.Errorf("x-api-key = %q, want sk-ant-test", headers["x-api-key"])
	}
	if headers["anthropic-version"] != "2023-06-01" {
		t.Errorf("anthropic-version = %q, want 2023-06-01", headers["anthropic-version"])
	}
	if headers["anthropic-beta"] != "skills-2025-10-02" {
		t.Errorf("anthropic-beta = %q, want skills-2025-10-02", headers["anthropic-beta"])
	}
	if headers["content-type"] != "application/json" {
		t.Errorf("content-type = %q, want application/json", headers["content-type"])
	}
}

func TestValidateEnvironmentKeyPriority(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-from-env")

	tests := []struct {
		name   string
		cfg    Config
		params *provider.Params
		want   string
	}{
		{"call param wins", Config{APIKey: "sk-default"}, &provider.Params{APIKey: "sk-call"}, "sk-call"},
		{"construction default next", Config{APIKey: "sk-default"}, nil, "sk-default"},
		{"env var last", Config{}, nil, "sk-from-env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers, err := New(tt.cfg).ValidateEnvironment(nil, tt.params)
			if err != nil {
				t.Fatalf("ValidateEnvironment: %v", err)
			}
			if headers["x-api-key"] != tt.want {
				t.Errorf("x-api-key = %q, want %q", headers["x-api-key"], tt.want)
			}
		})
	}
}

func TestValidateEnvironmentMissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := New(Config{}).ValidateEnvironment(nil, nil)
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *api.APIError", err)
	}
	if apiErr.Type != api.ErrorTypeConfiguration {
		t.Errorf("Type = %q, want %q", apiErr.Type, api.ErrorTypeConfiguration)
	}
}

func TestValidateEnvironmentMergesBetaFlags(t *testing.T) {
	a := New(Config{APIKey: "sk-ant-test"})

	tests := []struct {
		name     string
		existing string
		want     string
	}{
		{"no existing flag", "", "skills-2025-10-02"},
		{"appends to existing", "files-api-2025-04-14", "files-api-2025-04-14,skills-2025-10-02"},
		{"already present", "skills-2025-10-02", "skills-2025-10-02"},
		{"present among others", "files-api-2025-04-14, skills-2025-10-02", "files-api-2025-04-14,skills-2025-10-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := map[string]string{}
			if tt.existing != "" {
				in["anthropic-beta"] = tt.existing
			}
			headers, err := a.ValidateEnvironment(in, nil)
			if err != nil {
				t.Fatalf("ValidateEnvironment: %v", err)
			}
			if headers["anthropic-beta"] != tt.want {
				t.Errorf("anthropic-beta = %q, want %q", headers["anthropic-beta"], tt.want)
			}
		})
	}
}

func TestValidateEnvironmentKeepsCallerHeaderCase(t *testing.T) {
	a := New(Config{APIKey: "sk-ant-test"})
	in := map[string]string{"Anthropic-Beta": "files-api-2025-04-14", "Content-Type": "application/json"}

	headers, err := a.ValidateEnvironment(in, nil)
	if err != nil {
		t.Fatalf("ValidateEnvironment: %v", err)
	}
	if got := headers["Anthropic-Beta"]; got != "files-api-2025-04-14,skills-2025-10-02" {
		t.Errorf("Anthropic-Beta = %q", got)
	}
	if _, dup := headers["anthropic-beta"]; dup {
		t.Error("lowercase anthropic-beta duplicated alongside caller's header")
	}
	if _, dup := headers["content-type"]; dup {
		t.Error("lowercase content-type duplicated alongside caller's header")
	}
	// Caller's map must not be mutated.
	if in["x-api-key"] != "" {
		t.Error("caller header map was mutated")
	}
}

func TestCompleteURL(t *testing.T) {
	a := New(Config{})

	tests := []struct {
		name    string
		apiBase string
		skillID string
		want    string
	}{
		{"default base", "", "", "https://api.anthropic.com/v1/skills?beta=true"},
		{"base without version", "https://api.anthropic.com", "", "https://api.anthropic.com/v1/skills?beta=true"},
		{"base already versioned", "https://api.anthropic.com/v1", "", "https://api.anthropic.com/v1/skills?beta=true"},
		{"trailing slash", "https://api.anthropic.com/v1/", "", "https://api.anthropic.com/v1/skills?beta=true"},
		{"with skill id", "https://api.anthropic.com", "skill_01abc", "https://api.anthropic.com/v1/skills/skill_01abc?beta=true"},
		{"proxy base", "https://proxy.internal/anthropic", "", "https://proxy.internal/anthropic/v1/skills?beta=true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.CompleteURL(tt.apiBase, "skills", tt.skillID)
			if err != nil {
				t.Fatalf("CompleteURL: %v", err)
			}
			if got != tt.want {
				t.Errorf("CompleteURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformListSkillsRequestPassthrough(t *testing.T) {
	a := New(Config{})

	query, err := a.TransformListSkillsRequest(&api.ListSkillsParams{Limit: 20, Page: "page_abc", Source: "custom"}, nil)
	if err != nil {
		t.Fatalf("TransformListSkillsRequest: %v", err)
	}
	if query.Get("limit") != "20" {
		t.Errorf("limit = %q, want 20", query.Get("limit"))
	}
	if query.Get("page") != "page_abc" {
		t.Errorf("page = %q, want page_abc", query.Get("page"))
	}
	if query.Get("source") != "custom" {
		t.Errorf("source = %q, want custom", query.Get("source"))
	}
}

func TestTransformListSkillsResponseVerbatim(t *testing.T) {
	a := New(Config{})
	body := `{
		"data": [
			{"id": "skill_01", "type": "skill", "display_title": "PDF Tools", "source": "custom",
			 "created_at": "2025-10-08T12:00:00Z", "latest_version": "3"}
		],
		"has_more": true,
		"next_page": "page_xyz"
	}`

	resp, err := a.TransformListSkillsResponse(&transport.Response{StatusCode: 200, Body: []byte(body)})
	if err != nil {
		t.Fatalf("TransformListSkillsResponse: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(resp.Data))
	}
	skill := resp.Data[0]
	if skill.ID != "skill_01" || skill.DisplayTitle != "PDF Tools" || skill.LatestVersion != "3" {
		t.Errorf("skill = %+v", skill)
	}
	if !resp.HasMore || resp.NextPage != "page_xyz" {
		t.Errorf("HasMore/NextPage = %v/%q", resp.HasMore, resp.NextPage)
	}
}

func TestTransformDeleteSkillResponse(t *testing.T) {
	a := New(Config{})

	resp, err := a.TransformDeleteSkillResponse(&transport.Response{
		StatusCode: 200,
		Body:       []byte(`{"id": "skill_01", "type": "skill_deleted"}`),
	})
	if err != nil {
		t.Fatalf("TransformDeleteSkillResponse: %v", err)
	}
	if resp.ID != "skill_01" || resp.Type != api.TypeSkillDeleted {
		t.Errorf("resp = %+v", resp)
	}
}

func TestDecodeErrorCarriesRawBody(t *testing.T) {
	a := New(Config{})

	_, err := a.TransformGetSkillResponse(&transport.Response{StatusCode: 200, Body: []byte("not json")})
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *api.APIError", err)
	}
	if apiErr.Type != api.ErrorTypeProvider {
		t.Errorf("Type = %q, want %q", apiErr.Type, api.ErrorTypeProvider)
	}
	if apiErr.RawBody != "not json" {
		t.Errorf("RawBody = %q", apiErr.RawBody)
	}
}

func TestExtendedOpsNotSupported(t *testing.T) {
	a := New(Config{APIKey: "sk-ant-test"})

	_, _, err := a.TransformUpdateSkillRequest("skill_01", &api.UpdateSkillRequest{}, nil)
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *api.APIError", err)
	}
	if apiErr.Type != api.ErrorTypeNotSupported {
		t.Errorf("Type = %q, want %q", apiErr.Type, api.ErrorTypeNotSupported)
	}
	if !strings.Contains(apiErr.Message, `provider "anthropic"`) {
		t.Errorf("Message = %q", apiErr.Message)
	}
}
