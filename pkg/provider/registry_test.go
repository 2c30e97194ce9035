package provider

import (
	"errors"
	"net/url"
	"testing"

	"github.com/skillgate/skillgate/pkg/api"
	"github.com/skillgate/skillgate/pkg/transport"
)

type stubConfig struct {
	UnsupportedExtendedOps
	name string
}

func (s *stubConfig) Name() string { return s.name }
func (s *stubConfig) ValidateEnvironment(headers map[string]string, params *Params) (map[string]string, error) {
	return CloneHeaders(headers), nil
}
func (s *stubConfig) ResolveAPIBase(params *Params) (string, error) { return "https://example.com", nil }
func (s *stubConfig) CompleteURL(apiBase, endpoint, skillID string) (string, error) {
	return apiBase + endpoint, nil
}
func (s *stubConfig) TransformCreateSkillRequest(req *api.CreateSkillRequest, params *Params) (map[string]any, error) {
	return nil, nil
}
func (s *stubConfig) TransformCreateSkillResponse(resp *transport.Response) (*api.Skill, error) {
	return nil, nil
}
func (s *stubConfig) TransformListSkillsRequest(listParams *api.ListSkillsParams, params *Params) (url.Values, error) {
	return nil, nil
}
func (s *stubConfig) TransformListSkillsResponse(resp *transport.Response) (*api.ListSkillsResponse, error) {
	return nil, nil
}
func (s *stubConfig) TransformGetSkillRequest(skillID string, params *Params) (string, error) {
	return "", nil
}
func (s *stubConfig) TransformGetSkillResponse(resp *transport.Response) (*api.Skill, error) {
	return nil, nil
}
func (s *stubConfig) TransformDeleteSkillRequest(skillID string, params *Params) (string, error) {
	return "", nil
}
func (s *stubConfig) TransformDeleteSkillResponse(resp *transport.Response) (*api.DeleteSkillResponse, error) {
	return nil, nil
}

func TestRegistryGet(t *testing.T) {
	anthropic := &stubConfig{name: "anthropic"}
	openai := &stubConfig{name: "openai"}
	r := NewRegistry(anthropic, openai)

	tests := []struct {
		name    string
		lookup  string
		want    Config
		wantErr bool
		errType api.ErrorType
	}{
		{"explicit anthropic", "anthropic", anthropic, false, ""},
		{"explicit openai", "openai", openai, false, ""},
		{"empty resolves to default", "", anthropic, false, ""},
		{"unknown provider", "gemini", nil, true, api.ErrorTypeConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Get(tt.lookup)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var apiErr *api.APIError
				if !errors.As(err, &apiErr) || apiErr.Type != tt.errType {
					t.Errorf("error = %v, want type %q", err, tt.errType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q): %v", tt.lookup, err)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %v, want %v", tt.lookup, got, tt.want)
			}
		})
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry(&stubConfig{name: "openai"}, &stubConfig{name: "anthropic"})
	names := r.Names()
	if len(names) != 2 || names[0] != "anthropic" || names[1] != "openai" {
		t.Errorf("Names() = %v, want [anthropic openai]", names)
	}
}

func TestUnsupportedExtendedOps(t *testing.T) {
	cfg := &stubConfig{name: "stub"}
	cfg.Provider = "stub"

	_, _, err := cfg.TransformUpdateSkillRequest("skill_01", nil, nil)
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *api.APIError", err)
	}
	if apiErr.Type != api.ErrorTypeNotSupported {
		t.Errorf("Type = %q, want %q", apiErr.Type, api.ErrorTypeNotSupported)
	}
	if apiErr.Provider != "stub" {
		t.Errorf("Provider = %q, want stub", apiErr.Provider)
	}
}

func TestResolveAPIKeyPriority(t *testing.T) {
	const envVar = "STUB_SKILLS_API_KEY"
	t.Setenv(envVar, "from-env")

	tests := []struct {
		name           string
		params         *Params
		processDefault string
		want           string
	}{
		{"call param wins", &Params{APIKey: "from-call"}, "from-default", "from-call"},
		{"construction default next", &Params{}, "from-default", "from-default"},
		{"env var last", &Params{}, "", "from-env"},
		{"nil params", nil, "", "from-env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveAPIKey(tt.params, tt.processDefault, envVar); got != tt.want {
				t.Errorf("ResolveAPIKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
