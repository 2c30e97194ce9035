// Package integration provides end-to-end tests for the skillgate
// gateway.
//
// Tests run against a real gateway HTTP server backed by a mock skills
// provider, both started in-process using net/http/httptest.
package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/skillgate/skillgate/pkg/client"
	"github.com/skillgate/skillgate/pkg/gateway"
	"github.com/skillgate/skillgate/pkg/provider"
	"github.com/skillgate/skillgate/pkg/provider/anthropic"
	"github.com/skillgate/skillgate/pkg/provider/openai"
)

// testEnv holds the shared servers for all integration tests.
var testEnv *TestEnvironment

// TestEnvironment holds the gateway server and the mock provider
// backend.
type TestEnvironment struct {
	GatewayServer *httptest.Server
	MockProvider  *httptest.Server
}

// TestMain starts the mock provider and gateway before running tests.
func TestMain(m *testing.M) {
	testEnv = setupTestEnvironment()
	code := m.Run()
	testEnv.Teardown()
	os.Exit(code)
}

func setupTestEnvironment() *TestEnvironment {
	mockProvider := startMockProvider()

	registry := provider.NewRegistry(
		anthropic.New(anthropic.Config{APIKey: "sk-ant-test", APIBase: mockProvider.URL}),
		openai.New(openai.Config{APIKey: "sk-oai-test", APIBase: mockProvider.URL}),
	)
	skills := client.New(client.Config{Registry: registry})
	adapter := gateway.NewAdapter(skills, gateway.Config{})

	return &TestEnvironment{
		GatewayServer: httptest.NewServer(adapter.Handler()),
		MockProvider:  mockProvider,
	}
}

// Teardown shuts down both servers.
func (e *TestEnvironment) Teardown() {
	e.GatewayServer.Close()
	e.MockProvider.Close()
}

// BaseURL returns the gateway base URL.
func (e *TestEnvironment) BaseURL() string {
	return e.GatewayServer.URL
}

// startMockProvider serves both Anthropic-shaped and OpenAI-shaped
// skills endpoints, switching on the authentication header the gateway
// forwards.
func startMockProvider() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/skills", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "" {
			serveAnthropicCollection(w, r)
			return
		}
		serveOpenAICollection(w, r)
	})
	mux.HandleFunc("/v1/skills/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "" {
			serveAnthropicResource(w, r)
			return
		}
		serveOpenAIResource(w, r)
	})
	mux.HandleFunc("/v1/skills/{id}/versions", func(w http.ResponseWriter, r *http.Request) {
		writeMockJSON(w, map[string]any{
			"object":   "list",
			"data":     []map[string]any{{"version": 1, "object": "skill_version", "skill_id": r.PathValue("id"), "created_at": 1709251200}},
			"last_id":  "1",
			"has_more": false,
		})
	})

	return httptest.NewServer(mux)
}

func serveAnthropicCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeMockJSON(w, map[string]any{
			"data": []map[string]any{
				{"id": "skill_ant", "type": "skill", "display_title": "Anthropic Skill", "source": "custom", "created_at": "2025-10-08T12:00:00Z"},
			},
			"has_more":  false,
			"next_page": "",
		})
	case http.MethodPost:
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		writeMockJSON(w, map[string]any{
			"id":            "skill_created",
			"type":          "skill",
			"display_title": body["display_title"],
			"source":        "custom",
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func serveAnthropicResource(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "skill_missing" {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"message": "skill not found"}}`))
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeMockJSON(w, map[string]any{"id": id, "type": "skill", "display_title": "Anthropic Skill"})
	case http.MethodDelete:
		writeMockJSON(w, map[string]any{"id": id, "type": "skill_deleted"})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func serveOpenAICollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeMockJSON(w, map[string]any{
			"object": "list",
			"data": []map[string]any{
				{"id": "skill_oai", "object": "skill", "name": "OpenAI Skill", "created_at": 1709251200, "latest_version": 2},
			},
			"last_id":  "skill_oai",
			"has_more": true,
		})
	case http.MethodPost:
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		writeMockJSON(w, map[string]any{"id": "skill_created", "object": "skill", "name": body["name"], "created_at": 1709251200})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func serveOpenAIResource(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	switch r.Method {
	case http.MethodGet:
		writeMockJSON(w, map[string]any{"id": id, "object": "skill", "name": "OpenAI Skill", "created_at": 1709251200})
	case http.MethodPost:
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		writeMockJSON(w, map[string]any{"id": id, "object": "skill", "name": body["name"], "created_at": 1709251200})
	case http.MethodDelete:
		writeMockJSON(w, map[string]any{"id": id, "object": "skill", "deleted": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeMockJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// getURL performs a GET and fails the test on transport errors.
func getURL(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	return resp
}

// readBody reads and returns the full response body.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return string(data)
}

// decodeBody decodes the response body into v.
func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
}

// postJSON performs a POST with a JSON body.
func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}
