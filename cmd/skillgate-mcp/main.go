// Command skillgate-mcp exposes the skills client as MCP tools so
// agent runtimes can browse and fetch skills over the Model Context
// Protocol. Provides "list_skills", "get_skill" and "get_skill_content"
// tools backed by the configured provider.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skillgate/skillgate/pkg/api"
	"github.com/skillgate/skillgate/pkg/client"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	skills := client.New(client.Config{})

	server := mcp.NewServer(
		&mcp.Implementation{Name: "skillgate-mcp", Version: "v1.0.0"},
		nil,
	)

	type ListInput struct {
		Provider string `json:"provider,omitempty" jsonschema_description:"Provider to query (anthropic or openai)"`
		Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum number of skills to return"`
		Page     string `json:"page,omitempty" jsonschema_description:"Pagination token from a previous call"`
	}
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_skills",
		Description: "Lists skills available on the configured provider",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, struct{}, error) {
		resp, err := skills.ListSkills(ctx, &api.ListSkillsParams{Limit: input.Limit, Page: input.Page},
			&client.Options{Provider: input.Provider})
		if err != nil {
			return toolError(err), struct{}{}, nil
		}
		return toolJSON(resp), struct{}{}, nil
	})

	type GetInput struct {
		Provider string `json:"provider,omitempty" jsonschema_description:"Provider to query (anthropic or openai)"`
		SkillID  string `json:"skill_id" jsonschema_description:"Identifier of the skill"`
	}
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_skill",
		Description: "Fetches metadata for a single skill",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input GetInput) (*mcp.CallToolResult, struct{}, error) {
		resp, err := skills.GetSkill(ctx, input.SkillID, &client.Options{Provider: input.Provider})
		if err != nil {
			return toolError(err), struct{}{}, nil
		}
		return toolJSON(resp), struct{}{}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_skill_content",
		Description: "Downloads the packaged content of a skill, base64 encoded",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input GetInput) (*mcp.CallToolResult, struct{}, error) {
		content, err := skills.GetSkillContent(ctx, input.SkillID, &client.Options{Provider: input.Provider})
		if err != nil {
			return toolError(err), struct{}{}, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("content-type: %s\n%s",
					content.ContentType, base64.StdEncoding.EncodeToString(content.Data))},
			},
		}, struct{}{}, nil
	})

	// Serve via streamable HTTP on /mcp.
	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, nil)

	httpMux := http.NewServeMux()
	httpMux.Handle("/mcp", handler)
	httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	log.Printf("skillgate MCP server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, httpMux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func toolJSON(v any) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
