package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lunde/raido/internal/models"
	"github.com/lunde/raido/internal/postservice"
	"github.com/lunde/raido/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	contentDir, store := testutil.TestContent(t)
	testutil.WriteFile(t, contentDir, "alpha.md", "# Alpha\n\nfirst post")
	testutil.WriteFile(t, contentDir, "guides/gamma.md", "# Gamma\n\nnested post")

	day := func(s string) time.Time {
		ts, _ := time.Parse("2006-01-02", s)
		return ts
	}
	svc := postservice.NewService([]models.Post{
		{ID: "alpha", Title: "Alpha", Description: "first post", PublishedAt: day("2023-01-01"), Tags: []string{"x"}},
		{ID: "guides/gamma", Title: "Gamma", Description: "nested post", PublishedAt: day("2022-06-01"), Tags: []string{"x", "y"}},
	})

	return New(store, svc)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error

	switch name {
	case "search_posts":
		result, err = srv.searchPosts(ctx, req)
	case "list_tags":
		result, err = srv.listTags(ctx, req)
	case "read_post":
		result, err = srv.readPost(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestSearchPosts_Defaults(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "search_posts", map[string]interface{}{})
	var res postservice.QueryResult
	if err := json.Unmarshal([]byte(resultText(r)), &res); err != nil {
		t.Fatalf("decode: %v (%s)", err, resultText(r))
	}
	if res.Total != 2 {
		t.Errorf("total = %d, want 2", res.Total)
	}
	// Newest first.
	if res.Posts[0].ID != "alpha" {
		t.Errorf("first = %q, want alpha", res.Posts[0].ID)
	}
}

func TestSearchPosts_TagFilter(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "search_posts", map[string]interface{}{"tags": "x,y"})
	var res postservice.QueryResult
	if err := json.Unmarshal([]byte(resultText(r)), &res); err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Posts[0].ID != "guides/gamma" {
		t.Errorf("result = %+v", res)
	}
}

func TestSearchPosts_InvalidSort(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "search_posts", map[string]interface{}{"sort": "magic"})
	if !r.IsError {
		t.Error("expected error for invalid sort order")
	}
}

func TestListTags(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "list_tags", map[string]interface{}{})
	if got := resultText(r); got != "x\ny" {
		t.Errorf("tags = %q, want %q", got, "x\ny")
	}
}

func TestReadPost(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "read_post", map[string]interface{}{"id": "guides/gamma"})
	if got := resultText(r); !strings.Contains(got, "# Gamma") {
		t.Errorf("read result = %q", got)
	}
}

func TestReadPost_Missing(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "read_post", map[string]interface{}{"id": "nope"})
	if !r.IsError {
		t.Error("expected error for missing post")
	}
}
