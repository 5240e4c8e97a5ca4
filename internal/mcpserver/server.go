// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Raido's post queries for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lunde/raido/internal/postservice"
	"github.com/lunde/raido/internal/storage"
)

// Server wraps the MCP server with Raido tools.
type Server struct {
	mcp   *server.MCPServer
	store storage.Provider
	svc   *postservice.Service
}

// New creates a new MCP server with all Raido tools registered.
func New(store storage.Provider, svc *postservice.Service) *Server {
	s := &Server{store: store, svc: svc}

	s.mcp = server.NewMCPServer(
		"Raido",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_posts",
		mcp.WithDescription("Query the post collection. Returns matching posts plus the tag vocabulary."),
		mcp.WithString("query", mcp.Description("Free-text search over post titles and descriptions")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags; a post must carry all of them")),
		mcp.WithString("sort", mcp.Description("Sort order: newest (default), oldest, az, za")),
	), s.searchPosts)

	s.mcp.AddTool(mcp.NewTool("list_tags",
		mcp.WithDescription("List the distinct sorted tag vocabulary of the post collection."),
	), s.listTags)

	s.mcp.AddTool(mcp.NewTool("read_post",
		mcp.WithDescription("Read the raw Markdown source of a post."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Post ID, its content path without the .md suffix (e.g. guides/profiling)")),
	), s.readPost)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchPosts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := ""
	if q, err := req.RequireString("query"); err == nil {
		query = q
	}
	var tags []string
	if raw, err := req.RequireString("tags"); err == nil {
		for _, t := range strings.Split(raw, ",") {
			if t != "" {
				tags = append(tags, t)
			}
		}
	}
	sort := ""
	if v, err := req.RequireString("sort"); err == nil {
		sort = v
	}

	res, err := s.svc.Query(ctx, query, tags, sort)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tags := s.svc.Vocabulary(ctx)
	if len(tags) == 0 {
		return mcp.NewToolResultText("no tags"), nil
	}
	return mcp.NewToolResultText(strings.Join(tags, "\n")), nil
}

func (s *Server) readPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(id + ".md")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
