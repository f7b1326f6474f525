package textops

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/raineponce/textmill/kit"
)

// RegisterMCP registers the three textmill tools on an MCP server.
func (s *Service) RegisterMCP(srv *mcp.Server) {
	s.registerFormatTool(srv)
	s.registerSlugTool(srv)
	s.registerMarkdownTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// --- format_for_html ---

type formatReq struct {
	Text string `json:"text"`
}

func (s *Service) registerFormatTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "format_for_html",
		Description: "Convert plain text to HTML with heading detection and paragraph structure.",
		InputSchema: inputSchema(map[string]any{
			"text": map[string]any{"type": "string", "description": "Plain text to convert"},
		}, []string{"text"}),
	}

	endpoint := s.instrument(tool.Name, func(_ context.Context, req any) (any, error) {
		r := req.(*formatReq)
		html, err := s.FormatForHTML(r.Text)
		if err != nil {
			return nil, err
		}
		return map[string]any{"text": html}, nil
	})

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r formatReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- slugify_title ---

type slugReq struct {
	Title string `json:"title"`
}

func (s *Service) registerSlugTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "slugify_title",
		Description: "Convert a human title to a URL-safe slug (lowercase letters, digits, dashes).",
		InputSchema: inputSchema(map[string]any{
			"title": map[string]any{"type": "string", "description": "Title to slugify"},
		}, []string{"title"}),
	}

	endpoint := s.instrument(tool.Name, func(_ context.Context, req any) (any, error) {
		r := req.(*slugReq)
		slug, err := s.SlugifyTitle(r.Title)
		if err != nil {
			return nil, err
		}
		return map[string]any{"text": slug}, nil
	})

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r slugReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- html_to_markdown ---

type markdownReq struct {
	HTML  string `json:"html"`
	Title string `json:"title"`
}

func (s *Service) registerMarkdownTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "html_to_markdown",
		Description: "Convert HTML to Markdown and save it as {slug(title)}.md in the output directory.",
		InputSchema: inputSchema(map[string]any{
			"html":  map[string]any{"type": "string", "description": "HTML fragment to convert"},
			"title": map[string]any{"type": "string", "description": "Title the output filename is derived from"},
		}, []string{"html", "title"}),
	}

	endpoint := s.instrument(tool.Name, func(ctx context.Context, req any) (any, error) {
		r := req.(*markdownReq)
		res, err := s.SaveMarkdown(ctx, r.HTML, r.Title)
		if err != nil {
			return nil, err
		}
		return map[string]any{"text": res.ConfirmationText()}, nil
	})

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r markdownReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
