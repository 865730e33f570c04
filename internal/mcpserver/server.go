// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes swaggerdocs capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	swaggertodocs "github.com/GAKiknadze/swagger-to-docs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `swaggerdocs MCP server — validates OpenAPI specs and extracts the material documentation work needs: endpoint inventories, statistics, request body schemas, Postman collections, and CSV exports.

Specs are provided per call, either as a file path or as inline content (exactly one). Inline content is parsed as YAML by default, which also accepts JSON; set format to json to require JSON syntax.

Configuration: defaults are configurable via SWAGGERDOCS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SWAGGERDOCS_LIST_LIMIT (default: 50) — default page size for list results
- SWAGGERDOCS_MAX_LIMIT (default: 500) — hard cap on any requested page size
- SWAGGERDOCS_MAX_INLINE_SIZE (default: 10485760) — maximum inline content size in bytes
- SWAGGERDOCS_INCLUDE_WARNINGS (default: true) — include best-practice warnings in validate_spec by default`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "swaggerdocs", Version: swaggertodocs.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_spec",
		Description: "Validate an OpenAPI or Swagger document structure. Returns errors and warnings with dotted paths to the problematic fields. Use include_warnings=false to focus on errors first. Use offset/limit to paginate through results. The warning default is configurable via SWAGGERDOCS_INCLUDE_WARNINGS.",
	}, handleValidateSpec)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "spec_statistics",
		Description: "Summarize an OpenAPI document: title, version, endpoint count, per-method and per-tag distributions, schema and security scheme inventories, and server URLs. Start here to size up an unfamiliar spec before listing endpoints.",
	}, handleSpecStatistics)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_endpoints",
		Description: "List the endpoints of an OpenAPI document with method, path, summary, tags, and security classification. Filter by tag and/or method; tag \"untagged\" finds endpoints with no tags. Use offset/limit to paginate. The default page size is configurable via SWAGGERDOCS_LIST_LIMIT.",
	}, handleListEndpoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "request_body_schema",
		Description: "Return the request body schema of one endpoint, identified by method and path. The first declared content type carrying a schema wins. By default $ref schemas are resolved to their targets; set resolve=false to see the raw reference instead. found=false means the endpoint declares no body schema, or the (method, path) pair is not in the spec.",
	}, handleRequestBodySchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_collection",
		Description: "Export an OpenAPI document as a Postman-style request collection: one item per endpoint with a {{base_url}} URL template and query parameter placeholders. Returns the collection inline by default; set output to a file path or an existing directory to write it to disk instead.",
	}, handleExportCollection)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_endpoints_csv",
		Description: "Export the endpoint inventory of an OpenAPI document as CSV with Method, Path, Summary, Tags, and Deprecated columns. Returns the CSV inline by default; set output to a file path or an existing directory to write it to disk instead.",
	}, handleExportEndpointsCSV)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
