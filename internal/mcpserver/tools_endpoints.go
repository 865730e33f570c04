package mcpserver

import (
	"context"
	"strings"

	"github.com/GAKiknadze/swagger-to-docs/analyzer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listEndpointsInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OpenAPI document to list endpoints from"`
	Tag    string    `json:"tag,omitempty"    jsonschema:"Only endpoints carrying this tag (untagged finds endpoints with no tags)"`
	Method string    `json:"method,omitempty" jsonschema:"Only endpoints using this HTTP method (case-insensitive)"`
	Offset int       `json:"offset,omitempty" jsonschema:"Skip the first N matched endpoints (for pagination)"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of endpoints to return (default 50)"`
}

type endpointSummary struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	OperationID string   `json:"operation_id,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	Security    string   `json:"security"`
}

type listEndpointsOutput struct {
	Total     int               `json:"total"`
	Matched   int               `json:"matched"`
	Returned  int               `json:"returned"`
	Endpoints []endpointSummary `json:"endpoints,omitempty"`
}

func handleListEndpoints(_ context.Context, _ *mcp.CallToolRequest, input listEndpointsInput) (*mcp.CallToolResult, listEndpointsOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), listEndpointsOutput{}, nil
	}

	a := analyzer.New(doc)
	matched := filterEndpoints(a, input.Tag, input.Method)

	output := listEndpointsOutput{
		Total:   len(a.Extract()),
		Matched: len(matched),
	}

	page := paginate(matched, input.Offset, input.Limit)
	output.Endpoints = makeSlice[endpointSummary](len(page))
	for _, e := range page {
		output.Endpoints = append(output.Endpoints, endpointSummary{
			Method:      e.Method,
			Path:        e.Path,
			OperationID: e.OperationID,
			Summary:     e.Summary,
			Tags:        e.Tags,
			Deprecated:  e.Deprecated,
			Security:    e.SecurityScope.String(),
		})
	}
	output.Returned = len(output.Endpoints)

	return nil, output, nil
}

// filterEndpoints applies the tag and method filters. With no filters the
// full listing is returned sorted by path then method; filtered listings
// keep extraction order.
func filterEndpoints(a *analyzer.Analyzer, tag, method string) []analyzer.Endpoint {
	switch {
	case tag != "" && method != "":
		var out []analyzer.Endpoint
		for _, e := range a.FindByTag(tag) {
			if strings.EqualFold(e.Method, method) {
				out = append(out, e)
			}
		}
		return out
	case tag != "":
		return a.FindByTag(tag)
	case method != "":
		return a.FindByMethod(method)
	default:
		return a.ListAll()
	}
}
