package mcpserver

import (
	"context"

	"github.com/GAKiknadze/swagger-to-docs/analyzer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type statisticsInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI document to summarize"`
}

type statisticsOutput struct {
	Title               string         `json:"title"`
	Version             string         `json:"version"`
	TotalEndpoints      int            `json:"total_endpoints"`
	Methods             map[string]int `json:"methods"`
	Tags                map[string]int `json:"tags"`
	Schemas             int            `json:"schemas"`
	SecuritySchemes     int            `json:"security_schemes"`
	SchemaNames         []string       `json:"schema_names,omitempty"`
	SecuritySchemeNames []string       `json:"security_scheme_names,omitempty"`
	Servers             []string       `json:"servers,omitempty"`
}

func handleSpecStatistics(_ context.Context, _ *mcp.CallToolRequest, input statisticsInput) (*mcp.CallToolResult, statisticsOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), statisticsOutput{}, nil
	}

	a := analyzer.New(doc)
	stats := a.Statistics()
	schemaNames, _ := a.Schemas()
	securityNames, _ := a.SecuritySchemes()

	output := statisticsOutput{
		Title:               stats.Title,
		Version:             stats.Version,
		TotalEndpoints:      stats.TotalEndpoints,
		Methods:             stats.Methods,
		Tags:                stats.Tags,
		Schemas:             stats.Schemas,
		SecuritySchemes:     stats.SecuritySchemes,
		SchemaNames:         schemaNames,
		SecuritySchemeNames: securityNames,
		Servers:             a.Info().Servers,
	}
	return nil, output, nil
}
