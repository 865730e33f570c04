package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/GAKiknadze/swagger-to-docs/analyzer"
	"github.com/GAKiknadze/swagger-to-docs/export"
	"github.com/GAKiknadze/swagger-to-docs/internal/naming"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type exportCollectionInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OpenAPI document to export"`
	Output string    `json:"output,omitempty" jsonschema:"File path to write the collection to; an existing directory gets a name derived from the API title. Empty returns the collection inline."`
}

type exportCollectionOutput struct {
	Written    string          `json:"written,omitempty"`
	ItemCount  int             `json:"item_count"`
	Collection json.RawMessage `json:"collection,omitempty"`
}

func handleExportCollection(_ context.Context, _ *mcp.CallToolRequest, input exportCollectionInput) (*mcp.CallToolResult, exportCollectionOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), exportCollectionOutput{}, nil
	}

	a := analyzer.New(doc)
	ex := export.New(a)
	collection := ex.Collection()
	output := exportCollectionOutput{ItemCount: len(collection.Items)}

	if input.Output == "" {
		data, err := json.Marshal(collection)
		if err != nil {
			return errResult(err), exportCollectionOutput{}, nil
		}
		output.Collection = data
		return nil, output, nil
	}

	outPath := resolveOutputPath(input.Output, a, "_postman.json")
	if err := ex.WriteCollection(outPath); err != nil {
		return errResult(err), exportCollectionOutput{}, nil
	}
	output.Written = outPath
	return nil, output, nil
}

type exportCSVInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OpenAPI document to export"`
	Output string    `json:"output,omitempty" jsonschema:"File path to write the CSV to; an existing directory gets a name derived from the API title. Empty returns the CSV inline."`
}

type exportCSVOutput struct {
	Written string `json:"written,omitempty"`
	Rows    int    `json:"rows"`
	CSV     string `json:"csv,omitempty"`
}

func handleExportEndpointsCSV(_ context.Context, _ *mcp.CallToolRequest, input exportCSVInput) (*mcp.CallToolResult, exportCSVOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), exportCSVOutput{}, nil
	}

	a := analyzer.New(doc)
	ex := export.New(a)
	output := exportCSVOutput{Rows: len(a.Extract())}

	if input.Output == "" {
		var buf strings.Builder
		if err := ex.EndpointsCSV(&buf); err != nil {
			return errResult(err), exportCSVOutput{}, nil
		}
		output.CSV = buf.String()
		return nil, output, nil
	}

	outPath := resolveOutputPath(input.Output, a, "_endpoints.csv")
	if err := ex.WriteEndpointsCSV(outPath); err != nil {
		return errResult(err), exportCSVOutput{}, nil
	}
	output.Written = outPath
	return nil, output, nil
}

// resolveOutputPath turns the requested output into a concrete file path.
// An existing directory gets a file name derived from the API title, the
// same naming the CLI uses for its default export paths; anything else is
// taken as the file path verbatim.
func resolveOutputPath(requested string, a *analyzer.Analyzer, suffix string) string {
	info, err := os.Stat(requested)
	if err != nil || !info.IsDir() {
		return requested
	}
	stem := naming.SanitizeFileName(a.Info().Title)
	if stem == "" {
		stem = "api"
	}
	return filepath.Join(requested, stem+suffix)
}
