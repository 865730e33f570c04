package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/GAKiknadze/swagger-to-docs/analyzer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type requestBodySchemaInput struct {
	Spec    specInput `json:"spec"              jsonschema:"The OpenAPI document to read the schema from"`
	Method  string    `json:"method"            jsonschema:"HTTP method of the endpoint (case-insensitive)"`
	Path    string    `json:"path"              jsonschema:"Path template of the endpoint, exactly as declared (e.g. /pets/{petId})"`
	Resolve *bool     `json:"resolve,omitempty" jsonschema:"Resolve $ref schemas to their targets (default true)"`
}

type requestBodySchemaOutput struct {
	Found  bool            `json:"found"`
	Method string          `json:"method"`
	Path   string          `json:"path"`
	Ref    string          `json:"ref,omitempty"`
	Schema json.RawMessage `json:"schema,omitempty"`
}

func handleRequestBodySchema(_ context.Context, _ *mcp.CallToolRequest, input requestBodySchemaInput) (*mcp.CallToolResult, requestBodySchemaOutput, error) {
	if input.Method == "" || input.Path == "" {
		return errResult(fmt.Errorf("both method and path must be provided")), requestBodySchemaOutput{}, nil
	}
	resolve := true
	if input.Resolve != nil {
		resolve = *input.Resolve
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), requestBodySchemaOutput{}, nil
	}

	a := analyzer.New(doc)
	output := requestBodySchemaOutput{
		Method: strings.ToUpper(input.Method),
		Path:   input.Path,
	}

	schema, ok := a.RequestBodySchema(input.Method, input.Path)
	if !ok {
		// Absence is data, not a tool failure: the endpoint may simply
		// declare no body schema.
		return nil, output, nil
	}

	if ref, isRef := schema.Ref(); isRef {
		output.Ref = ref
		if resolve {
			resolved, err := a.ResolveSchema(schema)
			if err != nil {
				return errResult(err), requestBodySchemaOutput{}, nil
			}
			schema = resolved
		}
	}

	data, err := json.Marshal(schema)
	if err != nil {
		return errResult(err), requestBodySchemaOutput{}, nil
	}
	output.Found = true
	output.Schema = data

	return nil, output, nil
}
