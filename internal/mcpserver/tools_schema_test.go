package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cyclicBodyYAML = `openapi: 3.0.3
info:
  title: Cycle API
  version: 1.0.0
paths:
  /loops:
    post:
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/A'
      responses:
        '201':
          description: Created
components:
  schemas:
    A:
      $ref: '#/components/schemas/B'
    B:
      $ref: '#/components/schemas/A'
`

func TestRequestBodySchemaTool_Resolved(t *testing.T) {
	input := requestBodySchemaInput{
		Spec:   petstoreSpec(),
		Method: "post",
		Path:   "/pets",
	}
	_, output, err := handleRequestBodySchema(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Found)
	assert.Equal(t, "POST", output.Method)
	assert.Equal(t, "/pets", output.Path)
	assert.Equal(t, "#/components/schemas/NewPet", output.Ref)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(output.Schema, &schema))
	assert.Equal(t, "object", schema["type"])
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "resolved schema should carry the NewPet properties")
	assert.Contains(t, props, "name")
}

func TestRequestBodySchemaTool_RawRef(t *testing.T) {
	raw := false
	input := requestBodySchemaInput{
		Spec:    petstoreSpec(),
		Method:  "POST",
		Path:    "/pets",
		Resolve: &raw,
	}
	_, output, err := handleRequestBodySchema(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Found)
	assert.Equal(t, "#/components/schemas/NewPet", output.Ref)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(output.Schema, &schema))
	assert.Equal(t, "#/components/schemas/NewPet", schema["$ref"])
}

func TestRequestBodySchemaTool_NoBody(t *testing.T) {
	input := requestBodySchemaInput{
		Spec:   petstoreSpec(),
		Method: "get",
		Path:   "/pets",
	}
	result, output, err := handleRequestBodySchema(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result, "a missing body schema is not a tool failure")
	assert.False(t, output.Found)
	assert.Equal(t, "GET", output.Method)
	assert.Empty(t, output.Schema)
}

func TestRequestBodySchemaTool_UnknownEndpoint(t *testing.T) {
	input := requestBodySchemaInput{
		Spec:   petstoreSpec(),
		Method: "post",
		Path:   "/unknown",
	}
	_, output, err := handleRequestBodySchema(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.False(t, output.Found)
}

func TestRequestBodySchemaTool_CycleFailsResolution(t *testing.T) {
	input := requestBodySchemaInput{
		Spec:   specInput{Content: cyclicBodyYAML},
		Method: "post",
		Path:   "/loops",
	}
	result, _, err := handleRequestBodySchema(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestRequestBodySchemaTool_CycleRawRefStillReadable(t *testing.T) {
	raw := false
	input := requestBodySchemaInput{
		Spec:    specInput{Content: cyclicBodyYAML},
		Method:  "post",
		Path:    "/loops",
		Resolve: &raw,
	}
	_, output, err := handleRequestBodySchema(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.Found)
	assert.Equal(t, "#/components/schemas/A", output.Ref)
}

func TestRequestBodySchemaTool_MissingMethodOrPath(t *testing.T) {
	input := requestBodySchemaInput{Spec: petstoreSpec(), Method: "post"}
	result, _, err := handleRequestBodySchema(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
