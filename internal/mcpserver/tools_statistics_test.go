package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecStatisticsTool_Petstore(t *testing.T) {
	input := statisticsInput{
		Spec: specInput{File: "../../testdata/petstore-3.0.yaml"},
	}
	_, output, err := handleSpecStatistics(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "Petstore API", output.Title)
	assert.Equal(t, "1.0.0", output.Version)
	assert.Equal(t, 6, output.TotalEndpoints)
	assert.Equal(t, 3, output.Methods["get"])
	assert.Equal(t, 2, output.Methods["post"])
	assert.Equal(t, 1, output.Methods["delete"])
	assert.Equal(t, 4, output.Tags["pets"])
	assert.Equal(t, 2, output.Tags["store"])
	assert.Equal(t, 1, output.Tags["untagged"])
	assert.Equal(t, 5, output.Schemas)
	assert.Equal(t, 2, output.SecuritySchemes)
	assert.Equal(t, []string{"Pet", "NewPet", "Pets", "Order", "Error"}, output.SchemaNames)
	assert.Equal(t, []string{"ApiKeyAuth", "BearerAuth"}, output.SecuritySchemeNames)
	assert.Equal(t, []string{"https://api.petstore.example/v1", "https://staging.petstore.example/v1"}, output.Servers)
}

func TestSpecStatisticsTool_EmptyPaths(t *testing.T) {
	content := `openapi: 3.0.3
info:
  title: Empty API
  version: 2.0.0
paths: {}
`
	_, output, err := handleSpecStatistics(context.Background(), &mcp.CallToolRequest{}, statisticsInput{
		Spec: specInput{Content: content},
	})
	require.NoError(t, err)
	assert.Equal(t, "Empty API", output.Title)
	assert.Zero(t, output.TotalEndpoints)
	assert.Empty(t, output.SchemaNames)
	assert.Empty(t, output.Servers)
}

func TestSpecStatisticsTool_BadInput(t *testing.T) {
	result, _, err := handleSpecStatistics(context.Background(), &mcp.CallToolRequest{}, statisticsInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
