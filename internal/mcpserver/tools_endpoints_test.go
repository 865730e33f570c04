package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func petstoreSpec() specInput {
	return specInput{File: "../../testdata/petstore-3.0.yaml"}
}

func TestListEndpointsTool_All(t *testing.T) {
	input := listEndpointsInput{Spec: petstoreSpec()}
	_, output, err := handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 6, output.Total)
	assert.Equal(t, 6, output.Matched)
	assert.Equal(t, 6, output.Returned)
	require.Len(t, output.Endpoints, 6)

	// Unfiltered listings are sorted by path, then method.
	first := output.Endpoints[0]
	assert.Equal(t, "GET", first.Method)
	assert.Equal(t, "/health", first.Path)
	assert.Equal(t, "none", first.Security, "security: [] disables authentication")
}

func TestListEndpointsTool_FilterByTag(t *testing.T) {
	input := listEndpointsInput{Spec: petstoreSpec(), Tag: "pets"}
	_, output, err := handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 6, output.Total)
	assert.Equal(t, 4, output.Matched)
	for _, e := range output.Endpoints {
		assert.Contains(t, e.Tags, "pets")
	}
}

func TestListEndpointsTool_FilterUntagged(t *testing.T) {
	input := listEndpointsInput{Spec: petstoreSpec(), Tag: "untagged"}
	_, output, err := handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Endpoints, 1)
	assert.Equal(t, "/health", output.Endpoints[0].Path)
	assert.Equal(t, []string{"untagged"}, output.Endpoints[0].Tags)
}

func TestListEndpointsTool_FilterByMethod(t *testing.T) {
	input := listEndpointsInput{Spec: petstoreSpec(), Method: "POST"}
	_, output, err := handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 2, output.Matched)
	for _, e := range output.Endpoints {
		assert.Equal(t, "POST", e.Method)
	}
}

func TestListEndpointsTool_FilterByTagAndMethod(t *testing.T) {
	input := listEndpointsInput{Spec: petstoreSpec(), Tag: "pets", Method: "delete"}
	_, output, err := handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Endpoints, 1)
	e := output.Endpoints[0]
	assert.Equal(t, "DELETE", e.Method)
	assert.Equal(t, "/pets/{petId}", e.Path)
	assert.True(t, e.Deprecated)
}

func TestListEndpointsTool_SecurityClassification(t *testing.T) {
	input := listEndpointsInput{Spec: petstoreSpec(), Method: "post", Tag: "pets"}
	_, output, err := handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Endpoints, 1)
	assert.Equal(t, "declared", output.Endpoints[0].Security, "createPet declares its own requirements")

	input = listEndpointsInput{Spec: petstoreSpec(), Method: "get", Tag: "pets"}
	_, output, err = handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.NotEmpty(t, output.Endpoints)
	assert.Equal(t, "inherited", output.Endpoints[0].Security, "listPets inherits the global requirements")
}

func TestListEndpointsTool_Pagination(t *testing.T) {
	input := listEndpointsInput{Spec: petstoreSpec(), Limit: 2}
	_, output, err := handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 6, output.Matched)
	assert.Equal(t, 2, output.Returned)
	require.Len(t, output.Endpoints, 2)

	input.Offset = 4
	_, output, err = handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, 2, output.Returned)
}

func TestListEndpointsTool_NoMatch(t *testing.T) {
	input := listEndpointsInput{Spec: petstoreSpec(), Tag: "billing"}
	_, output, err := handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 6, output.Total)
	assert.Zero(t, output.Matched)
	assert.Empty(t, output.Endpoints)
}

func TestListEndpointsTool_BadInput(t *testing.T) {
	result, _, err := handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, listEndpointsInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
