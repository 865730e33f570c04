package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCollectionTool_Inline(t *testing.T) {
	input := exportCollectionInput{Spec: petstoreSpec()}
	_, output, err := handleExportCollection(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 6, output.ItemCount)
	assert.Empty(t, output.Written)
	require.NotEmpty(t, output.Collection)

	var collection map[string]any
	require.NoError(t, json.Unmarshal(output.Collection, &collection))
	info, ok := collection["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Petstore API", info["name"])

	items, ok := collection["item"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 6)

	variables, ok := collection["variable"].([]any)
	require.True(t, ok)
	require.Len(t, variables, 1)
	v := variables[0].(map[string]any)
	assert.Equal(t, "base_url", v["key"])
	assert.Equal(t, "https://api.petstore.example/v1", v["value"])
}

func TestExportCollectionTool_WriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.json")
	input := exportCollectionInput{Spec: petstoreSpec(), Output: path}
	_, output, err := handleExportCollection(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, path, output.Written)
	assert.Empty(t, output.Collection, "file output should not duplicate the collection inline")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "{{base_url}}")
}

func TestExportCollectionTool_WriteToDirectory(t *testing.T) {
	dir := t.TempDir()
	input := exportCollectionInput{Spec: petstoreSpec(), Output: dir}
	_, output, err := handleExportCollection(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	// Directory output derives the file name from the API title.
	assert.Equal(t, filepath.Join(dir, "petstore_api_postman.json"), output.Written)
	_, statErr := os.Stat(output.Written)
	assert.NoError(t, statErr)
}

func TestExportCollectionTool_BadInput(t *testing.T) {
	result, _, err := handleExportCollection(context.Background(), &mcp.CallToolRequest{}, exportCollectionInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestExportEndpointsCSVTool_Inline(t *testing.T) {
	input := exportCSVInput{Spec: petstoreSpec()}
	_, output, err := handleExportEndpointsCSV(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 6, output.Rows)
	assert.Empty(t, output.Written)

	lines := strings.Split(strings.TrimSpace(output.CSV), "\n")
	require.Len(t, lines, 7, "header plus one row per endpoint")
	assert.Equal(t, "Method,Path,Summary,Tags,Deprecated", lines[0])
	assert.Contains(t, output.CSV, "GET,/pets,List all pets,pets,false")
	assert.Contains(t, output.CSV, `DELETE,/pets/{petId},Delete a pet,"pets, store",true`)
}

func TestExportEndpointsCSVTool_WriteToDirectory(t *testing.T) {
	dir := t.TempDir()
	input := exportCSVInput{Spec: petstoreSpec(), Output: dir}
	_, output, err := handleExportEndpointsCSV(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "petstore_api_endpoints.csv"), output.Written)
	data, err := os.ReadFile(output.Written)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Method,Path,Summary,Tags,Deprecated"))
}

func TestExportEndpointsCSVTool_BadInput(t *testing.T) {
	result, _, err := handleExportEndpointsCSV(context.Background(), &mcp.CallToolRequest{}, exportCSVInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
