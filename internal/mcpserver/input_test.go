package mcpserver

import (
	"testing"

	"github.com/GAKiknadze/swagger-to-docs/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecInput_ResolveFile(t *testing.T) {
	input := specInput{File: "../../testdata/petstore-3.0.yaml"}
	doc, err := input.resolve()
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "3.0.3", doc.Version())
}

func TestSpecInput_ResolveContent(t *testing.T) {
	input := specInput{Content: testutil.MinimalOAS3YAML}
	doc, err := input.resolve()
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "3.0.3", doc.Version())
}

func TestSpecInput_ResolveContentJSON(t *testing.T) {
	input := specInput{Content: testutil.MinimalOAS2JSON, Format: "json"}
	doc, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "2.0", doc.Version())
}

func TestSpecInput_ResolveJSONContentDefaultFormat(t *testing.T) {
	// The YAML default accepts JSON documents too.
	input := specInput{Content: testutil.MinimalOAS2JSON}
	doc, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "2.0", doc.Version())
}

func TestSpecInput_ResolveInvalidFormat(t *testing.T) {
	input := specInput{Content: testutil.MinimalOAS3YAML, Format: "xml"}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestSpecInput_ResolveNoneProvided(t *testing.T) {
	input := specInput{}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestSpecInput_ResolveBothProvided(t *testing.T) {
	input := specInput{File: "foo.yaml", Content: "bar"}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestSpecInput_ResolveFileWithFormat(t *testing.T) {
	input := specInput{File: "../../testdata/petstore-3.0.yaml", Format: "yaml"}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "inline content only")
}

func TestSpecInput_ResolveFileNotFound(t *testing.T) {
	input := specInput{File: "/nonexistent/path.yaml"}
	_, err := input.resolve()
	assert.Error(t, err)
}

func TestSpecInput_ResolveContentTooLarge(t *testing.T) {
	old := cfg
	cfg = &serverConfig{
		ListLimit:       old.ListLimit,
		MaxLimit:        old.MaxLimit,
		MaxInlineSize:   16,
		IncludeWarnings: old.IncludeWarnings,
	}
	t.Cleanup(func() { cfg = old })

	input := specInput{Content: testutil.MinimalOAS3YAML}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}
