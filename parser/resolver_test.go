package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GAKiknadze/swagger-to-docs/specerrors"
)

const resolverFixture = `
openapi: 3.0.3
info:
  title: Resolver API
  version: 1.0.0
paths: {}
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
    PetRef:
      $ref: '#/components/schemas/Pet'
    DoubleRef:
      $ref: '#/components/schemas/PetRef'
    'weird/name':
      type: integer
    'tilde~name':
      type: boolean
  examples:
    list:
      - first
      - second
`

func loadResolverDoc(t *testing.T) *Document {
	t.Helper()
	doc, err := New().LoadBytes([]byte(resolverFixture), SourceFormatYAML)
	require.NoError(t, err)
	return doc
}

func TestResolve(t *testing.T) {
	doc := loadResolverDoc(t)

	node, err := doc.Resolve("#/components/schemas/Pet")
	require.NoError(t, err)
	assert.Equal(t, "object", node.Member("type").StrOr(""))
}

func TestResolveArrayIndex(t *testing.T) {
	doc := loadResolverDoc(t)

	node, err := doc.Resolve("#/components/examples/list/1")
	require.NoError(t, err)
	assert.Equal(t, "second", node.StrOr(""))
}

func TestResolveEscapedTokens(t *testing.T) {
	doc := loadResolverDoc(t)

	// ~1 unescapes to "/" and ~0 to "~".
	node, err := doc.Resolve("#/components/schemas/weird~1name")
	require.NoError(t, err)
	assert.Equal(t, "integer", node.Member("type").StrOr(""))

	node, err = doc.Resolve("#/components/schemas/tilde~0name")
	require.NoError(t, err)
	assert.Equal(t, "boolean", node.Member("type").StrOr(""))
}

func TestResolveBroken(t *testing.T) {
	doc := loadResolverDoc(t)

	tests := []struct {
		name    string
		pointer string
	}{
		{"missing schema", "#/components/schemas/Missing"},
		{"missing top-level key", "#/nothing/here"},
		{"not document-local", "other.yaml#/components/schemas/Pet"},
		{"no pointer prefix", "components/schemas/Pet"},
		{"array index not numeric", "#/components/examples/list/x"},
		{"array index out of range", "#/components/examples/list/5"},
		{"descend into scalar", "#/info/title/deeper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := doc.Resolve(tt.pointer)
			require.Error(t, err)
			assert.True(t, errors.Is(err, specerrors.ErrBrokenRef), "want ErrBrokenRef, got %v", err)
			assert.True(t, errors.Is(err, specerrors.ErrReference), "want ErrReference, got %v", err)
			assert.False(t, errors.Is(err, specerrors.ErrRefCycle), "broken ref must not match ErrRefCycle")
		})
	}
}

func TestResolveBrokenReportsSegment(t *testing.T) {
	doc := loadResolverDoc(t)

	_, err := doc.Resolve("#/components/schemas/Missing")
	require.Error(t, err)

	var refErr *specerrors.RefError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "#/components/schemas/Missing", refErr.Pointer)
	assert.Equal(t, "Missing", refErr.Segment)
}

func TestResolveNodeFollowsChain(t *testing.T) {
	doc := loadResolverDoc(t)

	start, err := doc.Resolve("#/components/schemas/DoubleRef")
	require.NoError(t, err)

	resolved, err := doc.ResolveNode(start)
	require.NoError(t, err)
	assert.Equal(t, "object", resolved.Member("type").StrOr(""))
}

func TestResolveNodeIdempotent(t *testing.T) {
	doc := loadResolverDoc(t)

	pet, err := doc.Resolve("#/components/schemas/Pet")
	require.NoError(t, err)

	once, err := doc.ResolveNode(pet)
	require.NoError(t, err)
	twice, err := doc.ResolveNode(once)
	require.NoError(t, err)
	assert.Same(t, once, twice)
}

func TestResolveNodeCycle(t *testing.T) {
	doc, err := Load("../testdata/ref-cycle.yaml")
	require.NoError(t, err)

	start, err := doc.Resolve("#/components/schemas/A")
	require.NoError(t, err)

	_, err = doc.ResolveNode(start)
	require.Error(t, err)
	assert.True(t, errors.Is(err, specerrors.ErrRefCycle), "want ErrRefCycle, got %v", err)
	assert.False(t, errors.Is(err, specerrors.ErrBrokenRef), "cycle must not match ErrBrokenRef")

	var refErr *specerrors.RefError
	require.True(t, errors.As(err, &refErr))
	assert.True(t, refErr.Cycle)
	assert.Equal(t, []string{"#/components/schemas/B", "#/components/schemas/A"}, refErr.Stack)
}

func TestResolveNodeAcyclicNeighborsStillResolve(t *testing.T) {
	// The cycle only bites when resolution touches it; other schemas in
	// the same document resolve fine.
	doc, err := Load("../testdata/ref-cycle.yaml")
	require.NoError(t, err)

	start, err := doc.Resolve("#/components/schemas/Indirect")
	require.NoError(t, err)

	resolved, err := doc.ResolveNode(start)
	require.NoError(t, err)
	assert.Equal(t, "string", resolved.Member("type").StrOr(""))
}

func TestUnescapePointerToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a~1b", "a/b"},
		{"a~0b", "a~b"},
		{"~01", "~1"}, // ~1 first, then ~0
		{"~0~1", "~/"},
	}
	for _, tt := range tests {
		if got := unescapePointerToken(tt.in); got != tt.want {
			t.Errorf("unescapePointerToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
