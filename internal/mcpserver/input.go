package mcpserver

import (
	"fmt"
	"strings"

	"github.com/GAKiknadze/swagger-to-docs/parser"
)

// specInput represents the two ways a spec can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI file on disk (.json, .yaml, or .yml)"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content"`
	Format  string `json:"format,omitempty"  jsonschema:"Format of inline content: json or yaml (default yaml, which also decodes JSON)"`
}

// resolve loads the document from whichever input was provided. File input
// picks its format from the extension; inline content defaults to YAML
// since the YAML decoder accepts JSON documents too.
func (s specInput) resolve() (*parser.Document, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if s.File != "" {
		if s.Format != "" {
			return nil, fmt.Errorf("format applies to inline content only; file input picks the format from its extension")
		}
		return parser.LoadWithOptions(parser.WithFilePath(s.File))
	}

	// Enforce inline content size limit.
	if len(s.Content) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SWAGGERDOCS_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	format := parser.SourceFormatYAML
	switch strings.ToLower(s.Format) {
	case "", "yaml", "yml":
	case "json":
		format = parser.SourceFormatJSON
	default:
		return nil, fmt.Errorf("invalid format %q: must be json or yaml", s.Format)
	}
	return parser.LoadWithOptions(
		parser.WithBytes([]byte(s.Content)),
		parser.WithFormat(format),
	)
}
