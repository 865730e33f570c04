package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/GAKiknadze/swagger-to-docs/analyzer"
	"github.com/GAKiknadze/swagger-to-docs/internal/fileutil"
	"github.com/GAKiknadze/swagger-to-docs/parser"
	"github.com/GAKiknadze/swagger-to-docs/specerrors"
)

// Exporter renders one document's extracted data.
type Exporter struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger parser.Logger

	analyzer *analyzer.Analyzer
}

// New creates an Exporter reading from the given analyzer.
func New(a *analyzer.Analyzer) *Exporter {
	return &Exporter{analyzer: a}
}

// log returns the configured logger, or a no-op logger if none is set.
func (ex *Exporter) log() parser.Logger {
	if ex.Logger != nil {
		return ex.Logger
	}
	return parser.NopLogger{}
}

// writeFile renders into memory and writes the result in one shot.
// Failures come back wrapped as WriteError.
func (ex *Exporter) writeFile(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: failed to create output directory: %w",
				&specerrors.WriteError{Path: path, Cause: err})
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("export: failed to write file: %w",
			&specerrors.WriteError{Path: path, Cause: err})
	}

	ex.log().Debug("wrote export file", "path", path, "bytes", buf.Len())
	return nil
}

// encodeJSON writes v as two-space indented UTF-8 JSON. HTML escaping is
// off so titles and descriptions survive byte for byte.
func encodeJSON(w io.Writer, v any, what string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("export: failed to encode %s: %w", what, err)
	}
	return nil
}
