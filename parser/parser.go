package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/GAKiknadze/swagger-to-docs/specerrors"
)

// Loader reads OpenAPI documents from files, raw bytes, or readers.
type Loader struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a Loader with default settings.
func New() *Loader {
	return &Loader{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (l *Loader) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

// Load reads and decodes the document at path. The decoder is chosen by
// file extension alone: .json is parsed as strict JSON, .yaml and .yml as
// YAML. Any other extension fails with specerrors.ErrUnsupportedFormat;
// the content is never sniffed.
func (l *Loader) Load(path string) (*Document, error) {
	format := detectFormatFromPath(path)
	if format == SourceFormatUnknown {
		return nil, fmt.Errorf("parser: cannot load %s: %w (expected .json, .yaml, or .yml)",
			path, specerrors.ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("parser: %w", &specerrors.NotFoundError{Path: path})
		}
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	doc, err := decode(data, path, format)
	if err != nil {
		return nil, err
	}
	l.log().Debug("loaded document",
		"path", path, "format", string(format), "version", doc.version, "bytes", len(data))
	return doc, nil
}

// LoadBytes decodes a document from a byte slice. With no file name to
// dispatch on, the format must be given explicitly. The resulting
// Document reports a synthetic source path such as "LoadBytes.yaml".
func (l *Loader) LoadBytes(data []byte, format SourceFormat) (*Document, error) {
	return l.loadRaw(data, "LoadBytes", format)
}

// LoadReader decodes a document from r, reading it fully first. As with
// LoadBytes the format must be given explicitly.
func (l *Loader) LoadReader(r io.Reader, format SourceFormat) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read input: %w", err)
	}
	return l.loadRaw(data, "LoadReader", format)
}

// loadRaw decodes in-memory input under a synthetic source name.
func (l *Loader) loadRaw(data []byte, source string, format SourceFormat) (*Document, error) {
	var ext string
	switch format {
	case SourceFormatJSON:
		ext = ".json"
	case SourceFormatYAML:
		ext = ".yaml"
	default:
		return nil, fmt.Errorf("parser: cannot decode %s input: %w (format must be given for in-memory input)",
			source, specerrors.ErrUnsupportedFormat)
	}

	doc, err := decode(data, source+ext, format)
	if err != nil {
		return nil, err
	}
	l.log().Debug("loaded document",
		"path", doc.path, "format", string(format), "version", doc.version, "bytes", len(data))
	return doc, nil
}

// Load reads and decodes the document at path using a default Loader.
func Load(path string) (*Document, error) {
	return New().Load(path)
}

// decode turns raw bytes into a Document. JSON sources pass through a
// strict encoding/json check first: the YAML decoder that builds the tree
// accepts a superset of JSON and would otherwise mask malformed .json
// input.
func decode(data []byte, path string, format SourceFormat) (*Document, error) {
	if format == SourceFormatJSON {
		if err := checkStrictJSON(data); err != nil {
			perr := &specerrors.ParseError{Path: path, Format: string(SourceFormatJSON)}
			var syn *json.SyntaxError
			switch {
			case errors.As(err, &syn):
				perr.Line, perr.Column = offsetToLineColumn(data, syn.Offset)
				perr.Cause = err
			case errors.Is(err, io.EOF):
				perr.Message = "unexpected end of input"
			default:
				perr.Cause = err
			}
			return nil, fmt.Errorf("parser: failed to decode document: %w", perr)
		}
	}

	var yn yaml.Node
	if err := yaml.Unmarshal(data, &yn); err != nil {
		return nil, fmt.Errorf("parser: failed to decode document: %w", &specerrors.ParseError{
			Path:   path,
			Format: string(format),
			Cause:  err,
		})
	}

	root, err := buildTree(&yn)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to decode document: %w", &specerrors.ParseError{
			Path:    path,
			Format:  string(format),
			Message: "invalid document structure",
			Cause:   err,
		})
	}

	return &Document{
		path:    path,
		format:  format,
		version: detectVersion(root),
		root:    root,
	}, nil
}

// checkStrictJSON verifies that data holds exactly one well-formed JSON
// value with nothing but whitespace after it.
func checkStrictJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}

// offsetToLineColumn converts a byte offset reported by encoding/json
// into 1-based line and column numbers.
func offsetToLineColumn(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// detectVersion returns the document's declared version: the top-level
// swagger value when present, otherwise the openapi value. Only scalar
// values count. Text preserves numeric forms, so swagger: 2.0 reports
// "2.0" rather than "2".
func detectVersion(root *Node) string {
	for _, key := range []string{"swagger", "openapi"} {
		switch n := root.Member(key); n.Kind() {
		case KindString, KindNumber:
			return n.Text()
		}
	}
	return ""
}
