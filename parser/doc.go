// Package parser loads OpenAPI Specification documents into a generic,
// order-preserving document tree.
//
// The loader reads JSON and YAML sources and picks the decoder from the
// file extension alone (.json is parsed as strict JSON, .yaml and .yml as
// YAML); there is no content sniffing. Both formats decode into the same
// Node tree, which preserves object key order as declared in the source so
// downstream consumers can honor document order.
//
// # Quick Start
//
// Load a file:
//
//	doc, err := parser.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("version:", doc.Version())
//
// Or use functional options to load from memory:
//
//	doc, err := parser.LoadWithOptions(
//		parser.WithBytes(data),
//		parser.WithFormat(parser.SourceFormatJSON),
//	)
//
// # Document Tree
//
// A loaded Document owns a tree of Node values. Each Node is one of
// object, array, string, number, bool, or null, reported by Kind().
// Accessors are nil-safe and return optional values instead of panicking
// on missing keys:
//
//	title, ok := doc.Root().Member("info").Member("title").Str()
//
// Documents are immutable once loaded: nothing in this package mutates a
// tree after Load returns, and callers are expected to treat it the same
// way. That makes concurrent reads of one Document safe without locking.
//
// # Reference Resolution
//
// Local $ref pointers ("#/components/schemas/Pet") resolve with
// Document.Resolve, and $ref chains with Document.ResolveNode. A pointer
// whose target is missing fails with specerrors.ErrBrokenRef; a chain that
// revisits a pointer already being resolved fails with
// specerrors.ErrRefCycle. Resolution is read-only and the cycle-tracking
// stack is local to each call. External (multi-file) references are not
// supported and report a broken reference.
//
// # Errors
//
// Load failures are reported through the specerrors taxonomy: a missing
// file is specerrors.ErrNotFound, malformed input is specerrors.ErrParse
// (with line/column when the decoder provides them), and an unrecognized
// extension is specerrors.ErrUnsupportedFormat. Structural problems inside
// a well-formed document are not load errors; the validator package
// reports those as data.
package parser
