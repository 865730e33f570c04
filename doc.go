// Package swaggertodocs provides tools for turning OpenAPI/Swagger
// specifications into documentation-ready data.
//
// swagger-to-docs parses OpenAPI 2.x and 3.x documents, checks their
// structure, extracts a stable endpoint model, and exports that model in
// formats documentation pipelines consume: a CSV endpoint table, a
// statistics JSON object, and a Postman-style request collection.
//
// # Overview
//
// The library consists of five primary packages:
//
//   - parser: Load JSON/YAML documents into an order-preserving tree and
//     resolve local $ref pointers
//   - validator: Check the minimal structure a document must have
//   - analyzer: Extract endpoints, group them by tag, and derive statistics
//   - export: Render the extracted model as CSV, statistics JSON, or a
//     request collection
//   - batch: Scan a directory of documents and summarize each one
//
// Data flows strictly downward: the parser loads a Document, the validator
// and analyzer read it, and the exporters read only the analyzer's model.
// Nothing downstream of the parser touches raw bytes again.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/GAKiknadze/swagger-to-docs
//
// # Quick Start
//
// Load and validate a specification:
//
//	import (
//		"github.com/GAKiknadze/swagger-to-docs/parser"
//		"github.com/GAKiknadze/swagger-to-docs/validator"
//	)
//
//	doc, err := parser.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := validator.New().ValidateDocument(doc)
//	if !result.Valid {
//		for _, issue := range result.Errors {
//			fmt.Println(issue)
//		}
//	}
//
// Extract endpoints and statistics:
//
//	import "github.com/GAKiknadze/swagger-to-docs/analyzer"
//
//	a := analyzer.New(doc)
//	for _, e := range a.Extract() {
//		fmt.Printf("%s %s - %s\n", e.Method, e.Path, e.Summary)
//	}
//	stats := a.Statistics()
//	fmt.Printf("%d endpoints across %d tags\n", stats.TotalEndpoints, len(stats.Tags))
//
// Export the model:
//
//	import "github.com/GAKiknadze/swagger-to-docs/export"
//
//	ex := export.New(a)
//	if err := ex.WriteEndpointsCSV("endpoints.csv"); err != nil {
//		log.Fatal(err)
//	}
//	if err := ex.WriteCollection("collection.json"); err != nil {
//		log.Fatal(err)
//	}
//
// # Document Model
//
// The parser does not decode into version-specific structs. It builds a
// generic Node tree (object/array/string/number/bool/null) that preserves
// object key order as written in the source, because extraction order is
// document order. Accessors are nil-safe and report missing values through
// (value, ok) pairs:
//
//	title, ok := doc.Root().Member("info").Member("title").Str()
//
// Local references ("#/components/schemas/Pet") resolve on demand through
// Document.Resolve and Document.ResolveNode; a broken pointer or a
// reference cycle is reported per lookup and never aborts extraction of
// the rest of the document.
//
// # Batch Processing
//
// The batch package processes a directory of specifications with bounded
// concurrency, isolating failures per file:
//
//	report, err := batch.Scan(ctx, "./specs", batch.WithWorkers(8))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(report.Totals())
//
// # Error Handling
//
// All packages follow consistent error handling patterns:
//
//   - Load failures (missing file, malformed input, unsupported extension)
//     are returned as errors matching the specerrors sentinels
//   - Structural validation problems are data in validator.Result, never
//     error values
//   - Reference failures (specerrors.ErrBrokenRef, specerrors.ErrRefCycle)
//     are scoped to the lookup that hit them
//   - Export write failures wrap specerrors.ErrWrite
//
// Use errors.Is with the specerrors sentinels to branch on categories, and
// errors.As with the structured types for details such as line/column.
//
// # Concurrency
//
// Documents are immutable once loaded, and no package keeps shared mutable
// state between calls. Processing many documents concurrently requires no
// locking: give each goroutine its own Document. Within one document,
// reference resolution tracks its cycle stack per call, so concurrent
// lookups are safe too.
//
// # Command-Line Interface
//
// In addition to the library packages, swagger-to-docs provides a
// command-line interface:
//
//	# Validate a spec
//	swaggerdocs validate openapi.yaml
//
//	# Show statistics
//	swaggerdocs stats openapi.yaml
//
//	# List endpoints, filtered by tag
//	swaggerdocs endpoints --tag pets openapi.yaml
//
//	# Export the endpoint table as CSV
//	swaggerdocs export --format csv openapi.yaml
//
//	# Scan a directory of specs
//	swaggerdocs scan ./specs
//
// Install the CLI:
//
//	go install github.com/GAKiknadze/swagger-to-docs/cmd/swaggerdocs@latest
//
// # MCP Server
//
// The swaggerdocs mcp command runs a Model Context Protocol server over
// stdio, exposing validation, statistics, endpoint queries, schema lookup,
// and the exporters as tools for LLM-driven documentation workflows.
// Defaults are configurable through SWAGGERDOCS_* environment variables.
//
// # Additional Resources
//
//   - OpenAPI Specification: https://spec.openapis.org
//   - Go Package Documentation: https://pkg.go.dev/github.com/GAKiknadze/swagger-to-docs
package swaggertodocs
