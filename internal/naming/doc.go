// Package naming derives file-safe and display names from API titles
// and tags.
//
// SanitizeFileName turns a title like "Petstore API" into a stem like
// "petstore_api" for default export paths. DisplayTitle goes the other
// way, turning tags into human-readable group headers.
//
// These functions are used for:
//   - cmd/swaggerdocs: default output file names and endpoint group headers
//   - mcpserver: default collection export names
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
