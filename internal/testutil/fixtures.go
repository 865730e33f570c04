// Package testutil provides shared fixtures and file helpers for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MinimalOAS3YAML is the smallest structurally valid OAS 3.x document.
const MinimalOAS3YAML = `openapi: 3.0.3
info:
  title: Test API
  version: 1.0.0
paths: {}
`

// MinimalOAS2JSON is the smallest structurally valid OAS 2.0 document.
const MinimalOAS2JSON = `{
  "swagger": "2.0",
  "info": {
    "title": "Test API",
    "version": "1.0.0"
  },
  "paths": {}
}
`

// SinglePathYAML declares one GET operation, for tests that need an
// endpoint without caring about its details.
const SinglePathYAML = `openapi: 3.0.3
info:
  title: Test API
  version: 1.0.0
paths:
  /pets:
    get:
      summary: List pets
      operationId: listPets
      tags:
        - pets
      responses:
        '200':
          description: OK
`

// WriteTempFile writes content to name inside a fresh temporary
// directory and returns the full path. The file is cleaned up when the
// test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file %s: %v", name, err)
	}
	return path
}

// WriteTempDir writes every named file into one fresh temporary
// directory and returns the directory path.
func WriteTempDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatalf("Failed to write temporary file %s: %v", name, err)
		}
	}
	return dir
}
