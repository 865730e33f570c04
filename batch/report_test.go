package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSummary(t *testing.T) {
	report, err := Scan(context.Background(), scanDir(t))
	require.NoError(t, err)

	summary := report.Summary()
	assert.Equal(t, report.Dir, summary.Dir)
	assert.Equal(t, report.Totals(), summary.Totals)
	require.Len(t, summary.Files, 4)

	alpha := summary.Files[0]
	assert.True(t, alpha.Valid)
	assert.Equal(t, "Test API", alpha.Title)
	assert.Equal(t, "3.0.3", alpha.Version)
	assert.Equal(t, 1, alpha.Endpoints)
	assert.Empty(t, alpha.Errors)
	assert.Contains(t, alpha.Warnings, "info.description: Missing 'info.description'")

	delta := summary.Files[2]
	assert.False(t, delta.Valid)
	assert.NotEmpty(t, delta.LoadError)
	assert.Empty(t, delta.Errors)

	gamma := summary.Files[3]
	assert.False(t, gamma.Valid)
	assert.Equal(t, []string{"info: Missing 'info' object"}, gamma.Errors)
	assert.Empty(t, gamma.LoadError)
}

func TestReportWriteJSON(t *testing.T) {
	report, err := Scan(context.Background(), scanDir(t))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, report.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 4, decoded.Totals.Files)
	assert.Equal(t, 1, decoded.Totals.Failed)
	require.Len(t, decoded.Files, 4)
	assert.Equal(t, "alpha.yaml", filepath.Base(decoded.Files[0].Path))
}

func TestIssueLine(t *testing.T) {
	report, err := Scan(context.Background(), scanDir(t))
	require.NoError(t, err)

	// Bare messages stay bare, pathed messages get the path prefix.
	gamma := report.Files[3]
	require.Len(t, gamma.Result.Errors, 1)
	assert.Equal(t, "info: Missing 'info' object", issueLine(gamma.Result.Errors[0]))
}
