package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GAKiknadze/swagger-to-docs/internal/testutil"
	"github.com/GAKiknadze/swagger-to-docs/specerrors"
)

// scanDir builds a directory with one file per outcome class: two clean
// documents, one that validates with errors, and one that cannot parse.
func scanDir(t *testing.T) string {
	t.Helper()
	dir := testutil.WriteTempDir(t, map[string]string{
		"alpha.yaml": testutil.SinglePathYAML,
		"beta.json":  testutil.MinimalOAS2JSON,
		"delta.json": `{"openapi": "3.0.0",`,
		"gamma.yaml": "openapi: 3.0.3\npaths: {}\n",
		"notes.txt":  "not a spec",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	return dir
}

func TestScan(t *testing.T) {
	dir := scanDir(t)

	report, err := Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, report.Files, 4) // .txt and subdirectory are ignored
	assert.Equal(t, dir, report.Dir)

	// Results follow file name order.
	var names []string
	for _, f := range report.Files {
		names = append(names, filepath.Base(f.Path))
	}
	assert.Equal(t, []string{"alpha.yaml", "beta.json", "delta.json", "gamma.yaml"}, names)

	alpha := report.Files[0]
	require.NotNil(t, alpha.Result)
	assert.True(t, alpha.Result.Valid)
	require.NotNil(t, alpha.Statistics)
	assert.Equal(t, 1, alpha.Statistics.TotalEndpoints)
	assert.False(t, alpha.Failed())

	beta := report.Files[1]
	require.NotNil(t, beta.Result)
	assert.True(t, beta.Result.Valid)
	assert.Equal(t, "2.0", beta.Result.Version)

	delta := report.Files[2]
	assert.True(t, delta.Failed())
	assert.ErrorIs(t, delta.Err, specerrors.ErrParse)
	assert.Nil(t, delta.Result)
	assert.Nil(t, delta.Statistics)

	gamma := report.Files[3]
	assert.False(t, gamma.Failed())
	require.NotNil(t, gamma.Result)
	assert.False(t, gamma.Result.Valid)
	assert.Equal(t, []string{"Missing 'info' object"}, gamma.Result.Messages())
}

func TestScanTotals(t *testing.T) {
	report, err := Scan(context.Background(), scanDir(t))
	require.NoError(t, err)

	totals := report.Totals()
	assert.Equal(t, Totals{
		Files:     4,
		Valid:     2,
		Invalid:   1,
		Failed:    1,
		Endpoints: 1,
	}, totals)
	assert.False(t, totals.Healthy())
}

func TestScanEmptyDirectory(t *testing.T) {
	report, err := Scan(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, report.Files)

	totals := report.Totals()
	assert.Zero(t, totals.Files)
	assert.True(t, totals.Healthy())
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, specerrors.ErrNotFound)
}

func TestScanInvalidWorkerCount(t *testing.T) {
	_, err := Scan(context.Background(), t.TempDir(), WithWorkers(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, specerrors.ErrConfig)
}

func TestScanCancelledContext(t *testing.T) {
	dir := testutil.WriteTempDir(t, map[string]string{
		"a.yaml": testutil.MinimalOAS3YAML,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Scan(ctx, dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanWarningsToggle(t *testing.T) {
	dir := testutil.WriteTempDir(t, map[string]string{
		"a.yaml": testutil.SinglePathYAML,
	})

	report, err := Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	// info.description is missing, so the default scan surfaces it.
	assert.NotEmpty(t, report.Files[0].Result.Warnings)

	report, err = Scan(context.Background(), dir, WithIncludeWarnings(false))
	require.NoError(t, err)
	assert.Empty(t, report.Files[0].Result.Warnings)
}

func TestScanKeepsOrderUnderConcurrency(t *testing.T) {
	files := make(map[string]string, 12)
	for i := 0; i < 12; i++ {
		files[fmt.Sprintf("spec-%02d.yaml", i)] = testutil.MinimalOAS3YAML
	}
	dir := testutil.WriteTempDir(t, files)

	report, err := Scan(context.Background(), dir, WithWorkers(8))
	require.NoError(t, err)
	require.Len(t, report.Files, 12)

	for i, f := range report.Files {
		assert.Equal(t, fmt.Sprintf("spec-%02d.yaml", i), filepath.Base(f.Path))
	}
}
