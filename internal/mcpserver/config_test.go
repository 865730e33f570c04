package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearSwaggerdocsEnv clears all SWAGGERDOCS_* env vars to isolate tests
// from the ambient environment.
func clearSwaggerdocsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SWAGGERDOCS_LIST_LIMIT", "SWAGGERDOCS_MAX_LIMIT",
		"SWAGGERDOCS_MAX_INLINE_SIZE", "SWAGGERDOCS_INCLUDE_WARNINGS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearSwaggerdocsEnv(t)

	c := loadConfig()

	assert.Equal(t, 50, c.ListLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.Equal(t, 10*1024*1024, c.MaxInlineSize)
	assert.True(t, c.IncludeWarnings)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearSwaggerdocsEnv(t)
	t.Setenv("SWAGGERDOCS_LIST_LIMIT", "25")
	t.Setenv("SWAGGERDOCS_MAX_LIMIT", "100")
	t.Setenv("SWAGGERDOCS_MAX_INLINE_SIZE", "5242880")
	t.Setenv("SWAGGERDOCS_INCLUDE_WARNINGS", "false")

	c := loadConfig()

	assert.Equal(t, 25, c.ListLimit)
	assert.Equal(t, 100, c.MaxLimit)
	assert.Equal(t, 5242880, c.MaxInlineSize)
	assert.False(t, c.IncludeWarnings)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearSwaggerdocsEnv(t)
	t.Setenv("SWAGGERDOCS_LIST_LIMIT", "banana")
	t.Setenv("SWAGGERDOCS_MAX_LIMIT", "0")
	t.Setenv("SWAGGERDOCS_MAX_INLINE_SIZE", "-5")
	t.Setenv("SWAGGERDOCS_INCLUDE_WARNINGS", "maybe")

	c := loadConfig()

	// Invalid values should fall back to defaults.
	assert.Equal(t, 50, c.ListLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.Equal(t, 10*1024*1024, c.MaxInlineSize)
	assert.True(t, c.IncludeWarnings)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearSwaggerdocsEnv(t)
	// Only override some values; others stay at defaults.
	t.Setenv("SWAGGERDOCS_LIST_LIMIT", "10")

	c := loadConfig()

	assert.Equal(t, 10, c.ListLimit)
	// Unchanged defaults:
	assert.Equal(t, 500, c.MaxLimit)
	assert.True(t, c.IncludeWarnings)
}
