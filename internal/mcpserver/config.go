package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// List tool defaults.
	ListLimit int
	MaxLimit  int

	// Input limits.
	MaxInlineSize int

	// Validate tool defaults.
	IncludeWarnings bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SWAGGERDOCS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ListLimit:       envInt("SWAGGERDOCS_LIST_LIMIT", 50),
		MaxLimit:        envInt("SWAGGERDOCS_MAX_LIMIT", 500),
		MaxInlineSize:   envInt("SWAGGERDOCS_MAX_INLINE_SIZE", 10*1024*1024),
		IncludeWarnings: envBool("SWAGGERDOCS_INCLUDE_WARNINGS", true),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
