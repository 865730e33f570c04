package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/GAKiknadze/swagger-to-docs/internal/mcpserver"
)

// HandleMCP executes the mcp command, serving tools over stdio until the
// client disconnects.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: swaggerdocs mcp\n\n")
		Writef(fs.Output(), "Run the Model Context Protocol server over stdio. The server exposes\n")
		Writef(fs.Output(), "validation, statistics, endpoint listing, schema lookup, and export\n")
		Writef(fs.Output(), "tools to MCP clients.\n\n")
		Writef(fs.Output(), "Configuration (environment variables):\n")
		Writef(fs.Output(), "  SWAGGERDOCS_LIST_LIMIT        default page size for list results (default 50)\n")
		Writef(fs.Output(), "  SWAGGERDOCS_MAX_LIMIT         hard cap on any page size (default 500)\n")
		Writef(fs.Output(), "  SWAGGERDOCS_MAX_INLINE_SIZE   inline content byte limit (default 10485760)\n")
		Writef(fs.Output(), "  SWAGGERDOCS_INCLUDE_WARNINGS  include warnings in validate_spec (default true)\n")
		Writef(fs.Output(), "\nExample client entry:\n")
		Writef(fs.Output(), "  {\"command\": \"swaggerdocs\", \"args\": [\"mcp\"]}\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	return mcpserver.Run(context.Background())
}
