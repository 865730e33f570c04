// Command swaggerdocs inspects OpenAPI specifications for documentation
// work: validation, endpoint listing, statistics, and exports.
package main

import (
	"fmt"
	"os"

	swaggertodocs "github.com/GAKiknadze/swagger-to-docs"
	"github.com/GAKiknadze/swagger-to-docs/cmd/swaggerdocs/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("swaggerdocs v%s\n", swaggertodocs.Version())
	case "help", "-h", "--help":
		printUsage()
	case "validate":
		if err := commands.HandleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "stats":
		if err := commands.HandleStats(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "endpoints":
		if err := commands.HandleEndpoints(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "export":
		if err := commands.HandleExport(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "scan":
		if err := commands.HandleScan(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or an empty
// string when nothing is within an edit distance of 2.
func suggestCommand(input string) string {
	known := []string{"validate", "stats", "endpoints", "export", "scan", "mcp", "version", "help"}

	best := ""
	bestDist := 3
	for _, cmd := range known {
		if d := editDistance(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`swaggerdocs - OpenAPI Specification Documentation Tools

Usage:
  swaggerdocs <command> [options]

Commands:
  validate    Validate an OpenAPI specification file
  stats       Summarize an OpenAPI specification (endpoints, methods, tags)
  endpoints   List the endpoints of an OpenAPI specification
  export      Export endpoints, statistics, or a request collection
  scan        Validate and summarize every specification in a directory
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  swaggerdocs validate openapi.yaml
  swaggerdocs stats --format json openapi.yaml
  swaggerdocs endpoints --tag pets openapi.yaml
  swaggerdocs endpoints --group-by-tags openapi.yaml
  swaggerdocs export --format csv -o endpoints.csv openapi.yaml
  swaggerdocs export --format postman swagger.json
  swaggerdocs scan ./specs

Run 'swaggerdocs <command> --help' for more information on a command.`)
}
