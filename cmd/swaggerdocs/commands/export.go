package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/GAKiknadze/swagger-to-docs/analyzer"
	"github.com/GAKiknadze/swagger-to-docs/export"
	"github.com/GAKiknadze/swagger-to-docs/internal/naming"
)

// Export format constants
const (
	ExportFormatCSV     = "csv"
	ExportFormatStats   = "stats"
	ExportFormatPostman = "postman"
)

// ExportFlags contains flags for the export command
type ExportFlags struct {
	Format  string
	Output  string
	Quiet   bool
	Verbose bool
}

// SetupExportFlags creates and configures a FlagSet for the export command.
// Returns the FlagSet and an ExportFlags struct with bound flag variables.
func SetupExportFlags() (*flag.FlagSet, *ExportFlags) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	flags := &ExportFlags{}

	fs.StringVar(&flags.Format, "format", ExportFormatCSV, "export format: csv, stats, or postman")
	fs.StringVar(&flags.Output, "o", "", "output file path ('-' for stdout; default derived from the API title)")
	fs.StringVar(&flags.Output, "output", "", "output file path ('-' for stdout; default derived from the API title)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no confirmation message")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no confirmation message")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: swaggerdocs export [flags] <file|->\n\n")
		Writef(fs.Output(), "Export endpoints (csv), statistics (stats), or a Postman-style request\n")
		Writef(fs.Output(), "collection (postman) from an OpenAPI specification.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExport Formats:\n")
		Writef(fs.Output(), "  csv      endpoint table: Method,Path,Summary,Tags,Deprecated\n")
		Writef(fs.Output(), "  stats    statistics JSON: totals per method, tag, schema\n")
		Writef(fs.Output(), "  postman  Postman-style collection with a {{base_url}} variable\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  swaggerdocs export openapi.yaml\n")
		Writef(fs.Output(), "  swaggerdocs export --format csv -o endpoints.csv openapi.yaml\n")
		Writef(fs.Output(), "  swaggerdocs export --format postman swagger.json\n")
		Writef(fs.Output(), "  swaggerdocs export --format stats -o - openapi.yaml | jq '.methods'\n")
	}

	return fs, flags
}

// ValidateExportFormat validates an export format and returns an error if invalid.
func ValidateExportFormat(format string) error {
	if format != ExportFormatCSV && format != ExportFormatStats && format != ExportFormatPostman {
		return fmt.Errorf("invalid export format '%s'. Valid formats: %s, %s, %s",
			format, ExportFormatCSV, ExportFormatStats, ExportFormatPostman)
	}
	return nil
}

// DefaultExportPath derives the output file name from the API title, in
// the same shape the interactive exports used: <title>_endpoints.csv,
// <title>_stats.json, or <title>_postman.json.
func DefaultExportPath(title, format string) string {
	stem := naming.SanitizeFileName(title)
	if stem == "" {
		stem = "api"
	}
	switch format {
	case ExportFormatCSV:
		return stem + "_endpoints.csv"
	case ExportFormatStats:
		return stem + "_stats.json"
	default:
		return stem + "_postman.json"
	}
}

// HandleExport executes the export command
func HandleExport(args []string) error {
	fs, flags := SetupExportFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("export command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if err := ValidateExportFormat(flags.Format); err != nil {
		return err
	}

	logger := newLogger(flags.Verbose)
	doc, err := loadSpec(specPath, logger)
	if err != nil {
		return fmt.Errorf("loading specification: %w", err)
	}

	a := analyzer.New(doc)
	a.Logger = logger
	ex := export.New(a)
	ex.Logger = logger

	outPath := flags.Output
	if outPath == "" {
		outPath = DefaultExportPath(a.Statistics().Title, flags.Format)
	}

	if outPath == StdinFilePath {
		switch flags.Format {
		case ExportFormatCSV:
			return ex.EndpointsCSV(os.Stdout)
		case ExportFormatStats:
			return ex.StatisticsJSON(os.Stdout)
		default:
			return ex.CollectionJSON(os.Stdout)
		}
	}

	switch flags.Format {
	case ExportFormatCSV:
		err = ex.WriteEndpointsCSV(outPath)
	case ExportFormatStats:
		err = ex.WriteStatistics(outPath)
	default:
		err = ex.WriteCollection(outPath)
	}
	if err != nil {
		return fmt.Errorf("exporting %s: %w", flags.Format, err)
	}

	if !flags.Quiet {
		Writef(os.Stderr, "Exported %s to %s\n", flags.Format, outPath)
	}
	return nil
}
