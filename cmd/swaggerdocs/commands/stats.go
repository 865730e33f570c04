package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/GAKiknadze/swagger-to-docs/analyzer"
)

// StatsFlags contains flags for the stats command
type StatsFlags struct {
	Format  string
	Quiet   bool
	Verbose bool
}

// SetupStatsFlags creates and configures a FlagSet for the stats command.
// Returns the FlagSet and a StatsFlags struct with bound flag variables.
func SetupStatsFlags() (*flag.FlagSet, *StatsFlags) {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	flags := &StatsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress the header block")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress the header block")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: swaggerdocs stats [flags] <file|->\n\n")
		Writef(fs.Output(), "Summarize an OpenAPI specification: endpoint, method, tag, schema, and\n")
		Writef(fs.Output(), "security scheme counts.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  swaggerdocs stats openapi.yaml\n")
		Writef(fs.Output(), "  swaggerdocs stats --format json openapi.yaml | jq '.total_endpoints'\n")
		Writef(fs.Output(), "  cat swagger.json | swaggerdocs stats -\n")
	}

	return fs, flags
}

// HandleStats executes the stats command
func HandleStats(args []string) error {
	fs, flags := SetupStatsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("stats command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	logger := newLogger(flags.Verbose)
	doc, err := loadSpec(specPath, logger)
	if err != nil {
		return fmt.Errorf("loading specification: %w", err)
	}

	a := analyzer.New(doc)
	a.Logger = logger
	stats := a.Statistics()

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(stats, flags.Format)
	}

	if !flags.Quiet {
		Writef(os.Stdout, "Specification: %s\n\n", FormatSpecPath(specPath))
	}
	Writef(os.Stdout, "Title:            %s\n", stats.Title)
	Writef(os.Stdout, "Version:          %s\n", stats.Version)
	Writef(os.Stdout, "Total Endpoints:  %d\n", stats.TotalEndpoints)
	Writef(os.Stdout, "Schemas:          %d\n", stats.Schemas)
	Writef(os.Stdout, "Security Schemes: %d\n", stats.SecuritySchemes)

	if len(stats.Methods) > 0 {
		Writef(os.Stdout, "\nMethods:\n")
		// Present in the canonical method order rather than map order.
		for _, method := range analyzer.MethodOrder {
			if count, ok := stats.Methods[method]; ok {
				Writef(os.Stdout, "  %-8s %d\n", method, count)
			}
		}
	}

	if len(stats.Tags) > 0 {
		Writef(os.Stdout, "\nTags:\n")
		tags := make([]string, 0, len(stats.Tags))
		for tag := range stats.Tags {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			Writef(os.Stdout, "  %-20s %d\n", tag, stats.Tags[tag])
		}
	}

	return nil
}
