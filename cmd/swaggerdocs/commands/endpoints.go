package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/GAKiknadze/swagger-to-docs/analyzer"
	"github.com/GAKiknadze/swagger-to-docs/internal/naming"
)

// EndpointsFlags contains flags for the endpoints command
type EndpointsFlags struct {
	Tag         string
	Method      string
	GroupByTags bool
	Format      string
	Quiet       bool
	Verbose     bool
}

// SetupEndpointsFlags creates and configures a FlagSet for the endpoints command.
// Returns the FlagSet and an EndpointsFlags struct with bound flag variables.
func SetupEndpointsFlags() (*flag.FlagSet, *EndpointsFlags) {
	fs := flag.NewFlagSet("endpoints", flag.ContinueOnError)
	flags := &EndpointsFlags{}

	fs.StringVar(&flags.Tag, "tag", "", "only list endpoints carrying this tag ('untagged' for the default bucket)")
	fs.StringVar(&flags.Method, "method", "", "only list endpoints using this HTTP method (e.g. get, post)")
	fs.BoolVar(&flags.GroupByTags, "group-by-tags", false, "group the listing by tag with one section per tag")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: tab-separated rows without headers, for piping")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: tab-separated rows without headers, for piping")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: swaggerdocs endpoints [flags] <file|->\n\n")
		Writef(fs.Output(), "List the endpoints of an OpenAPI specification.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  swaggerdocs endpoints openapi.yaml\n")
		Writef(fs.Output(), "  swaggerdocs endpoints --tag pets openapi.yaml\n")
		Writef(fs.Output(), "  swaggerdocs endpoints --method get --format json openapi.yaml\n")
		Writef(fs.Output(), "  swaggerdocs endpoints --group-by-tags openapi.yaml\n")
		Writef(fs.Output(), "  swaggerdocs endpoints -q openapi.yaml | cut -f2\n")
	}

	return fs, flags
}

// endpointRow is the structured rendering of one listed endpoint.
type endpointRow struct {
	Method     string   `json:"method" yaml:"method"`
	Path       string   `json:"path" yaml:"path"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary    string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Deprecated bool     `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// tagGroupOutput is the structured rendering of one tag section.
type tagGroupOutput struct {
	Tag       string        `json:"tag" yaml:"tag"`
	Title     string        `json:"title" yaml:"title"`
	Endpoints []endpointRow `json:"endpoints" yaml:"endpoints"`
}

// HandleEndpoints executes the endpoints command
func HandleEndpoints(args []string) error {
	fs, flags := SetupEndpointsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("endpoints command requires exactly one file path or '-' for stdin")
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

	if flags.GroupByTags {
		return renderEndpointGroups(a, flags)
	}
	return renderEndpointList(a, flags)
}

// matchEndpoints applies the tag and method filters.
func matchEndpoints(a *analyzer.Analyzer, flags *EndpointsFlags) []analyzer.Endpoint {
	switch {
	case flags.Tag != "" && flags.Method != "":
		return filterByMethod(a.FindByTag(flags.Tag), flags.Method)
	case flags.Tag != "":
		return a.FindByTag(flags.Tag)
	case flags.Method != "":
		return a.FindByMethod(flags.Method)
	default:
		return a.ListAll()
	}
}

// filterByMethod keeps the endpoints using the given method.
func filterByMethod(endpoints []analyzer.Endpoint, method string) []analyzer.Endpoint {
	var out []analyzer.Endpoint
	for _, e := range endpoints {
		if strings.EqualFold(e.Method, method) {
			out = append(out, e)
		}
	}
	return out
}

// renderEndpointList renders the flat endpoint listing.
func renderEndpointList(a *analyzer.Analyzer, flags *EndpointsFlags) error {
	matched := matchEndpoints(a, flags)

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		rows := make([]endpointRow, 0, len(matched))
		for _, e := range matched {
			rows = append(rows, endpointToRow(e))
		}
		return OutputStructured(rows, flags.Format)
	}

	if len(matched) == 0 {
		if !flags.Quiet {
			Writef(os.Stderr, "No endpoints matched the given filters.\n")
		}
		return nil
	}

	RenderSummaryTable(os.Stdout, endpointHeaders(), endpointTableRows(matched), flags.Quiet)
	return nil
}

// renderEndpointGroups renders one section per tag, in first-appearance
// order, applying the tag and method filters within each group.
func renderEndpointGroups(a *analyzer.Analyzer, flags *EndpointsFlags) error {
	var groups []tagGroupOutput
	for _, g := range a.GroupByTags() {
		if flags.Tag != "" && !strings.EqualFold(g.Tag, flags.Tag) {
			continue
		}
		endpoints := g.Endpoints
		if flags.Method != "" {
			endpoints = filterByMethod(endpoints, flags.Method)
		}
		if len(endpoints) == 0 {
			continue
		}

		rows := make([]endpointRow, 0, len(endpoints))
		for _, e := range endpoints {
			rows = append(rows, endpointToRow(e))
		}
		groups = append(groups, tagGroupOutput{
			Tag:       g.Tag,
			Title:     naming.DisplayTitle(g.Tag),
			Endpoints: rows,
		})
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(groups, flags.Format)
	}

	if len(groups) == 0 {
		if !flags.Quiet {
			Writef(os.Stderr, "No endpoints matched the given filters.\n")
		}
		return nil
	}

	for i, g := range groups {
		if !flags.Quiet {
			if i > 0 {
				Writef(os.Stdout, "\n")
			}
			Writef(os.Stdout, "%s (%d)\n", g.Title, len(g.Endpoints))
		}
		rows := make([][]string, 0, len(g.Endpoints))
		for _, r := range g.Endpoints {
			rows = append(rows, []string{r.Method, r.Path, strings.Join(r.Tags, ", "), r.Summary})
		}
		RenderSummaryTable(os.Stdout, endpointHeaders(), rows, flags.Quiet)
	}
	return nil
}

func endpointHeaders() []string {
	return []string{"METHOD", "PATH", "TAGS", "SUMMARY"}
}

func endpointTableRows(endpoints []analyzer.Endpoint) [][]string {
	rows := make([][]string, 0, len(endpoints))
	for _, e := range endpoints {
		rows = append(rows, []string{e.Method, e.Path, strings.Join(e.Tags, ", "), e.Summary})
	}
	return rows
}

func endpointToRow(e analyzer.Endpoint) endpointRow {
	return endpointRow{
		Method:     e.Method,
		Path:       e.Path,
		Tags:       e.Tags,
		Summary:    e.Summary,
		Deprecated: e.Deprecated,
	}
}
