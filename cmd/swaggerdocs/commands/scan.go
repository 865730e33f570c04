package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/GAKiknadze/swagger-to-docs/batch"
)

// ScanFlags contains flags for the scan command
type ScanFlags struct {
	Workers    int
	NoWarnings bool
	Format     string
	Output     string
	Quiet      bool
	Verbose    bool
}

// SetupScanFlags creates and configures a FlagSet for the scan command.
// Returns the FlagSet and a ScanFlags struct with bound flag variables.
func SetupScanFlags() (*flag.FlagSet, *ScanFlags) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	flags := &ScanFlags{}

	fs.IntVar(&flags.Workers, "workers", batch.DefaultWorkers, "number of files processed concurrently")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "also write the JSON report to this file")
	fs.StringVar(&flags.Output, "output", "", "also write the JSON report to this file")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: tab-separated rows without headers or totals")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: tab-separated rows without headers or totals")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: swaggerdocs scan [flags] <directory>\n\n")
		Writef(fs.Output(), "Validate and summarize every .json, .yaml, and .yml specification in a\n")
		Writef(fs.Output(), "directory. Files are processed concurrently; results keep listing order.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  swaggerdocs scan ./specs\n")
		Writef(fs.Output(), "  swaggerdocs scan --workers 8 --format json ./specs\n")
		Writef(fs.Output(), "  swaggerdocs scan -o report.json ./specs\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Every file loaded and validated\n")
		Writef(fs.Output(), "  1    At least one file was invalid or failed to load\n")
	}

	return fs, flags
}

// HandleScan executes the scan command
func HandleScan(args []string) error {
	fs, flags := SetupScanFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("scan command requires exactly one directory path")
	}

	dir := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	logger := newLogger(flags.Verbose)
	report, err := batch.Scan(context.Background(), dir,
		batch.WithWorkers(flags.Workers),
		batch.WithIncludeWarnings(!flags.NoWarnings),
		batch.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("scanning directory: %w", err)
	}

	if flags.Output != "" {
		if err := report.WriteJSON(flags.Output); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		if !flags.Quiet {
			Writef(os.Stderr, "Report written to %s\n", flags.Output)
		}
	}

	totals := report.Totals()

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(report.Summary(), flags.Format); err != nil {
			return err
		}
		if !totals.Healthy() {
			os.Exit(1)
		}
		return nil
	}

	if len(report.Files) == 0 {
		if !flags.Quiet {
			Writef(os.Stderr, "No specification files found in %s\n", dir)
		}
		return nil
	}

	RenderSummaryTable(os.Stdout, []string{"STATUS", "FILE", "TITLE", "ENDPOINTS", "ISSUES"}, scanTableRows(report), flags.Quiet)

	if !flags.Quiet {
		Writef(os.Stdout, "\n%d file(s): %d valid, %d invalid, %d failed, %d endpoint(s)\n",
			totals.Files, totals.Valid, totals.Invalid, totals.Failed, totals.Endpoints)
	}

	if !totals.Healthy() {
		os.Exit(1)
	}
	return nil
}

// scanTableRows flattens the report for table rendering. Failed files
// show the load error in the ISSUES column.
func scanTableRows(report *batch.Report) [][]string {
	rows := make([][]string, 0, len(report.Files))
	for i := range report.Files {
		f := &report.Files[i]
		if f.Failed() {
			rows = append(rows, []string{"failed", f.Path, "", "0", f.Err.Error()})
			continue
		}

		status := "valid"
		if !f.Result.Valid {
			status = "invalid"
		}
		issues := ""
		if n := len(f.Result.Errors) + len(f.Result.Warnings); n > 0 {
			issues = fmt.Sprintf("%d error(s), %d warning(s)", len(f.Result.Errors), len(f.Result.Warnings))
		}
		rows = append(rows, []string{
			status,
			f.Path,
			f.Statistics.Title,
			fmt.Sprintf("%d", f.Statistics.TotalEndpoints),
			issues,
		})
	}
	return rows
}
