package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/GAKiknadze/swagger-to-docs/analyzer"
	"github.com/GAKiknadze/swagger-to-docs/internal/fileutil"
	"github.com/GAKiknadze/swagger-to-docs/specerrors"
	"github.com/GAKiknadze/swagger-to-docs/validator"
)

// FileResult is the outcome for one scanned file.
type FileResult struct {
	// Path is the file path handed to the loader
	Path string
	// Result is the validation outcome; nil when the file failed to load
	Result *validator.Result
	// Statistics summarizes the document; nil when the file failed to load
	Statistics *analyzer.Statistics
	// Err is the load failure, if any
	Err error
}

// Failed reports whether the file could not be processed at all.
func (r *FileResult) Failed() bool {
	return r.Err != nil
}

// Report holds per-file outcomes in file name order.
type Report struct {
	// Dir is the scanned directory
	Dir string
	// Files holds one result per discovered file
	Files []FileResult
}

// Totals aggregates a report.
type Totals struct {
	// Files is the number of discovered files
	Files int `json:"files" yaml:"files"`
	// Valid counts files that loaded and validated cleanly
	Valid int `json:"valid" yaml:"valid"`
	// Invalid counts files that loaded but have validation errors
	Invalid int `json:"invalid" yaml:"invalid"`
	// Failed counts files that could not be loaded at all
	Failed int `json:"failed" yaml:"failed"`
	// Endpoints sums endpoint counts across every loaded file
	Endpoints int `json:"endpoints" yaml:"endpoints"`
}

// Healthy reports whether every file loaded and validated.
func (t Totals) Healthy() bool {
	return t.Failed == 0 && t.Invalid == 0
}

// Totals aggregates the report for display.
func (r *Report) Totals() Totals {
	t := Totals{Files: len(r.Files)}
	for i := range r.Files {
		f := &r.Files[i]
		if f.Failed() {
			t.Failed++
			continue
		}
		if f.Statistics != nil {
			t.Endpoints += f.Statistics.TotalEndpoints
		}
		if f.Result != nil && f.Result.Valid {
			t.Valid++
		} else {
			t.Invalid++
		}
	}
	return t
}

// Summary is the structured rendering of a report.
type Summary struct {
	Dir    string        `json:"dir" yaml:"dir"`
	Files  []FileSummary `json:"files" yaml:"files"`
	Totals Totals        `json:"totals" yaml:"totals"`
}

// FileSummary flattens one file's outcome for display.
type FileSummary struct {
	Path      string   `json:"path" yaml:"path"`
	Valid     bool     `json:"valid" yaml:"valid"`
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Version   string   `json:"version,omitempty" yaml:"version,omitempty"`
	Endpoints int      `json:"endpoints" yaml:"endpoints"`
	Errors    []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	LoadError string   `json:"load_error,omitempty" yaml:"load_error,omitempty"`
}

// Summary flattens the report into its display form.
func (r *Report) Summary() Summary {
	s := Summary{Dir: r.Dir, Files: make([]FileSummary, 0, len(r.Files)), Totals: r.Totals()}
	for i := range r.Files {
		f := &r.Files[i]
		fs := FileSummary{Path: f.Path}
		if f.Err != nil {
			fs.LoadError = f.Err.Error()
			s.Files = append(s.Files, fs)
			continue
		}

		fs.Valid = f.Result.Valid
		fs.Version = f.Result.Version
		fs.Title = f.Statistics.Title
		fs.Endpoints = f.Statistics.TotalEndpoints
		for _, issue := range f.Result.Errors {
			fs.Errors = append(fs.Errors, issueLine(issue))
		}
		for _, issue := range f.Result.Warnings {
			fs.Warnings = append(fs.Warnings, issueLine(issue))
		}
		s.Files = append(s.Files, fs)
	}
	return s
}

// issueLine renders an issue as "path: message", without severity marks.
func issueLine(i validator.Issue) string {
	if i.Path != "" {
		return i.Path + ": " + i.Message
	}
	return i.Message
}

// WriteJSON writes the report summary to path as indented JSON.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r.Summary(), "", "  ")
	if err != nil {
		return fmt.Errorf("batch: failed to encode report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("batch: failed to write report: %w",
			&specerrors.WriteError{Path: path, Cause: err})
	}
	return nil
}
