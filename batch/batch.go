package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/GAKiknadze/swagger-to-docs/analyzer"
	"github.com/GAKiknadze/swagger-to-docs/parser"
	"github.com/GAKiknadze/swagger-to-docs/specerrors"
	"github.com/GAKiknadze/swagger-to-docs/validator"
)

// DefaultWorkers bounds concurrent file processing when WithWorkers is
// not given.
const DefaultWorkers = 4

// Option is a functional option for Scan.
type Option func(*scanConfig) error

// scanConfig holds the scan configuration.
type scanConfig struct {
	workers         int
	includeWarnings bool
	logger          parser.Logger
}

// log returns the configured logger, or a no-op logger if none is set.
func (cfg *scanConfig) log() parser.Logger {
	if cfg.logger != nil {
		return cfg.logger
	}
	return parser.NopLogger{}
}

// WithWorkers bounds the number of files processed concurrently.
func WithWorkers(n int) Option {
	return func(cfg *scanConfig) error {
		if n < 1 {
			return &specerrors.ConfigError{Option: "WithWorkers", Message: "worker count must be at least 1"}
		}
		cfg.workers = n
		return nil
	}
}

// WithIncludeWarnings controls whether per-file validation collects
// best-practice warnings. Defaults to true.
func WithIncludeWarnings(include bool) Option {
	return func(cfg *scanConfig) error {
		cfg.includeWarnings = include
		return nil
	}
}

// WithLogger sets the structured logger used across the scan.
func WithLogger(l parser.Logger) Option {
	return func(cfg *scanConfig) error {
		cfg.logger = l
		return nil
	}
}

// Scan processes every OpenAPI document in dir and reports per-file
// outcomes in file name order, regardless of completion order. Load
// failures are recorded in the report, never returned: the error is
// non-nil only for an unusable directory, invalid options, or a
// cancelled context.
func Scan(ctx context.Context, dir string, opts ...Option) (*Report, error) {
	cfg := scanConfig{workers: DefaultWorkers, includeWarnings: true}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("batch: invalid options: %w", err)
		}
	}

	paths, err := discover(dir)
	if err != nil {
		return nil, err
	}
	cfg.log().Info("scanning directory", "dir", dir, "files", len(paths), "workers", cfg.workers)

	report := &Report{Dir: dir, Files: make([]FileResult, len(paths))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Files[i] = scanFile(path, &cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: scan aborted: %w", err)
	}
	return report, nil
}

// discover lists the OpenAPI document files in dir, sorted by name.
func discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("batch: %w", &specerrors.NotFoundError{Path: dir})
		}
		return nil, fmt.Errorf("batch: failed to read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".json", ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// scanFile runs one file through load, validate, and statistics. All
// failures land in the result.
func scanFile(path string, cfg *scanConfig) FileResult {
	res := FileResult{Path: path}

	loader := parser.New()
	loader.Logger = cfg.logger
	doc, err := loader.Load(path)
	if err != nil {
		cfg.log().Warn("skipping file", "path", path, "error", err)
		res.Err = err
		return res
	}

	v := validator.New()
	v.IncludeWarnings = cfg.includeWarnings
	v.Logger = cfg.logger
	res.Result = v.ValidateDocument(doc)

	a := analyzer.New(doc)
	a.Logger = cfg.logger
	stats := a.Statistics()
	res.Statistics = &stats

	cfg.log().Debug("scanned file",
		"path", path,
		"valid", res.Result.Valid,
		"endpoints", stats.TotalEndpoints)
	return res
}
