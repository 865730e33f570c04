package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvHeader is the fixed column layout of the endpoint table.
var csvHeader = []string{"Method", "Path", "Summary", "Tags", "Deprecated"}

// EndpointsCSV writes the endpoint table to w: one row per endpoint
// sorted by path then method, tags joined with ", ", deprecation as
// "true"/"false". The header is written even when the document has no
// endpoints.
func (ex *Exporter) EndpointsCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: failed to write CSV header: %w", err)
	}

	endpoints := ex.analyzer.ListAll()
	for _, e := range endpoints {
		row := []string{
			e.Method,
			e.Path,
			e.Summary,
			strings.Join(e.Tags, ", "),
			strconv.FormatBool(e.Deprecated),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: failed to write CSV row for %s %s: %w", e.Method, e.Path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: failed to flush CSV: %w", err)
	}

	ex.log().Debug("rendered endpoint CSV", "rows", len(endpoints))
	return nil
}

// WriteEndpointsCSV renders the endpoint table into the file at path.
func (ex *Exporter) WriteEndpointsCSV(path string) error {
	return ex.writeFile(path, ex.EndpointsCSV)
}
