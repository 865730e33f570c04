package export

import "io"

// StatisticsJSON writes the document statistics to w as two-space
// indented JSON with the keys title, version, total_endpoints, methods,
// tags, schemas, and security_schemes.
func (ex *Exporter) StatisticsJSON(w io.Writer) error {
	return encodeJSON(w, ex.analyzer.Statistics(), "statistics")
}

// WriteStatistics renders the statistics object into the file at path.
func (ex *Exporter) WriteStatistics(path string) error {
	return ex.writeFile(path, ex.StatisticsJSON)
}
