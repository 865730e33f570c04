// Package export renders extracted API data in interchange formats: a
// CSV endpoint table, a statistics JSON object, and a Postman-style
// request collection.
//
// Every format is available two ways: an encoder that writes to an
// io.Writer, and a Write* wrapper that renders into a file. The file
// wrappers render in memory first, so a failed render never leaves a
// truncated file behind, and create output with owner-only permissions
// because exported data can describe internal APIs.
//
// # Quick Start
//
//	doc, err := parser.Load("api.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ex := export.New(analyzer.New(doc))
//	if err := ex.WriteEndpointsCSV("endpoints.csv"); err != nil {
//		log.Fatal(err)
//	}
//
// # Formats
//
// The CSV table lists endpoints sorted by path then method under the
// fixed header Method,Path,Summary,Tags,Deprecated. The statistics
// object carries the counts computed by analyzer.Statistics with
// two-space indentation and HTML escaping disabled, so titles keep
// characters like & literally. The collection mirrors the Postman v2
// layout closely enough for import: an info header, a flat item list in
// extraction order, and a base_url variable taken from the document's
// first server URL.
package export
