// Package analyzer extracts a flat endpoint model from loaded OpenAPI
// documents and derives statistics and lookups from it.
//
// Extraction walks paths in document order and, inside each path item,
// visits methods in a fixed canonical order (MethodOrder). Entries whose
// value is not an object are skipped. The result is a []Endpoint that
// captures summaries, tags, parameters, request bodies, responses, and
// the operation's security stance. Tags are never empty: operations
// that declare none carry the UntaggedTag bucket.
//
// # Quick Start
//
//	doc, _ := parser.Load("openapi.yaml")
//	a := analyzer.New(doc)
//
//	for _, e := range a.Extract() {
//	    fmt.Printf("%s %s - %s\n", e.Method, e.Path, e.Summary)
//	}
//
//	stats := a.Statistics()
//	fmt.Println(stats.TotalEndpoints, "endpoints")
//
// # Security Stance
//
// An operation's security field is tri-state, and collapsing the states
// loses information. Endpoint.SecurityScope keeps them apart:
//
//   - SecurityInherited: no security field; the document default applies
//   - SecurityNone: security is present and empty; auth explicitly off
//   - SecurityDeclared: security lists its own requirements
//
// EffectiveSecurity resolves the stance against the document's global
// requirements.
//
// # Grouping and Fan-Out
//
// GroupByTags puts an endpoint in one group per tag, so endpoints with
// several tags appear in several groups and group sizes can sum to more
// than the endpoint total. Endpoints with no tags land in the
// UntaggedTag group. Group order follows first appearance during
// extraction.
//
// Every query re-walks the document, so results always reflect the
// Document as loaded. Callers that need the slice repeatedly should
// keep the result of Extract.
package analyzer
