package analyzer

import (
	"slices"
	"strings"

	"github.com/GAKiknadze/swagger-to-docs/parser"
)

// GroupByTags buckets endpoints by tag. A multi-tag endpoint appears in
// every one of its groups, and untagged endpoints land in UntaggedTag.
// Groups are ordered by first appearance during extraction, endpoints
// within a group keep extraction order.
func (a *Analyzer) GroupByTags() []TagGroup {
	var groups []TagGroup
	index := make(map[string]int)

	for _, e := range a.Extract() {
		for _, tag := range e.Tags {
			i, ok := index[tag]
			if !ok {
				i = len(groups)
				index[tag] = i
				groups = append(groups, TagGroup{Tag: tag})
			}
			groups[i].Endpoints = append(groups[i].Endpoints, e)
		}
	}
	return groups
}

// FindByTag returns the endpoints carrying the given tag, matched
// case-insensitively, in extraction order. Passing UntaggedTag finds
// the endpoints that declare no tags, since extraction materializes
// that bucket into Tags.
func (a *Analyzer) FindByTag(tag string) []Endpoint {
	var out []Endpoint
	for _, e := range a.Extract() {
		if endpointHasTag(e, tag) {
			out = append(out, e)
		}
	}
	return out
}

// endpointHasTag reports whether e carries tag.
func endpointHasTag(e Endpoint, tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// FindByMethod returns the endpoints using the given HTTP method,
// matched case-insensitively, in extraction order.
func (a *Analyzer) FindByMethod(method string) []Endpoint {
	want := strings.ToUpper(method)

	var out []Endpoint
	for _, e := range a.Extract() {
		if e.Method == want {
			out = append(out, e)
		}
	}
	return out
}

// FindEndpoint returns the endpoint with the given method and path. The
// method is matched case-insensitively, the path exactly.
func (a *Analyzer) FindEndpoint(method, path string) (Endpoint, bool) {
	want := strings.ToUpper(method)
	for _, e := range a.Extract() {
		if e.Method == want && e.Path == path {
			return e, true
		}
	}
	return Endpoint{}, false
}

// ListAll returns every endpoint sorted by path, then method. This is
// the presentation order used by the CSV export; Extract keeps document
// order.
func (a *Analyzer) ListAll() []Endpoint {
	endpoints := a.Extract()
	slices.SortFunc(endpoints, func(x, y Endpoint) int {
		if c := strings.Compare(x.Path, y.Path); c != 0 {
			return c
		}
		return strings.Compare(x.Method, y.Method)
	})
	return endpoints
}

// GlobalSecurity returns the document's top-level security requirements.
func (a *Analyzer) GlobalSecurity() []SecurityRequirement {
	return extractRequirements(a.doc.Root().Member("security"))
}

// EffectiveSecurity resolves the requirements that actually apply to e:
// its own when declared, none when explicitly disabled, and the
// document's global requirements when inherited.
func (a *Analyzer) EffectiveSecurity(e Endpoint) []SecurityRequirement {
	switch e.SecurityScope {
	case SecurityDeclared:
		return e.Security
	case SecurityNone:
		return nil
	default:
		return a.GlobalSecurity()
	}
}

// RequestBodySchema looks up an endpoint by method and path and returns
// its request body schema. The bool is false when the endpoint does not
// exist or carries no schema; neither case is an error.
func (a *Analyzer) RequestBodySchema(method, path string) (*parser.Node, bool) {
	e, ok := a.FindEndpoint(method, path)
	if !ok {
		return nil, false
	}
	schema := e.RequestBodySchema()
	return schema, schema != nil
}

// ResponseSchemas looks up an endpoint by method and path and returns
// its response schemas per status code. Unknown endpoints yield nil.
func (a *Analyzer) ResponseSchemas(method, path string) map[string]*parser.Node {
	e, ok := a.FindEndpoint(method, path)
	if !ok {
		return nil
	}
	return e.ResponseSchemas()
}

// ResolveSchema follows any chain of $ref indirections on the given
// schema node. Nodes without a $ref come back unchanged.
func (a *Analyzer) ResolveSchema(n *parser.Node) (*parser.Node, error) {
	return a.doc.ResolveNode(n)
}

// Schemas returns the named schema definitions in document order, with
// the count. The same OAS 2.0 fallback as Statistics applies.
func (a *Analyzer) Schemas() ([]string, int) {
	names := schemaContainer(a.doc.Root()).Keys()
	return names, len(names)
}

// SecuritySchemes returns the named security schemes in document order,
// with the count.
func (a *Analyzer) SecuritySchemes() ([]string, int) {
	names := securitySchemeContainer(a.doc.Root()).Keys()
	return names, len(names)
}

// Info returns the document's descriptive metadata.
func (a *Analyzer) Info() APIInfo {
	root := a.doc.Root()
	info := root.Member("info")

	api := APIInfo{
		Title:       scalarOr(info.Member("title"), ""),
		Version:     scalarOr(info.Member("version"), ""),
		Description: info.Member("description").StrOr(""),
	}
	for _, s := range root.Member("servers").Items() {
		api.Servers = append(api.Servers, s.Member("url").StrOr(""))
	}
	return api
}
