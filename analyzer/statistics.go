package analyzer

import "github.com/GAKiknadze/swagger-to-docs/parser"

// Statistics summarizes one document. The JSON field names are the wire
// layout of the statistics export; the YAML names mirror them.
type Statistics struct {
	// Title is the API title, "Unknown" when missing
	Title string `json:"title" yaml:"title"`
	// Version is the API version, "Unknown" when missing
	Version string `json:"version" yaml:"version"`
	// TotalEndpoints counts every extracted operation
	TotalEndpoints int `json:"total_endpoints" yaml:"total_endpoints"`
	// Methods counts endpoints per lower-case HTTP method
	Methods map[string]int `json:"methods" yaml:"methods"`
	// Tags counts endpoints per tag; multi-tag endpoints count once per
	// tag, untagged endpoints count under UntaggedTag
	Tags map[string]int `json:"tags" yaml:"tags"`
	// Schemas counts named schemas (components.schemas, or the OAS 2.0
	// definitions when the document has no components.schemas)
	Schemas int `json:"schemas" yaml:"schemas"`
	// SecuritySchemes counts named security schemes
	// (components.securitySchemes or the OAS 2.0 securityDefinitions)
	SecuritySchemes int `json:"security_schemes" yaml:"security_schemes"`
}

// Statistics walks the document and summarizes it. The walk is
// independent of Extract, so the two stay consistent by construction:
// both skip the same non-object entries and visit methods in
// MethodOrder. Method counts sum to TotalEndpoints; tag counts can sum
// to more because of multi-tag endpoints.
func (a *Analyzer) Statistics() Statistics {
	root := a.doc.Root()
	info := root.Member("info")

	stats := Statistics{
		Title:   scalarOr(info.Member("title"), "Unknown"),
		Version: scalarOr(info.Member("version"), "Unknown"),
		Methods: make(map[string]int),
		Tags:    make(map[string]int),
	}

	paths := root.Member("paths")
	for _, path := range paths.Keys() {
		item := paths.Member(path)
		if item.Kind() != parser.KindObject {
			continue
		}
		for _, method := range MethodOrder {
			op := item.Member(method)
			if op.Kind() != parser.KindObject {
				continue
			}
			stats.TotalEndpoints++
			stats.Methods[method]++

			tagged := false
			for _, tagNode := range op.Member("tags").Items() {
				if tag, ok := tagNode.Str(); ok {
					stats.Tags[tag]++
					tagged = true
				}
			}
			if !tagged {
				stats.Tags[UntaggedTag]++
			}
		}
	}

	stats.Schemas = schemaContainer(root).Len()
	stats.SecuritySchemes = securitySchemeContainer(root).Len()

	a.log().Debug("computed statistics",
		"path", a.doc.SourcePath(),
		"endpoints", stats.TotalEndpoints,
		"schemas", stats.Schemas)
	return stats
}

// schemaContainer returns the node holding named schemas:
// components.schemas, or the OAS 2.0 definitions fallback when the
// document declares no components.schemas object.
func schemaContainer(root *parser.Node) *parser.Node {
	if schemas := root.Member("components").Member("schemas"); schemas.Kind() == parser.KindObject {
		return schemas
	}
	return root.Member("definitions")
}

// securitySchemeContainer returns the node holding named security
// schemes, with the OAS 2.0 securityDefinitions fallback.
func securitySchemeContainer(root *parser.Node) *parser.Node {
	if schemes := root.Member("components").Member("securitySchemes"); schemes.Kind() == parser.KindObject {
		return schemes
	}
	return root.Member("securityDefinitions")
}
