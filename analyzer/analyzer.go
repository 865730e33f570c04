package analyzer

import (
	"strings"

	"github.com/GAKiknadze/swagger-to-docs/parser"
)

// MethodOrder is the canonical visiting order for operations inside a
// path item. Extraction, statistics, and grouping all follow it.
var MethodOrder = []string{"get", "post", "put", "delete", "patch", "head", "options"}

// UntaggedTag is the bucket for endpoints that declare no tags.
const UntaggedTag = "untagged"

// Analyzer derives the endpoint model and statistics from one document.
// It never modifies the document, so one Analyzer may be shared across
// goroutines.
type Analyzer struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger parser.Logger

	doc *parser.Document
}

// New creates an Analyzer for the given document.
func New(doc *parser.Document) *Analyzer {
	return &Analyzer{doc: doc}
}

// log returns the configured logger, or a no-op logger if none is set.
func (a *Analyzer) log() parser.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return parser.NopLogger{}
}

// Document returns the document this Analyzer reads from.
func (a *Analyzer) Document() *parser.Document {
	return a.doc
}

// Extract walks the document and returns its operations as a flat
// endpoint list: paths in document order, methods in MethodOrder. Path
// entries and method values that are not objects are skipped. Each call
// walks the document afresh.
func (a *Analyzer) Extract() []Endpoint {
	paths := a.doc.Root().Member("paths")

	var endpoints []Endpoint
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
			endpoints = append(endpoints, extractOperation(path, method, op))
		}
	}

	a.log().Debug("extracted endpoints", "path", a.doc.SourcePath(), "count", len(endpoints))
	return endpoints
}

// extractOperation captures one operation object as an Endpoint.
func extractOperation(path, method string, op *parser.Node) Endpoint {
	e := Endpoint{
		Method:      strings.ToUpper(method),
		Path:        path,
		Summary:     op.Member("summary").StrOr(""),
		Description: op.Member("description").StrOr(""),
		OperationID: op.Member("operationId").StrOr(""),
		Deprecated:  op.Member("deprecated").BoolOr(false),
	}

	for _, tagNode := range op.Member("tags").Items() {
		if tag, ok := tagNode.Str(); ok {
			e.Tags = append(e.Tags, tag)
		}
	}
	if len(e.Tags) == 0 {
		e.Tags = []string{UntaggedTag}
	}

	e.Parameters = extractParameters(op.Member("parameters"))
	e.RequestBody = extractRequestBody(op.Member("requestBody"))
	e.Responses = extractResponses(op.Member("responses"))
	e.SecurityScope, e.Security = extractSecurity(op)
	return e
}

// extractParameters captures an operation's own parameter list. Path
// item level parameters are not merged in; they stay where the document
// put them.
func extractParameters(params *parser.Node) []Parameter {
	items := params.Items()
	if len(items) == 0 {
		return nil
	}

	out := make([]Parameter, 0, len(items))
	for _, p := range items {
		if p.Kind() != parser.KindObject {
			continue
		}
		param := Parameter{
			Name:        p.Member("name").StrOr(""),
			In:          p.Member("in").StrOr(""),
			Description: p.Member("description").StrOr(""),
			Required:    p.Member("required").BoolOr(false),
		}
		if schema, ok := p.Get("schema"); ok {
			param.Schema = schema
		}
		if ref, ok := p.Ref(); ok {
			param.Ref = ref
		}
		out = append(out, param)
	}
	return out
}

// extractRequestBody captures the requestBody object, or nil when the
// operation has none.
func extractRequestBody(rb *parser.Node) *RequestBody {
	if rb.Kind() != parser.KindObject {
		return nil
	}
	return &RequestBody{
		Description: rb.Member("description").StrOr(""),
		Required:    rb.Member("required").BoolOr(false),
		Content:     extractContent(rb.Member("content")),
	}
}

// extractContent captures a content object's media types in document
// order. Schema stays nil for media types without a schema key.
func extractContent(content *parser.Node) []MediaContent {
	keys := content.Keys()
	if len(keys) == 0 {
		return nil
	}

	out := make([]MediaContent, 0, len(keys))
	for _, mediaType := range keys {
		mc := MediaContent{MediaType: mediaType}
		if schema, ok := content.Member(mediaType).Get("schema"); ok {
			mc.Schema = schema
		}
		out = append(out, mc)
	}
	return out
}

// extractResponses captures the responses object in document order.
func extractResponses(responses *parser.Node) []Response {
	keys := responses.Keys()
	if len(keys) == 0 {
		return nil
	}

	out := make([]Response, 0, len(keys))
	for _, code := range keys {
		r := responses.Member(code)
		if r.Kind() != parser.KindObject {
			continue
		}
		out = append(out, Response{
			Code:        code,
			Description: r.Member("description").StrOr(""),
			Content:     extractContent(r.Member("content")),
		})
	}
	return out
}

// extractSecurity classifies the operation's security field. The three
// states are distinct: absent inherits the document default, an empty
// list disables auth, and a non-empty list declares requirements.
func extractSecurity(op *parser.Node) (SecurityScope, []SecurityRequirement) {
	sec, ok := op.Get("security")
	if !ok {
		return SecurityInherited, nil
	}
	reqs := extractRequirements(sec)
	if len(reqs) == 0 {
		return SecurityNone, nil
	}
	return SecurityDeclared, reqs
}

// extractRequirements converts a security array into requirement maps.
func extractRequirements(sec *parser.Node) []SecurityRequirement {
	items := sec.Items()
	if len(items) == 0 {
		return nil
	}

	out := make([]SecurityRequirement, 0, len(items))
	for _, item := range items {
		req := make(SecurityRequirement, item.Len())
		for _, name := range item.Keys() {
			scopes := make([]string, 0)
			for _, s := range item.Member(name).Items() {
				if scope, ok := s.Str(); ok {
					scopes = append(scopes, scope)
				}
			}
			req[name] = scopes
		}
		out = append(out, req)
	}
	return out
}

// scalarOr returns the lexical text of a string, number, or bool scalar,
// or def for anything else. Versions like 1.0 often arrive as YAML
// numbers and still need their written form.
func scalarOr(n *parser.Node, def string) string {
	switch n.Kind() {
	case parser.KindString, parser.KindNumber, parser.KindBool:
		return n.Text()
	default:
		return def
	}
}
