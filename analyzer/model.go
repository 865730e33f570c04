package analyzer

import (
	"github.com/GAKiknadze/swagger-to-docs/parser"
)

// SecurityScope classifies an operation's security field.
type SecurityScope int

const (
	// SecurityInherited means the operation has no security field and
	// inherits the document's global requirements.
	SecurityInherited SecurityScope = iota
	// SecurityNone means the operation declares an empty security list,
	// explicitly disabling authentication.
	SecurityNone
	// SecurityDeclared means the operation declares its own requirements.
	SecurityDeclared
)

// String returns the lower-case name of the scope.
func (s SecurityScope) String() string {
	switch s {
	case SecurityInherited:
		return "inherited"
	case SecurityNone:
		return "none"
	case SecurityDeclared:
		return "declared"
	default:
		return "unknown"
	}
}

// SecurityRequirement is one security requirement object, mapping scheme
// names to their required scopes. Any one requirement in a list
// authorizes a request.
type SecurityRequirement map[string][]string

// Parameter is one operation parameter, captured as declared.
type Parameter struct {
	// Name is the parameter name
	Name string
	// In is the parameter location (query, path, header, cookie, or the
	// OAS 2.0 body and formData)
	In string
	// Description is the parameter description
	Description string
	// Required reports whether the parameter must be supplied
	Required bool
	// Schema is the declared schema node, possibly a $ref (nil when absent)
	Schema *parser.Node
	// Ref is set when the whole parameter is a reference object
	Ref string
}

// MediaContent is one media type entry of a request body or response.
type MediaContent struct {
	// MediaType is the content key, e.g. "application/json"
	MediaType string
	// Schema is the declared schema node, possibly a $ref (nil when the
	// media type carries no schema key)
	Schema *parser.Node
}

// RequestBody is an operation's request body declaration.
type RequestBody struct {
	// Description is the request body description
	Description string
	// Required reports whether a body must be sent
	Required bool
	// Content lists media types in document order
	Content []MediaContent
}

// Response is one response entry of an operation.
type Response struct {
	// Code is the response key as written: a status code string such as
	// "200", or "default"
	Code string
	// Description is the response description
	Description string
	// Content lists media types in document order (OAS 3.x)
	Content []MediaContent
}

// Endpoint is one extracted operation.
type Endpoint struct {
	// Method is the upper-case HTTP method
	Method string
	// Path is the path template as declared, e.g. "/pets/{petId}"
	Path string
	// Summary is the operation summary
	Summary string
	// Description is the operation description
	Description string
	// OperationID is the declared operationId
	OperationID string
	// Tags holds the operation's tags, never empty: operations that
	// declare none get the single UntaggedTag bucket
	Tags []string
	// Deprecated reports whether the operation is marked deprecated
	Deprecated bool
	// Parameters holds the operation's own parameters in document order
	Parameters []Parameter
	// RequestBody is the request body declaration, nil when absent
	RequestBody *RequestBody
	// Responses holds response entries in document order
	Responses []Response
	// SecurityScope classifies the operation's security field
	SecurityScope SecurityScope
	// Security holds the declared requirements; only set when
	// SecurityScope is SecurityDeclared
	Security []SecurityRequirement
}

// RequestBodySchema returns the schema of the first declared media type
// that carries one, or nil when the endpoint has no request body or none
// of its media types declare a schema. A missing body schema is normal
// for many operations, not a defect.
func (e *Endpoint) RequestBodySchema() *parser.Node {
	if e.RequestBody == nil {
		return nil
	}
	for _, mc := range e.RequestBody.Content {
		if mc.Schema != nil {
			return mc.Schema
		}
	}
	return nil
}

// ResponseSchemas returns one schema per response code. When a response
// declares several media types with schemas, the last one wins.
func (e *Endpoint) ResponseSchemas() map[string]*parser.Node {
	schemas := make(map[string]*parser.Node)
	for _, r := range e.Responses {
		for _, mc := range r.Content {
			if mc.Schema != nil {
				schemas[r.Code] = mc.Schema
			}
		}
	}
	return schemas
}

// TagGroup is one tag bucket produced by GroupByTags.
type TagGroup struct {
	// Tag is the tag name, or UntaggedTag
	Tag string
	// Endpoints lists the group's endpoints in extraction order
	Endpoints []Endpoint
}

// APIInfo carries the document's descriptive metadata.
type APIInfo struct {
	// Title is the API title, empty when missing
	Title string
	// Version is the API version, empty when missing
	Version string
	// Description is the API description
	Description string
	// Servers lists the url of every servers entry, in document order;
	// entries without a url contribute an empty string
	Servers []string
}
