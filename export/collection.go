package export

import (
	"io"
	"strings"

	"github.com/GAKiknadze/swagger-to-docs/analyzer"
)

// Collection is a Postman-style request collection.
type Collection struct {
	Info     CollectionInfo `json:"info"`
	Items    []RequestItem  `json:"item"`
	Variable []Variable     `json:"variable"`
}

// CollectionInfo names the collection.
type CollectionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

// RequestItem is one runnable request in the collection.
type RequestItem struct {
	Name    string  `json:"name"`
	Request Request `json:"request"`
}

// Request carries the method and URL template of one item.
type Request struct {
	Method string     `json:"method"`
	URL    RequestURL `json:"url"`
}

// RequestURL templates the request target against the base_url variable.
type RequestURL struct {
	Raw   string       `json:"raw"`
	Host  []string     `json:"host"`
	Path  []string     `json:"path"`
	Query []QueryParam `json:"query,omitempty"`
}

// QueryParam is one query parameter slot. Optional parameters start
// disabled so imported requests fire without them.
type QueryParam struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled"`
}

// Variable is a collection-level template variable.
type Variable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Collection builds the request collection: one item per endpoint in
// extraction order, named by summary with a "METHOD path" fallback. The
// base_url variable is filled from the first server URL when the
// document declares one; item and variable lists are never null.
func (ex *Exporter) Collection() Collection {
	info := ex.analyzer.Info()

	c := Collection{
		Info: CollectionInfo{
			Name:        info.Title,
			Description: info.Description,
			Version:     info.Version,
		},
		Items:    make([]RequestItem, 0),
		Variable: make([]Variable, 0, 1),
	}
	if c.Info.Name == "" {
		c.Info.Name = "API"
	}
	if c.Info.Version == "" {
		c.Info.Version = "1.0.0"
	}
	if len(info.Servers) > 0 && info.Servers[0] != "" {
		c.Variable = append(c.Variable, Variable{Key: "base_url", Value: info.Servers[0]})
	}

	for _, e := range ex.analyzer.Extract() {
		c.Items = append(c.Items, buildItem(e))
	}

	ex.log().Debug("built collection", "name", c.Info.Name, "items", len(c.Items))
	return c
}

// buildItem converts one endpoint into a request item.
func buildItem(e analyzer.Endpoint) RequestItem {
	name := e.Summary
	if name == "" {
		name = e.Method + " " + e.Path
	}

	url := RequestURL{
		Raw:  "{{base_url}}" + e.Path,
		Host: []string{"{{base_url}}"},
		Path: splitPath(e.Path),
	}
	for _, p := range e.Parameters {
		if p.In != "query" {
			continue
		}
		url.Query = append(url.Query, QueryParam{
			Key:      p.Name,
			Value:    "",
			Disabled: !p.Required,
		})
	}

	return RequestItem{
		Name:    name,
		Request: Request{Method: e.Method, URL: url},
	}
}

// splitPath splits a raw path into segments, dropping the empty leading
// segment produced by the leading slash.
func splitPath(path string) []string {
	segments := strings.Split(path, "/")
	if len(segments) > 0 && segments[0] == "" {
		segments = segments[1:]
	}
	return segments
}

// CollectionJSON writes the collection to w as two-space indented JSON.
func (ex *Exporter) CollectionJSON(w io.Writer) error {
	return encodeJSON(w, ex.Collection(), "collection")
}

// WriteCollection renders the collection into the file at path.
func (ex *Exporter) WriteCollection(path string) error {
	return ex.writeFile(path, ex.CollectionJSON)
}
