package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Kind identifies which member of the Node union a value is.
type Kind int

const (
	// KindInvalid is the zero Kind; only a nil Node reports it.
	KindInvalid Kind = iota
	// KindObject is a mapping of string keys to child nodes.
	KindObject
	// KindArray is an ordered sequence of child nodes.
	KindArray
	// KindString is a string scalar.
	KindString
	// KindNumber is a numeric scalar (JSON numbers, YAML ints and floats).
	KindNumber
	// KindBool is a boolean scalar.
	KindBool
	// KindNull is an explicit null or an empty document.
	KindNull
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "invalid"
	}
}

// Node is one value in a loaded document tree. Object nodes remember their
// key order as declared in the source. All accessors are nil-safe: calling
// them on a nil Node reports an absent value, which keeps deep lookups like
// root.Member("info").Member("title").Str() free of nil checks.
//
// Nodes are immutable after loading. Callers must not modify the slices
// returned by Keys and Items.
type Node struct {
	kind    Kind
	keys    []string
	members map[string]*Node
	items   []*Node
	text    string
	num     float64
	boolVal bool
}

// Kind returns the node's kind, or KindInvalid for a nil node.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindInvalid
	}
	return n.kind
}

// Get returns the named member of an object node. The boolean is false
// when the node is nil, not an object, or has no such key.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.kind != KindObject {
		return nil, false
	}
	child, ok := n.members[key]
	return child, ok
}

// Member is the chaining form of Get: it returns the named member or nil.
func (n *Node) Member(key string) *Node {
	child, _ := n.Get(key)
	return child
}

// Keys returns an object node's keys in document order, or nil for any
// other kind.
func (n *Node) Keys() []string {
	if n == nil || n.kind != KindObject {
		return nil
	}
	return n.keys
}

// Items returns an array node's elements in order, or nil for any other kind.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != KindArray {
		return nil
	}
	return n.items
}

// Item returns the i'th element of an array node.
func (n *Node) Item(i int) (*Node, bool) {
	if n == nil || n.kind != KindArray || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// Len returns the number of keys of an object, the number of elements of
// an array, and zero for everything else.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindObject:
		return len(n.keys)
	case KindArray:
		return len(n.items)
	default:
		return 0
	}
}

// Str returns the value of a string node.
func (n *Node) Str() (string, bool) {
	if n == nil || n.kind != KindString {
		return "", false
	}
	return n.text, true
}

// StrOr returns the value of a string node, or def for any other kind.
func (n *Node) StrOr(def string) string {
	if s, ok := n.Str(); ok {
		return s
	}
	return def
}

// Bool returns the value of a bool node.
func (n *Node) Bool() (bool, bool) {
	if n == nil || n.kind != KindBool {
		return false, false
	}
	return n.boolVal, true
}

// BoolOr returns the value of a bool node, or def for any other kind.
func (n *Node) BoolOr(def bool) bool {
	if b, ok := n.Bool(); ok {
		return b
	}
	return def
}

// Num returns the value of a number node as a float64.
func (n *Node) Num() (float64, bool) {
	if n == nil || n.kind != KindNumber {
		return 0, false
	}
	return n.num, true
}

// Text returns the lexical text of a scalar node exactly as written in the
// source ("2.0" stays "2.0" even when YAML typed it as a float), or an
// empty string for objects, arrays, and nil nodes.
func (n *Node) Text() string {
	switch n.Kind() {
	case KindString, KindNumber, KindBool, KindNull:
		return n.text
	default:
		return ""
	}
}

// IsNull reports whether the node is an explicit null.
func (n *Node) IsNull() bool {
	return n.Kind() == KindNull
}

// Ref returns the local pointer when the node is an object whose $ref
// member is a string.
func (n *Node) Ref() (string, bool) {
	ref, ok := n.Get("$ref")
	if !ok {
		return "", false
	}
	return ref.Str()
}

// MarshalJSON implements custom JSON marshaling for Node. Go's encoding/json
// sorts map keys, so objects are written by hand to keep members in document
// order. Number nodes keep their lexical text when it is already valid JSON
// syntax; YAML-only forms such as 0x1A are re-encoded from the parsed value.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) writeJSON(buf *bytes.Buffer) error {
	switch n.Kind() {
	case KindObject:
		buf.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := n.members[key].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindArray:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindString:
		s, err := json.Marshal(n.text)
		if err != nil {
			return err
		}
		buf.Write(s)
	case KindNumber:
		if json.Valid([]byte(n.text)) {
			buf.WriteString(n.text)
			return nil
		}
		f, err := json.Marshal(n.num)
		if err != nil {
			return err
		}
		buf.Write(f)
	case KindBool:
		buf.WriteString(strconv.FormatBool(n.boolVal))
	default:
		buf.WriteString("null")
	}
	return nil
}

// Document is one loaded OpenAPI document: the parsed Node tree plus
// source metadata. Documents are read-only after loading.
type Document struct {
	path    string
	format  SourceFormat
	version string
	root    *Node
}

// SourcePath returns the document's input path. For bytes and reader
// input it is a synthetic name such as "LoadBytes.yaml".
func (d *Document) SourcePath() string {
	return d.path
}

// Format returns the source format the document was decoded from.
func (d *Document) Format() SourceFormat {
	return d.format
}

// Version returns the detected specification version: the value of the
// top-level swagger key, falling back to openapi, or an empty string when
// neither is present. A missing version is reported by the validator, not
// here.
func (d *Document) Version() string {
	return d.version
}

// Root returns the document's root node.
func (d *Document) Root() *Node {
	return d.root
}

// buildTree converts a decoded yaml.Node into the package's Node tree.
func buildTree(yn *yaml.Node) (*Node, error) {
	return buildNode(yn, make(map[*yaml.Node]bool))
}

// buildNode recursively converts one yaml.Node. building tracks mapping and
// sequence nodes currently being converted so cyclic YAML aliases fail
// instead of recursing forever.
func buildNode(yn *yaml.Node, building map[*yaml.Node]bool) (*Node, error) {
	switch yn.Kind {
	case yaml.DocumentNode:
		if len(yn.Content) == 0 {
			return &Node{kind: KindNull}, nil
		}
		return buildNode(yn.Content[0], building)

	case yaml.AliasNode:
		if yn.Alias == nil {
			return &Node{kind: KindNull}, nil
		}
		if building[yn.Alias] {
			return nil, fmt.Errorf("cyclic alias %q at line %d", yn.Value, yn.Line)
		}
		return buildNode(yn.Alias, building)

	case yaml.MappingNode:
		building[yn] = true
		defer delete(building, yn)
		obj := &Node{
			kind:    KindObject,
			members: make(map[string]*Node, len(yn.Content)/2),
		}
		for i := 0; i+1 < len(yn.Content); i += 2 {
			key := yn.Content[i].Value
			val, err := buildNode(yn.Content[i+1], building)
			if err != nil {
				return nil, err
			}
			// Duplicate keys keep their first position with the last value,
			// matching what JSON and YAML decoders commonly do.
			if _, exists := obj.members[key]; !exists {
				obj.keys = append(obj.keys, key)
			}
			obj.members[key] = val
		}
		return obj, nil

	case yaml.SequenceNode:
		building[yn] = true
		defer delete(building, yn)
		arr := &Node{
			kind:  KindArray,
			items: make([]*Node, 0, len(yn.Content)),
		}
		for _, c := range yn.Content {
			item, err := buildNode(c, building)
			if err != nil {
				return nil, err
			}
			arr.items = append(arr.items, item)
		}
		return arr, nil

	case yaml.ScalarNode:
		return buildScalar(yn), nil

	default:
		// A zero yaml.Node from empty input has no kind.
		return &Node{kind: KindNull}, nil
	}
}

// buildScalar maps a YAML scalar to the matching Node kind using the
// resolved tag. Unrecognized tags fall back to string, keeping the lexical
// value.
func buildScalar(yn *yaml.Node) *Node {
	switch yn.Tag {
	case "!!null":
		return &Node{kind: KindNull, text: yn.Value}
	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(yn.Value))
		if err != nil {
			b = false
		}
		return &Node{kind: KindBool, boolVal: b, text: yn.Value}
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(yn.Value, 64)
		if err != nil {
			// Hex and octal forms land here; .inf and .nan keep zero.
			if i, ierr := strconv.ParseInt(yn.Value, 0, 64); ierr == nil {
				f = float64(i)
			}
		}
		return &Node{kind: KindNumber, num: f, text: yn.Value}
	default:
		return &Node{kind: KindString, text: yn.Value}
	}
}
