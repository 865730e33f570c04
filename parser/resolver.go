package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GAKiknadze/swagger-to-docs/specerrors"
)

// Resolve looks up a document-local JSON pointer such as
// "#/components/schemas/Pet" and returns the node it addresses. Pointers
// that do not start with "#/" are not supported and fail with
// specerrors.ErrBrokenRef, as does any pointer whose path does not exist.
// The document is never modified.
func (d *Document) Resolve(pointer string) (*Node, error) {
	node, err := d.resolvePointer(pointer)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to resolve reference: %w", err)
	}
	return node, nil
}

// resolvePointer descends the tree one unescaped segment at a time.
func (d *Document) resolvePointer(pointer string) (*Node, error) {
	if !strings.HasPrefix(pointer, "#/") {
		return nil, &specerrors.RefError{
			Pointer: pointer,
			Message: "only document-local references are supported",
		}
	}

	current := d.Root()
	for _, raw := range strings.Split(pointer[2:], "/") {
		segment := unescapePointerToken(raw)
		switch current.Kind() {
		case KindObject:
			child, ok := current.Get(segment)
			if !ok {
				return nil, &specerrors.RefError{Pointer: pointer, Segment: segment}
			}
			current = child
		case KindArray:
			idx, err := strconv.Atoi(segment)
			if err != nil {
				return nil, &specerrors.RefError{
					Pointer: pointer,
					Segment: segment,
					Message: "array index must be numeric",
				}
			}
			child, ok := current.Item(idx)
			if !ok {
				return nil, &specerrors.RefError{
					Pointer: pointer,
					Segment: segment,
					Message: "array index out of range",
				}
			}
			current = child
		default:
			return nil, &specerrors.RefError{
				Pointer: pointer,
				Segment: segment,
				Message: fmt.Sprintf("cannot descend into %s node", current.Kind()),
			}
		}
	}
	return current, nil
}

// ResolveNode returns the node n points at after following any chain of
// $ref indirections. A node without a $ref comes back unchanged, so
// resolving an already resolved node is a no-op. A chain that revisits a
// pointer still being resolved fails with specerrors.ErrRefCycle; the
// error records the chain in resolution order.
func (d *Document) ResolveNode(n *Node) (*Node, error) {
	current := n
	var stack []string
	inStack := make(map[string]bool)

	for {
		ref, ok := current.Ref()
		if !ok {
			return current, nil
		}
		if inStack[ref] {
			return nil, fmt.Errorf("parser: failed to resolve reference: %w", &specerrors.RefError{
				Pointer: ref,
				Stack:   stack,
				Cycle:   true,
			})
		}
		inStack[ref] = true
		stack = append(stack, ref)

		target, err := d.resolvePointer(ref)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to resolve reference: %w", err)
		}
		current = target
	}
}

// unescapePointerToken applies the RFC 6901 unescaping rules. Order
// matters: ~1 before ~0, so "~01" decodes to "~1" and not "/".
func unescapePointerToken(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	return strings.ReplaceAll(s, "~0", "~")
}
