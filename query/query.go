// Package query implements the depth-first, pre-order traversal operations
// of spec §4.4 against an htmlnode tree.
package query

import (
	"github.com/dpotapov/htmlharvest/htmlnode"
	"github.com/dpotapov/htmlharvest/selector"
)

// First returns the first node (pre-order, including root itself) matching
// sel, or nil if none does.
func First(root *htmlnode.Node, sel selector.Selector) *htmlnode.Node {
	var found *htmlnode.Node
	walk(root, func(n *htmlnode.Node) bool {
		if sel.Matches(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// All collects every matching node in pre-order.
func All(root *htmlnode.Node, sel selector.Selector) []*htmlnode.Node {
	var out []*htmlnode.Node
	walk(root, func(n *htmlnode.Node) bool {
		if sel.Matches(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// AllText returns the extracted text content (htmlnode.TextContent) of
// every matching node, in pre-order. Each string is independently owned.
func AllText(root *htmlnode.Node, sel selector.Selector) []string {
	matches := All(root, sel)
	out := make([]string, len(matches))
	for i, n := range matches {
		out[i] = htmlnode.TextContent(n)
	}
	return out
}

// Attribute returns, for each matching node that carries the named
// attribute, its value, in pre-order. Nodes lacking the attribute are
// skipped.
func Attribute(root *htmlnode.Node, sel selector.Selector, attrName string) []string {
	matches := All(root, sel)
	out := make([]string, 0, len(matches))
	for _, n := range matches {
		if v, ok := n.Attribute(attrName); ok {
			out = append(out, v)
		}
	}
	return out
}

// walk performs a pre-order depth-first traversal starting at root
// (root is visited first, including DocumentNode and ElementNode), calling
// visit for each ElementNode. It stops early if visit returns false.
func walk(root *htmlnode.Node, visit func(*htmlnode.Node) bool) {
	var rec func(*htmlnode.Node) bool
	rec = func(n *htmlnode.Node) bool {
		if n.Type == htmlnode.ElementNode {
			if !visit(n) {
				return false
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !rec(c) {
				return false
			}
		}
		return true
	}
	rec(root)
}
