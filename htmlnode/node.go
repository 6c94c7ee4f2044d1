// Package htmlnode implements the DOM-like node tree used by tree-mode
// extraction: a mutable tree of typed nodes built by Parse and traversed by
// the query package.
//
// Node's sibling-linked shape (Parent/FirstChild/LastChild/PrevSibling/
// NextSibling plus AppendChild) is grounded on
// chtml/node.go from the teacher repo, itself an adaptation of
// golang.org/x/net/html's Node — we keep that shape and drop everything
// chtml added on top of it (expressions, conditional rendering, shapes)
// since none of it belongs to this spec.
package htmlnode

// Type identifies the variant of a Node.
type Type int

const (
	// DocumentNode is the root of a tree; it has no tag name.
	DocumentNode Type = iota
	// ElementNode is a tagged element with attributes and children.
	ElementNode
	// TextNode is a run of character data.
	TextNode
	// CommentNode is a comment's payload.
	CommentNode
)

func (t Type) String() string {
	switch t {
	case DocumentNode:
		return "document"
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	default:
		return "unknown"
	}
}

// Attribute is one attribute name/value pair on an element.
type Attribute struct {
	Key string
	Val string
}

// Node is one node in the tree. Document and Element nodes own an ordered
// child list via the FirstChild/LastChild/NextSibling/PrevSibling links;
// Parent is a weak (non-owning) back reference — per design note §9, it is
// never counted as an owner and never creates a true reference cycle in the
// ownership sense, only in the pointer-graph sense.
type Node struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	Type Type

	// TagName is set for ElementNode. Selector matching compares it ASCII
	// case-insensitively (EqualFoldTag); end-tag matching in Parse compares
	// it byte-exact.
	TagName string

	// Attr is the ordered attribute list for ElementNode, preserving
	// insertion (i.e. source) order.
	Attr []Attribute

	// Data holds the raw payload for TextNode and CommentNode (the
	// un-trimmed original span, per spec §4.2).
	Data string
}

// Attribute returns the value of the named attribute (case insensitive) and
// whether it was present.
func (n *Node) Attribute(name string) (string, bool) {
	for _, a := range n.Attr {
		if equalFoldASCII(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// EqualFoldTag reports whether the node's tag name matches name, ASCII case
// insensitively. Non-elements never match.
func (n *Node) EqualFoldTag(name string) bool {
	if n.Type != ElementNode {
		return false
	}
	return equalFoldASCII(n.TagName, name)
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerByteASCII(a[i]) != lowerByteASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerByteASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// AppendChild adds c as the last child of n. It panics if c is already
// attached to a tree, matching chtml/node.go's AppendChild contract.
func (n *Node) AppendChild(c *Node) {
	if c.Parent != nil || c.PrevSibling != nil || c.NextSibling != nil {
		panic("htmlnode: AppendChild called for an attached child Node")
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = c
	} else {
		n.FirstChild = c
	}
	n.LastChild = c
	c.Parent = n
	c.PrevSibling = last
}

// Children returns the node's children as a slice, in document order. It
// allocates; callers in hot traversal paths should walk FirstChild/
// NextSibling directly instead.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}
