package htmlnode

import "github.com/dpotapov/htmlharvest/token"

// voidElements is the fixed set of elements whose start tag implicitly
// closes itself, per spec §4.2.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

func isVoidElement(name string) bool {
	return voidElements[string(normalizeTagName([]byte(name)))]
}

func normalizeTagName(name []byte) []byte {
	out := make([]byte, len(name))
	for i, b := range name {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return out
}

// Parse consumes buf through a fresh tokenizer and builds a Node tree rooted
// at a DocumentNode, following the insertion-point discipline of spec §4.2.
// It never fails: malformed markup is tolerated per the tokenizer's own
// contract, and end tags with no matching ancestor are silently ignored.
func Parse(buf []byte) *Node {
	doc := &Node{Type: DocumentNode}
	insertionPoint := doc

	z := token.New(buf)
	for {
		tok := z.Next()
		switch tok.Kind {
		case token.EOF:
			return doc
		case token.StartTag:
			el := &Node{
				Type:    ElementNode,
				TagName: string(tok.Name),
				Attr:    attrsFromToken(tok.Attrs),
			}
			insertionPoint.AppendChild(el)
			if !isVoidElement(el.TagName) {
				insertionPoint = el
			}
		case token.EndTag:
			insertionPoint = closeTo(insertionPoint, string(tok.Name))
		case token.Text:
			if len(token.TrimASCIISpace(tok.Data)) > 0 {
				insertionPoint.AppendChild(&Node{Type: TextNode, Data: string(tok.Data)})
			}
		case token.Comment:
			insertionPoint.AppendChild(&Node{Type: CommentNode, Data: string(tok.Data)})
		case token.Doctype:
			// No tree effect, per spec §4.2.
		}
	}
}

// closeTo implements the end-tag tolerance rule: if the insertion point's
// tag name equals name exactly, move up to its parent. Otherwise walk up
// ancestors looking for the first exact match and move to its parent; if
// none matches, the end tag is silently ignored and the insertion point is
// unchanged.
func closeTo(insertionPoint *Node, name string) *Node {
	for n := insertionPoint; n != nil; n = n.Parent {
		if n.Type == ElementNode && n.TagName == name {
			return n.Parent
		}
	}
	return insertionPoint
}

func attrsFromToken(attrs *token.AttrList) []Attribute {
	if attrs == nil {
		return nil
	}
	all := attrs.All()
	if len(all) == 0 {
		return nil
	}
	out := make([]Attribute, len(all))
	for i, a := range all {
		out[i] = Attribute{Key: string(a.Name), Val: string(a.Value)}
	}
	return out
}

// TextContent performs the depth-first extraction described in spec §4.2:
// text nodes' ASCII-trimmed payloads are joined by single spaces, comments
// are skipped, and the result is newly allocated.
func TextContent(n *Node) string {
	var out []byte
	var walk func(*Node)
	walk = func(cur *Node) {
		switch cur.Type {
		case TextNode:
			trimmed := token.TrimASCIISpace([]byte(cur.Data))
			if len(trimmed) == 0 {
				return
			}
			if len(out) > 0 && out[len(out)-1] != ' ' {
				out = append(out, ' ')
			}
			out = append(out, trimmed...)
		case CommentNode:
			return
		default:
			for c := cur.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return string(out)
}
