// Package stream implements the streaming extractor of spec §4.5: an
// incremental driver that consumes tokenized chunks, tracks a shallow
// element stack, and accumulates only matched elements' trimmed text and
// attributes without ever building a full DOM.
//
// The tokenizer-driving loop and its checkpoint/rollback discipline is
// grounded on chtml/parse.go's token-driven insertion-point loop from the
// teacher repo (itself driving golang.org/x/net/html.Tokenizer one token at
// a time), generalized here to the buffer-retention boundary rule spec.md
// requires; the stack-of-open-states shape is grounded on chtml/node.go's
// nodeStack.
package stream

import (
	"github.com/dpotapov/htmlharvest/htmlnode"
	"github.com/dpotapov/htmlharvest/selector"
	"github.com/dpotapov/htmlharvest/token"
)

// MatchResult is one finalized matched element: its accumulated trimmed
// text and a copy of its attribute list, both owned independently of the
// extractor's internal buffers.
type MatchResult struct {
	Text       string
	Attributes []htmlnode.Attribute
}

// Attribute returns the value of the named attribute (case insensitive)
// and whether it was present.
func (m MatchResult) Attribute(name string) (string, bool) {
	for _, a := range m.Attributes {
		if equalFoldASCII(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// openElement is the internal per-scope record described in spec §3
// ("Element state (streaming, internal)").
type openElement struct {
	tagName       string
	attrs         []htmlnode.Attribute
	textBuf       []byte
	depth         int
	matched       bool
	selectorIndex int // -1 if unmatched
}

// Extractor is the streaming driver. It must have its selectors registered
// via AddSelector before any Feed call, per spec §4.5/§6.
type Extractor struct {
	buffer       []byte
	selectors    []selector.Selector
	resultsByKey map[string][]MatchResult
	keyOrder     []string

	stack   []*openElement
	current *openElement
	depth   int

	finished bool
}

// New returns an empty Extractor ready for AddSelector calls.
func New() *Extractor {
	return &Extractor{resultsByKey: make(map[string][]MatchResult)}
}

// AddSelector parses s and registers it, creating an empty result list
// under its canonical key (if one does not already exist for an identical
// selector). Must be called before any Feed.
func (e *Extractor) AddSelector(s string) error {
	sel, err := selector.Parse(s)
	if err != nil {
		return err
	}
	e.selectors = append(e.selectors, sel)
	if _, ok := e.resultsByKey[sel.Key()]; !ok {
		e.resultsByKey[sel.Key()] = nil
		e.keyOrder = append(e.keyOrder, sel.Key())
	}
	return nil
}

// Feed appends chunk to the internal buffer and drains as many complete
// tokens as possible, per the boundary rule in spec §4.5.
func (e *Extractor) Feed(chunk []byte) {
	e.buffer = append(e.buffer, chunk...)
	e.drain(false)
}

// Finish drains any remaining tokens — including a trailing token that
// reaches the end of the buffer, since no further bytes are coming to
// complete it — then finalizes every still-open matched element (innermost
// first: the current element, then the stack top-down), treating document
// end as implicit end tags for all of them.
func (e *Extractor) Finish() {
	e.drain(true)
	if e.current != nil {
		e.finalize(e.current)
		e.current = nil
	}
	for i := len(e.stack) - 1; i >= 0; i-- {
		e.finalize(e.stack[i])
	}
	e.stack = nil
	e.finished = true
}

// drain tokenizes as much of the buffer as possible, applying the boundary
// rule: any token (start tag, text run, end tag, comment, ...) whose scan
// reaches the end of the buffer is rolled back (discarded, bytes retained),
// since the input may continue into the next Feed and the token's true
// extent — a start tag's closing ">", or the rest of a text run split
// across the boundary — may not have been observed yet. final is true only
// from Finish, where no more bytes are coming, so a trailing token is
// processed rather than rolled back.
func (e *Extractor) drain(final bool) {
	z := token.New(e.buffer)
	consumed := 0
	for {
		tok := z.Next()
		if tok.Kind == token.EOF {
			break
		}
		if !final && z.Pos() == len(e.buffer) {
			break
		}
		consumed = z.Pos()
		e.handleToken(tok)
	}
	e.buffer = e.buffer[consumed:]
}

func (e *Extractor) handleToken(tok token.Token) {
	switch tok.Kind {
	case token.StartTag:
		e.handleStartTag(tok)
	case token.EndTag:
		e.handleEndTag(string(tok.Name))
	case token.Text:
		if e.current != nil && e.current.matched {
			trimmed := token.TrimASCIISpace(tok.Data)
			if len(trimmed) > 0 {
				if len(e.current.textBuf) > 0 {
					e.current.textBuf = append(e.current.textBuf, ' ')
				}
				e.current.textBuf = append(e.current.textBuf, trimmed...)
			}
		}
	case token.Comment, token.Doctype:
		// No effect, per spec §4.5.
	}
}

func (e *Extractor) handleStartTag(tok token.Token) {
	name := string(tok.Name)
	el := &openElement{
		tagName:       name,
		attrs:         attrsFromToken(tok.Attrs),
		depth:         e.depth,
		selectorIndex: -1,
	}
	for i, sel := range e.selectors {
		if sel.Matches(elementView(el)) {
			el.matched = true
			el.selectorIndex = i
			break
		}
	}

	if isVoidElementName(name) {
		// Void elements never open a scope: finalize immediately without
		// disturbing the current open element or the stack (design note §9c).
		e.finalize(el)
		return
	}

	if e.current != nil {
		e.stack = append(e.stack, e.current)
	}
	e.current = el
	e.depth++
}

func (e *Extractor) handleEndTag(name string) {
	if e.current != nil && e.current.tagName == name {
		e.finalize(e.current)
		e.depth--
		e.current = nil
		if n := len(e.stack); n > 0 {
			e.current = e.stack[n-1]
			e.stack = e.stack[:n-1]
		}
		return
	}
	for i := len(e.stack) - 1; i >= 0; i-- {
		if e.stack[i].tagName == name {
			el := e.stack[i]
			e.stack = append(e.stack[:i], e.stack[i+1:]...)
			e.finalize(el)
			e.depth--
			return
		}
	}
	// Unmatched end tag: silently ignored, per spec §4.5/§7.
}

func (e *Extractor) finalize(el *openElement) {
	if !el.matched {
		return
	}
	key := e.selectors[el.selectorIndex].Key()
	e.resultsByKey[key] = append(e.resultsByKey[key], MatchResult{
		Text:       string(el.textBuf),
		Attributes: append([]htmlnode.Attribute(nil), el.attrs...),
	})
}

// GetMatches returns the match list registered under selectorKey, or
// (nil, false) if no such selector was ever registered.
func (e *Extractor) GetMatches(selectorKey string) ([]MatchResult, bool) {
	v, ok := e.resultsByKey[selectorKey]
	return v, ok
}

// GetMatchesText returns just the Text field of each match under
// selectorKey.
func (e *Extractor) GetMatchesText(selectorKey string) ([]string, bool) {
	v, ok := e.resultsByKey[selectorKey]
	if !ok {
		return nil, false
	}
	out := make([]string, len(v))
	for i, m := range v {
		out[i] = m.Text
	}
	return out, true
}

// GetMatchAttribute returns the named attribute on the i-th match under
// selectorKey.
func (e *Extractor) GetMatchAttribute(selectorKey string, index int, attrName string) (string, bool) {
	v, ok := e.resultsByKey[selectorKey]
	if !ok || index < 0 || index >= len(v) {
		return "", false
	}
	return v[index].Attribute(attrName)
}

// Keys returns the registered selector keys in registration order.
func (e *Extractor) Keys() []string {
	return append([]string(nil), e.keyOrder...)
}

func attrsFromToken(attrs *token.AttrList) []htmlnode.Attribute {
	if attrs == nil {
		return nil
	}
	all := attrs.All()
	if len(all) == 0 {
		return nil
	}
	out := make([]htmlnode.Attribute, len(all))
	for i, a := range all {
		out[i] = htmlnode.Attribute{Key: string(a.Name), Val: string(a.Value)}
	}
	return out
}

func elementView(el *openElement) *htmlnode.Node {
	return &htmlnode.Node{Type: htmlnode.ElementNode, TagName: el.tagName, Attr: el.attrs}
}

var voidElementNames = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

func isVoidElementName(name string) bool {
	lower := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		b := name[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		lower[i] = b
	}
	return voidElementNames[string(lower)]
}
