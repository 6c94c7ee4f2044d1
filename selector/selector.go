// Package selector implements the small CSS-subset grammar and matching
// predicate described in spec §4.3: universal, tag, class, id, and
// attribute selectors.
//
// There is no direct teacher analogue for this package — chtml's nearest
// concept is its c:if/c:for conditional attributes (chtml/node.go,
// chtml/condmatch_test.go), which evaluate expr-lang expressions rather
// than match a selector grammar against an element. This package is built
// fresh in the teacher's idiom: a tagged variant (Kind) plus explicit
// match dispatch (see design note §9), tested in the teacher's table-driven
// style (chtml/parse_test.go).
package selector

import (
	"errors"
	"fmt"

	"github.com/dpotapov/htmlharvest/htmlnode"
	"github.com/dpotapov/htmlharvest/token"
)

// Kind identifies which of the five selector grammars a Selector holds.
type Kind int

const (
	Universal Kind = iota
	Tag
	Class
	ID
	Attribute
)

// ErrEmptySelector is returned when Parse is given an empty (or
// all-whitespace) selector string.
var ErrEmptySelector = errors.New("selector: empty selector")

// InvalidSelectorError is returned when Parse is given a syntactically
// invalid selector string. It wraps the offending input so callers can
// report a precise message, matching the teacher's custom-error-type style
// in chtml/err.go (UnrecognizedArgumentError, DecodeError).
type InvalidSelectorError struct {
	Input string
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("selector: invalid selector %q", e.Input)
}

// Selector is a parsed, immutable selector. It is safe to reuse across
// many Matches calls and across goroutines (read-only after Parse).
type Selector struct {
	kind     Kind
	value    string
	attrName string // only meaningful when kind == Attribute
	key      string // canonical textual form, computed once at parse time
}

// Kind returns the selector's grammar kind.
func (s Selector) Kind() Kind { return s.kind }

// Key returns the selector's canonical textual form, used by the streaming
// extractor to index per-selector result lists: "*", bare "tag", ".class",
// "#id", "[attr]", or "[attr=value]". Per design note §9(b), this is a
// direct field computed once at parse time rather than a formatted buffer
// recomputed on each lookup.
func (s Selector) Key() string { return s.key }

// Parse parses a single selector string, trimming ASCII whitespace first
// per spec §4.3.
func Parse(raw string) (Selector, error) {
	trimmed := string(token.TrimASCIISpace([]byte(raw)))
	if trimmed == "" {
		return Selector{}, ErrEmptySelector
	}

	switch trimmed[0] {
	case '*':
		if trimmed != "*" {
			return Selector{}, &InvalidSelectorError{Input: raw}
		}
		return Selector{kind: Universal, key: "*"}, nil
	case '#':
		name := trimmed[1:]
		if name == "" {
			return Selector{}, &InvalidSelectorError{Input: raw}
		}
		return Selector{kind: ID, value: name, key: "#" + name}, nil
	case '.':
		name := trimmed[1:]
		if name == "" {
			return Selector{}, &InvalidSelectorError{Input: raw}
		}
		return Selector{kind: Class, value: name, key: "." + name}, nil
	case '[':
		return parseAttribute(raw, trimmed)
	default:
		return Selector{kind: Tag, value: trimmed, key: trimmed}, nil
	}
}

func parseAttribute(raw, trimmed string) (Selector, error) {
	end := -1
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] == ']' {
			end = i
			break
		}
	}
	if end == -1 {
		return Selector{}, &InvalidSelectorError{Input: raw}
	}
	inner := string(token.TrimASCIISpace([]byte(trimmed[1:end])))
	if inner == "" {
		return Selector{}, &InvalidSelectorError{Input: raw}
	}

	eq := -1
	for i := 0; i < len(inner); i++ {
		if inner[i] == '=' {
			eq = i
			break
		}
	}
	if eq == -1 {
		return Selector{kind: Attribute, attrName: inner, key: "[" + inner + "]"}, nil
	}

	name := string(token.TrimASCIISpace([]byte(inner[:eq])))
	value := string(token.TrimASCIISpace([]byte(inner[eq+1:])))
	value = stripMatchingQuotes(value)

	return Selector{
		kind:     Attribute,
		attrName: name,
		value:    value,
		key:      "[" + name + "=" + value + "]",
	}, nil
}

func stripMatchingQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Matches reports whether el satisfies the selector, per the predicate
// rules in spec §4.3. Non-element nodes never match.
func (s Selector) Matches(el *htmlnode.Node) bool {
	if el == nil || el.Type != htmlnode.ElementNode {
		return false
	}
	switch s.kind {
	case Universal:
		return true
	case Tag:
		return el.EqualFoldTag(s.value)
	case Class:
		classAttr, ok := el.Attribute("class")
		if !ok {
			return false
		}
		return hasClassToken(classAttr, s.value)
	case ID:
		idAttr, ok := el.Attribute("id")
		return ok && idAttr == s.value
	case Attribute:
		val, ok := el.Attribute(s.attrName)
		if !ok {
			return false
		}
		if s.value == "" {
			return true
		}
		return val == s.value
	default:
		return false
	}
}

func hasClassToken(classAttr, want string) bool {
	start := 0
	for i := 0; i <= len(classAttr); i++ {
		if i == len(classAttr) || isASCIISpace(classAttr[i]) {
			if i > start && classAttr[start:i] == want {
				return true
			}
			start = i + 1
		}
	}
	return false
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}
