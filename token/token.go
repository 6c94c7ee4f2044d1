// Package token implements a lenient, byte-level HTML tokenizer tailored to
// web-scraping workloads. It never reports a parse error: malformed markup is
// absorbed into text or end-of-input truncation rather than rejected.
package token

// Kind identifies the variant of a Token.
type Kind int

const (
	// StartTag is a "<name ...>" token, carrying a name and an attribute list.
	StartTag Kind = iota
	// EndTag is a "</name>" token, carrying only a name.
	EndTag
	// Text is a run of character data outside of any tag.
	Text
	// Comment is a "<!-- ... -->" token. An unterminated comment is emitted
	// as Text instead.
	Comment
	// Doctype is a "<!DOCTYPE ...>" token.
	Doctype
	// EOF marks the end of input. Once reached, every further Next call
	// returns EOF again.
	EOF
)

func (k Kind) String() string {
	switch k {
	case StartTag:
		return "start_tag"
	case EndTag:
		return "end_tag"
	case Text:
		return "text"
	case Comment:
		return "comment"
	case Doctype:
		return "doctype"
	case EOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Token is a single lexical item produced by the Tokenizer. It borrows byte
// slices from the buffer it was scanned from; it does not own its bytes, and
// is only valid for as long as that buffer is unmodified.
type Token struct {
	Kind Kind

	// Name holds the tag name for StartTag/EndTag tokens. Comparisons against
	// it must be ASCII case-insensitive per spec.
	Name []byte

	// Data holds the raw payload for Text, Comment, and Doctype tokens.
	Data []byte

	// Attrs holds the ordered attribute list for a StartTag token. Nil for
	// every other kind.
	Attrs *AttrList
}

// EqualName reports whether the token's Name matches name, ASCII
// case-insensitively.
func (t Token) EqualName(name []byte) bool {
	return EqualFold(t.Name, name)
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if lowerByte(a[i]) != lowerByte(b[i]) {
			return false
		}
	}
	return true
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// isSpace classifies ASCII whitespace per spec §4.1: space, tab, \n, \r, \f.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

// TrimASCIISpace trims leading and trailing ASCII whitespace (per isSpace)
// from b, returning a subslice (no copy).
func TrimASCIISpace(b []byte) []byte {
	start := 0
	for start < len(b) && isSpace(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}
