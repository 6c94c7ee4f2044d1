package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/htmlharvest/token"
)

func collect(t *testing.T, src string) []token.Token {
	t.Helper()
	z := token.New([]byte(src))
	var toks []token.Token
	for i := 0; i < len(src)+2; i++ {
		tok := z.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
	t.Fatalf("tokenizer did not reach EOF within %d calls for %q", len(src)+2, src)
	return nil
}

func TestTokenizer_Termination(t *testing.T) {
	inputs := []string{
		"",
		"<",
		"</",
		"<!--",
		"<!-- unterminated",
		"<div",
		"<div ",
		"<div a=",
		`<div a="unterminated`,
		"plain text",
		"<div><p>Hello</p></div>",
	}
	for _, in := range inputs {
		toks := collect(t, in)
		require.Equal(t, token.EOF, toks[len(toks)-1].Kind, "input %q", in)
	}
}

func TestTokenizer_StartTagWithAttributes(t *testing.T) {
	toks := collect(t, `<a href="test.html" class='link'>Link</a>`)
	require.Equal(t, token.StartTag, toks[0].Kind)
	require.Equal(t, "a", string(toks[0].Name))
	href, ok := toks[0].Attrs.Get([]byte("href"))
	require.True(t, ok)
	require.Equal(t, "test.html", string(href))
	class, ok := toks[0].Attrs.Get([]byte("class"))
	require.True(t, ok)
	require.Equal(t, "link", string(class))
}

func TestTokenizer_UnquotedAndValuelessAttributes(t *testing.T) {
	toks := collect(t, `<input type=text disabled>`)
	require.Equal(t, token.StartTag, toks[0].Kind)
	typ, ok := toks[0].Attrs.Get([]byte("type"))
	require.True(t, ok)
	require.Equal(t, "text", string(typ))
	disabled, ok := toks[0].Attrs.Get([]byte("disabled"))
	require.True(t, ok)
	require.Equal(t, "", string(disabled))
}

func TestTokenizer_DuplicateAttributeKeepsLast(t *testing.T) {
	toks := collect(t, `<div id="a" id="b">`)
	id, ok := toks[0].Attrs.Get([]byte("id"))
	require.True(t, ok)
	require.Equal(t, "b", string(id))
	require.Equal(t, 1, toks[0].Attrs.Len())
}

func TestTokenizer_Comment(t *testing.T) {
	toks := collect(t, `<!-- hi --><p>x</p>`)
	require.Equal(t, token.Comment, toks[0].Kind)
	require.Equal(t, " hi ", string(toks[0].Data))
}

func TestTokenizer_UnterminatedCommentBecomesText(t *testing.T) {
	toks := collect(t, `<!-- never closed`)
	require.Equal(t, token.Text, toks[0].Kind)
	require.Equal(t, `<!-- never closed`, string(toks[0].Data))
}

func TestTokenizer_Doctype(t *testing.T) {
	toks := collect(t, `<!DOCTYPE html><p>x</p>`)
	require.Equal(t, token.Doctype, toks[0].Kind)
}

func TestTokenizer_EndTag(t *testing.T) {
	toks := collect(t, `</div>`)
	require.Equal(t, token.EndTag, toks[0].Kind)
	require.Equal(t, "div", string(toks[0].Name))
}

func TestTokenizer_ZeroLengthNameIsText(t *testing.T) {
	toks := collect(t, `< >rest`)
	require.Equal(t, token.Text, toks[0].Kind)
}

func TestTokenizer_ByteConservation(t *testing.T) {
	src := `<div class="a"><!-- c --><p>Hello &amp; bye</p></div>tail`
	toks := collect(t, src)
	var total int
	for _, tok := range toks {
		switch tok.Kind {
		case token.Text, token.Comment, token.Doctype:
			total += len(tok.Data)
		case token.StartTag, token.EndTag:
			total += len(tok.Name)
		}
	}
	require.LessOrEqual(t, total, len(src))
}

func TestEqualFold(t *testing.T) {
	require.True(t, token.EqualFold([]byte("DIV"), []byte("div")))
	require.False(t, token.EqualFold([]byte("DIV"), []byte("span")))
}
