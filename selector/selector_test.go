package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/htmlharvest/htmlnode"
	"github.com/dpotapov/htmlharvest/selector"
)

func TestParse_UniversalAndClass(t *testing.T) {
	for _, raw := range []string{"*", "  *  "} {
		sel, err := selector.Parse(raw)
		require.NoError(t, err)
		require.Equal(t, selector.Universal, sel.Kind())
	}
	for _, raw := range []string{".a", "  .a"} {
		sel, err := selector.Parse(raw)
		require.NoError(t, err)
		require.Equal(t, selector.Class, sel.Kind())
		require.Equal(t, ".a", sel.Key())
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := selector.Parse("")
	require.ErrorIs(t, err, selector.ErrEmptySelector)
	_, err = selector.Parse("   ")
	require.ErrorIs(t, err, selector.ErrEmptySelector)

	for _, raw := range []string{"#", "."} {
		_, err := selector.Parse(raw)
		var invalid *selector.InvalidSelectorError
		require.ErrorAs(t, err, &invalid)
	}
}

func TestParse_Attribute(t *testing.T) {
	cases := []struct {
		raw      string
		wantAttr string
		wantVal  string
	}{
		{`[a]`, "a", ""},
		{`[a="b"]`, "a", "b"},
		{`[a='b']`, "a", "b"},
		{`[a=b]`, "a", "b"},
	}
	for _, c := range cases {
		sel, err := selector.Parse(c.raw)
		require.NoError(t, err, c.raw)
		require.Equal(t, selector.Attribute, sel.Kind())
		el := &htmlnode.Node{Type: htmlnode.ElementNode, Attr: []htmlnode.Attribute{{Key: c.wantAttr, Val: c.wantVal}}}
		require.True(t, sel.Matches(el), c.raw)
	}
}

func TestMatches_Tag(t *testing.T) {
	sel, err := selector.Parse("DIV")
	require.NoError(t, err)
	el := &htmlnode.Node{Type: htmlnode.ElementNode, TagName: "div"}
	require.True(t, sel.Matches(el))
}

func TestMatches_Class(t *testing.T) {
	sel, err := selector.Parse(".price")
	require.NoError(t, err)
	el := &htmlnode.Node{Type: htmlnode.ElementNode, Attr: []htmlnode.Attribute{{Key: "class", Val: "item price highlight"}}}
	require.True(t, sel.Matches(el))

	elNoMatch := &htmlnode.Node{Type: htmlnode.ElementNode, Attr: []htmlnode.Attribute{{Key: "class", Val: "priceless"}}}
	require.False(t, sel.Matches(elNoMatch))
}

func TestMatches_ID(t *testing.T) {
	sel, err := selector.Parse("#title")
	require.NoError(t, err)
	el := &htmlnode.Node{Type: htmlnode.ElementNode, Attr: []htmlnode.Attribute{{Key: "id", Val: "title"}}}
	require.True(t, sel.Matches(el))
	require.False(t, sel.Matches(&htmlnode.Node{Type: htmlnode.ElementNode}))
}

func TestMatches_NonElementNeverMatches(t *testing.T) {
	sel, err := selector.Parse("*")
	require.NoError(t, err)
	require.False(t, sel.Matches(&htmlnode.Node{Type: htmlnode.TextNode}))
}

func TestKey_CanonicalForms(t *testing.T) {
	cases := map[string]string{
		"*":         "*",
		"div":       "div",
		".price":    ".price",
		"#title":    "#title",
		"[href]":    "[href]",
		`[a="b"]`:   "[a=b]",
	}
	for raw, want := range cases {
		sel, err := selector.Parse(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, sel.Key(), raw)
	}
}
