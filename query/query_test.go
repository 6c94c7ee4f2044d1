package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/htmlharvest/htmlnode"
	"github.com/dpotapov/htmlharvest/query"
	"github.com/dpotapov/htmlharvest/selector"
)

func mustParse(t *testing.T, raw string) selector.Selector {
	t.Helper()
	sel, err := selector.Parse(raw)
	require.NoError(t, err)
	return sel
}

func TestFirst_AndAll_Scenario1(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<div><p>Hello</p></div>`))

	p := query.First(doc, mustParse(t, "p"))
	require.NotNil(t, p)
	require.Equal(t, "Hello", htmlnode.TextContent(p))

	divs := query.All(doc, mustParse(t, "div"))
	require.Len(t, divs, 1)
}

func TestAttribute_Scenario2(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<a href="test.html" class='link'>Link</a>`))
	vals := query.Attribute(doc, mustParse(t, "a"), "href")
	require.Equal(t, []string{"test.html"}, vals)
}

func TestFirst_EqualsFirstOfAll(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<ul><li class="item">a</li><li class="item">b</li></ul>`))
	sel := mustParse(t, ".item")
	first := query.First(doc, sel)
	all := query.All(doc, sel)
	require.NotEmpty(t, all)
	require.Same(t, first, all[0])
}

func TestFirst_NoMatchReturnsNil(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<div></div>`))
	require.Nil(t, query.First(doc, mustParse(t, "span")))
}

func TestAllText_PreOrder(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<div><p>One</p><p>Two</p></div>`))
	texts := query.AllText(doc, mustParse(t, "p"))
	require.Equal(t, []string{"One", "Two"}, texts)
}
