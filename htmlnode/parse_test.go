package htmlnode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/htmlharvest/htmlnode"
)

func TestParse_SimpleTree(t *testing.T) {
	doc := htmlnode.Parse([]byte("<div><p>Hello</p></div>"))
	require.Equal(t, htmlnode.DocumentNode, doc.Type)
	div := doc.FirstChild
	require.NotNil(t, div)
	require.True(t, div.EqualFoldTag("div"))
	p := div.FirstChild
	require.NotNil(t, p)
	require.True(t, p.EqualFoldTag("p"))
	require.Equal(t, "Hello", htmlnode.TextContent(p))
}

func TestParse_VoidElementsDoNotOpenScope(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<div><img src="x.png"/><br/><input type="text"/></div>`))
	div := doc.FirstChild
	require.True(t, div.EqualFoldTag("div"))
	children := div.Children()
	require.Len(t, children, 3)
	for _, c := range children {
		require.Nil(t, c.FirstChild, "void element %s should have no children", c.TagName)
	}
}

func TestParse_UnclosedTagToleratesViaAncestorWalk(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<div><p>Hi</div>`))
	div := doc.FirstChild
	require.True(t, div.EqualFoldTag("div"))
	p := div.FirstChild
	require.NotNil(t, p)
	require.True(t, p.EqualFoldTag("p"))
	require.Equal(t, "Hi", htmlnode.TextContent(p))
	// The end tag closed all the way up to div; nothing remains open beneath it.
	require.Nil(t, p.NextSibling)
}

func TestParse_UnmatchedEndTagIgnored(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<div>text</span></div>`))
	div := doc.FirstChild
	require.True(t, div.EqualFoldTag("div"))
	require.Equal(t, "text", htmlnode.TextContent(div))
}

func TestParse_CommentsAreKeptButSkippedInText(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<div><!-- note -->text</div>`))
	div := doc.FirstChild
	var sawComment bool
	for c := div.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == htmlnode.CommentNode {
			sawComment = true
			require.Equal(t, " note ", c.Data)
		}
	}
	require.True(t, sawComment)
	require.Equal(t, "text", htmlnode.TextContent(div))
}

func TestTextContent_JoinsWithSingleSpace(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<p>  Hello  <b>World</b>  again </p>`))
	p := doc.FirstChild
	require.Equal(t, "Hello World again", htmlnode.TextContent(p))
}

func TestParse_AttributesPreserveInsertionOrder(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<a href="test.html" class="link" data-x="1">Link</a>`))
	a := doc.FirstChild
	require.Len(t, a.Attr, 3)
	require.Equal(t, "href", a.Attr[0].Key)
	require.Equal(t, "class", a.Attr[1].Key)
	require.Equal(t, "data-x", a.Attr[2].Key)
}

func TestParse_TreeWellFormedness(t *testing.T) {
	doc := htmlnode.Parse([]byte(`<div><p><b>x</b></p><p>y</p></div>`))
	div := doc.FirstChild
	for c := div.FirstChild; c != nil; c = c.NextSibling {
		n := c
		for n.Parent != nil {
			n = n.Parent
		}
		require.Equal(t, doc, n)
	}
}
