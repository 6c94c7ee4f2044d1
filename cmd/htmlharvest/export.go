package main

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"

	"github.com/dpotapov/htmlharvest/htmlnode"
	"github.com/dpotapov/htmlharvest/query"
	"github.com/dpotapov/htmlharvest/selector"
)

var exportSelect string

// exportCmd runs a tree-mode query and serializes the matched subtrees as
// XML via beevik/etree (a teacher dependency). The core's own Node type
// deliberately carries no tree-serialization logic — spec §1 scopes
// rendering/formatting out of the core — so output formatting is exactly
// the kind of concern an ElementTree-style library belongs to.
var exportCmd = &cobra.Command{
	Use:   "export [file|-]",
	Short: "Export matched subtrees as XML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		src, err := readInput(path)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if exportSelect == "" {
			return fmt.Errorf("--select is required")
		}
		sel, err := selector.Parse(exportSelect)
		if err != nil {
			return fmt.Errorf("parsing selector: %w", err)
		}

		doc := htmlnode.Parse(src)
		matches := query.All(doc, sel)

		out := etree.NewDocument()
		root := out.CreateElement("matches")
		for _, n := range matches {
			writeElement(root, n)
		}
		out.Indent(2)
		_, err = out.WriteTo(cmd.OutOrStdout())
		return err
	},
}

func writeElement(parent *etree.Element, n *htmlnode.Node) {
	el := parent.CreateElement(n.TagName)
	for _, a := range n.Attr {
		el.CreateAttr(a.Key, a.Val)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case htmlnode.ElementNode:
			writeElement(el, c)
		case htmlnode.TextNode:
			el.CreateText(c.Data)
		case htmlnode.CommentNode:
			el.CreateComment(c.Data)
		}
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportSelect, "select", "", "selector to export matches for")
}
