package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpotapov/htmlharvest/htmlnode"
	"github.com/dpotapov/htmlharvest/query"
	"github.com/dpotapov/htmlharvest/selector"
)

var (
	treeSelectors []string
	treeAttr      string
	treeAllText   bool
)

var treeCmd = &cobra.Command{
	Use:   "tree [file|-]",
	Short: "Build a node tree and run one or more selector queries against it",
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
		if len(treeSelectors) == 0 {
			return fmt.Errorf("at least one --select is required")
		}

		doc := htmlnode.Parse(src)

		results := make(map[string]any, len(treeSelectors))
		for _, raw := range treeSelectors {
			sel, err := selector.Parse(raw)
			if err != nil {
				return fmt.Errorf("parsing selector %q: %w", raw, err)
			}
			switch {
			case treeAttr != "":
				results[sel.Key()] = query.Attribute(doc, sel, treeAttr)
			case treeAllText:
				results[sel.Key()] = query.AllText(doc, sel)
			default:
				n := query.First(doc, sel)
				if n == nil {
					results[sel.Key()] = nil
				} else {
					results[sel.Key()] = htmlnode.TextContent(n)
				}
			}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	},
}

func init() {
	treeCmd.Flags().StringSliceVar(&treeSelectors, "select", nil, "selector to query (repeatable)")
	treeCmd.Flags().StringVar(&treeAttr, "attr", "", "return this attribute across all matches instead of text")
	treeCmd.Flags().BoolVar(&treeAllText, "text", false, "return text content for every match instead of just the first")
}
