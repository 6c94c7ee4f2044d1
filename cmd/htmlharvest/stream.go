package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/spf13/cobra"

	"github.com/dpotapov/htmlharvest/internal/config"
	"github.com/dpotapov/htmlharvest/stream"
)

var (
	streamConfigPath string
	streamSelectors  []string
	streamChunkSize  int
	streamFilter     string
)

var streamCmd = &cobra.Command{
	Use:   "stream [file|-]",
	Short: "Feed HTML through the streaming extractor in fixed-size chunks",
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

		selectors := streamSelectors
		if streamConfigPath != "" {
			m, err := config.Load(streamConfigPath)
			if err != nil {
				return err
			}
			selectors = append(selectors, m.Selectors...)
		}
		if len(selectors) == 0 {
			return fmt.Errorf("no selectors: pass --select or --config")
		}

		e := stream.New()
		for _, s := range selectors {
			if err := e.AddSelector(s); err != nil {
				return fmt.Errorf("registering selector %q: %w", s, err)
			}
		}

		chunkSize := streamChunkSize
		if chunkSize <= 0 {
			chunkSize = 4096
		}
		for off := 0; off < len(src); off += chunkSize {
			end := off + chunkSize
			if end > len(src) {
				end = len(src)
			}
			e.Feed(src[off:end])
		}
		e.Finish()

		out := make(map[string][]map[string]any, len(selectors))
		for _, key := range e.Keys() {
			matches, _ := e.GetMatches(key)
			rows := make([]map[string]any, 0, len(matches))
			for _, m := range matches {
				if streamFilter != "" {
					ok, err := evalFilter(streamFilter, m)
					if err != nil {
						return fmt.Errorf("evaluating --filter: %w", err)
					}
					if !ok {
						continue
					}
				}
				attrs := make(map[string]string, len(m.Attributes))
				for _, a := range m.Attributes {
					attrs[a.Key] = a.Val
				}
				rows = append(rows, map[string]any{"text": m.Text, "attrs": attrs})
			}
			out[key] = rows
		}

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	},
}

// evalFilter evaluates a boolean expr-lang expression against a match
// record, exposing "text" and "attrs" the same way the teacher exposes
// snake_case template variables to expr-lang (chtml/expr.go). This mirrors
// the teacher's own use of expr-lang/expr for conditional evaluation
// (c:if) but applied to extraction results instead of template nodes.
func evalFilter(src string, m stream.MatchResult) (bool, error) {
	attrs := make(map[string]string, len(m.Attributes))
	for _, a := range m.Attributes {
		attrs[a.Key] = a.Val
	}
	env := map[string]any{"text": m.Text, "attrs": attrs}
	out, err := expr.Eval(src, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression must evaluate to a bool, got %T", out)
	}
	return b, nil
}

func init() {
	streamCmd.Flags().StringVar(&streamConfigPath, "config", "", "path to a YAML selector manifest")
	streamCmd.Flags().StringSliceVar(&streamSelectors, "select", nil, "selector to register (repeatable)")
	streamCmd.Flags().IntVar(&streamChunkSize, "chunk-size", 4096, "bytes fed per chunk, to exercise chunk-boundary robustness")
	streamCmd.Flags().StringVar(&streamFilter, "filter", "", "expr-lang boolean expression to post-filter matches, e.g. 'len(text) > 0'")
}
