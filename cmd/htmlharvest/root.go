// Command htmlharvest is a CLI front-end over the tree and streaming
// extraction packages, grounded on clems4ever-arbor-encoder's cmd/root.go +
// cmd/tokenize.go Cobra wiring from the retrieval pack (the teacher repo
// itself has no CLI beyond a single net/http example/main.go).
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "htmlharvest",
	Short: "A lenient HTML extraction tool for web-scraping workloads",
	Long: `htmlharvest extracts data from arbitrary, possibly malformed HTML
using a small CSS-selector subset, either by building a DOM-like tree
(tree mode) or by matching selectors incrementally against fed chunks
(stream mode).`,
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(streamCmd)
	rootCmd.AddCommand(exportCmd)
}

func readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
