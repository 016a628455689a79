package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cssx-dev/cssx/extractor"
	"github.com/cssx-dev/cssx/internal"
	"github.com/cssx-dev/cssx/internal/candidateindex"
	"github.com/cssx-dev/cssx/internal/config"
	"github.com/cssx-dev/cssx/reporter"
)

var (
	extractJSONOutput bool
	extractOutPath    string
	extractNoCache    bool
	extractTree       bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [path]",
	Short: "Scan a project tree and report every utility-class candidate and CSS variable found",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		runExtract(ctx, logger, root, extractJSONOutput, extractOutPath, !extractNoCache, extractTree)
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSONOutput, "json", false, "Output results in JSON format")
	extractCmd.Flags().StringVarP(&extractOutPath, "output", "o", "", "Output path (when using --json)")
	extractCmd.Flags().BoolVar(&extractNoCache, "no-cache", false, "Disable the on-disk extraction cache")
	extractCmd.Flags().BoolVar(&extractTree, "tree", false, "Print the discovered candidates as a variant-chain tree instead of a flat report")
}

func runExtract(ctx context.Context, logger *zap.Logger, root string, jsonOutput bool, outPath string, useCache, tree bool) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	engine, err := internal.NewEngine(root, cfg, useCache, cfgFile, logger)
	if err != nil {
		logger.Fatal("failed to initialize engine", zap.Error(err))
	}

	results, err := engine.Extract(ctx)
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		os.Exit(1)
	}

	if jsonOutput {
		if err := reporter.WriteJSON(results, outPath); err != nil {
			logger.Error("failed to write JSON report", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if tree {
		fmt.Print(buildCandidateTree(results))
		return
	}

	fmt.Print(reporter.Text(results))
	fmt.Print(summaryLine(results))
}

// buildCandidateTree indexes every extracted candidate by its variant chain
// and renders the resulting trie instead of a flat per-file report.
func buildCandidateTree(results []internal.FileResult) string {
	index := candidateindex.New()
	for _, r := range results {
		for _, e := range r.Extracted {
			if e.Kind == extractor.ExtractedCandidate {
				index.Add(string(e.Bytes))
			}
		}
	}
	return index.DebugString() + "\n"
}

func summaryLine(results []internal.FileResult) string {
	seen := make(map[string]struct{})
	files := 0
	for _, r := range results {
		if len(r.Extracted) > 0 {
			files++
		}
		for _, e := range r.Extracted {
			if e.Kind == extractor.ExtractedCandidate {
				seen[string(e.Bytes)] = struct{}{}
			}
		}
	}
	return fmt.Sprintf("%d unique candidate(s) across %d file(s)\n", len(seen), files)
}
