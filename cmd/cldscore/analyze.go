package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cldgraph/cldscore/analysis"
	"github.com/cldgraph/cldscore/matrixadapter"
	"github.com/spf13/cobra"
)

var (
	flagPrefix  string
	flagQuiet   bool
	flagTop     int
	flagVerbose bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input.csv>",
	Short: "Analyze a causal loop diagram's adjacency matrix",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&flagPrefix, "prefix", "output", "output file prefix")
	analyzeCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "suppress the human-readable summary")
	analyzeCmd.Flags().IntVar(&flagTop, "top", 10, "number of concepts to show in the summary")
	analyzeCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "raise logging to debug level")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	driver := analysis.New(matrixadapter.CSVSource{Path: args[0]}, logger)
	if err := driver.Run(); err != nil {
		return err
	}

	if err := driver.WriteReports(flagPrefix); err != nil {
		return err
	}

	if flagQuiet {
		return nil
	}
	return printSummary(cmd, driver)
}

func printSummary(cmd *cobra.Command, driver *analysis.Driver) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "============================================================")
	fmt.Fprintln(out, "CAUSAL LOOP DIAGRAM ANALYSIS SUMMARY")
	fmt.Fprintln(out, "============================================================")
	fmt.Fprintf(out, "\nNetwork statistics:\n")
	fmt.Fprintf(out, "  Total concepts: %d\n", driver.ConceptCount())
	fmt.Fprintf(out, "  Total links:    %d\n", driver.LinkCount())
	fmt.Fprintf(out, "  Total loops:    %d\n", driver.LoopCount())

	top, err := driver.TopConcepts(flagTop)
	if err != nil {
		return err
	}
	if len(top) > 0 {
		fmt.Fprintf(out, "\nTop %d most central concepts:\n", flagTop)
		for i, sc := range top {
			fmt.Fprintf(out, "  %d. %s: %.2f (in %d loops)\n", i+1, sc.Name, sc.Score, sc.Loops)
		}
	}
	fmt.Fprintln(out, "\n============================================================")
	return nil
}
