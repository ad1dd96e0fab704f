package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "cldscore",
	Short: "Feedback-loop centrality analysis for causal loop diagrams",
	Long: `cldscore reads a signed adjacency matrix describing a causal
loop diagram, enumerates every simple feedback loop it contains, and
scores each concept by how many structurally diverse loops it
participates in.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
