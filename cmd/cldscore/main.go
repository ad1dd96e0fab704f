// Command cldscore computes feedback-loop centrality scores for a
// causal loop diagram given as a signed adjacency matrix.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
