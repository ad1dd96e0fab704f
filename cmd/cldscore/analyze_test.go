package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_EndToEnd(t *testing.T) {
	matrixPath := filepath.Join(t.TempDir(), "matrix.csv")
	require.NoError(t, os.WriteFile(matrixPath, []byte(",B,C\nA,1,0\nB,0,1\nC,1,0\n"), 0o644))

	prefix := filepath.Join(t.TempDir(), "run")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"analyze", matrixPath, "--prefix", prefix})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "CAUSAL LOOP DIAGRAM ANALYSIS SUMMARY")

	for _, suffix := range []string{"_concept_nodes.csv", "_concept_links.csv", "_loop_nodes.csv", "_scores.txt"} {
		_, err := os.Stat(prefix + suffix)
		assert.NoError(t, err)
	}
}

func TestAnalyzeCmd_QuietSuppressesSummary(t *testing.T) {
	matrixPath := filepath.Join(t.TempDir(), "matrix.csv")
	require.NoError(t, os.WriteFile(matrixPath, []byte(",B\nA,1\nB,1\n"), 0o644))

	prefix := filepath.Join(t.TempDir(), "run")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"analyze", matrixPath, "--prefix", prefix, "--quiet"})

	require.NoError(t, rootCmd.Execute())
	assert.Empty(t, out.String())
}

func TestAnalyzeCmd_MissingInputFile(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"analyze", "/nonexistent/matrix.csv"})

	err := rootCmd.Execute()
	assert.Error(t, err)
}
