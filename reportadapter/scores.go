package reportadapter

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/cldgraph/cldscore/concept"
)

// WriteScores writes P_scores.txt: one "name = value" line per scored
// concept, sorted by score descending. Ties break by name so the file
// is byte-for-byte reproducible across runs on the same input.
func WriteScores(w io.Writer, registry *concept.Registry, scores map[concept.ID]float64) error {
	type entry struct {
		name  string
		score float64
	}

	// Resolve names via registry.All() rather than Lookup-by-id, since
	// Registry only indexes by name.
	names := make(map[concept.ID]string, registry.Len())
	for _, c := range registry.All() {
		names[c.ID] = c.Name
	}

	entries := make([]entry, 0, len(scores))
	for id, score := range scores {
		entries = append(entries, entry{name: names[id], score: score})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].name < entries[j].name
	})

	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s = %s\n", e.name, formatScore(e.score)); err != nil {
			return fmt.Errorf("reportadapter: scores line for %q: %w", e.name, err)
		}
	}
	return bw.Flush()
}
