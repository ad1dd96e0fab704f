package reportadapter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cldgraph/cldscore/concept"
	"github.com/cldgraph/cldscore/loopset"
)

// WriteConceptNodes writes P_concept_nodes.csv: one row per Concept
// ever created, in creation order, with its containing-loop count and
// centrality score (0.0 for a concept that received no score entry).
func WriteConceptNodes(w io.Writer, registry *concept.Registry, loops *loopset.LoopSet, scores map[concept.ID]float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "numberOfLoops", "relevanceScore"}); err != nil {
		return fmt.Errorf("reportadapter: concept nodes header: %w", err)
	}

	for _, c := range registry.All() {
		score := scores[c.ID]
		row := []string{
			c.Name,
			fmt.Sprintf("%d", loops.ContainingConcept(c)),
			formatScore(score),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("reportadapter: concept nodes row for %q: %w", c.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
