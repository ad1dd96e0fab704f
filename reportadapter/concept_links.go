package reportadapter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cldgraph/cldscore/concept"
	"github.com/cldgraph/cldscore/loopset"
)

// WriteConceptLinks writes P_concept_links.csv: one row per input link
// whose containing-loop count is greater than zero, in the order links
// were originally loaded.
func WriteConceptLinks(w io.Writer, links []concept.Link, loops *loopset.LoopSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"source", "target", "linkInfluence", "loopsTraversing"}); err != nil {
		return fmt.Errorf("reportadapter: concept links header: %w", err)
	}

	for _, link := range links {
		count := loops.ContainingLink(link.Source, link.Target)
		if count == 0 {
			continue
		}
		row := []string{
			link.Source.Name,
			link.Target.Name,
			link.Influence.String(),
			fmt.Sprintf("%d", count),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("reportadapter: concept links row for %s: %w", link, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
