package analysis

import "sort"

// ScoredConcept pairs a concept name with its centrality score and the
// number of loops it appears in, the shape the CLI summary prints.
type ScoredConcept struct {
	Name  string
	Score float64
	Loops int
}

// TopConcepts returns up to n concepts ranked by score descending (ties
// broken by name), for the CLI's human-readable summary. It never
// replaces the P_scores.txt report, which lists every scored concept.
func (d *Driver) TopConcepts(n int) ([]ScoredConcept, error) {
	if !d.done {
		return nil, ErrNotRun
	}

	all := make([]ScoredConcept, 0, len(d.scores))
	for _, c := range d.registry.All() {
		score, ok := d.scores[c.ID]
		if !ok {
			continue
		}
		all = append(all, ScoredConcept{
			Name:  c.Name,
			Score: score,
			Loops: d.loops.ContainingConcept(c),
		})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Name < all[j].Name
	})

	if n >= 0 && n < len(all) {
		all = all[:n]
	}
	return all, nil
}
