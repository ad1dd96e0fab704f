package loopset

import (
	"github.com/cldgraph/cldscore/concept"
	"github.com/cldgraph/cldscore/sequence"
)

// scoreEntry pairs a candidate loop with the best (smallest) normalized
// distance seen so far to any loop already admitted to the scored chain.
type scoreEntry struct {
	loop     *sequence.Sequence
	bestDist float64
}

// Score computes the centrality score of every concept that appears as
// a link source in at least two stored loops, via the greedy
// structural-diversity accumulation: seed with the smallest loop (last
// in the size-descending, repr-ascending order), then repeatedly fold
// in whichever remaining loop has the smallest distance to any loop
// already admitted (earliest entry on ties), accumulating size-weighted
// distance. Concepts present in zero or
// one loop get no entry.
func (ls *LoopSet) Score() map[concept.ID]float64 {
	scores := make(map[concept.ID]float64)
	bySize := ls.loopsSortedBySize()

	for id, c := range ls.AllConcepts() {
		var forConcept []*sequence.Sequence
		for _, loop := range bySize {
			if loop.HasSource(c) {
				forConcept = append(forConcept, loop)
			}
		}

		if len(forConcept) <= 1 {
			continue
		}

		working := make([]scoreEntry, len(forConcept))
		for i, loop := range forConcept {
			working[i] = scoreEntry{loop: loop, bestDist: 1.0}
		}

		lastAdded := working[len(working)-1]
		working = working[:len(working)-1]
		total := float64(lastAdded.loop.Size())

		for len(working) > 0 {
			for i := range working {
				d := ls.distance(working[i].loop, lastAdded.loop)
				if d < working[i].bestDist {
					working[i].bestDist = d
				}
			}

			minIdx := 0
			for i := 1; i < len(working); i++ {
				if working[i].bestDist < working[minIdx].bestDist {
					minIdx = i
				}
			}

			lastAdded = working[minIdx]
			total += float64(lastAdded.loop.Size()) * lastAdded.bestDist
			working = append(working[:minIdx], working[minIdx+1:]...)
		}

		scores[id] = total
	}

	return scores
}
