package loopset

import "github.com/cldgraph/cldscore/sequence"

// Stats summarizes a finalized LoopSet's composition: how many loops of
// each classification it holds, and the size distribution across them.
// Supplements the CLI's human-readable summary; it is never written to
// any of the four report artifacts.
type Stats struct {
	ByClassification map[sequence.Classification]int
	BySize           map[int]int
	MaxSize          int
}

// Stats computes a fresh Stats snapshot over the current loop set.
func (ls *LoopSet) Stats() Stats {
	s := Stats{
		ByClassification: make(map[sequence.Classification]int),
		BySize:           make(map[int]int),
	}
	for _, loop := range ls.loops {
		s.ByClassification[loop.Classification()]++
		size := loop.Size()
		s.BySize[size]++
		if size > s.MaxSize {
			s.MaxSize = size
		}
	}
	return s
}
