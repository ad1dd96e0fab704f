package loopset

import (
	"sort"

	"github.com/cldgraph/cldscore/concept"
	"github.com/cldgraph/cldscore/editdist"
	"github.com/cldgraph/cldscore/sequence"
)

// LoopSet is the deduplicated, sorted collection of simple cycles found
// in one network.Network, plus the machinery to score concepts by how
// structurally diverse their containing loops are.
type LoopSet struct {
	byRepr map[string]*sequence.Sequence
	loops  []*sequence.Sequence // insertion order until Finalize, then sorted

	finalized bool
	ids       map[*sequence.Sequence]int // assigned by Finalize, for the distance cache key
	distances map[[2]int]float64
}

// New returns an empty LoopSet.
func New() *LoopSet {
	return &LoopSet{
		byRepr:    make(map[string]*sequence.Sequence),
		distances: make(map[[2]int]float64),
	}
}

// Add stores seq as a loop if it is not already present (by canonical
// representation). seq is cloned and rotated to canonical position
// before comparison and storage, so the caller's copy is untouched.
// Returns the stored Sequence — either the newly added clone, or the
// pre-existing loop it duplicates — or nil if seq is not actually a
// loop.
func (ls *LoopSet) Add(seq *sequence.Sequence) *sequence.Sequence {
	if !seq.Loop() {
		return nil
	}

	loop := seq.Clone()
	loop.RotateToCanonical()
	rep := loop.Repr()

	if existing, ok := ls.byRepr[rep]; ok {
		return existing
	}

	ls.byRepr[rep] = loop
	ls.loops = append(ls.loops, loop)
	return loop
}

// Finalize sorts the stored loops by canonical Repr (their natural
// total order) and fixes the numbering the distance cache keys off of.
// Must be called exactly once, after every Add and before Score or any
// of the query methods.
func (ls *LoopSet) Finalize() {
	sort.Slice(ls.loops, func(i, j int) bool {
		return ls.loops[i].Less(ls.loops[j])
	})
	ls.ids = make(map[*sequence.Sequence]int, len(ls.loops))
	for i, loop := range ls.loops {
		ls.ids[loop] = i
	}
	ls.finalized = true
}

// Len returns the number of distinct loops in the set.
func (ls *LoopSet) Len() int { return len(ls.loops) }

// ID returns the sequential id Finalize assigned to loop, the same
// numbering the distance cache keys off of. Panics if called before
// Finalize or with a loop not owned by ls — both are programmer errors.
func (ls *LoopSet) ID(loop *sequence.Sequence) int {
	id, ok := ls.ids[loop]
	if !ok {
		panic("loopset: ID called on an unknown loop or before Finalize")
	}
	return id
}

// All returns every loop in sorted order. The returned slice is owned
// by the caller; LoopSet keeps its own backing array untouched.
func (ls *LoopSet) All() []*sequence.Sequence {
	out := make([]*sequence.Sequence, len(ls.loops))
	copy(out, ls.loops)
	return out
}

// loopsSortedBySize returns every loop ordered by size descending, with
// ties broken by the Finalize-established ascending Repr order (a
// stable sort over the already-sorted slice preserves it).
func (ls *LoopSet) loopsSortedBySize() []*sequence.Sequence {
	out := ls.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Size() > out[j].Size()
	})
	return out
}

// ContainingConcept counts the loops that have c as a link source.
func (ls *LoopSet) ContainingConcept(c concept.Concept) int {
	count := 0
	for _, loop := range ls.loops {
		if loop.HasSource(c) {
			count++
		}
	}
	return count
}

// ContainingLink counts the loops that contain a link from source to
// target.
func (ls *LoopSet) ContainingLink(source, target concept.Concept) int {
	count := 0
	for _, loop := range ls.loops {
		if loop.ContainsLink(source, target) {
			count++
		}
	}
	return count
}

// AllConcepts returns the union of every concept appearing in any
// stored loop.
func (ls *LoopSet) AllConcepts() map[concept.ID]concept.Concept {
	out := make(map[concept.ID]concept.Concept)
	for _, loop := range ls.loops {
		for id, c := range loop.AllConcepts() {
			out[id] = c
		}
	}
	return out
}

// distance returns the normalized cyclic edit distance between a and b,
// computed once and cached against the pair's Finalize-assigned ids.
// Panics if called before Finalize, or with a loop not owned by ls —
// both are programmer errors, never triggered by valid callers.
func (ls *LoopSet) distance(a, b *sequence.Sequence) float64 {
	idA, idB := ls.ID(a), ls.ID(b)
	key := [2]int{idA, idB}
	if idA > idB {
		key = [2]int{idB, idA}
	}
	if d, ok := ls.distances[key]; ok {
		return d
	}

	raw := editdist.LevCyclic(a.IDs(), b.IDs())
	denom := a.Size() + b.Size()
	var d float64
	if denom > 0 {
		d = float64(raw) / float64(denom)
	}
	ls.distances[key] = d
	return d
}
