package sequence

import (
	"strconv"
	"strings"

	"github.com/cldgraph/cldscore/concept"
)

// Polarity classifies a loop by the parity of its Decreases links. Only
// meaningful once Sequence.Loop() is true.
type Polarity uint8

const (
	// Reinforcing loops have an even count of Decreases links.
	Reinforcing Polarity = iota
	// Balancing loops have an odd count of Decreases links.
	Balancing
)

// String renders the Polarity for diagnostics.
func (p Polarity) String() string {
	if p == Balancing {
		return "BALANCING"
	}
	return "REINFORCING"
}

// Classification is the diagnostic type of a Sequence: still open,
// closed on an interior concept (a dead end, not a simple cycle), or a
// loop of one polarity or the other.
type Classification uint8

const (
	Open Classification = iota
	ClosedNotLoop
	ReinforcingLoop
	BalancingLoop
)

// String renders the Classification for diagnostics and Stats().
func (c Classification) String() string {
	switch c {
	case ClosedNotLoop:
		return "CLOSED"
	case ReinforcingLoop:
		return "REINFORCING_LOOP"
	case BalancingLoop:
		return "BALANCING_LOOP"
	default:
		return "OPEN"
	}
}

// Sequence is an ordered list of concept.Link forming a path or loop.
//
// Append grows it; once Closed() is true, Append refuses further growth.
// A Sequence is the unit network.Network's DFS builds one link at a time
// and loopset.LoopSet stores (in canonical rotation) once it is a loop.
type Sequence struct {
	links      []concept.Link
	closed     bool
	loop       bool
	negatives  int
	reprCache  string
	reprValid  bool
}

// New returns an empty Sequence.
func New() *Sequence {
	return &Sequence{}
}

// Clone returns a deep copy: the returned Sequence shares no backing
// slice with s, so rotating or appending to the clone never mutates s.
// network.Network's DFS clones the in-progress path before recursing
// into each branch, so sibling branches don't see each other's mutations.
func (s *Sequence) Clone() *Sequence {
	out := &Sequence{
		links:     append([]concept.Link(nil), s.links...),
		closed:    s.closed,
		loop:      s.loop,
		negatives: s.negatives,
	}
	return out
}

// Append adds link to the end of the sequence and recomputes the
// derived Closed/Loop/negatives flags. It returns ErrSequenceClosed
// without mutating s if s is already closed.
func (s *Sequence) Append(link concept.Link) error {
	if s.closed {
		return ErrSequenceClosed
	}
	s.links = append(s.links, link)
	s.recompute()
	return nil
}

// recompute refreshes Closed/Loop from the current links, adds the
// newly appended link to negatives, and invalidates the cached Repr.
// Called once per Append; each call is O(size).
func (s *Sequence) recompute() {
	s.reprValid = false

	if link, ok := s.lastLink(); ok && link.Influence == concept.Decreases {
		s.negatives++
	}

	if len(s.links) == 0 {
		s.closed = false
		s.loop = false
		return
	}

	lastTarget := s.links[len(s.links)-1].Target
	idx := s.indexOfSource(lastTarget)
	s.closed = idx != -1
	s.loop = idx == 0
}

func (s *Sequence) lastLink() (concept.Link, bool) {
	if len(s.links) == 0 {
		return concept.Link{}, false
	}
	return s.links[len(s.links)-1], true
}

// indexOfSource returns the index of the link whose Source equals c, or
// -1 if none does.
func (s *Sequence) indexOfSource(c concept.Concept) int {
	for i, l := range s.links {
		if l.Source.ID == c.ID {
			return i
		}
	}
	return -1
}

// HasSource reports whether any link in s has c as its source.
func (s *Sequence) HasSource(c concept.Concept) bool {
	return s.indexOfSource(c) != -1
}

// ContainsLink reports whether s contains a link from source to target.
func (s *Sequence) ContainsLink(source, target concept.Concept) bool {
	for _, l := range s.links {
		if l.Source.ID == source.ID && l.Target.ID == target.ID {
			return true
		}
	}
	return false
}

// Closed reports whether the last link's target equals the source of
// some earlier link in the sequence (including, for a loop, the first).
func (s *Sequence) Closed() bool { return s.closed }

// Loop reports whether s is Closed and the closing link's target is the
// very first link's source — a simple cycle on its own head.
func (s *Sequence) Loop() bool { return s.loop }

// Negatives returns the count of Decreases links.
func (s *Sequence) Negatives() int { return s.negatives }

// Polarity returns Reinforcing or Balancing based on the parity of
// Negatives(). Only meaningful when Loop() is true.
func (s *Sequence) Polarity() Polarity {
	if s.negatives%2 == 1 {
		return Balancing
	}
	return Reinforcing
}

// Classification returns the diagnostic Classification of s.
func (s *Sequence) Classification() Classification {
	switch {
	case !s.closed:
		return Open
	case !s.loop:
		return ClosedNotLoop
	case s.Polarity() == Balancing:
		return BalancingLoop
	default:
		return ReinforcingLoop
	}
}

// Size returns the number of links in s.
func (s *Sequence) Size() int { return len(s.links) }

// Head returns the source of the first link, or the zero Concept and
// false if s is empty.
func (s *Sequence) Head() (concept.Concept, bool) {
	if len(s.links) == 0 {
		return concept.Concept{}, false
	}
	return s.links[0].Source, true
}

// Tail returns the target of the last link, or the zero Concept and
// false if s is empty.
func (s *Sequence) Tail() (concept.Concept, bool) {
	if len(s.links) == 0 {
		return concept.Concept{}, false
	}
	return s.links[len(s.links)-1].Target, true
}

// Links returns the sequence's links in order. The returned slice is
// owned by the caller.
func (s *Sequence) Links() []concept.Link {
	return append([]concept.Link(nil), s.links...)
}

// AllConcepts returns the set of distinct concepts appearing as a
// source in s, plus the final target if s is non-empty.
func (s *Sequence) AllConcepts() map[concept.ID]concept.Concept {
	out := make(map[concept.ID]concept.Concept, len(s.links)+1)
	for _, l := range s.links {
		out[l.Source.ID] = l.Source
	}
	if len(s.links) > 0 {
		last := s.links[len(s.links)-1]
		out[last.Target.ID] = last.Target
	}
	return out
}

// IDs returns the ordered list of source concept ids as plain ints,
// which is what editdist.Lev/LevCyclic consume.
func (s *Sequence) IDs() []int {
	out := make([]int, len(s.links))
	for i, l := range s.links {
		out[i] = int(l.Source.ID)
	}
	return out
}

// Rotate moves the head link to the tail. A no-op unless Loop() is
// true; rotating a non-loop sequence would be meaningless since the
// notion of "head" only matters for the cyclic form.
func (s *Sequence) Rotate() {
	if !s.loop || len(s.links) == 0 {
		return
	}
	head := s.links[0]
	s.links = append(s.links[1:], head)
	s.reprValid = false
}

// RotateTo rotates s until c is the source of the head link. A no-op if
// s is not a loop or c does not occur as a source in s.
func (s *Sequence) RotateTo(c concept.Concept) {
	if !s.loop || len(s.links) == 0 {
		return
	}
	if s.indexOfSource(c) == -1 {
		return
	}
	for s.links[0].Source.ID != c.ID {
		s.Rotate()
	}
}

// RotateToCanonical rotates s until the source with the minimum
// Concept.ID is at the head. Since concept ids within one loop are
// unique, this rotation is unique, which is what makes Repr() a stable
// dedup key across rotations of the same cycle.
func (s *Sequence) RotateToCanonical() {
	if !s.loop || len(s.links) == 0 {
		return
	}
	lowest := s.links[0].Source
	for _, l := range s.links[1:] {
		if l.Source.ID < lowest.ID {
			lowest = l.Source
		}
	}
	s.RotateTo(lowest)
}

// Repr returns the canonical string representation used as the
// equality/hash key inside loopset.LoopSet, of the form
// "LOOP: s0+s1-{s0}" (sign glyphs between consecutive source ids, final
// target in braces). Open/closed-but-not-loop sequences use the
// "SEQUENCE: "/"CLOSED: " prefixes instead, for diagnostics only.
func (s *Sequence) Repr() string {
	if s.reprValid {
		return s.reprCache
	}

	var prefix string
	switch {
	case s.loop:
		prefix = "LOOP: "
	case s.closed:
		prefix = "CLOSED: "
	default:
		prefix = "SEQUENCE: "
	}

	if len(s.links) == 0 {
		s.reprCache = prefix + "<EMPTY>"
		s.reprValid = true
		return s.reprCache
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(strconv.Itoa(int(s.links[0].Source.ID)))

	for i, l := range s.links {
		b.WriteString(l.Influence.Sign())
		if s.closed && i == len(s.links)-1 {
			b.WriteByte('{')
			b.WriteString(strconv.Itoa(int(l.Target.ID)))
			b.WriteByte('}')
		} else {
			b.WriteString(strconv.Itoa(int(l.Target.ID)))
		}
	}

	s.reprCache = b.String()
	s.reprValid = true
	return s.reprCache
}

// Less orders sequences lexicographically by Repr(), giving loopset a
// deterministic total order over loops independent of discovery order.
func (s *Sequence) Less(other *Sequence) bool {
	return s.Repr() < other.Repr()
}
