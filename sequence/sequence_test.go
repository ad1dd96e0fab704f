package sequence_test

import (
	"testing"

	"github.com/cldgraph/cldscore/concept"
	"github.com/cldgraph/cldscore/sequence"
	"github.com/stretchr/testify/assert"
)

func newTriangle(t *testing.T) (a, b, c concept.Concept, s *sequence.Sequence) {
	t.Helper()
	r := concept.NewRegistry()
	var err error
	a, err = r.GetOrCreate("A")
	assert.NoError(t, err)
	b, err = r.GetOrCreate("B")
	assert.NoError(t, err)
	c, err = r.GetOrCreate("C")
	assert.NoError(t, err)

	s = sequence.New()
	assert.NoError(t, s.Append(concept.Link{Source: a, Influence: concept.Increases, Target: b}))
	assert.NoError(t, s.Append(concept.Link{Source: b, Influence: concept.Increases, Target: c}))
	assert.NoError(t, s.Append(concept.Link{Source: c, Influence: concept.Increases, Target: a}))
	return a, b, c, s
}

func TestSequence_ClosesOnOwnHead_IsLoop(t *testing.T) {
	_, _, _, s := newTriangle(t)

	assert.True(t, s.Closed())
	assert.True(t, s.Loop())
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, sequence.Reinforcing, s.Polarity())
	assert.Equal(t, sequence.ReinforcingLoop, s.Classification())
}

func TestSequence_BalancingLoop(t *testing.T) {
	r := concept.NewRegistry()
	a, _ := r.GetOrCreate("A")
	b, _ := r.GetOrCreate("B")
	c, _ := r.GetOrCreate("C")

	s := sequence.New()
	assert.NoError(t, s.Append(concept.Link{Source: a, Influence: concept.Increases, Target: b}))
	assert.NoError(t, s.Append(concept.Link{Source: b, Influence: concept.Increases, Target: c}))
	assert.NoError(t, s.Append(concept.Link{Source: c, Influence: concept.Decreases, Target: a}))

	assert.Equal(t, sequence.Balancing, s.Polarity())
	assert.Equal(t, 1, s.Negatives())
}

func TestSequence_ClosedNotLoop_DeadEnd(t *testing.T) {
	r := concept.NewRegistry()
	a, _ := r.GetOrCreate("A")
	b, _ := r.GetOrCreate("B")
	c, _ := r.GetOrCreate("C")

	s := sequence.New()
	assert.NoError(t, s.Append(concept.Link{Source: a, Influence: concept.Increases, Target: b}))
	assert.NoError(t, s.Append(concept.Link{Source: b, Influence: concept.Increases, Target: c}))
	assert.NoError(t, s.Append(concept.Link{Source: c, Influence: concept.Increases, Target: b}))

	assert.True(t, s.Closed())
	assert.False(t, s.Loop())
	assert.Equal(t, sequence.ClosedNotLoop, s.Classification())
}

func TestSequence_AppendAfterClosed_Errors(t *testing.T) {
	_, _, a, s := newTriangle(t)
	err := s.Append(concept.Link{Source: a, Influence: concept.Increases, Target: a})
	assert.ErrorIs(t, err, sequence.ErrSequenceClosed)
	assert.Equal(t, 3, s.Size(), "rejected append must not mutate the sequence")
}

func TestSequence_RotateToCanonical(t *testing.T) {
	a, b, c, s := newTriangle(t)
	_ = b
	_ = c

	s.RotateToCanonical()
	head, ok := s.Head()
	assert.True(t, ok)
	assert.Equal(t, a.ID, head.ID, "A has the lowest id (0), canonical head must be A")
}

func TestSequence_RotationsShareRepr(t *testing.T) {
	_, _, _, s1 := newTriangle(t)
	s2 := s1.Clone()
	s2.Rotate()
	s2.Rotate()

	assert.NotEqual(t, s1.Repr(), s2.Repr(), "un-canonicalized rotations may differ")

	s1.RotateToCanonical()
	s2.RotateToCanonical()
	assert.Equal(t, s1.Repr(), s2.Repr(), "canonical rotation must be unique per cycle")
}

func TestSequence_ReprFormat(t *testing.T) {
	_, _, _, s := newTriangle(t)
	s.RotateToCanonical()
	assert.Equal(t, "LOOP: 0+1+2+{0}", s.Repr())
}

func TestSequence_Clone_Independence(t *testing.T) {
	_, _, _, s1 := newTriangle(t)
	s2 := s1.Clone()
	s2.Rotate()

	assert.NotEqual(t, s1.Repr(), s2.Repr())
	assert.Equal(t, 3, s1.Size())
	assert.Equal(t, 3, s2.Size())
}

func TestSequence_IDs(t *testing.T) {
	_, _, _, s := newTriangle(t)
	assert.Equal(t, []int{0, 1, 2}, s.IDs())
}

func TestSequence_HasSourceAndContainsLink(t *testing.T) {
	a, b, c, s := newTriangle(t)
	assert.True(t, s.HasSource(a))
	assert.True(t, s.ContainsLink(a, b))
	assert.False(t, s.ContainsLink(b, a))
	_ = c
}

func TestSequence_Less_LexicographicByRepr(t *testing.T) {
	_, _, _, s1 := newTriangle(t)
	s1.RotateToCanonical()

	r := concept.NewRegistry()
	x, _ := r.GetOrCreate("X")
	y, _ := r.GetOrCreate("Y")
	s2 := sequence.New()
	_ = s2.Append(concept.Link{Source: x, Influence: concept.Increases, Target: y})
	_ = s2.Append(concept.Link{Source: y, Influence: concept.Increases, Target: x})
	s2.RotateToCanonical()

	// Both reprs start "LOOP: 0+1+"; s1 continues with '2' and s2 with
	// '{', which sorts after every digit. Order follows the string, not
	// the loop size: the larger loop s1 comes first.
	assert.True(t, s1.Less(s2))
}
