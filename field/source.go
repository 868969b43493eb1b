package field

import "math/rand/v2"

// Source supplies the random numbers used to pick and turn new figures.
type Source interface {
	NextU32() uint32
}

type pcgSource struct {
	rng *rand.Rand
}

// NewSource returns a seeded pseudo-random Source.
func NewSource(seed uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *pcgSource) NextU32() uint32 {
	return s.rng.Uint32()
}

// Sequence replays its values in order and starts over when exhausted.
// An empty Sequence always yields zero.
type Sequence struct {
	Values []uint32
	next   int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...uint32) *Sequence {
	return &Sequence{Values: values}
}

func (s *Sequence) NextU32() uint32 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
