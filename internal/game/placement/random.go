package placement

import "math/rand/v2"

// Source is a pseudo-random generator with explicit state.
//
// Drawing never changes the receiver: it returns the value together
// with the source to draw the following value from. Reusing a source
// replays the same value.
type Source interface {
	// Returns an integer in [lo, hi) and the next source.
	Intn(lo, hi int) (int, Source)
}

// Draws the value at slot n of src, i.e. skips n draws first.
// The returned source follows the drawn value.
func Skip(src Source, n int, lo, hi int) (int, Source) {
	var v int
	for range n + 1 {
		v, src = src.Intn(lo, hi)
	}
	return v, src
}

// PCG is a seeded Source on top of the math/rand/v2 PCG generator.
type PCG struct {
	state rand.PCG
}

func NewPCG(seed1, seed2 uint64) PCG {
	return PCG{state: *rand.NewPCG(seed1, seed2)}
}

func (p PCG) Intn(lo, hi int) (int, Source) {
	state := p.state
	v := lo + rand.New(&state).IntN(hi-lo)
	return v, PCG{state: state}
}

// Sequence replays scripted values, wrapping around at the end.
// Every value is reduced modulo the requested range.
type Sequence struct {
	values []int
	pos    int
}

func NewSequence(values ...int) Sequence {
	return Sequence{values: append([]int(nil), values...)}
}

func (s Sequence) Intn(lo, hi int) (int, Source) {
	if len(s.values) == 0 {
		panic("empty sequence")
	}

	n := hi - lo
	v := lo + ((s.values[s.pos]%n)+n)%n

	return v, Sequence{
		values: s.values,
		pos:    (s.pos + 1) % len(s.values),
	}
}
