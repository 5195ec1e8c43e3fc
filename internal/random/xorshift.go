// Package random provides the seeded selector that drives the computer
// opponent, plus seed generation for new matches.
//
// The selector is a 32-bit xorshift generator. Two selectors built from the
// same seed always produce the same sequence, which keeps whole matches
// replayable from their seed.
package random

// defaultState replaces a zero seed. A zero xorshift state never leaves zero.
const defaultState uint32 = 0x9E3779B9

// Xorshift32 is a deterministic uniform index generator.
type Xorshift32 struct {
	state uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *Xorshift32 {
	if seed == 0 {
		seed = defaultState
	}
	return &Xorshift32{state: seed}
}

// Next advances the state and returns a float in [0, 1) built from the high
// 16 bits of the new state.
func (x *Xorshift32) Next() float64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s

	return float64(s>>16) / 65536
}

// PickIndex returns an index in [0, maxInclusive].
func (x *Xorshift32) PickIndex(maxInclusive int) int {
	if maxInclusive < 0 {
		panic("random: PickIndex called with a negative bound")
	}
	return int(x.Next() * float64(maxInclusive+1))
}

// State returns the current internal state.
func (x *Xorshift32) State() uint32 {
	return x.state
}
