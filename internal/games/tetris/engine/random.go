package engine

import (
	"iter"
	"math"
)

// Linear congruential generator parameters.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 0x80000000
)

// Hash advances an LCG seed. The modulus divides 2^64, so unsigned
// overflow in the product does not change the result.
func Hash(seed uint64) uint64 {
	return (lcgMultiplier*seed + lcgIncrement) % lcgModulus
}

// Scale maps a hash value into [-1, 1].
func Scale(hash uint64) float64 {
	return 2*float64(hash)/float64(lcgModulus-1) - 1
}

// ShapeIndex turns a scaled random value into a shape list index.
// Small magnitudes yield -1, which GenerateBlock replaces with the
// default shape.
func ShapeIndex(v float64) int {
	return int(math.Floor(math.Abs(v)*float64(len(Shapes)) - 1))
}

// Sequence returns the infinite sequence of scaled values starting at seed.
// Every iteration restarts from the seed.
func Sequence(seed uint64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		h := seed
		for {
			h = Hash(h)
			if !yield(Scale(h)) {
				return
			}
		}
	}
}

// Stream is a pull-style cursor over Sequence.
type Stream struct {
	seed  uint64
	state uint64
}

// NewStream starts a stream at seed.
func NewStream(seed uint64) *Stream {
	return &Stream{seed: seed, state: seed}
}

// Next returns the next scaled value.
func (s *Stream) Next() float64 {
	s.state = Hash(s.state)
	return Scale(s.state)
}

// NextShapeIndex returns the next value converted to a shape index.
func (s *Stream) NextShapeIndex() int {
	return ShapeIndex(s.Next())
}

// Restart rewinds the stream to a new seed.
func (s *Stream) Restart(seed uint64) {
	s.seed = seed
	s.state = seed
}

// Seed returns the seed the stream was last started from.
func (s *Stream) Seed() uint64 {
	return s.seed
}
