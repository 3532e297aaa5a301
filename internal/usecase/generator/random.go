package generator

import (
	"math/rand/v2"
	"time"
)

// Random is the source of randomness a Generator draws from.
type Random interface {
	Float64() float64
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }
func (globalRandom) IntN(n int) int   { return rand.IntN(n) }

// NewSeeded returns a deterministic source. Not safe for concurrent use.
func NewSeeded(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type Clock func() time.Time
