package core

import (
	"math/rand"
	"time"
)

// SecretGenerator produces the hidden code for a new round
type SecretGenerator interface {
	Generate() Code
}

// RandomGenerator draws each slot independently and uniformly from the palette
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator seeds from seed, or from the clock when seed is 0
func NewRandomGenerator(seed int64) *RandomGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

func (g *RandomGenerator) Generate() Code {
	var c Code
	for i := range c {
		c[i] = Peg(g.rng.Intn(PegCount))
	}
	return c
}

// FixedGenerator always returns the same code
type FixedGenerator struct {
	Code Code
}

func (g FixedGenerator) Generate() Code {
	return g.Code
}

// SequenceGenerator returns codes in order, repeating the last one when exhausted
type SequenceGenerator struct {
	Codes []Code
	next  int
}

func (g *SequenceGenerator) Generate() Code {
	if len(g.Codes) == 0 {
		panic("invariant violation: empty secret sequence")
	}
	c := g.Codes[min(g.next, len(g.Codes)-1)]
	g.next++
	return c
}
