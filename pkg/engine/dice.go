package engine

import (
	"math/rand/v2"
	"time"
)

// Dice is the engine's source of randomness. Combat tests install a
// scripted implementation to pin down outcomes.
type Dice interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type pcgDice struct {
	r *rand.Rand
}

// NewDice returns a seeded random source. Seed 0 draws a seed from the
// clock.
func NewDice(seed uint64) Dice {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgDice{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (d *pcgDice) Float64() float64 { return d.r.Float64() }
func (d *pcgDice) IntN(n int) int   { return d.r.IntN(n) }

// roll reports whether a chance in [0, 1] comes up.
func roll(d Dice, chance float64) bool {
	if chance <= 0 {
		return false
	}
	if chance >= 1 {
		return true
	}
	return d.Float64() < chance
}

// d20 rolls a twenty-sided die, returning 1 through 20.
func d20(d Dice) int {
	return d.IntN(20) + 1
}
