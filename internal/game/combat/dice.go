package combat

import "math/rand/v2"

// Dice is the randomness source for combat rolls. The production
// implementation wraps math/rand/v2; tests substitute scripted rolls to
// force hit/miss/crit outcomes deterministically.
type Dice interface {
	// Float64 returns a roll in [0.0, 1.0).
	Float64() float64
	// IntN returns a roll in [0, n). Precondition: n > 0.
	IntN(n int) int
}

// randDice is the default Dice backed by the shared math/rand/v2 source.
type randDice struct{}

func (randDice) Float64() float64 { return rand.Float64() }
func (randDice) IntN(n int) int   { return rand.IntN(n) }

// NewDice returns the production randomness source.
func NewDice() Dice { return randDice{} }
