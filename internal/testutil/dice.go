package testutil

// ScriptedDice replays a fixed sequence of rolls, then falls back to a
// constant. It satisfies the combat.Dice interface so tests can force
// hit/miss/crit outcomes deterministically.
type ScriptedDice struct {
	Rolls    []float64
	Fallback float64

	next int
}

// Float64 returns the next scripted roll, or the fallback when the
// script is exhausted.
func (d *ScriptedDice) Float64() float64 {
	if d.next < len(d.Rolls) {
		v := d.Rolls[d.next]
		d.next++
		return v
	}
	return d.Fallback
}

// IntN maps the next roll into [0, n).
func (d *ScriptedDice) IntN(n int) int {
	v := int(d.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// FixedDice always rolls the same value. Zero forces every chance roll
// to succeed; 0.99 forces misses and failed flees.
type FixedDice struct {
	Value float64
}

// Float64 returns the fixed value.
func (d FixedDice) Float64() float64 { return d.Value }

// IntN maps the fixed value into [0, n).
func (d FixedDice) IntN(n int) int {
	v := int(d.Value * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
