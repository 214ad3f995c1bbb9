// Package effects owns the status effect lifecycle: per-round ticking,
// expiry and the reports the combat layer consumes.
package effects

import (
	"log/slog"

	"github.com/sintov/rpgbot/internal/model"
)

// Phase selects which half of the round is being ticked.
type Phase int32

const (
	RoundStart Phase = iota
	RoundEnd
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case RoundStart:
		return "ROUND_START"
	case RoundEnd:
		return "ROUND_END"
	default:
		return "UNKNOWN"
	}
}

// EffectTick is what one effect did during a tick.
type EffectTick struct {
	Kind    model.EffectKind
	HPDelta int32 // negative for DOT damage, positive for regen
	Expired bool
}

// TickReport is the observable outcome of one Tick call.
type TickReport struct {
	Ticks    []EffectTick
	Defeated bool // host hit the death floor during this tick
}

// Engine applies status effect ticks. Stateless apart from the death
// floor; the effect list itself lives on the combatant.
type Engine struct {
	deathFloor int32
}

// NewEngine creates an effect engine with the given soft-defeat floor.
func NewEngine(deathFloor int32) *Engine {
	return &Engine{deathFloor: deathFloor}
}

// Tick applies one phase of effect processing to the combatant.
//
// RoundStart: regeneration heals (capped at max HP). Control effects do
// nothing here; the resolver reads them before action execution.
//
// RoundEnd: damage-over-time effects subtract their intensity (clamped
// at the death floor, which can defeat the host), then every effect's
// RemainingTurns decrements and expired effects are removed.
func (e *Engine) Tick(c *model.Combatant, phase Phase) TickReport {
	var report TickReport

	active := c.ActiveEffects()
	if len(active) == 0 {
		return report
	}

	switch phase {
	case RoundStart:
		for _, eff := range active {
			if eff.Kind != model.EffectRegen {
				continue
			}
			healed := c.RestoreHP(eff.Intensity)
			report.Ticks = append(report.Ticks, EffectTick{Kind: eff.Kind, HPDelta: healed})
			slog.Debug("regen tick", "combatant", c.ID(), "healed", healed)
		}

	case RoundEnd:
		kept := active[:0]
		for _, eff := range active {
			tick := EffectTick{Kind: eff.Kind}

			if eff.Kind.IsDamageOverTime() {
				before := c.CurrentHP()
				c.ReduceCurrentHP(eff.Intensity, e.deathFloor)
				tick.HPDelta = c.CurrentHP() - before
				if c.CurrentHP() <= e.deathFloor {
					report.Defeated = true
				}
				slog.Debug("dot tick",
					"combatant", c.ID(),
					"kind", eff.Kind.String(),
					"damage", -tick.HPDelta)
			}

			eff.RemainingTurns--
			if eff.RemainingTurns <= 0 {
				tick.Expired = true
			} else {
				kept = append(kept, eff)
			}
			report.Ticks = append(report.Ticks, tick)
		}
		c.UpdateEffects(kept)
	}

	return report
}
