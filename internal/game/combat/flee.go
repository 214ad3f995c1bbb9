package combat

import (
	"log/slog"

	"github.com/sintov/rpgbot/internal/model"
)

// ResolveFlee rolls a flee attempt by the actor.
//
// Success probability is the base flee chance shifted by the speed
// difference and clamped; on success combat ends immediately with no
// enemy response. On failure the caller grants the enemy one free
// response action.
func (r *Resolver) ResolveFlee(actor, target Side) *CombatResult {
	chance := r.cfg.BaseFleeChance +
		r.cfg.FleePerPoint*float64(actor.Eff.Speed-target.Eff.Speed)
	chance = clamp(chance, r.cfg.MinFleeChance, r.cfg.MaxFleeChance)

	fled := r.dice.Float64() < chance

	slog.Debug("flee attempt",
		"actor", actor.C.ID(),
		"chance", chance,
		"fled", fled)

	return &CombatResult{
		Action:     model.ActionFlee,
		Fled:       fled,
		ComboAfter: actor.C.ComboCount(),
	}
}
