// Package combat implements the turn resolution pipeline: hit, crit,
// damage, mitigation, defensive reactions and status infliction.
//
// Every attack variant runs the same pipeline parameterized by an
// ActionProfile; there are no per-variant code paths.
package combat

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sintov/rpgbot/internal/config"
	"github.com/sintov/rpgbot/internal/data"
	"github.com/sintov/rpgbot/internal/model"
)

// Resolution errors. All are recoverable: the action is rejected before
// any mutation and the caller reports the reason to the player.
var (
	ErrInsufficientResource = errors.New("insufficient mana or stamina")
	ErrUnknownAction        = errors.New("unknown action")
	ErrUnknownSkill         = errors.New("unknown skill")
	ErrUnknownItem          = errors.New("unknown item")
)

// Catalog is the read-only content lookup the resolver needs.
type Catalog interface {
	Skill(id string) (data.SkillDef, bool)
	Consumable(id string) (data.ConsumableDef, bool)
}

// Side bundles a combatant with its effective stats for this round.
// The engine recomputes effective stats each round (equipment and
// passives can change between rounds) and passes them in; the resolver
// never caches them.
type Side struct {
	C   *model.Combatant
	Eff model.EffectiveStats
}

// Resolver runs the single resolution pipeline.
type Resolver struct {
	cfg     config.Combat
	catalog Catalog
	dice    Dice
}

// NewResolver creates a resolver with the given tunables and dice.
// A nil dice falls back to the production randomness source.
func NewResolver(cfg config.Combat, catalog Catalog, dice Dice) *Resolver {
	if dice == nil {
		dice = NewDice()
	}
	return &Resolver{cfg: cfg, catalog: catalog, dice: dice}
}

// Resolve resolves one action by the actor against the target.
//
// Order: resource check (fail fast, no mutation) → control check (stun/
// freeze skips the action without consuming resources) → action
// execution. Offensive actions run the damage pipeline; reactions,
// recovery actions and Observe commit their own side effects directly.
//
// Once Resolve returns a result, its mutations are committed: callers
// must not roll them back.
func (r *Resolver) Resolve(actor, target Side, action model.CombatAction) (*CombatResult, error) {
	profile, err := r.profileFor(action)
	if err != nil {
		return nil, err
	}

	// 1. Resource check: fail fast before any mutation.
	if profile.ManaCost > actor.C.CurrentMana() || profile.StaminaCost > actor.C.CurrentStamina() {
		return nil, ErrInsufficientResource
	}

	// 2. Control check: a stunned/frozen actor loses the action but
	// keeps the resources it would have spent.
	if actor.C.IsControlled() {
		slog.Debug("action skipped, actor controlled",
			"actor", actor.C.ID(),
			"action", action.Type.String())
		return &CombatResult{
			Action:     action.Type,
			Skipped:    true,
			ComboAfter: actor.C.ComboCount(),
		}, nil
	}

	// Commit resource costs. Spending cannot fail here: the pools were
	// checked above and nothing mutates them in between within a round.
	actor.C.SpendMana(profile.ManaCost)
	actor.C.SpendStamina(profile.StaminaCost)

	if action.Type.IsOffensive() {
		return r.resolveOffensive(actor, target, action.Type, profile), nil
	}
	return r.resolveUtility(actor, target, action)
}

// profileFor maps an action to its pipeline parameterization.
func (r *Resolver) profileFor(action model.CombatAction) (model.ActionProfile, error) {
	if p, ok := model.BaseProfile(action.Type); ok {
		return p, nil
	}
	switch action.Type {
	case model.ActionSkill:
		def, ok := r.catalog.Skill(action.SkillID)
		if !ok {
			return model.ActionProfile{}, fmt.Errorf("%w: %q", ErrUnknownSkill, action.SkillID)
		}
		return def.Profile, nil
	case model.ActionUseItem:
		if _, ok := r.catalog.Consumable(action.ItemID); !ok {
			return model.ActionProfile{}, fmt.Errorf("%w: %q", ErrUnknownItem, action.ItemID)
		}
		return model.ActionProfile{}, nil
	case model.ActionBlock, model.ActionDodge, model.ActionCounter,
		model.ActionMeditate, model.ActionObserve, model.ActionWait,
		model.ActionFlee, model.ActionTame:
		return model.ActionProfile{}, nil
	default:
		return model.ActionProfile{}, fmt.Errorf("%w: %v", ErrUnknownAction, action.Type)
	}
}

// resolveOffensive runs steps 3-9 of the pipeline for any damaging action.
func (r *Resolver) resolveOffensive(actor, target Side, actionType model.ActionType, profile model.ActionProfile) *CombatResult {
	res := &CombatResult{Action: actionType, DamageType: profile.DamageType}

	// 3. Hit determination.
	hitChance := r.cfg.BaseHitChance + profile.HitMod +
		r.cfg.HitPerPoint*float64(actor.Eff.Accuracy-target.Eff.Evasion)
	hitChance = clamp(hitChance, r.cfg.MinHitChance, r.cfg.MaxHitChance)

	if r.dice.Float64() >= hitChance {
		// A miss breaks the combo and leaves the target untouched.
		actor.C.ResetCombo()
		res.ComboAfter = 0
		slog.Debug("attack missed",
			"actor", actor.C.ID(),
			"target", target.C.ID(),
			"chance", hitChance)
		return res
	}
	res.Hit = true

	// 4. Critical determination.
	critChance := actor.Eff.CritChance + profile.CritMod
	if r.dice.Float64() < critChance {
		res.Critical = true
	}

	// 5. Raw damage: power × scaling stat − mitigating defense,
	// floored so a successful hit always chips at least MinDamage.
	raw := profile.Power*float64(scalingStat(actor.Eff, profile.DamageType)) -
		float64(mitigatingDefense(target.Eff, profile.DamageType))
	if raw < float64(r.cfg.MinDamage) {
		raw = float64(r.cfg.MinDamage)
	}
	if res.Critical {
		raw *= actor.Eff.CritDamage
	}

	// 6. Type mitigation. Immunity beats weakness beats resistance;
	// immunity zeroes the damage no matter what the attacker brings.
	raw *= target.C.DamageMultiplier(profile.DamageType)

	// 7. Defensive reactions declared by the target this round.
	switch target.C.DeclaredReaction() {
	case model.ReactionBlock:
		raw *= r.cfg.BlockFactor
		res.Blocked = true
	case model.ReactionDodge:
		dodgeChance := clamp(
			r.cfg.DodgeBase+r.cfg.DodgePerPoint*float64(target.Eff.Evasion-actor.Eff.Accuracy),
			0.05, 0.95,
		)
		if r.dice.Float64() < dodgeChance {
			raw = 0
			res.Dodged = true
		}
	}

	damage := int32(raw)

	// Shield buffs absorb a flat amount per hit.
	if damage > 0 {
		for _, eff := range target.C.ActiveEffects() {
			if eff.Kind == model.EffectShield {
				damage = max(damage-eff.Intensity, 0)
				break
			}
		}
	}
	res.Damage = damage

	// 8. Commit.
	if damage > 0 {
		target.C.ReduceCurrentHP(damage, r.cfg.DeathFloor)
	}
	if res.Dodged {
		res.ComboAfter = actor.C.ComboCount()
	} else {
		res.ComboAfter = actor.C.IncrementCombo()
	}

	if damage > 0 && profile.HasInfliction() && !target.C.IsDefeated(r.cfg.DeathFloor) {
		if r.dice.Float64() < profile.EffectChance {
			inflicted := model.StatusEffect{
				Kind:           profile.InflictKind,
				RemainingTurns: profile.InflictTurns,
				Intensity:      inflictIntensity(profile, damage),
			}
			target.C.ApplyEffect(inflicted)
			res.EffectsInflicted = append(res.EffectsInflicted, inflicted)
		}
	}

	// Counter reflects a fraction of the damage taken back at the actor.
	if damage > 0 && target.C.DeclaredReaction() == model.ReactionCounter {
		res.CounterDamage = int32(float64(damage) * r.cfg.CounterRatio)
		if res.CounterDamage > 0 {
			actor.C.ReduceCurrentHP(res.CounterDamage, r.cfg.DeathFloor)
		}
	}

	// 9. Terminal check.
	res.TargetDefeated = target.C.IsDefeated(r.cfg.DeathFloor)
	res.ActorDefeated = actor.C.IsDefeated(r.cfg.DeathFloor)

	slog.Debug("attack resolved",
		"actor", actor.C.ID(),
		"target", target.C.ID(),
		"action", actionType.String(),
		"damage", damage,
		"crit", res.Critical,
		"blocked", res.Blocked,
		"dodged", res.Dodged,
		"combo", res.ComboAfter)

	return res
}

// resolveUtility handles the non-damaging actions: declared reactions,
// recovery, item use and Observe.
func (r *Resolver) resolveUtility(actor, target Side, action model.CombatAction) (*CombatResult, error) {
	res := &CombatResult{Action: action.Type, ComboAfter: actor.C.ComboCount()}

	switch action.Type {
	case model.ActionBlock:
		actor.C.DeclareReaction(model.ReactionBlock)
		// An explicit defensive stance trades the combo away.
		actor.C.ResetCombo()
		res.ComboAfter = 0

	case model.ActionDodge:
		actor.C.DeclareReaction(model.ReactionDodge)
		actor.C.ResetCombo()
		res.ComboAfter = 0

	case model.ActionCounter:
		actor.C.DeclareReaction(model.ReactionCounter)
		actor.C.ResetCombo()
		res.ComboAfter = 0

	case model.ActionMeditate:
		res.ManaRestored = actor.C.RestoreMana(r.cfg.MeditateMana)
		res.StaminaRestored = actor.C.RestoreStamina(r.cfg.MeditateStamina)

	case model.ActionWait:
		res.StaminaRestored = actor.C.RestoreStamina(r.cfg.WaitStamina)

	case model.ActionObserve:
		imm, weak, resist := target.C.Affinities()
		res.RevealedInfo = &TargetIntel{
			Name:        target.C.Name(),
			Level:       target.C.Level(),
			HPFraction:  target.C.HPFraction(),
			Immunities:  imm,
			Weaknesses:  weak,
			Resistances: resist,
		}

	case model.ActionUseItem:
		def, ok := r.catalog.Consumable(action.ItemID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownItem, action.ItemID)
		}
		if def.RestoreHP > 0 {
			res.HPRestored = actor.C.RestoreHP(def.RestoreHP)
		}
		if def.RestoreMana > 0 {
			res.ManaRestored = actor.C.RestoreMana(def.RestoreMana)
		}
		if def.RestoreStamina > 0 {
			res.StaminaRestored = actor.C.RestoreStamina(def.RestoreStamina)
		}
		if def.CureControl {
			actor.C.RemoveEffect(model.EffectStun)
			actor.C.RemoveEffect(model.EffectFreeze)
		}

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAction, action.Type)
	}

	return res, nil
}

// scalingStat picks the offensive stat the damage formula scales on.
func scalingStat(eff model.EffectiveStats, t model.DamageType) int32 {
	if t.IsMagical() {
		return eff.MagicPower
	}
	return eff.Attack
}

// mitigatingDefense picks the defense subtracted from raw damage.
func mitigatingDefense(eff model.EffectiveStats, t model.DamageType) int32 {
	if t.IsMagical() {
		return eff.MagicResistance
	}
	return eff.PhysicalDefense
}

// inflictIntensity derives an inflicted effect's intensity from the hit.
func inflictIntensity(p model.ActionProfile, damage int32) int32 {
	intensity := int32(float64(damage) * p.InflictRatio)
	if intensity < p.InflictMinValue {
		intensity = p.InflictMinValue
	}
	if intensity < 1 {
		intensity = 1
	}
	return intensity
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
