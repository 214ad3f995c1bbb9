package model

// EffectKind identifies a status effect.
type EffectKind int32

const (
	EffectBleed EffectKind = iota
	EffectPoison
	EffectBurn
	EffectStun
	EffectFreeze
	EffectRegen
	EffectShield
	EffectEmpowered
)

// String returns a human-readable effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectBleed:
		return "BLEED"
	case EffectPoison:
		return "POISON"
	case EffectBurn:
		return "BURN"
	case EffectStun:
		return "STUN"
	case EffectFreeze:
		return "FREEZE"
	case EffectRegen:
		return "REGEN"
	case EffectShield:
		return "SHIELD"
	case EffectEmpowered:
		return "EMPOWERED"
	default:
		return "UNKNOWN"
	}
}

// IsDamageOverTime reports whether the effect damages its host each tick.
func (k EffectKind) IsDamageOverTime() bool {
	return k == EffectBleed || k == EffectPoison || k == EffectBurn
}

// IsControl reports whether the effect forces the host to skip its action.
func (k EffectKind) IsControl() bool {
	return k == EffectStun || k == EffectFreeze
}

// IsBeneficial reports whether the effect helps its host.
func (k EffectKind) IsBeneficial() bool {
	return k == EffectRegen || k == EffectShield || k == EffectEmpowered
}

// StatusEffect is one active effect on a combatant.
// RemainingTurns never goes negative; the effect is removed the tick
// it reaches zero.
type StatusEffect struct {
	Kind           EffectKind
	RemainingTurns int32
	Intensity      int32
}

// ApplyEffect adds an effect or refreshes an existing one of the same Kind.
// Re-applying never creates a second entry: duration is refreshed to the
// larger of the two and intensity to the larger of the two.
func (c *Combatant) ApplyEffect(e StatusEffect) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.effects {
		if c.effects[i].Kind == e.Kind {
			c.effects[i].RemainingTurns = max(c.effects[i].RemainingTurns, e.RemainingTurns)
			c.effects[i].Intensity = max(c.effects[i].Intensity, e.Intensity)
			return
		}
	}
	c.effects = append(c.effects, e)
}

// ActiveEffects returns a copy of the active effect list.
func (c *Combatant) ActiveEffects() []StatusEffect {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]StatusEffect, len(c.effects))
	copy(out, c.effects)
	return out
}

// HasEffect reports whether an effect of the given kind is active.
func (c *Combatant) HasEffect(kind EffectKind) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// IsControlled reports whether a control effect (stun/freeze) is active.
// The resolver reads this before action execution to force a skip.
func (c *Combatant) IsControlled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.effects {
		if e.Kind.IsControl() {
			return true
		}
	}
	return false
}

// RemoveEffect removes the effect of the given kind, if present.
func (c *Combatant) RemoveEffect(kind EffectKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.effects {
		if c.effects[i].Kind == kind {
			c.effects = append(c.effects[:i], c.effects[i+1:]...)
			return
		}
	}
}

// ClearEffects removes all active effects (combat end, death).
func (c *Combatant) ClearEffects() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.effects = c.effects[:0]
}

// UpdateEffects replaces the effect list wholesale. Used by the status
// effect engine when ticking durations; external callers use ApplyEffect.
func (c *Combatant) UpdateEffects(effects []StatusEffect) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.effects = make([]StatusEffect, len(effects))
	copy(c.effects, effects)
}
