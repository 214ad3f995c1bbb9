package model

import (
	"sync"
)

// Combatant is the shared shape for players, enemies and pets.
// All pool mutations clamp to valid ranges; readers take the RLock.
//
// Ownership: the combat resolver is the only writer of HP/mana/stamina/
// combo/effects during a round. The per-session lock in the engine package
// serializes rounds, the mutex here protects ad-hoc readers (presentation,
// persistence snapshots) running concurrently with a round.
type Combatant struct {
	mu sync.RWMutex

	id    string
	name  string
	level int32

	currentHP      int32
	maxHP          int32
	currentMana    int32
	maxMana        int32
	currentStamina int32
	maxStamina     int32

	// Intrinsic pool maximums before equipment/passive/class bonuses.
	// The aggregator derives effective maximums from these; SyncMaxPools
	// writes the derived values back into maxHP/maxMana/maxStamina.
	baseMaxHP      int32
	baseMaxMana    int32
	baseMaxStamina int32

	base BaseStats

	// Content references resolved by the stat aggregator each round.
	equipment []string
	passives  []string

	// Damage-type affinities. Immunity takes precedence over weakness,
	// weakness over resistance.
	immunities  map[DamageType]bool
	weaknesses  map[DamageType]float64 // extra damage fraction, 0.5 => ×1.5
	resistances map[DamageType]float64 // reduced damage fraction, 0.3 => ×0.7

	effects []StatusEffect

	comboCount int32

	// Reaction declared for the current round (Block/Dodge/Counter).
	// Cleared when the round commits.
	declaredReaction ReactionType

	// Pets only: bond scalar 0..1000, see LoyaltyBonus.
	loyalty int32
}

// NewCombatant creates a combatant with full pools.
func NewCombatant(id, name string, level, maxHP, maxMana, maxStamina int32, base BaseStats) *Combatant {
	return &Combatant{
		id:             id,
		name:           name,
		level:          level,
		currentHP:      maxHP,
		maxHP:          maxHP,
		currentMana:    maxMana,
		maxMana:        maxMana,
		currentStamina: maxStamina,
		maxStamina:     maxStamina,
		baseMaxHP:      maxHP,
		baseMaxMana:    maxMana,
		baseMaxStamina: maxStamina,
		base:           base,
		immunities:     make(map[DamageType]bool),
		weaknesses:     make(map[DamageType]float64),
		resistances:    make(map[DamageType]float64),
	}
}

// ID returns the stable identity of the combatant.
func (c *Combatant) ID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

// Name returns the display name.
func (c *Combatant) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// Level returns the combatant level.
func (c *Combatant) Level() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

// SetLevel sets the level (clamp 1..100).
func (c *Combatant) SetLevel(level int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if level < 1 {
		level = 1
	}
	if level > 100 {
		level = 100
	}
	c.level = level
}

// CurrentHP returns current HP.
func (c *Combatant) CurrentHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentHP
}

// MaxHP returns maximum HP.
func (c *Combatant) MaxHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxHP
}

// SetCurrentHP sets current HP with validation (clamp 0..maxHP).
func (c *Combatant) SetCurrentHP(hp int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hp < 0 {
		hp = 0
	}
	if hp > c.maxHP {
		hp = c.maxHP
	}
	c.currentHP = hp
}

// SetMaxHP sets the intrinsic maximum HP and trims current HP if needed.
func (c *Combatant) SetMaxHP(maxHP int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if maxHP < 1 {
		maxHP = 1
	}
	c.baseMaxHP = maxHP
	c.maxHP = maxHP
	if c.currentHP > c.maxHP {
		c.currentHP = c.maxHP
	}
}

// BaseMaxHP returns maximum HP before aggregated bonuses.
func (c *Combatant) BaseMaxHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseMaxHP
}

// BaseMaxMana returns maximum mana before aggregated bonuses.
func (c *Combatant) BaseMaxMana() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseMaxMana
}

// BaseMaxStamina returns maximum stamina before aggregated bonuses.
func (c *Combatant) BaseMaxStamina() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseMaxStamina
}

// SyncMaxPools applies aggregated pool maximums. The base maximums are
// untouched, so re-applying a fresh aggregation never compounds bonuses.
// Raising a maximum leaves current untouched; lowering one trims it.
func (c *Combatant) SyncMaxPools(maxHP, maxMana, maxStamina int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxHP = max(maxHP, 1)
	c.maxMana = max(maxMana, 0)
	c.maxStamina = max(maxStamina, 0)
	if c.currentHP > c.maxHP {
		c.currentHP = c.maxHP
	}
	if c.currentMana > c.maxMana {
		c.currentMana = c.maxMana
	}
	if c.currentStamina > c.maxStamina {
		c.currentStamina = c.maxStamina
	}
}

// ReduceCurrentHP reduces HP by damage, clamped at floor.
// The floor is the soft-defeat minimum, not a literal zero: a combatant
// at the floor is defeated but the persisted value never goes below it.
func (c *Combatant) ReduceCurrentHP(damage, floor int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if floor < 0 {
		floor = 0
	}
	c.currentHP = max(c.currentHP-damage, floor)
}

// RestoreHP adds hp capped at MaxHP. Returns the amount actually restored.
func (c *Combatant) RestoreHP(hp int32) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := c.currentHP
	c.currentHP = min(c.currentHP+hp, c.maxHP)
	return c.currentHP - before
}

// CurrentMana returns current mana.
func (c *Combatant) CurrentMana() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentMana
}

// MaxMana returns maximum mana.
func (c *Combatant) MaxMana() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxMana
}

// SetCurrentMana sets current mana with validation (clamp 0..maxMana).
func (c *Combatant) SetCurrentMana(mana int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if mana < 0 {
		mana = 0
	}
	if mana > c.maxMana {
		mana = c.maxMana
	}
	c.currentMana = mana
}

// SpendMana subtracts cost if the pool covers it. Returns false otherwise.
func (c *Combatant) SpendMana(cost int32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cost > c.currentMana {
		return false
	}
	c.currentMana -= cost
	return true
}

// RestoreMana adds mana capped at MaxMana. Returns the amount restored.
func (c *Combatant) RestoreMana(mana int32) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := c.currentMana
	c.currentMana = min(c.currentMana+mana, c.maxMana)
	return c.currentMana - before
}

// CurrentStamina returns current stamina.
func (c *Combatant) CurrentStamina() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentStamina
}

// MaxStamina returns maximum stamina.
func (c *Combatant) MaxStamina() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxStamina
}

// SetCurrentStamina sets current stamina with validation (clamp 0..maxStamina).
func (c *Combatant) SetCurrentStamina(stamina int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if stamina < 0 {
		stamina = 0
	}
	if stamina > c.maxStamina {
		stamina = c.maxStamina
	}
	c.currentStamina = stamina
}

// SpendStamina subtracts cost if the pool covers it. Returns false otherwise.
func (c *Combatant) SpendStamina(cost int32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cost > c.currentStamina {
		return false
	}
	c.currentStamina -= cost
	return true
}

// RestoreStamina adds stamina capped at MaxStamina. Returns the amount restored.
func (c *Combatant) RestoreStamina(stamina int32) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := c.currentStamina
	c.currentStamina = min(c.currentStamina+stamina, c.maxStamina)
	return c.currentStamina - before
}

// IsDefeated reports whether HP has reached the soft-defeat floor.
func (c *Combatant) IsDefeated(floor int32) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentHP <= floor
}

// HPFraction returns current HP as a fraction of max (0.0 - 1.0).
func (c *Combatant) HPFraction() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.maxHP == 0 {
		return 0.0
	}
	return float64(c.currentHP) / float64(c.maxHP)
}

// ManaFraction returns current mana as a fraction of max (0.0 - 1.0).
func (c *Combatant) ManaFraction() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.maxMana == 0 {
		return 0.0
	}
	return float64(c.currentMana) / float64(c.maxMana)
}

// BaseStats returns the unmodified attribute block.
func (c *Combatant) BaseStats() BaseStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.base
}

// SetBaseStats replaces the attribute block (class change, level-up).
func (c *Combatant) SetBaseStats(base BaseStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = base
}

// Equipment returns a copy of equipped item ids.
func (c *Combatant) Equipment() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.equipment))
	copy(out, c.equipment)
	return out
}

// SetEquipment replaces the equipped item ids.
func (c *Combatant) SetEquipment(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.equipment = make([]string, len(ids))
	copy(c.equipment, ids)
}

// Passives returns a copy of unlocked passive ids.
func (c *Combatant) Passives() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.passives))
	copy(out, c.passives)
	return out
}

// SetPassives replaces the unlocked passive ids.
func (c *Combatant) SetPassives(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.passives = make([]string, len(ids))
	copy(c.passives, ids)
}

// ComboCount returns consecutive successful hits.
func (c *Combatant) ComboCount() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.comboCount
}

// IncrementCombo increments the combo counter and returns the new value.
func (c *Combatant) IncrementCombo() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.comboCount++
	return c.comboCount
}

// ResetCombo resets the combo counter to zero.
func (c *Combatant) ResetCombo() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.comboCount = 0
}

// DeclaredReaction returns the reaction declared for this round.
func (c *Combatant) DeclaredReaction() ReactionType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.declaredReaction
}

// DeclareReaction records the reaction for the current round.
func (c *Combatant) DeclareReaction(r ReactionType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.declaredReaction = r
}

// ClearReaction clears the declared reaction (round commit).
func (c *Combatant) ClearReaction() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.declaredReaction = ReactionNone
}

// Loyalty returns the pet bond scalar (0..1000). Zero for non-pets.
func (c *Combatant) Loyalty() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loyalty
}

// SetLoyalty sets the pet bond scalar (clamp 0..1000).
func (c *Combatant) SetLoyalty(v int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v < 0 {
		v = 0
	}
	if v > 1000 {
		v = 1000
	}
	c.loyalty = v
}

// SetImmunity marks or clears an immunity to a damage type.
func (c *Combatant) SetImmunity(t DamageType, immune bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if immune {
		c.immunities[t] = true
	} else {
		delete(c.immunities, t)
	}
}

// SetWeakness sets the extra damage fraction for a damage type.
func (c *Combatant) SetWeakness(t DamageType, bonus float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.weaknesses[t] = bonus
}

// SetResistance sets the damage reduction fraction for a damage type.
func (c *Combatant) SetResistance(t DamageType, reduction float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resistances[t] = reduction
}

// Affinities returns the damage types the combatant is immune, weak and
// resistant to. Used by Observe to reveal target intel.
func (c *Combatant) Affinities() (immunities, weaknesses, resistances []DamageType) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for t := range c.immunities {
		immunities = append(immunities, t)
	}
	for t := range c.weaknesses {
		weaknesses = append(weaknesses, t)
	}
	for t := range c.resistances {
		resistances = append(resistances, t)
	}
	return immunities, weaknesses, resistances
}

// DamageMultiplier returns the type-mitigation factor for incoming damage.
// Precedence: immunity (×0) > weakness (×1+bonus) > resistance (×1−reduction).
func (c *Combatant) DamageMultiplier(t DamageType) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.immunities[t] {
		return 0
	}
	if bonus, ok := c.weaknesses[t]; ok {
		return 1 + bonus
	}
	if reduction, ok := c.resistances[t]; ok {
		m := 1 - reduction
		if m < 0 {
			m = 0
		}
		return m
	}
	return 1
}
