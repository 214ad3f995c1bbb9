package model

// BaseStats is the six-attribute block every combatant carries.
// Derived combat stats are computed from these by the stat aggregator;
// the block itself never changes during a round.
type BaseStats struct {
	Strength  int32 // physical attack scaling
	Intellect int32 // magic power scaling
	Agility   int32 // accuracy, evasion, speed, crit
	Vitality  int32 // max HP, physical defense
	Wisdom    int32 // max mana, magic resistance
	Charisma  int32 // taming, shop prices (outside combat)
}

// EffectiveStats is the derived stat block after class modifiers,
// equipment bonuses, passives and (for pets) loyalty.
// Produced by the stats aggregator, consumed by the combat resolver.
type EffectiveStats struct {
	Attack          int32
	MagicPower      int32
	PhysicalDefense int32
	MagicResistance int32
	Accuracy        int32
	Evasion         int32
	Speed           int32
	CritChance      float64 // 0.0 - 1.0
	CritDamage      float64 // final damage multiplier on crit, default 2.0
	MaxHP           int32
	MaxMana         int32
	MaxStamina      int32
}

// DamageType classifies damage for mitigation purposes.
type DamageType int32

const (
	DamagePhysical DamageType = iota
	DamageMagical
	DamageFire
	DamageFrost
	DamagePoison
	DamageShadow
)

// String returns a human-readable damage type name.
func (t DamageType) String() string {
	switch t {
	case DamagePhysical:
		return "PHYSICAL"
	case DamageMagical:
		return "MAGICAL"
	case DamageFire:
		return "FIRE"
	case DamageFrost:
		return "FROST"
	case DamagePoison:
		return "POISON"
	case DamageShadow:
		return "SHADOW"
	default:
		return "UNKNOWN"
	}
}

// IsMagical reports whether the type is mitigated by magic resistance
// rather than physical defense.
func (t DamageType) IsMagical() bool {
	return t != DamagePhysical
}
