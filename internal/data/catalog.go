package data

import (
	"github.com/sintov/rpgbot/internal/model"
)

// StatBonus is the additive bonus tuple an equipment piece, passive or
// class modifier contributes to effective stats. Zero value contributes
// nothing.
type StatBonus struct {
	Attack          int32
	MagicPower      int32
	PhysicalDefense int32
	MagicResistance int32
	Accuracy        int32
	Evasion         int32
	Speed           int32
	CritChance      float64
	CritDamage      float64
	MaxHP           int32
	MaxMana         int32
	MaxStamina      int32
}

// Add accumulates another bonus into this one.
func (b *StatBonus) Add(o StatBonus) {
	b.Attack += o.Attack
	b.MagicPower += o.MagicPower
	b.PhysicalDefense += o.PhysicalDefense
	b.MagicResistance += o.MagicResistance
	b.Accuracy += o.Accuracy
	b.Evasion += o.Evasion
	b.Speed += o.Speed
	b.CritChance += o.CritChance
	b.CritDamage += o.CritDamage
	b.MaxHP += o.MaxHP
	b.MaxMana += o.MaxMana
	b.MaxStamina += o.MaxStamina
}

// EquipmentDef is one equipment catalog row.
type EquipmentDef struct {
	ID    string
	Name  string
	Bonus StatBonus
}

// PassiveDef is one unlocked-passive catalog row.
type PassiveDef struct {
	ID    string
	Name  string
	Bonus StatBonus
}

// SkillDef is one active-skill catalog row. The profile feeds the same
// resolution pipeline as the built-in attack variants.
type SkillDef struct {
	ID      string
	Name    string
	Profile model.ActionProfile
}

// ConsumableDef is one usable-item catalog row (potions and the like).
type ConsumableDef struct {
	ID             string
	Name           string
	RestoreHP      int32
	RestoreMana    int32
	RestoreStamina int32
	CureControl    bool // removes stun/freeze
}

// ClassDef is a player class with its stat modifier.
type ClassDef struct {
	ID    string
	Name  string
	Bonus StatBonus
}

// Catalog is the read-only content lookup the engine components receive.
// Lookups are tolerant: an unknown id reports ok=false and contributes
// nothing, it is never an error.
type Catalog struct {
	equipment   map[string]EquipmentDef
	passives    map[string]PassiveDef
	skills      map[string]SkillDef
	consumables map[string]ConsumableDef
	classes     map[string]ClassDef
}

// NewCatalog builds a catalog from definition slices.
func NewCatalog(
	equipment []EquipmentDef,
	passives []PassiveDef,
	skills []SkillDef,
	consumables []ConsumableDef,
	classes []ClassDef,
) *Catalog {
	c := &Catalog{
		equipment:   make(map[string]EquipmentDef, len(equipment)),
		passives:    make(map[string]PassiveDef, len(passives)),
		skills:      make(map[string]SkillDef, len(skills)),
		consumables: make(map[string]ConsumableDef, len(consumables)),
		classes:     make(map[string]ClassDef, len(classes)),
	}
	for _, d := range equipment {
		c.equipment[d.ID] = d
	}
	for _, d := range passives {
		c.passives[d.ID] = d
	}
	for _, d := range skills {
		c.skills[d.ID] = d
	}
	for _, d := range consumables {
		c.consumables[d.ID] = d
	}
	for _, d := range classes {
		c.classes[d.ID] = d
	}
	return c
}

// Equipment looks up an equipment definition by id.
func (c *Catalog) Equipment(id string) (EquipmentDef, bool) {
	d, ok := c.equipment[id]
	return d, ok
}

// Passive looks up a passive definition by id.
func (c *Catalog) Passive(id string) (PassiveDef, bool) {
	d, ok := c.passives[id]
	return d, ok
}

// Skill looks up a skill definition by id.
func (c *Catalog) Skill(id string) (SkillDef, bool) {
	d, ok := c.skills[id]
	return d, ok
}

// Consumable looks up a consumable definition by id.
func (c *Catalog) Consumable(id string) (ConsumableDef, bool) {
	d, ok := c.consumables[id]
	return d, ok
}

// Class looks up a class definition by id.
func (c *Catalog) Class(id string) (ClassDef, bool) {
	d, ok := c.classes[id]
	return d, ok
}

// DefaultCatalog returns the built-in content tables.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultEquipment, defaultPassives, defaultSkills, defaultConsumables, defaultClasses)
}

var defaultEquipment = []EquipmentDef{
	{ID: "rusty_sword", Name: "Rusty Sword", Bonus: StatBonus{Attack: 3}},
	{ID: "iron_sword", Name: "Iron Sword", Bonus: StatBonus{Attack: 7, Accuracy: 1}},
	{ID: "steel_sword", Name: "Steel Sword", Bonus: StatBonus{Attack: 12, Accuracy: 2}},
	{ID: "oak_staff", Name: "Oak Staff", Bonus: StatBonus{MagicPower: 8, MaxMana: 10}},
	{ID: "leather_armor", Name: "Leather Armor", Bonus: StatBonus{PhysicalDefense: 4, MaxHP: 10}},
	{ID: "chain_mail", Name: "Chain Mail", Bonus: StatBonus{PhysicalDefense: 9, MaxHP: 20, Evasion: -1}},
	{ID: "silk_robe", Name: "Silk Robe", Bonus: StatBonus{MagicResistance: 7, MaxMana: 15}},
	{ID: "lucky_charm", Name: "Lucky Charm", Bonus: StatBonus{CritChance: 0.05}},
	{ID: "executioner_hood", Name: "Executioner's Hood", Bonus: StatBonus{CritDamage: 0.5}},
	{ID: "swift_boots", Name: "Swift Boots", Bonus: StatBonus{Speed: 5, Evasion: 2}},
}

var defaultPassives = []PassiveDef{
	{ID: "toughness", Name: "Toughness", Bonus: StatBonus{MaxHP: 25, PhysicalDefense: 2}},
	{ID: "keen_eye", Name: "Keen Eye", Bonus: StatBonus{Accuracy: 3, CritChance: 0.03}},
	{ID: "iron_will", Name: "Iron Will", Bonus: StatBonus{MagicResistance: 4, MaxMana: 10}},
	{ID: "fleet_footed", Name: "Fleet Footed", Bonus: StatBonus{Evasion: 3, Speed: 3}},
	{ID: "brutality", Name: "Brutality", Bonus: StatBonus{Attack: 4, CritDamage: 0.25}},
	{ID: "deep_reserves", Name: "Deep Reserves", Bonus: StatBonus{MaxStamina: 20, MaxMana: 20}},
}

var defaultSkills = []SkillDef{
	{
		ID:   "fireball",
		Name: "Fireball",
		Profile: model.ActionProfile{
			Power:        1.5,
			ManaCost:     12,
			DamageType:   model.DamageFire,
			EffectChance: 0.30,
			InflictKind:  model.EffectBurn,
			InflictTurns: 3,
			InflictRatio: 0.25,
		},
	},
	{
		ID:   "ice_lance",
		Name: "Ice Lance",
		Profile: model.ActionProfile{
			Power:           1.2,
			HitMod:          0.05,
			ManaCost:        10,
			DamageType:      model.DamageFrost,
			EffectChance:    0.20,
			InflictKind:     model.EffectFreeze,
			InflictTurns:    1,
			InflictMinValue: 1,
		},
	},
	{
		ID:   "rend",
		Name: "Rend",
		Profile: model.ActionProfile{
			Power:           1.1,
			StaminaCost:     12,
			DamageType:      model.DamagePhysical,
			EffectChance:    0.50,
			InflictKind:     model.EffectBleed,
			InflictTurns:    3,
			InflictRatio:    0.20,
			InflictMinValue: 2,
		},
	},
	{
		ID:   "venom_strike",
		Name: "Venom Strike",
		Profile: model.ActionProfile{
			Power:           0.9,
			StaminaCost:     10,
			DamageType:      model.DamagePoison,
			EffectChance:    0.60,
			InflictKind:     model.EffectPoison,
			InflictTurns:    4,
			InflictRatio:    0.15,
			InflictMinValue: 2,
		},
	},
	{
		ID:   "shadow_bolt",
		Name: "Shadow Bolt",
		Profile: model.ActionProfile{
			Power:      1.7,
			HitMod:     -0.05,
			ManaCost:   16,
			DamageType: model.DamageShadow,
		},
	},
	{
		ID:   "stunning_blow",
		Name: "Stunning Blow",
		Profile: model.ActionProfile{
			Power:           0.7,
			StaminaCost:     18,
			DamageType:      model.DamagePhysical,
			EffectChance:    0.35,
			InflictKind:     model.EffectStun,
			InflictTurns:    1,
			InflictMinValue: 1,
		},
	},
}

var defaultConsumables = []ConsumableDef{
	{ID: "minor_healing_potion", Name: "Minor Healing Potion", RestoreHP: 30},
	{ID: "healing_potion", Name: "Healing Potion", RestoreHP: 75},
	{ID: "mana_potion", Name: "Mana Potion", RestoreMana: 40},
	{ID: "stamina_tonic", Name: "Stamina Tonic", RestoreStamina: 40},
	{ID: "smelling_salts", Name: "Smelling Salts", CureControl: true},
}

var defaultClasses = []ClassDef{
	{ID: "warrior", Name: "Warrior", Bonus: StatBonus{Attack: 5, PhysicalDefense: 3, MaxHP: 30}},
	{ID: "mage", Name: "Mage", Bonus: StatBonus{MagicPower: 6, MagicResistance: 3, MaxMana: 40}},
	{ID: "rogue", Name: "Rogue", Bonus: StatBonus{Accuracy: 3, Evasion: 3, CritChance: 0.05, Speed: 4}},
	{ID: "cleric", Name: "Cleric", Bonus: StatBonus{MagicPower: 3, MagicResistance: 5, MaxHP: 15, MaxMana: 25}},
	{ID: "beastmaster", Name: "Beastmaster", Bonus: StatBonus{Attack: 3, MaxHP: 20, MaxStamina: 15}},
}
