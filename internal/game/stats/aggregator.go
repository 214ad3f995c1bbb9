// Package stats derives effective combat stats from base attributes,
// class modifiers, equipment, passives and pet loyalty.
package stats

import (
	"math"

	"github.com/sintov/rpgbot/internal/data"
	"github.com/sintov/rpgbot/internal/model"
)

// Catalog is the read-only content lookup the aggregator needs.
// *data.Catalog satisfies it; injected to keep the aggregator testable
// against small fixture catalogs.
type Catalog interface {
	Equipment(id string) (data.EquipmentDef, bool)
	Passive(id string) (data.PassiveDef, bool)
	Class(id string) (data.ClassDef, bool)
}

// Aggregator computes effective stats. Pure: it never mutates the
// combatant and can be called any number of times per round.
type Aggregator struct {
	catalog    Catalog
	critBase   float64
	critDamage float64
}

// NewAggregator creates an aggregator over the given catalog.
// defaultCritDamage is the crit multiplier used when nothing modifies it.
func NewAggregator(catalog Catalog, defaultCritDamage float64) *Aggregator {
	return &Aggregator{
		catalog:    catalog,
		critBase:   0.05,
		critDamage: defaultCritDamage,
	}
}

// Effective computes the derived stat block for a player or enemy.
//
// classID selects the class modifier ("" for enemies, unknown ids
// contribute nothing). Unknown equipment and passive ids are skipped:
// lookups are tolerant by policy, a stale id in a player record must
// not break resolution.
func (a *Aggregator) Effective(c *model.Combatant, classID string) model.EffectiveStats {
	return a.effective(c, classID, false)
}

// EffectivePet computes the derived stat block for a pet. The bond tier
// multiplier applies to attack, magic power and both defenses after all
// additive bonuses: a hostile pet fights below its stats, a devoted one
// above them.
func (a *Aggregator) EffectivePet(pet *model.Combatant) model.EffectiveStats {
	return a.effective(pet, "", true)
}

func (a *Aggregator) effective(c *model.Combatant, classID string, applyLoyalty bool) model.EffectiveStats {
	base := c.BaseStats()
	level := c.Level()

	var bonus data.StatBonus
	if def, ok := a.catalog.Class(classID); ok {
		bonus.Add(def.Bonus)
	}
	for _, id := range c.Equipment() {
		if def, ok := a.catalog.Equipment(id); ok {
			bonus.Add(def.Bonus)
		}
	}
	for _, id := range c.Passives() {
		if def, ok := a.catalog.Passive(id); ok {
			bonus.Add(def.Bonus)
		}
	}

	eff := model.EffectiveStats{
		Attack:          base.Strength*2 + level + bonus.Attack,
		MagicPower:      base.Intellect*2 + level + bonus.MagicPower,
		PhysicalDefense: base.Vitality + level/2 + bonus.PhysicalDefense,
		MagicResistance: base.Wisdom + level/2 + bonus.MagicResistance,
		Accuracy:        int32(math.Sqrt(float64(base.Agility)))*6 + level + bonus.Accuracy,
		Evasion:         int32(math.Sqrt(float64(base.Agility)))*5 + level + bonus.Evasion,
		Speed:           base.Agility + level/2 + bonus.Speed,
		CritChance:      a.critBase + float64(base.Agility)*0.002 + bonus.CritChance,
		CritDamage:      a.critDamage + bonus.CritDamage,
		MaxHP:           c.BaseMaxHP() + bonus.MaxHP,
		MaxMana:         c.BaseMaxMana() + bonus.MaxMana,
		MaxStamina:      c.BaseMaxStamina() + bonus.MaxStamina,
	}

	// Empowered effect raises offensive output for its duration.
	if c.HasEffect(model.EffectEmpowered) {
		eff.Attack = int32(float64(eff.Attack) * 1.25)
		eff.MagicPower = int32(float64(eff.MagicPower) * 1.25)
	}

	if applyLoyalty {
		mult := 1.0 + model.LoyaltyBonus(c.Loyalty())
		eff.Attack = int32(float64(eff.Attack) * mult)
		eff.MagicPower = int32(float64(eff.MagicPower) * mult)
		eff.PhysicalDefense = int32(float64(eff.PhysicalDefense) * mult)
		eff.MagicResistance = int32(float64(eff.MagicResistance) * mult)
	}

	if eff.CritChance < 0 {
		eff.CritChance = 0
	}
	if eff.CritChance > 1 {
		eff.CritChance = 1
	}
	if eff.CritDamage < 1 {
		eff.CritDamage = 1
	}

	return eff
}
