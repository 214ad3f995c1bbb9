package data

import (
	"fmt"
	"math/rand/v2"

	"github.com/sintov/rpgbot/internal/model"
)

// EnemyTemplate is one enemy catalog row. Stats are level-1 baselines
// scaled up by SpawnEnemy.
type EnemyTemplate struct {
	ID       string
	Name     string
	Behavior model.BehaviorProfile

	BaseHP      int32
	BaseMana    int32
	BaseStamina int32
	BaseStats   model.BaseStats

	Immunities  []model.DamageType
	Weaknesses  map[model.DamageType]float64
	Resistances map[model.DamageType]float64

	BaseXP   int64
	Drops    []model.DropEntry
	Tameable bool
}

// EnemyFactory produces combat-ready enemy snapshots scaled to the
// player's level and a difficulty multiplier.
type EnemyFactory struct {
	templates map[string]EnemyTemplate
	ids       []string
}

// NewEnemyFactory builds a factory over the given templates.
func NewEnemyFactory(templates []EnemyTemplate) *EnemyFactory {
	f := &EnemyFactory{templates: make(map[string]EnemyTemplate, len(templates))}
	for _, t := range templates {
		f.templates[t.ID] = t
		f.ids = append(f.ids, t.ID)
	}
	return f
}

// DefaultEnemyFactory returns a factory over the built-in bestiary.
func DefaultEnemyFactory() *EnemyFactory {
	return NewEnemyFactory(defaultEnemies)
}

// SpawnEnemy creates a fresh snapshot of the template scaled to level.
// Each snapshot is independent: sessions never share enemy state.
func (f *EnemyFactory) SpawnEnemy(templateID string, level int32, difficulty float64) (*model.Enemy, error) {
	t, ok := f.templates[templateID]
	if !ok {
		return nil, fmt.Errorf("unknown enemy template %q", templateID)
	}
	if level < 1 {
		level = 1
	}
	if difficulty <= 0 {
		difficulty = 1.0
	}

	// Linear growth per level on pools, slower on attributes.
	levelMod := 1.0 + 0.15*float64(level-1)
	statMod := 1.0 + 0.08*float64(level-1)

	scale := func(v int32, mod float64) int32 {
		out := int32(float64(v) * mod * difficulty)
		if out < 1 {
			out = 1
		}
		return out
	}

	base := model.BaseStats{
		Strength:  scale(t.BaseStats.Strength, statMod),
		Intellect: scale(t.BaseStats.Intellect, statMod),
		Agility:   scale(t.BaseStats.Agility, statMod),
		Vitality:  scale(t.BaseStats.Vitality, statMod),
		Wisdom:    scale(t.BaseStats.Wisdom, statMod),
		Charisma:  t.BaseStats.Charisma,
	}

	c := model.NewCombatant(
		fmt.Sprintf("%s#%d", t.ID, rand.Uint32()),
		t.Name,
		level,
		scale(t.BaseHP, levelMod),
		scale(t.BaseMana, levelMod),
		scale(t.BaseStamina, levelMod),
		base,
	)
	for _, dt := range t.Immunities {
		c.SetImmunity(dt, true)
	}
	for dt, bonus := range t.Weaknesses {
		c.SetWeakness(dt, bonus)
	}
	for dt, reduction := range t.Resistances {
		c.SetResistance(dt, reduction)
	}

	xp := int64(float64(t.BaseXP) * levelMod * difficulty)

	return &model.Enemy{
		Combatant:  c,
		TemplateID: t.ID,
		Behavior:   t.Behavior,
		BaseXP:     xp,
		Drops:      t.Drops,
		Tameable:   t.Tameable,
	}, nil
}

// SpawnRandomEnemy picks a random template and spawns it at the given level.
func (f *EnemyFactory) SpawnRandomEnemy(level int32, difficulty float64) (*model.Enemy, error) {
	if len(f.ids) == 0 {
		return nil, fmt.Errorf("enemy factory has no templates")
	}
	return f.SpawnEnemy(f.ids[rand.IntN(len(f.ids))], level, difficulty)
}

var defaultEnemies = []EnemyTemplate{
	{
		ID:       "wolf",
		Name:     "Gray Wolf",
		Behavior: model.BehaviorAggressive,
		BaseHP:   30, BaseMana: 0, BaseStamina: 40,
		BaseStats: model.BaseStats{Strength: 8, Intellect: 2, Agility: 9, Vitality: 6, Wisdom: 3, Charisma: 2},
		BaseXP:    25,
		Drops: []model.DropEntry{
			{ItemID: "wolf_pelt", Chance: 0.60, Min: 1, Max: 2},
			{ItemID: "minor_healing_potion", Chance: 0.15, Min: 1, Max: 1},
		},
		Tameable: true,
	},
	{
		ID:       "cave_bat",
		Name:     "Cave Bat",
		Behavior: model.BehaviorCoward,
		BaseHP:   18, BaseMana: 0, BaseStamina: 30,
		BaseStats:  model.BaseStats{Strength: 4, Intellect: 2, Agility: 12, Vitality: 3, Wisdom: 3, Charisma: 1},
		Weaknesses: map[model.DamageType]float64{model.DamageFire: 0.5},
		BaseXP:     15,
		Drops: []model.DropEntry{
			{ItemID: "bat_wing", Chance: 0.50, Min: 1, Max: 3},
		},
		Tameable: true,
	},
	{
		ID:       "skeleton_warrior",
		Name:     "Skeleton Warrior",
		Behavior: model.BehaviorBalanced,
		BaseHP:   45, BaseMana: 0, BaseStamina: 50,
		BaseStats:   model.BaseStats{Strength: 10, Intellect: 1, Agility: 5, Vitality: 8, Wisdom: 1, Charisma: 1},
		Immunities:  []model.DamageType{model.DamagePoison},
		Weaknesses:  map[model.DamageType]float64{model.DamagePhysical: 0.25},
		Resistances: map[model.DamageType]float64{model.DamageFrost: 0.50},
		BaseXP:      40,
		Drops: []model.DropEntry{
			{ItemID: "rusty_sword", Chance: 0.10, Min: 1, Max: 1},
			{ItemID: "bone_dust", Chance: 0.70, Min: 1, Max: 2},
		},
	},
	{
		ID:       "forest_sprite",
		Name:     "Forest Sprite",
		Behavior: model.BehaviorSupportive,
		BaseHP:   25, BaseMana: 60, BaseStamina: 20,
		BaseStats:   model.BaseStats{Strength: 3, Intellect: 11, Agility: 8, Vitality: 4, Wisdom: 10, Charisma: 8},
		Weaknesses:  map[model.DamageType]float64{model.DamageShadow: 0.5},
		Resistances: map[model.DamageType]float64{model.DamageMagical: 0.30},
		BaseXP:      35,
		Drops: []model.DropEntry{
			{ItemID: "mana_potion", Chance: 0.30, Min: 1, Max: 1},
			{ItemID: "sprite_dust", Chance: 0.45, Min: 1, Max: 2},
		},
	},
	{
		ID:       "troll_brute",
		Name:     "Troll Brute",
		Behavior: model.BehaviorBerserker,
		BaseHP:   80, BaseMana: 0, BaseStamina: 70,
		BaseStats:   model.BaseStats{Strength: 14, Intellect: 1, Agility: 3, Vitality: 12, Wisdom: 2, Charisma: 1},
		Weaknesses:  map[model.DamageType]float64{model.DamageFire: 0.5},
		Resistances: map[model.DamageType]float64{model.DamagePhysical: 0.25},
		BaseXP:      75,
		Drops: []model.DropEntry{
			{ItemID: "troll_hide", Chance: 0.55, Min: 1, Max: 1},
			{ItemID: "healing_potion", Chance: 0.20, Min: 1, Max: 1},
		},
	},
	{
		ID:       "hedge_witch",
		Name:     "Hedge Witch",
		Behavior: model.BehaviorIntelligent,
		BaseHP:   35, BaseMana: 80, BaseStamina: 25,
		BaseStats:   model.BaseStats{Strength: 4, Intellect: 13, Agility: 6, Vitality: 5, Wisdom: 11, Charisma: 7},
		Resistances: map[model.DamageType]float64{model.DamageFire: 0.30, model.DamageFrost: 0.30},
		BaseXP:      60,
		Drops: []model.DropEntry{
			{ItemID: "oak_staff", Chance: 0.08, Min: 1, Max: 1},
			{ItemID: "herb_bundle", Chance: 0.60, Min: 1, Max: 3},
		},
	},
	{
		ID:       "stone_golem",
		Name:     "Stone Golem",
		Behavior: model.BehaviorDefensive,
		BaseHP:   100, BaseMana: 0, BaseStamina: 40,
		BaseStats:   model.BaseStats{Strength: 12, Intellect: 1, Agility: 1, Vitality: 16, Wisdom: 1, Charisma: 1},
		Immunities:  []model.DamageType{model.DamagePoison, model.DamageShadow},
		Resistances: map[model.DamageType]float64{model.DamagePhysical: 0.40},
		Weaknesses:  map[model.DamageType]float64{model.DamageMagical: 0.30},
		BaseXP:      90,
		Drops: []model.DropEntry{
			{ItemID: "golem_core", Chance: 0.25, Min: 1, Max: 1},
		},
	},
	{
		ID:       "meadow_rabbit",
		Name:     "Meadow Rabbit",
		Behavior: model.BehaviorPassive,
		BaseHP:   10, BaseMana: 0, BaseStamina: 30,
		BaseStats: model.BaseStats{Strength: 1, Intellect: 1, Agility: 14, Vitality: 2, Wisdom: 2, Charisma: 6},
		BaseXP:    5,
		Drops: []model.DropEntry{
			{ItemID: "rabbit_foot", Chance: 0.35, Min: 1, Max: 1},
		},
		Tameable: true,
	},
}
