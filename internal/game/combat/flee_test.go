package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sintov/rpgbot/internal/config"
	"github.com/sintov/rpgbot/internal/data"
	"github.com/sintov/rpgbot/internal/game/combat"
	"github.com/sintov/rpgbot/internal/model"
	"github.com/sintov/rpgbot/internal/testutil"
)

func TestResolveFlee_Deterministic(t *testing.T) {
	actor := newSide("runner", 30, 20, 20, model.EffectiveStats{Speed: 10})
	target := newSide("chaser", 30, 20, 20, model.EffectiveStats{Speed: 10})

	r := newResolver(testutil.FixedDice{Value: 0.0})
	assert.True(t, r.ResolveFlee(actor, target).Fled)

	r = newResolver(testutil.FixedDice{Value: 0.99})
	assert.False(t, r.ResolveFlee(actor, target).Fled)
}

func TestResolveFlee_SpeedClamps(t *testing.T) {
	// A huge speed deficit still leaves the minimum chance; a roll just
	// under it must succeed.
	slow := newSide("slow", 30, 20, 20, model.EffectiveStats{Speed: 0})
	fast := newSide("fast", 30, 20, 20, model.EffectiveStats{Speed: 500})

	r := newResolver(testutil.FixedDice{Value: 0.09})
	assert.True(t, r.ResolveFlee(slow, fast).Fled)

	// And a huge advantage never exceeds the cap: 0.96 must still fail.
	r = newResolver(testutil.FixedDice{Value: 0.96})
	assert.False(t, r.ResolveFlee(fast, slow).Fled)
}

func TestResolveFlee_BaseRate(t *testing.T) {
	// Equal speed leaves the base chance. With real dice the observed
	// rate should converge on it.
	actor := newSide("runner", 30, 20, 20, model.EffectiveStats{Speed: 10})
	target := newSide("chaser", 30, 20, 20, model.EffectiveStats{Speed: 10})
	r := newResolver(nil)

	const trials = 20000
	fled := 0
	for range trials {
		if r.ResolveFlee(actor, target).Fled {
			fled++
		}
	}
	rate := float64(fled) / float64(trials)
	assert.InDelta(t, config.DefaultCombat().BaseFleeChance, rate, 0.02)
}

func TestRewardVictory_XPAndLevelUp(t *testing.T) {
	r := newResolver(testutil.FixedDice{Value: 0.99})

	c := model.NewCombatant("p1", "Hero", 1, 50, 20, 20, model.BaseStats{
		Strength: 8, Intellect: 5, Agility: 5, Vitality: 6, Wisdom: 4, Charisma: 4,
	})
	player := model.NewPlayer(c, "warrior")
	player.SetCurrentHP(10)

	enemy := &model.Enemy{
		Combatant:  model.NewCombatant("e1", "Wolf", 1, 40, 10, 20, model.BaseStats{}),
		TemplateID: "wolf",
		BaseXP:     data.XPForLevel(2) + 5,
	}

	reward := r.RewardVictory(player, enemy, 1.0, 1.0)

	assert.Equal(t, enemy.BaseXP, reward.XP)
	assert.True(t, reward.LeveledUp)
	assert.Equal(t, int32(2), reward.NewLevel)
	assert.Equal(t, int32(2), player.Level())
	assert.Equal(t, player.MaxHP(), player.CurrentHP(), "level-up refills the pools")
}

func TestRewardVictory_XPMultiplier(t *testing.T) {
	r := newResolver(testutil.FixedDice{Value: 0.99})

	c := model.NewCombatant("p1", "Hero", 5, 50, 20, 20, model.BaseStats{})
	player := model.NewPlayer(c, "warrior")
	enemy := &model.Enemy{
		Combatant: model.NewCombatant("e1", "Wolf", 1, 40, 10, 20, model.BaseStats{}),
		BaseXP:    100,
	}

	reward := r.RewardVictory(player, enemy, 2.5, 1.0)
	assert.Equal(t, int64(250), reward.XP)
	assert.Equal(t, int64(250), player.Experience())
}

func TestRewardVictory_DropRolls(t *testing.T) {
	// Roll sequence per entry: chance roll, then count roll if Min<Max.
	// First entry drops with count Min+1, second entry's chance roll fails.
	dice := &testutil.ScriptedDice{Rolls: []float64{0.1, 0.5, 0.9}, Fallback: 0.99}
	r := combat.NewResolver(config.DefaultCombat(), data.DefaultCatalog(), dice)

	c := model.NewCombatant("p1", "Hero", 5, 50, 20, 20, model.BaseStats{})
	player := model.NewPlayer(c, "warrior")
	enemy := &model.Enemy{
		Combatant: model.NewCombatant("e1", "Wolf", 1, 40, 10, 20, model.BaseStats{}),
		BaseXP:    10,
		Drops: []model.DropEntry{
			{ItemID: "wolf_pelt", Chance: 0.5, Min: 1, Max: 3},
			{ItemID: "fang", Chance: 0.5, Min: 1, Max: 1},
		},
	}

	reward := r.RewardVictory(player, enemy, 1.0, 1.0)
	if assert.Len(t, reward.Loot, 1) {
		assert.Equal(t, "wolf_pelt", reward.Loot[0].ItemID)
		assert.Equal(t, int32(2), reward.Loot[0].Count)
	}
}

func TestRewardVictory_DropMultiplierCaps(t *testing.T) {
	// Chance 0.4 × mult 10 caps at 1: even a 0.99 roll drops.
	r := newResolver(testutil.FixedDice{Value: 0.99})

	c := model.NewCombatant("p1", "Hero", 5, 50, 20, 20, model.BaseStats{})
	player := model.NewPlayer(c, "warrior")
	enemy := &model.Enemy{
		Combatant: model.NewCombatant("e1", "Wolf", 1, 40, 10, 20, model.BaseStats{}),
		BaseXP:    10,
		Drops:     []model.DropEntry{{ItemID: "wolf_pelt", Chance: 0.4, Min: 2, Max: 2}},
	}

	reward := r.RewardVictory(player, enemy, 1.0, 10.0)
	if assert.Len(t, reward.Loot, 1) {
		assert.Equal(t, int32(2), reward.Loot[0].Count)
	}
}
