package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sintov/rpgbot/internal/model"
	"github.com/sintov/rpgbot/internal/testutil"
)

func newEnemy(behavior model.BehaviorProfile, hp, mana, stamina int32) *model.Enemy {
	return &model.Enemy{
		Combatant: model.NewCombatant("e1", "Enemy", 3, hp, mana, stamina, model.BaseStats{
			Strength: 6, Intellect: 6, Agility: 6, Vitality: 6, Wisdom: 6, Charisma: 6,
		}),
		TemplateID: "test_enemy",
		Behavior:   behavior,
	}
}

func newTarget(hp int32) *model.Combatant {
	return model.NewCombatant("p1", "Player", 3, hp, 20, 20, model.BaseStats{
		Strength: 6, Intellect: 6, Agility: 6, Vitality: 6, Wisdom: 6, Charisma: 6,
	})
}

func TestChooseAction_CowardFleesWhenHurt(t *testing.T) {
	s := NewSelector(testutil.FixedDice{Value: 0.5})
	enemy := newEnemy(model.BehaviorCoward, 100, 20, 30)
	player := newTarget(100)

	enemy.SetCurrentHP(39)
	assert.Equal(t, model.ActionFlee, s.ChooseAction(enemy, player).Type)

	enemy.SetCurrentHP(41)
	assert.NotEqual(t, model.ActionFlee, s.ChooseAction(enemy, player).Type,
		"above the threshold a coward still fights")
}

func TestChooseAction_BerserkerPicksStrongestAffordable(t *testing.T) {
	s := NewSelector(testutil.FixedDice{Value: 0.5})
	player := newTarget(100)

	enemy := newEnemy(model.BehaviorBerserker, 100, 20, 30)
	assert.Equal(t, model.ActionHeavyAttack, s.ChooseAction(enemy, player).Type)

	enemy.SpendStamina(10) // 20 left, heavy costs 25
	assert.Equal(t, model.ActionChargeAttack, s.ChooseAction(enemy, player).Type)

	enemy.SpendStamina(10) // 10 left, charge costs 15
	assert.Equal(t, model.ActionPhysicalAttack, s.ChooseAction(enemy, player).Type)
}

func TestChooseAction_SupportiveMeditatesOnLowMana(t *testing.T) {
	s := NewSelector(testutil.FixedDice{Value: 0.5})
	player := newTarget(100)

	enemy := newEnemy(model.BehaviorSupportive, 100, 40, 30)
	enemy.SpendMana(35) // 5/40 left, below the threshold
	assert.Equal(t, model.ActionMeditate, s.ChooseAction(enemy, player).Type)
}

func TestChooseAction_IntelligentBranches(t *testing.T) {
	// Roll 0 lands on the first row of whichever branch is active.
	s := NewSelector(testutil.FixedDice{Value: 0.0})

	enemy := newEnemy(model.BehaviorIntelligent, 100, 40, 30)
	player := newTarget(100)

	// Healthy both sides: opens with a plain attack.
	assert.Equal(t, model.ActionPhysicalAttack, s.ChooseAction(enemy, player).Type)

	// Own HP low: turtles.
	enemy.SetCurrentHP(25)
	assert.Equal(t, model.ActionBlock, s.ChooseAction(enemy, player).Type)

	// Player low, own HP fine: presses the attack.
	enemy.SetCurrentHP(100)
	player.SetCurrentHP(30)
	assert.Equal(t, model.ActionPhysicalAttack, s.ChooseAction(enemy, player).Type)
}

func TestChooseAction_SkipsUnaffordableRows(t *testing.T) {
	// Aggressive table includes charge and heavy; with no stamina only
	// the free rows remain, whatever the roll.
	s := NewSelector(testutil.FixedDice{Value: 0.99})
	enemy := newEnemy(model.BehaviorAggressive, 100, 20, 30)
	enemy.SpendStamina(30)
	player := newTarget(100)

	for range 20 {
		got := s.ChooseAction(enemy, player).Type
		assert.Contains(t, []model.ActionType{model.ActionPhysicalAttack, model.ActionBlock}, got)
	}
}

func TestChooseAction_WeightedRollBoundaries(t *testing.T) {
	// Passive table: Wait 50, Block 30, Attack 20 over a total of 100.
	enemy := newEnemy(model.BehaviorPassive, 100, 20, 30)
	player := newTarget(100)

	tests := []struct {
		roll float64
		want model.ActionType
	}{
		{0.0, model.ActionWait},
		{0.49, model.ActionWait},
		{0.50, model.ActionBlock},
		{0.79, model.ActionBlock},
		{0.80, model.ActionPhysicalAttack},
		{0.99, model.ActionPhysicalAttack},
	}
	for _, tt := range tests {
		s := NewSelector(testutil.FixedDice{Value: tt.roll})
		assert.Equalf(t, tt.want, s.ChooseAction(enemy, player).Type, "roll %.2f", tt.roll)
	}
}

func TestChooseAction_UnknownBehaviorAttacks(t *testing.T) {
	s := NewSelector(testutil.FixedDice{Value: 0.5})
	enemy := newEnemy(model.BehaviorProfile(99), 100, 20, 30)
	assert.Equal(t, model.ActionPhysicalAttack, s.ChooseAction(enemy, newTarget(100)).Type)
}
