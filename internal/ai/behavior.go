// Package ai selects enemy response actions from weighted behavior
// tables modulated by live HP and resource thresholds.
package ai

import (
	"log/slog"

	"github.com/sintov/rpgbot/internal/game/combat"
	"github.com/sintov/rpgbot/internal/model"
)

// Threshold constants modulating the weighted tables.
const (
	lowHPFraction       = 0.30 // "I am hurt" threshold
	targetLowHPFraction = 0.35 // "the player is hurt" threshold
	cowardFleeFraction  = 0.40 // Coward switches to Flee below this
	lowManaFraction     = 0.25
)

// weightedAction is one row of a behavior table.
type weightedAction struct {
	action model.ActionType
	weight int
}

// Selector chooses enemy actions. It never mutates state: the chosen
// action feeds back into the combat resolver.
type Selector struct {
	dice combat.Dice
}

// NewSelector creates a selector. A nil dice falls back to the
// production randomness source.
func NewSelector(dice combat.Dice) *Selector {
	if dice == nil {
		dice = combat.NewDice()
	}
	return &Selector{dice: dice}
}

// ChooseAction picks the enemy's response for this round.
//
// The behavior profile selects a weighted action table; live HP and
// resource fractions shift the table before the roll (a Coward flees
// when hurt, an Intelligent enemy turtles when low and presses when the
// player is low, a Berserker always swings as hard as it can afford).
func (s *Selector) ChooseAction(enemy *model.Enemy, player *model.Combatant) model.CombatAction {
	ownHP := enemy.HPFraction()
	playerHP := player.HPFraction()

	var table []weightedAction

	switch enemy.Behavior {
	case model.BehaviorPassive:
		table = []weightedAction{
			{model.ActionWait, 50},
			{model.ActionBlock, 30},
			{model.ActionPhysicalAttack, 20},
		}

	case model.BehaviorDefensive:
		table = []weightedAction{
			{model.ActionBlock, 30},
			{model.ActionCounter, 25},
			{model.ActionPhysicalAttack, 30},
			{model.ActionDodge, 15},
		}

	case model.BehaviorBalanced:
		table = []weightedAction{
			{model.ActionPhysicalAttack, 40},
			{model.ActionPreciseAttack, 15},
			{model.ActionBlock, 20},
			{model.ActionDodge, 15},
			{model.ActionWait, 10},
		}

	case model.BehaviorAggressive:
		table = []weightedAction{
			{model.ActionPhysicalAttack, 45},
			{model.ActionChargeAttack, 25},
			{model.ActionHeavyAttack, 20},
			{model.ActionBlock, 10},
		}

	case model.BehaviorBerserker:
		// Highest-power attack it can afford, own HP be damned.
		return model.CombatAction{Type: s.strongestAffordableAttack(enemy.Combatant)}

	case model.BehaviorIntelligent:
		switch {
		case ownHP < lowHPFraction:
			table = []weightedAction{
				{model.ActionBlock, 40},
				{model.ActionDodge, 35},
				{model.ActionCounter, 15},
				{model.ActionPhysicalAttack, 10},
			}
		case playerHP < targetLowHPFraction:
			table = []weightedAction{
				{model.ActionPhysicalAttack, 35},
				{model.ActionHeavyAttack, 30},
				{model.ActionPreciseAttack, 25},
				{model.ActionMagicalAttack, 10},
			}
		default:
			table = []weightedAction{
				{model.ActionPhysicalAttack, 30},
				{model.ActionPreciseAttack, 20},
				{model.ActionMagicalAttack, 20},
				{model.ActionDodge, 15},
				{model.ActionCounter, 15},
			}
		}

	case model.BehaviorCoward:
		if ownHP < cowardFleeFraction {
			return model.CombatAction{Type: model.ActionFlee}
		}
		table = []weightedAction{
			{model.ActionDodge, 35},
			{model.ActionPhysicalAttack, 35},
			{model.ActionBlock, 20},
			{model.ActionWait, 10},
		}

	case model.BehaviorSupportive:
		if enemy.ManaFraction() < lowManaFraction {
			return model.CombatAction{Type: model.ActionMeditate}
		}
		table = []weightedAction{
			{model.ActionMagicalAttack, 45},
			{model.ActionBlock, 20},
			{model.ActionMeditate, 20},
			{model.ActionPhysicalAttack, 15},
		}

	default:
		table = []weightedAction{{model.ActionPhysicalAttack, 100}}
	}

	action := s.rollTable(table, enemy.Combatant)

	slog.Debug("enemy action chosen",
		"enemy", enemy.TemplateID,
		"behavior", enemy.Behavior.String(),
		"action", action.Type.String(),
		"own_hp", ownHP,
		"player_hp", playerHP)

	return action
}

// rollTable picks from a weighted table, skipping entries the enemy
// cannot afford. Falls back to a plain attack (zero cost) if nothing
// else is affordable.
func (s *Selector) rollTable(table []weightedAction, enemy *model.Combatant) model.CombatAction {
	affordable := table[:0]
	total := 0
	for _, row := range table {
		if !s.canAfford(enemy, row.action) {
			continue
		}
		affordable = append(affordable, row)
		total += row.weight
	}
	if total == 0 {
		return model.CombatAction{Type: model.ActionPhysicalAttack}
	}

	roll := s.dice.IntN(total)
	for _, row := range affordable {
		roll -= row.weight
		if roll < 0 {
			return model.CombatAction{Type: row.action}
		}
	}
	return model.CombatAction{Type: model.ActionPhysicalAttack}
}

// canAfford checks the action's resource cost against the enemy pools.
func (s *Selector) canAfford(enemy *model.Combatant, action model.ActionType) bool {
	p, ok := model.BaseProfile(action)
	if !ok {
		return true // reactions and utility actions cost nothing
	}
	return p.ManaCost <= enemy.CurrentMana() && p.StaminaCost <= enemy.CurrentStamina()
}

// strongestAffordableAttack returns the highest-power attack the enemy
// can pay for right now.
func (s *Selector) strongestAffordableAttack(enemy *model.Combatant) model.ActionType {
	order := []model.ActionType{
		model.ActionHeavyAttack,
		model.ActionChargeAttack,
		model.ActionPhysicalAttack,
	}
	for _, a := range order {
		if s.canAfford(enemy, a) {
			return a
		}
	}
	return model.ActionPhysicalAttack
}
