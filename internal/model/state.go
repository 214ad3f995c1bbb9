package model

import "time"

// GameState is the authoritative player state driving action legality.
type GameState int32

const (
	StateIdle GameState = iota
	StateExploring
	StateInCombat
	StateInDungeon
	StateInDungeonCombat
	StateShopping
	StateResting
	StateTravelMenu
	StatePetManagement
	StateSkillsMenu
	StateClassMenu
	StateCrafting
)

// String returns a human-readable state name.
func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateExploring:
		return "EXPLORING"
	case StateInCombat:
		return "IN_COMBAT"
	case StateInDungeon:
		return "IN_DUNGEON"
	case StateInDungeonCombat:
		return "IN_DUNGEON_COMBAT"
	case StateShopping:
		return "SHOPPING"
	case StateResting:
		return "RESTING"
	case StateTravelMenu:
		return "TRAVEL_MENU"
	case StatePetManagement:
		return "PET_MANAGEMENT"
	case StateSkillsMenu:
		return "SKILLS_MENU"
	case StateClassMenu:
		return "CLASS_MENU"
	case StateCrafting:
		return "CRAFTING"
	default:
		return "UNKNOWN"
	}
}

// IsCombat reports whether the state is one of the combat states.
// This is the derived predicate that replaces a stored in-combat boolean:
// state is the single source of truth, the flag is computed.
func (s GameState) IsCombat() bool {
	return s == StateInCombat || s == StateInDungeonCombat
}

// PlayerStateData is the state record kept per player.
// Context is a free-form tag for display and debugging only;
// control decisions use CurrentState plus combatant fields.
type PlayerStateData struct {
	CurrentState GameState
	EnteredAt    time.Time
	Context      string
}
