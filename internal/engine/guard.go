package engine

import "github.com/sintov/rpgbot/internal/model"

// Command names as the chat layer submits them. Combat commands map
// onto ActionTypes; menu commands are gated here and handled by the
// menu collaborators.
const (
	CmdAttack       = "attack"
	CmdMagicAttack  = "magic_attack"
	CmdChargeAttack = "charge_attack"
	CmdPrecise      = "precise_attack"
	CmdHeavy        = "heavy_attack"
	CmdBlock        = "block"
	CmdDodge        = "dodge"
	CmdCounter      = "counter"
	CmdMeditate     = "meditate"
	CmdObserve      = "observe"
	CmdUseItem      = "use_item"
	CmdSkill        = "skill"
	CmdFlee         = "flee"
	CmdTame         = "tame"
	CmdWait         = "wait"

	CmdExplore    = "explore"
	CmdRest       = "rest"
	CmdWork       = "work"
	CmdCraftMenu  = "craft_menu"
	CmdQuestMenu  = "quest_menu"
	CmdShop       = "shop"
	CmdTravel     = "travel"
	CmdDungeon    = "dungeon_enter"
	CmdPetsMenu   = "pets_menu"
	CmdSkillsMenu = "skills_menu"
	CmdClassMenu  = "class_menu"
	CmdBack       = "back"
)

// combatStates are the states in which combat commands are legal.
var combatStates = []model.GameState{model.StateInCombat, model.StateInDungeonCombat}

// idleOnly are the states from which the given command may start.
var idleOnly = []model.GameState{model.StateIdle}

// guardTable maps each command to the states it is legal in.
// A command absent from the table is never allowed.
var guardTable = map[string][]model.GameState{
	CmdAttack:       combatStates,
	CmdMagicAttack:  combatStates,
	CmdChargeAttack: combatStates,
	CmdPrecise:      combatStates,
	CmdHeavy:        combatStates,
	CmdBlock:        combatStates,
	CmdDodge:        combatStates,
	CmdCounter:      combatStates,
	CmdMeditate:     combatStates,
	CmdObserve:      combatStates,
	CmdUseItem:      combatStates,
	CmdSkill:        combatStates,
	CmdFlee:         combatStates,
	CmdTame:         combatStates,
	CmdWait:         combatStates,

	CmdExplore:    {model.StateIdle, model.StateExploring},
	CmdRest:       idleOnly,
	CmdWork:       idleOnly,
	CmdCraftMenu:  idleOnly,
	CmdQuestMenu:  idleOnly,
	CmdShop:       idleOnly,
	CmdTravel:     idleOnly,
	CmdDungeon:    idleOnly,
	CmdPetsMenu:   idleOnly,
	CmdSkillsMenu: idleOnly,
	CmdClassMenu:  idleOnly,

	// Leaving a menu is legal from any menu state, never from combat.
	CmdBack: {
		model.StateExploring, model.StateInDungeon, model.StateShopping,
		model.StateResting, model.StateTravelMenu, model.StatePetManagement,
		model.StateSkillsMenu, model.StateClassMenu, model.StateCrafting,
	},
}

// IsActionAllowed reports whether a command is legal in the given state.
// The table is static: legality depends on CurrentState only, never on
// the free-form state context.
func IsActionAllowed(state model.GameState, command string) bool {
	allowed, ok := guardTable[command]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == state {
			return true
		}
	}
	return false
}

// commandForAction maps a combat ActionType to its guard command.
func commandForAction(t model.ActionType) string {
	switch t {
	case model.ActionPhysicalAttack:
		return CmdAttack
	case model.ActionMagicalAttack:
		return CmdMagicAttack
	case model.ActionChargeAttack:
		return CmdChargeAttack
	case model.ActionPreciseAttack:
		return CmdPrecise
	case model.ActionHeavyAttack:
		return CmdHeavy
	case model.ActionBlock:
		return CmdBlock
	case model.ActionDodge:
		return CmdDodge
	case model.ActionCounter:
		return CmdCounter
	case model.ActionMeditate:
		return CmdMeditate
	case model.ActionObserve:
		return CmdObserve
	case model.ActionUseItem:
		return CmdUseItem
	case model.ActionSkill:
		return CmdSkill
	case model.ActionFlee:
		return CmdFlee
	case model.ActionTame:
		return CmdTame
	case model.ActionWait:
		return CmdWait
	default:
		return ""
	}
}
