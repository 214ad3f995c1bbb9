package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sintov/rpgbot/internal/model"
)

func TestIsActionAllowed(t *testing.T) {
	tests := []struct {
		state   model.GameState
		command string
		want    bool
	}{
		{model.StateIdle, CmdRest, true},
		{model.StateInCombat, CmdRest, false},
		{model.StateInCombat, CmdAttack, true},
		{model.StateInDungeonCombat, CmdAttack, true},
		{model.StateIdle, CmdAttack, false},
		{model.StateExploring, CmdAttack, false},
		{model.StateIdle, CmdCraftMenu, true},
		{model.StateShopping, CmdCraftMenu, false},
		{model.StateInCombat, CmdCraftMenu, false},
		{model.StateIdle, CmdExplore, true},
		{model.StateExploring, CmdExplore, true},
		{model.StateInCombat, CmdFlee, true},
		{model.StateIdle, CmdFlee, false},
		{model.StateShopping, CmdBack, true},
		{model.StateInCombat, CmdBack, false},
		{model.StateIdle, CmdBack, false},
		{model.StateIdle, "no_such_command", false},
	}
	for _, tt := range tests {
		got := IsActionAllowed(tt.state, tt.command)
		assert.Equalf(t, tt.want, got, "%q in %s", tt.command, tt.state)
	}
}

func TestCommandForAction_CoversAllCombatActions(t *testing.T) {
	actions := []model.ActionType{
		model.ActionPhysicalAttack, model.ActionMagicalAttack,
		model.ActionChargeAttack, model.ActionPreciseAttack,
		model.ActionHeavyAttack, model.ActionBlock, model.ActionDodge,
		model.ActionCounter, model.ActionMeditate, model.ActionObserve,
		model.ActionUseItem, model.ActionSkill, model.ActionFlee,
		model.ActionTame, model.ActionWait,
	}
	for _, a := range actions {
		cmd := commandForAction(a)
		assert.NotEmptyf(t, cmd, "%v", a)
		assert.Truef(t, IsActionAllowed(model.StateInCombat, cmd), "%q", cmd)
	}
	assert.Empty(t, commandForAction(model.ActionType(99)))
}
