package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForLoyalty(t *testing.T) {
	tests := []struct {
		loyalty int32
		want    LoyaltyTier
	}{
		{0, LoyaltyHostile},
		{99, LoyaltyHostile},
		{100, LoyaltyWary},
		{299, LoyaltyWary},
		{300, LoyaltyNeutral},
		{500, LoyaltyFriendly},
		{700, LoyaltyLoyal},
		{900, LoyaltyDevoted},
		{1000, LoyaltyDevoted},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, TierForLoyalty(tt.loyalty), "loyalty %d", tt.loyalty)
	}
}

func TestLoyaltyBonus(t *testing.T) {
	assert.Equal(t, -0.20, LoyaltyBonus(0))
	assert.Equal(t, -0.10, LoyaltyBonus(150))
	assert.Equal(t, 0.0, LoyaltyBonus(400))
	assert.Equal(t, 0.05, LoyaltyBonus(600))
	assert.Equal(t, 0.10, LoyaltyBonus(800))
	assert.Equal(t, 0.20, LoyaltyBonus(950))
}

func TestGameState_IsCombat(t *testing.T) {
	for _, s := range []GameState{StateIdle, StateExploring, StateInDungeon, StateShopping, StateResting} {
		assert.Falsef(t, s.IsCombat(), "%s", s)
	}
	assert.True(t, StateInCombat.IsCombat())
	assert.True(t, StateInDungeonCombat.IsCombat())
}
