package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sintov/rpgbot/internal/model"
)

func newHost(hp int32) *model.Combatant {
	return model.NewCombatant("host", "Host", 3, hp, 20, 20, model.BaseStats{
		Strength: 5, Intellect: 5, Agility: 5, Vitality: 5, Wisdom: 5, Charisma: 5,
	})
}

func TestTick_BleedRunsOut(t *testing.T) {
	eng := NewEngine(1)
	host := newHost(100)
	host.ApplyEffect(model.StatusEffect{Kind: model.EffectBleed, RemainingTurns: 3, Intensity: 5})

	// Three round-end ticks of 5 damage each, then the effect is gone.
	for i, wantHP := range []int32{95, 90, 85} {
		report := eng.Tick(host, RoundEnd)
		require.Len(t, report.Ticks, 1, "tick %d", i)
		assert.Equal(t, int32(-5), report.Ticks[0].HPDelta)
		assert.Equal(t, wantHP, host.CurrentHP())
	}
	assert.False(t, host.HasEffect(model.EffectBleed), "bleed must expire after its duration")

	report := eng.Tick(host, RoundEnd)
	assert.Empty(t, report.Ticks)
	assert.Equal(t, int32(85), host.CurrentHP())
}

func TestTick_ExpiryFlag(t *testing.T) {
	eng := NewEngine(1)
	host := newHost(100)
	host.ApplyEffect(model.StatusEffect{Kind: model.EffectPoison, RemainingTurns: 1, Intensity: 4})

	report := eng.Tick(host, RoundEnd)
	require.Len(t, report.Ticks, 1)
	assert.True(t, report.Ticks[0].Expired)
	assert.Empty(t, host.ActiveEffects())
}

func TestTick_DOTRespectsDeathFloor(t *testing.T) {
	eng := NewEngine(1)
	host := newHost(100)
	host.SetCurrentHP(3)
	host.ApplyEffect(model.StatusEffect{Kind: model.EffectBurn, RemainingTurns: 5, Intensity: 50})

	report := eng.Tick(host, RoundEnd)
	assert.Equal(t, int32(1), host.CurrentHP(), "DOT clamps at the floor")
	assert.True(t, report.Defeated)
}

func TestTick_RegenCapsAtMax(t *testing.T) {
	eng := NewEngine(1)
	host := newHost(100)
	host.SetCurrentHP(97)
	host.ApplyEffect(model.StatusEffect{Kind: model.EffectRegen, RemainingTurns: 3, Intensity: 8})

	report := eng.Tick(host, RoundStart)
	require.Len(t, report.Ticks, 1)
	assert.Equal(t, int32(3), report.Ticks[0].HPDelta, "reported heal is the actual amount")
	assert.Equal(t, int32(100), host.CurrentHP())

	// Round start never decrements duration.
	assert.Equal(t, int32(3), host.ActiveEffects()[0].RemainingTurns)
}

func TestTick_ControlDoesNoDamage(t *testing.T) {
	eng := NewEngine(1)
	host := newHost(100)
	host.ApplyEffect(model.StatusEffect{Kind: model.EffectStun, RemainingTurns: 2, Intensity: 1})

	report := eng.Tick(host, RoundEnd)
	require.Len(t, report.Ticks, 1)
	assert.Equal(t, int32(0), report.Ticks[0].HPDelta)
	assert.Equal(t, int32(100), host.CurrentHP())
	assert.Equal(t, int32(1), host.ActiveEffects()[0].RemainingTurns, "duration still counts down")
}

func TestTick_MixedEffectsSingleRound(t *testing.T) {
	eng := NewEngine(1)
	host := newHost(100)
	host.ApplyEffect(model.StatusEffect{Kind: model.EffectBleed, RemainingTurns: 2, Intensity: 3})
	host.ApplyEffect(model.StatusEffect{Kind: model.EffectPoison, RemainingTurns: 1, Intensity: 2})
	host.ApplyEffect(model.StatusEffect{Kind: model.EffectShield, RemainingTurns: 2, Intensity: 10})

	report := eng.Tick(host, RoundEnd)
	assert.Len(t, report.Ticks, 3)
	assert.Equal(t, int32(95), host.CurrentHP())
	assert.False(t, host.HasEffect(model.EffectPoison))
	assert.True(t, host.HasEffect(model.EffectBleed))
	assert.True(t, host.HasEffect(model.EffectShield))
}
