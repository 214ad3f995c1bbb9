package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sintov/rpgbot/internal/model"
)

func TestSpawnEnemy_ScalesWithLevel(t *testing.T) {
	f := DefaultEnemyFactory()

	lvl1, err := f.SpawnEnemy("wolf", 1, 1.0)
	require.NoError(t, err)
	lvl5, err := f.SpawnEnemy("wolf", 5, 1.0)
	require.NoError(t, err)

	assert.Equal(t, int32(30), lvl1.MaxHP())
	// 30 × (1 + 0.15×4) = 48
	assert.Equal(t, int32(48), lvl5.MaxHP())
	assert.Equal(t, int32(5), lvl5.Level())
	assert.Greater(t, lvl5.BaseStats().Strength, lvl1.BaseStats().Strength)
	assert.Greater(t, lvl5.BaseXP, lvl1.BaseXP)
}

func TestSpawnEnemy_DifficultyMultiplier(t *testing.T) {
	f := DefaultEnemyFactory()

	normal, err := f.SpawnEnemy("wolf", 1, 1.0)
	require.NoError(t, err)
	hard, err := f.SpawnEnemy("wolf", 1, 2.0)
	require.NoError(t, err)

	assert.Equal(t, normal.MaxHP()*2, hard.MaxHP())
	assert.Equal(t, normal.BaseXP*2, hard.BaseXP)
}

func TestSpawnEnemy_UnknownTemplate(t *testing.T) {
	f := DefaultEnemyFactory()
	_, err := f.SpawnEnemy("dragon_emperor", 1, 1.0)
	assert.Error(t, err)
}

func TestSpawnEnemy_FreshSnapshots(t *testing.T) {
	f := DefaultEnemyFactory()

	a, err := f.SpawnEnemy("wolf", 3, 1.0)
	require.NoError(t, err)
	b, err := f.SpawnEnemy("wolf", 3, 1.0)
	require.NoError(t, err)

	require.NotEqual(t, a.ID(), b.ID())
	a.ReduceCurrentHP(10, 1)
	assert.Equal(t, b.MaxHP(), b.CurrentHP(), "snapshots never share state")
}

func TestSpawnEnemy_AppliesAffinities(t *testing.T) {
	f := DefaultEnemyFactory()

	skeleton, err := f.SpawnEnemy("skeleton_warrior", 1, 1.0)
	require.NoError(t, err)

	assert.Equal(t, 0.0, skeleton.DamageMultiplier(model.DamagePoison))
	assert.Equal(t, 1.25, skeleton.DamageMultiplier(model.DamagePhysical))
	assert.InDelta(t, 0.5, skeleton.DamageMultiplier(model.DamageFrost), 1e-9)
}

func TestSpawnEnemy_InputClamps(t *testing.T) {
	f := DefaultEnemyFactory()

	e, err := f.SpawnEnemy("wolf", -3, -1.0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), e.Level())
	assert.Equal(t, int32(30), e.MaxHP(), "bad inputs fall back to level 1, difficulty 1")
}

func TestSpawnRandomEnemy(t *testing.T) {
	f := DefaultEnemyFactory()
	e, err := f.SpawnRandomEnemy(2, 1.0)
	require.NoError(t, err)
	assert.NotEmpty(t, e.TemplateID)

	empty := NewEnemyFactory(nil)
	_, err = empty.SpawnRandomEnemy(2, 1.0)
	assert.Error(t, err)
}

func TestXPForLevel_Monotonic(t *testing.T) {
	assert.Equal(t, int64(0), XPForLevel(1))
	prev := int64(0)
	for level := int32(2); level <= MaxLevel; level++ {
		cur := XPForLevel(level)
		assert.Greaterf(t, cur, prev, "level %d", level)
		prev = cur
	}
	assert.Equal(t, XPForLevel(MaxLevel), XPForLevel(MaxLevel+10), "clamped above the cap")
}

func TestLevelForExp(t *testing.T) {
	assert.Equal(t, int32(1), LevelForExp(0, 1))
	assert.Equal(t, int32(1), LevelForExp(XPForLevel(2)-1, 1))
	assert.Equal(t, int32(2), LevelForExp(XPForLevel(2), 1))
	assert.Equal(t, int32(7), LevelForExp(XPForLevel(7), 1))

	// Levels are never lost, whatever happened to the XP total.
	assert.Equal(t, int32(5), LevelForExp(0, 5))
}

func TestDefaultCatalog_Lookups(t *testing.T) {
	cat := DefaultCatalog()

	eq, ok := cat.Equipment("rusty_sword")
	require.True(t, ok)
	assert.Equal(t, int32(3), eq.Bonus.Attack)

	_, ok = cat.Equipment("excalibur")
	assert.False(t, ok, "unknown ids report ok=false, never panic")

	skill, ok := cat.Skill("fireball")
	require.True(t, ok)
	assert.Equal(t, model.DamageFire, skill.Profile.DamageType)
	assert.Equal(t, model.EffectBurn, skill.Profile.InflictKind)

	item, ok := cat.Consumable("smelling_salts")
	require.True(t, ok)
	assert.True(t, item.CureControl)

	class, ok := cat.Class("warrior")
	require.True(t, ok)
	assert.Positive(t, class.Bonus.Attack)

	_, ok = cat.Class("")
	assert.False(t, ok)
}

func TestStatBonus_Add(t *testing.T) {
	var b StatBonus
	b.Add(StatBonus{Attack: 3, CritChance: 0.05, MaxHP: 10})
	b.Add(StatBonus{Attack: 2, Evasion: 4})

	assert.Equal(t, int32(5), b.Attack)
	assert.Equal(t, int32(4), b.Evasion)
	assert.InDelta(t, 0.05, b.CritChance, 1e-9)
	assert.Equal(t, int32(10), b.MaxHP)
}
