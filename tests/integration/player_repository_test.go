package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sintov/rpgbot/internal/db"
	"github.com/sintov/rpgbot/internal/model"
	"github.com/sintov/rpgbot/internal/testutil"
)

func TestPlayerRepository_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := testutil.SetupTestDB(t)
	repo := db.NewPlayerRepository(pool)
	ctx := context.Background()

	rec := &db.PlayerRecord{
		PlayerID:   "tg:1001",
		Name:       "Arvid",
		ClassID:    "warrior",
		Level:      4,
		Experience: 900,

		CurrentHP: 80, MaxHP: 120,
		CurrentMana: 15, MaxMana: 30,
		CurrentStamina: 40, MaxStamina: 55,

		Stats: model.BaseStats{
			Strength: 12, Intellect: 5, Agility: 7,
			Vitality: 9, Wisdom: 4, Charisma: 6,
		},

		Equipment: []string{"rusty_sword", "lucky_charm"},
		Passives:  []string{"iron_skin"},

		GameState:    model.StateIdle,
		StateContext: "",
	}

	require.NoError(t, repo.Save(ctx, rec))

	loaded, err := repo.LoadByID(ctx, "tg:1001")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, rec.Name, loaded.Name)
	assert.Equal(t, rec.ClassID, loaded.ClassID)
	assert.Equal(t, rec.Level, loaded.Level)
	assert.Equal(t, rec.Experience, loaded.Experience)
	assert.Equal(t, rec.CurrentHP, loaded.CurrentHP)
	assert.Equal(t, rec.MaxHP, loaded.MaxHP)
	assert.Equal(t, rec.Stats, loaded.Stats)
	assert.Equal(t, rec.Equipment, loaded.Equipment)
	assert.Equal(t, rec.Passives, loaded.Passives)
	assert.Equal(t, model.StateIdle, loaded.GameState)
}

func TestPlayerRepository_UpsertOverwrites(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := testutil.SetupTestDB(t)
	repo := db.NewPlayerRepository(pool)
	ctx := context.Background()

	rec := &db.PlayerRecord{
		PlayerID: "tg:2002", Name: "Brenna", ClassID: "mage",
		Level: 1, CurrentHP: 60, MaxHP: 60,
		Stats: model.BaseStats{Intellect: 11},
	}
	require.NoError(t, repo.Save(ctx, rec))

	rec.Level = 2
	rec.Experience = 160
	rec.CurrentHP = 45
	rec.GameState = model.StateResting
	require.NoError(t, repo.Save(ctx, rec))

	loaded, err := repo.LoadByID(ctx, "tg:2002")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, int32(2), loaded.Level)
	assert.Equal(t, int64(160), loaded.Experience)
	assert.Equal(t, int32(45), loaded.CurrentHP)
	assert.Equal(t, model.StateResting, loaded.GameState)
}

func TestPlayerRepository_MissingPlayer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := testutil.SetupTestDB(t)
	repo := db.NewPlayerRepository(pool)

	loaded, err := repo.LoadByID(context.Background(), "tg:nobody")
	require.NoError(t, err)
	assert.Nil(t, loaded, "missing players load as nil, not as an error")
}

func TestPlayerRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := testutil.SetupTestDB(t)
	repo := db.NewPlayerRepository(pool)
	ctx := context.Background()

	rec := &db.PlayerRecord{PlayerID: "tg:3003", Name: "Cael", ClassID: "rogue", Level: 1}
	require.NoError(t, repo.Save(ctx, rec))
	require.NoError(t, repo.Delete(ctx, "tg:3003"))

	loaded, err := repo.LoadByID(ctx, "tg:3003")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting an absent row is fine.
	assert.NoError(t, repo.Delete(ctx, "tg:3003"))
}

func TestPlayerRecord_MaterializeRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool := testutil.SetupTestDB(t)
	repo := db.NewPlayerRepository(pool)
	ctx := context.Background()

	c := model.NewCombatant("tg:4004", "Dagny", 3, 100, 40, 50, model.BaseStats{
		Strength: 10, Intellect: 6, Agility: 8, Vitality: 7, Wisdom: 5, Charisma: 5,
	})
	c.SetCurrentHP(72)
	c.SetEquipment([]string{"oak_staff"})
	p := model.NewPlayer(c, "mage")
	p.SetExperience(300)

	require.NoError(t, repo.Save(ctx, db.RecordFromPlayer(p, model.StateExploring, "northern woods")))

	loaded, err := repo.LoadByID(ctx, "tg:4004")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	restored := loaded.ToPlayer()
	assert.Equal(t, p.Name(), restored.Name())
	assert.Equal(t, p.Level(), restored.Level())
	assert.Equal(t, p.Experience(), restored.Experience())
	assert.Equal(t, int32(72), restored.CurrentHP())
	assert.Equal(t, p.Equipment(), restored.Equipment())
	assert.Equal(t, model.StateExploring, loaded.GameState)
	assert.Equal(t, "northern woods", loaded.StateContext)
}
