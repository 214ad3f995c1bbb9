package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sintov/rpgbot/internal/model"
)

// PlayerRepository loads and saves player records.
type PlayerRepository struct {
	pool *pgxpool.Pool
}

// NewPlayerRepository creates a PlayerRepository over the pool.
func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

// PlayerRecord is the flat persisted form of a player. The engine works
// on model.Player; the record is the storage boundary shape.
type PlayerRecord struct {
	PlayerID   string
	Name       string
	ClassID    string
	Level      int32
	Experience int64

	CurrentHP      int32
	MaxHP          int32
	CurrentMana    int32
	MaxMana        int32
	CurrentStamina int32
	MaxStamina     int32

	Stats model.BaseStats

	Equipment []string
	Passives  []string

	GameState    model.GameState
	StateContext string
}

// LoadByID loads a player record by id.
// Returns nil, nil if the player does not exist.
func (r *PlayerRepository) LoadByID(ctx context.Context, playerID string) (*PlayerRecord, error) {
	var rec PlayerRecord
	var gameState int32
	err := r.pool.QueryRow(ctx, `
		SELECT player_id, name, class_id, level, experience,
		       current_hp, max_hp, current_mana, max_mana,
		       current_stamina, max_stamina,
		       strength, intellect, agility, vitality, wisdom, charisma,
		       equipment, passives, game_state, state_context
		FROM players
		WHERE player_id = $1
	`, playerID).Scan(
		&rec.PlayerID, &rec.Name, &rec.ClassID, &rec.Level, &rec.Experience,
		&rec.CurrentHP, &rec.MaxHP, &rec.CurrentMana, &rec.MaxMana,
		&rec.CurrentStamina, &rec.MaxStamina,
		&rec.Stats.Strength, &rec.Stats.Intellect, &rec.Stats.Agility,
		&rec.Stats.Vitality, &rec.Stats.Wisdom, &rec.Stats.Charisma,
		&rec.Equipment, &rec.Passives, &gameState, &rec.StateContext,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying player %q: %w", playerID, err)
	}
	rec.GameState = model.GameState(gameState)
	return &rec, nil
}

// Save upserts a player record.
func (r *PlayerRepository) Save(ctx context.Context, rec *PlayerRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO players (
			player_id, name, class_id, level, experience,
			current_hp, max_hp, current_mana, max_mana,
			current_stamina, max_stamina,
			strength, intellect, agility, vitality, wisdom, charisma,
			equipment, passives, game_state, state_context, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11,
			$12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22
		)
		ON CONFLICT (player_id) DO UPDATE SET
			name = EXCLUDED.name,
			class_id = EXCLUDED.class_id,
			level = EXCLUDED.level,
			experience = EXCLUDED.experience,
			current_hp = EXCLUDED.current_hp,
			max_hp = EXCLUDED.max_hp,
			current_mana = EXCLUDED.current_mana,
			max_mana = EXCLUDED.max_mana,
			current_stamina = EXCLUDED.current_stamina,
			max_stamina = EXCLUDED.max_stamina,
			strength = EXCLUDED.strength,
			intellect = EXCLUDED.intellect,
			agility = EXCLUDED.agility,
			vitality = EXCLUDED.vitality,
			wisdom = EXCLUDED.wisdom,
			charisma = EXCLUDED.charisma,
			equipment = EXCLUDED.equipment,
			passives = EXCLUDED.passives,
			game_state = EXCLUDED.game_state,
			state_context = EXCLUDED.state_context,
			updated_at = EXCLUDED.updated_at
	`,
		rec.PlayerID, rec.Name, rec.ClassID, rec.Level, rec.Experience,
		rec.CurrentHP, rec.MaxHP, rec.CurrentMana, rec.MaxMana,
		rec.CurrentStamina, rec.MaxStamina,
		rec.Stats.Strength, rec.Stats.Intellect, rec.Stats.Agility,
		rec.Stats.Vitality, rec.Stats.Wisdom, rec.Stats.Charisma,
		rec.Equipment, rec.Passives, int32(rec.GameState), rec.StateContext,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving player %q: %w", rec.PlayerID, err)
	}
	return nil
}

// Delete removes a player record. Missing rows are not an error.
func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM players WHERE player_id = $1`, playerID)
	if err != nil {
		return fmt.Errorf("deleting player %q: %w", playerID, err)
	}
	return nil
}

// ToPlayer materializes an engine player record from the persisted form.
func (rec *PlayerRecord) ToPlayer() *model.Player {
	c := model.NewCombatant(rec.PlayerID, rec.Name, rec.Level,
		rec.MaxHP, rec.MaxMana, rec.MaxStamina, rec.Stats)
	c.SetCurrentHP(rec.CurrentHP)
	c.SetCurrentMana(rec.CurrentMana)
	c.SetCurrentStamina(rec.CurrentStamina)
	c.SetEquipment(rec.Equipment)
	c.SetPassives(rec.Passives)

	p := model.NewPlayer(c, rec.ClassID)
	p.SetExperience(rec.Experience)
	return p
}

// RecordFromPlayer snapshots an engine player into the persisted form.
// Combat-transient state (effects, combo, enemy reference) is not
// persisted: combat does not survive a restart.
func RecordFromPlayer(p *model.Player, state model.GameState, stateContext string) *PlayerRecord {
	return &PlayerRecord{
		PlayerID:   p.ID(),
		Name:       p.Name(),
		ClassID:    p.ClassID(),
		Level:      p.Level(),
		Experience: p.Experience(),

		// Base maximums only: aggregated equipment bonuses are recomputed
		// on load, persisting them would double-apply.
		CurrentHP:      p.CurrentHP(),
		MaxHP:          p.BaseMaxHP(),
		CurrentMana:    p.CurrentMana(),
		MaxMana:        p.BaseMaxMana(),
		CurrentStamina: p.CurrentStamina(),
		MaxStamina:     p.BaseMaxStamina(),

		Stats: p.BaseStats(),

		Equipment: p.Equipment(),
		Passives:  p.Passives(),

		GameState:    state,
		StateContext: stateContext,
	}
}
