package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/sintov/rpgbot/internal/model"
)

// Session is one player's live game session. Action processing within a
// session is strictly sequential: the mutex guarantees at most one
// in-flight resolution per player, because resolution mutates pools,
// combo and effects non-atomically across the pipeline.
type Session struct {
	mu sync.Mutex

	player *model.Player
	state  model.PlayerStateData

	round int32 // rounds resolved in the current combat
}

// newSession creates an idle session for the player.
func newSession(p *model.Player) *Session {
	return &Session{
		player: p,
		state: model.PlayerStateData{
			CurrentState: model.StateIdle,
			EnteredAt:    time.Now(),
		},
	}
}

// Player returns the session's player record.
func (s *Session) Player() *model.Player {
	return s.player
}

// State returns the current state data.
func (s *Session) State() model.PlayerStateData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// transitionTo performs an unconditional state transition.
// Caller must hold s.mu.
func (s *Session) transitionTo(state model.GameState, context string) {
	if s.state.CurrentState == state {
		return
	}
	slog.Debug("state transition",
		"player", s.player.ID(),
		"from", s.state.CurrentState.String(),
		"to", state.String(),
		"context", context)
	s.state = model.PlayerStateData{
		CurrentState: state,
		EnteredAt:    time.Now(),
		Context:      context,
	}
}

// forceState is the escape hatch for externally-driven corrections
// (successful tame, admin reset). Caller must hold s.mu.
func (s *Session) forceState(state model.GameState, reason string) {
	slog.Info("state forced",
		"player", s.player.ID(),
		"from", s.state.CurrentState.String(),
		"to", state.String(),
		"reason", reason)
	s.state = model.PlayerStateData{
		CurrentState: state,
		EnteredAt:    time.Now(),
		Context:      reason,
	}
}

// syncState reconciles CurrentState against the enemy reference, which
// legacy code paths outside the engine still mutate directly. The
// reference wins: a combat state without an enemy collapses to Idle (or
// InDungeon), an enemy without a combat state pulls the player into
// combat. Run before processing any action so drift never decides a
// guard check. Caller must hold s.mu.
func (s *Session) syncState() {
	enemy := s.player.CurrentEnemy()
	inCombatState := s.state.CurrentState.IsCombat()

	switch {
	case inCombatState && enemy == nil:
		corrected := model.StateIdle
		if s.state.CurrentState == model.StateInDungeonCombat {
			corrected = model.StateInDungeon
		}
		slog.Warn("state drift: combat state without enemy, correcting",
			"player", s.player.ID(),
			"state", s.state.CurrentState.String(),
			"corrected", corrected.String())
		s.transitionTo(corrected, "sync: no active enemy")

	case !inCombatState && enemy != nil:
		corrected := model.StateInCombat
		if s.state.CurrentState == model.StateInDungeon {
			corrected = model.StateInDungeonCombat
		}
		slog.Warn("state drift: active enemy outside combat state, correcting",
			"player", s.player.ID(),
			"state", s.state.CurrentState.String(),
			"corrected", corrected.String())
		s.transitionTo(corrected, "sync: active enemy "+enemy.Name())
	}
}
