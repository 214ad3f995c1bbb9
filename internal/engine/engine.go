// Package engine is the combat engine façade: it owns player sessions,
// gates actions through the state machine and orchestrates one round of
// combat per submitted action.
package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/sintov/rpgbot/internal/ai"
	"github.com/sintov/rpgbot/internal/config"
	"github.com/sintov/rpgbot/internal/data"
	"github.com/sintov/rpgbot/internal/game/combat"
	"github.com/sintov/rpgbot/internal/game/effects"
	"github.com/sintov/rpgbot/internal/game/stats"
	"github.com/sintov/rpgbot/internal/model"
)

// TamingOracle decides tame attempts. The engine only consumes the
// boolean outcome; the probability model lives with the collaborator.
// Implementations must not block: any slow work happens before the
// action is submitted, the engine calls this inside its critical
// section.
type TamingOracle interface {
	TameOutcome(player *model.Player, enemy *model.Enemy) bool
}

// EndReason says why a combat ended.
type EndReason int32

const (
	EndVictory EndReason = iota
	EndDefeat
	EndFled
	EndEnemyFled
	EndTamed
	EndDisconnected
)

// String returns a human-readable reason name.
func (r EndReason) String() string {
	switch r {
	case EndVictory:
		return "VICTORY"
	case EndDefeat:
		return "DEFEAT"
	case EndFled:
		return "FLED"
	case EndEnemyFled:
		return "ENEMY_FLED"
	case EndTamed:
		return "TAMED"
	case EndDisconnected:
		return "DISCONNECTED"
	default:
		return "UNKNOWN"
	}
}

// RoundResult is the outcome of one full round: the player's resolved
// action, the enemy's response (nil if combat ended first) and the
// status effect ticks both sides took.
type RoundResult struct {
	Player *combat.CombatResult
	Enemy  *combat.CombatResult

	// Pet is the active pet's assist attack, set when the player opened
	// the round offensively with a pet fielded.
	Pet *combat.CombatResult

	PlayerTicks []effects.EffectTick
	EnemyTicks  []effects.EffectTick

	// Tamed is set when a tame attempt succeeded and ended the combat.
	Tamed bool

	// Reward is set when the enemy was defeated this round.
	Reward *combat.VictoryReward

	// Ended / EndedBy report whether and why combat finished this round.
	Ended   bool
	EndedBy EndReason

	StateAfter model.GameState
}

// Engine routes actions through per-player sessions. Sessions are
// mutually independent and resolve fully in parallel; within one
// session the mutex serializes rounds.
type Engine struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	cfg      config.Bot
	agg      *stats.Aggregator
	fx       *effects.Engine
	resolver *combat.Resolver
	selector *ai.Selector
	oracle   TamingOracle
}

// New creates an engine over the given content catalog.
// A nil dice uses the production randomness source; a nil oracle makes
// every tame attempt fail.
func New(cfg config.Bot, catalog *data.Catalog, dice combat.Dice, oracle TamingOracle) *Engine {
	return &Engine{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		agg:      stats.NewAggregator(catalog, cfg.Combat.DefaultCritDamage),
		fx:       effects.NewEngine(cfg.Combat.DeathFloor),
		resolver: combat.NewResolver(cfg.Combat, catalog, dice),
		selector: ai.NewSelector(dice),
		oracle:   oracle,
	}
}

// RegisterPlayer creates (or returns) the session for a player record.
func (e *Engine) RegisterPlayer(p *model.Player) *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := e.sessions[p.ID()]; ok {
		return s
	}
	s := newSession(p)
	e.sessions[p.ID()] = s
	return s
}

// RemovePlayer tears down a session (disconnect). Any active combat
// ends deterministically before the session is dropped.
func (e *Engine) RemovePlayer(playerID string) {
	e.mu.Lock()
	s, ok := e.sessions[playerID]
	delete(e.sessions, playerID)
	e.mu.Unlock()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player.CurrentEnemy() != nil {
		e.endCombatLocked(s, EndDisconnected)
	}
}

// Sessions returns a snapshot of all live sessions (autosave, metrics).
func (e *Engine) Sessions() []*Session {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*Session, 0, len(e.sessions))
	for _, s := range e.sessions {
		out = append(out, s)
	}
	return out
}

// session looks up a player session.
func (e *Engine) session(playerID string) (*Session, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.sessions[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoActiveSession, playerID)
	}
	return s, nil
}

// CurrentState returns the player's game state after reconciliation.
// Presentation uses it to decide which menus are valid.
func (e *Engine) CurrentState(playerID string) (model.GameState, error) {
	s, err := e.session(playerID)
	if err != nil {
		return model.StateIdle, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncState()
	return s.state.CurrentState, nil
}

// CheckCommand reports whether a chat command is legal for the player
// right now. Menu collaborators call this before acting.
func (e *Engine) CheckCommand(playerID, command string) error {
	s, err := e.session(playerID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncState()
	if !IsActionAllowed(s.state.CurrentState, command) {
		return fmt.Errorf("%w: %q in %s", ErrActionNotAllowed, command, s.state.CurrentState)
	}
	return nil
}

// TransitionTo moves the player to a menu state after a guard check.
// Combat states are entered through StartCombat only.
func (e *Engine) TransitionTo(playerID string, state model.GameState, context string) error {
	if state.IsCombat() {
		return fmt.Errorf("%w: combat states are entered via StartCombat", ErrActionNotAllowed)
	}
	s, err := e.session(playerID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncState()
	if s.state.CurrentState.IsCombat() {
		return fmt.Errorf("%w: cannot leave combat by menu transition", ErrActionNotAllowed)
	}
	s.transitionTo(state, context)
	return nil
}

// ForceState is the external escape hatch: it bypasses guards and
// stamps the reason into the state context.
func (e *Engine) ForceState(playerID string, state model.GameState, reason string) error {
	s, err := e.session(playerID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forceState(state, reason)
	return nil
}

// StartCombat begins an encounter with the given enemy snapshot.
// From InDungeon the player enters InDungeonCombat, otherwise InCombat.
func (e *Engine) StartCombat(playerID string, enemy *model.Enemy) (*Session, error) {
	s, err := e.session(playerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncState()

	if s.state.CurrentState.IsCombat() {
		return nil, fmt.Errorf("%w: already in combat", ErrActionNotAllowed)
	}

	target := model.StateInCombat
	if s.state.CurrentState == model.StateInDungeon {
		target = model.StateInDungeonCombat
	}

	s.player.SetCurrentEnemy(enemy)
	s.round = 0
	s.transitionTo(target, "fighting "+enemy.Name())

	slog.Info("combat started",
		"player", playerID,
		"enemy", enemy.TemplateID,
		"enemy_level", enemy.Level())

	return s, nil
}

// EndCombat ends the player's combat for the given reason. Called by
// the engine itself on terminal rounds and by collaborators on external
// teardown (victory acknowledgment, disconnect).
func (e *Engine) EndCombat(playerID string, reason EndReason) error {
	s, err := e.session(playerID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncState()
	if !s.state.CurrentState.IsCombat() {
		return ErrNotInCombat
	}
	e.endCombatLocked(s, reason)
	return nil
}

// endCombatLocked commits combat teardown: clears the enemy reference
// and transient round state, applies the soft-defeat revive, and
// transitions out of the combat state. Caller must hold s.mu.
func (e *Engine) endCombatLocked(s *Session, reason EndReason) {
	p := s.player
	enemy := p.CurrentEnemy()

	p.SetCurrentEnemy(nil)
	p.ClearEffects()
	p.ClearReaction()
	p.ResetCombo()
	if enemy != nil {
		enemy.ClearEffects()
		enemy.ClearReaction()
		enemy.ResetCombo()
	}

	if reason == EndTamed && enemy != nil {
		// The tamed enemy becomes the active pet, starting at a neutral
		// bond. The pet-progression collaborator moves loyalty from there.
		enemy.SetLoyalty(300)
		p.SetActivePet(enemy.Combatant)
	}

	if reason == EndDefeat {
		// Soft defeat: no death screen, the player wakes up at a
		// fraction of max HP.
		revived := int32(float64(p.MaxHP()) * e.cfg.Combat.ReviveFraction)
		if revived <= e.cfg.Combat.DeathFloor {
			revived = e.cfg.Combat.DeathFloor + 1
		}
		p.SetCurrentHP(revived)
	}

	var after model.GameState
	switch {
	case reason == EndDefeat || reason == EndTamed || reason == EndDisconnected:
		after = model.StateIdle
	case s.state.CurrentState == model.StateInDungeonCombat:
		after = model.StateInDungeon
	default:
		after = model.StateIdle
	}

	s.transitionTo(after, "combat ended: "+reason.String())

	slog.Info("combat ended",
		"player", p.ID(),
		"reason", reason.String(),
		"rounds", s.round)
}

// SubmitAction is the single entry point for player combat actions.
// It resolves the player's action (with the pet's assist behind an
// offensive opener), resolves the enemy's response if combat continues,
// ticks status effects for both sides at round end, and transitions
// state on victory, defeat, flee or tame. Within the round the player's
// action always resolves before the enemy's.
func (e *Engine) SubmitAction(playerID string, action model.CombatAction) (*RoundResult, error) {
	s, err := e.session(playerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncState()

	p := s.player
	enemy := p.CurrentEnemy()
	if !s.state.CurrentState.IsCombat() || enemy == nil {
		return nil, ErrNotInCombat
	}

	cmd := commandForAction(action.Type)
	if cmd == "" {
		return nil, fmt.Errorf("%w: %v", combat.ErrUnknownAction, action.Type)
	}
	if !IsActionAllowed(s.state.CurrentState, cmd) {
		return nil, fmt.Errorf("%w: %q in %s", ErrActionNotAllowed, cmd, s.state.CurrentState)
	}
	if action.Type == model.ActionTame && !enemy.Tameable {
		return nil, fmt.Errorf("%w: %s cannot be tamed", ErrActionNotAllowed, enemy.Name())
	}

	s.round++
	out := &RoundResult{}

	// Effective stats are recomputed every round: equipment and
	// passives may have changed between rounds. Pool maximums follow the
	// aggregation, so a max-HP bonus is live for clamping and restores.
	playerSide := combat.Side{C: p.Combatant, Eff: e.agg.Effective(p.Combatant, p.ClassID())}
	enemySide := combat.Side{C: enemy.Combatant, Eff: e.agg.Effective(enemy.Combatant, "")}
	p.SyncMaxPools(playerSide.Eff.MaxHP, playerSide.Eff.MaxMana, playerSide.Eff.MaxStamina)
	enemy.SyncMaxPools(enemySide.Eff.MaxHP, enemySide.Eff.MaxMana, enemySide.Eff.MaxStamina)

	// Round start: regeneration ticks for both sides.
	startP := e.fx.Tick(p.Combatant, effects.RoundStart)
	startE := e.fx.Tick(enemy.Combatant, effects.RoundStart)
	out.PlayerTicks = append(out.PlayerTicks, startP.Ticks...)
	out.EnemyTicks = append(out.EnemyTicks, startE.Ticks...)

	// The stance declared last round expires as the player acts again.
	p.ClearReaction()

	switch action.Type {
	case model.ActionFlee:
		out.Player = e.resolver.ResolveFlee(playerSide, enemySide)
		if out.Player.Fled {
			e.endCombatLocked(s, EndFled)
			out.Ended, out.EndedBy = true, EndFled
			out.StateAfter = s.state.CurrentState
			return out, nil
		}
		// Failed flee: the enemy gets its free response below.

	case model.ActionTame:
		tamed := e.oracle != nil && e.oracle.TameOutcome(p, enemy)
		out.Player = &combat.CombatResult{Action: model.ActionTame, ComboAfter: p.ComboCount()}
		if tamed {
			out.Tamed = true
			e.endCombatLocked(s, EndTamed)
			out.Ended, out.EndedBy = true, EndTamed
			out.StateAfter = s.state.CurrentState
			return out, nil
		}
		// Failed tame angers the target: free response below.

	default:
		res, err := e.resolver.Resolve(playerSide, enemySide, action)
		if err != nil {
			return nil, err
		}
		out.Player = res
	}

	if out.Player.TargetDefeated {
		reward := e.resolver.RewardVictory(p, enemy, e.cfg.Rates.XPMultiplier, e.cfg.Rates.DropMultiplier)
		out.Reward = &reward
		e.endCombatLocked(s, EndVictory)
		out.Ended, out.EndedBy = true, EndVictory
		out.StateAfter = s.state.CurrentState
		return out, nil
	}

	// Player may already be down from a counter reflection.
	if out.Player.ActorDefeated {
		e.endCombatLocked(s, EndDefeat)
		out.Ended, out.EndedBy = true, EndDefeat
		out.StateAfter = s.state.CurrentState
		return out, nil
	}

	// A fielded pet joins in behind an offensive opener.
	if pet := p.ActivePet(); pet != nil && action.Type.IsOffensive() && !pet.IsDefeated(e.cfg.Combat.DeathFloor) {
		petSide := combat.Side{C: pet, Eff: e.agg.EffectivePet(pet)}
		petRes, err := e.resolver.Resolve(petSide, enemySide, model.CombatAction{Type: model.ActionPhysicalAttack})
		if err != nil {
			slog.Error("pet assist failed to resolve",
				"player", playerID,
				"error", err)
		} else {
			out.Pet = petRes
			if petRes.TargetDefeated {
				reward := e.resolver.RewardVictory(p, enemy, e.cfg.Rates.XPMultiplier, e.cfg.Rates.DropMultiplier)
				out.Reward = &reward
				e.endCombatLocked(s, EndVictory)
				out.Ended, out.EndedBy = true, EndVictory
				out.StateAfter = s.state.CurrentState
				return out, nil
			}
		}
	}

	enemy.ClearReaction()
	enemyAction := e.selector.ChooseAction(enemy, p.Combatant)

	if enemyAction.Type == model.ActionFlee {
		fleeRes := e.resolver.ResolveFlee(enemySide, playerSide)
		out.Enemy = fleeRes
		if fleeRes.Fled {
			e.endCombatLocked(s, EndEnemyFled)
			out.Ended, out.EndedBy = true, EndEnemyFled
			out.StateAfter = s.state.CurrentState
			return out, nil
		}
	} else {
		res, err := e.resolver.Resolve(enemySide, playerSide, enemyAction)
		if err != nil {
			// Selector only picks affordable actions; on a mismatch
			// the enemy just hesitates this round.
			slog.Error("enemy action failed to resolve",
				"enemy", enemy.TemplateID,
				"action", enemyAction.Type.String(),
				"error", err)
			res = &combat.CombatResult{Action: model.ActionWait}
		}
		out.Enemy = res
	}

	// Round-end effect ticks for both sides. Ticking only after the
	// enemy's response keeps a control effect inflicted this round live
	// for that response: a one-turn freeze skips the enemy's action and
	// expires here, not before the enemy acts.
	endE := e.fx.Tick(enemy.Combatant, effects.RoundEnd)
	out.EnemyTicks = append(out.EnemyTicks, endE.Ticks...)
	endP := e.fx.Tick(p.Combatant, effects.RoundEnd)
	out.PlayerTicks = append(out.PlayerTicks, endP.Ticks...)

	if endE.Defeated || enemy.IsDefeated(e.cfg.Combat.DeathFloor) {
		reward := e.resolver.RewardVictory(p, enemy, e.cfg.Rates.XPMultiplier, e.cfg.Rates.DropMultiplier)
		out.Reward = &reward
		e.endCombatLocked(s, EndVictory)
		out.Ended, out.EndedBy = true, EndVictory
		out.StateAfter = s.state.CurrentState
		return out, nil
	}

	playerDown := endP.Defeated ||
		(out.Enemy != nil && out.Enemy.TargetDefeated) ||
		p.IsDefeated(e.cfg.Combat.DeathFloor)
	if playerDown {
		e.endCombatLocked(s, EndDefeat)
		out.Ended, out.EndedBy = true, EndDefeat
		out.StateAfter = s.state.CurrentState
		return out, nil
	}

	out.StateAfter = s.state.CurrentState
	return out, nil
}
