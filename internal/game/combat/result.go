package combat

import "github.com/sintov/rpgbot/internal/model"

// CombatResult is the immutable outcome of one resolved action.
// The presentation layer renders it; the engine reads the defeat and
// flee signals to drive state transitions.
type CombatResult struct {
	Action model.ActionType

	Hit      bool
	Critical bool
	Dodged   bool
	Blocked  bool
	Skipped  bool // actor was stunned/frozen and lost the action

	Damage     int32
	DamageType model.DamageType

	// CounterDamage is the follow-up reflection resolved when the target
	// declared Counter and took damage.
	CounterDamage int32

	EffectsInflicted []model.StatusEffect

	ComboAfter int32

	// Resource and pool deltas from non-offensive actions.
	HPRestored      int32
	ManaRestored    int32
	StaminaRestored int32

	ActorDefeated  bool
	TargetDefeated bool
	Fled           bool

	// RevealedInfo is set only by Observe.
	RevealedInfo *TargetIntel
}

// TargetIntel is what Observe reveals about the target.
type TargetIntel struct {
	Name        string
	Level       int32
	HPFraction  float64
	Immunities  []model.DamageType
	Weaknesses  []model.DamageType
	Resistances []model.DamageType
}
