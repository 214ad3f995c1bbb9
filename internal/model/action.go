package model

// ActionType enumerates every resolvable combat action.
type ActionType int32

const (
	ActionPhysicalAttack ActionType = iota
	ActionMagicalAttack
	ActionChargeAttack
	ActionPreciseAttack
	ActionHeavyAttack
	ActionBlock
	ActionDodge
	ActionCounter
	ActionMeditate
	ActionObserve
	ActionUseItem
	ActionSkill
	ActionFlee
	ActionTame
	ActionWait
)

// String returns a human-readable action name.
func (a ActionType) String() string {
	switch a {
	case ActionPhysicalAttack:
		return "PHYSICAL_ATTACK"
	case ActionMagicalAttack:
		return "MAGICAL_ATTACK"
	case ActionChargeAttack:
		return "CHARGE_ATTACK"
	case ActionPreciseAttack:
		return "PRECISE_ATTACK"
	case ActionHeavyAttack:
		return "HEAVY_ATTACK"
	case ActionBlock:
		return "BLOCK"
	case ActionDodge:
		return "DODGE"
	case ActionCounter:
		return "COUNTER"
	case ActionMeditate:
		return "MEDITATE"
	case ActionObserve:
		return "OBSERVE"
	case ActionUseItem:
		return "USE_ITEM"
	case ActionSkill:
		return "SKILL"
	case ActionFlee:
		return "FLEE"
	case ActionTame:
		return "TAME"
	case ActionWait:
		return "WAIT"
	default:
		return "UNKNOWN"
	}
}

// IsOffensive reports whether the action runs the damage pipeline.
func (a ActionType) IsOffensive() bool {
	switch a {
	case ActionPhysicalAttack, ActionMagicalAttack, ActionChargeAttack,
		ActionPreciseAttack, ActionHeavyAttack, ActionSkill:
		return true
	default:
		return false
	}
}

// IsReaction reports whether the action declares a defensive reaction
// for the round instead of dealing damage.
func (a ActionType) IsReaction() bool {
	return a == ActionBlock || a == ActionDodge || a == ActionCounter
}

// CombatAction is one requested action. ItemID/SkillID are set only for
// ActionUseItem/ActionSkill respectively.
type CombatAction struct {
	Type    ActionType
	ItemID  string
	SkillID string
}

// ReactionType is the defensive stance declared for one round.
type ReactionType int32

const (
	ReactionNone ReactionType = iota
	ReactionBlock
	ReactionDodge
	ReactionCounter
)

// String returns a human-readable reaction name.
func (r ReactionType) String() string {
	switch r {
	case ReactionNone:
		return "NONE"
	case ReactionBlock:
		return "BLOCK"
	case ReactionDodge:
		return "DODGE"
	case ReactionCounter:
		return "COUNTER"
	default:
		return "UNKNOWN"
	}
}

// ActionProfile parameterizes the single resolution pipeline.
// Every attack variant is this struct with different numbers; the
// resolver has exactly one code path for all of them.
type ActionProfile struct {
	Power       float64 // multiplier on the scaling stat
	HitMod      float64 // added to base hit chance before clamping
	CritMod     float64 // added to crit chance
	ManaCost    int32
	StaminaCost int32
	DamageType  DamageType

	// Optional on-hit status infliction.
	EffectChance    float64
	InflictKind     EffectKind
	InflictTurns    int32
	InflictRatio    float64 // intensity as a fraction of final damage
	InflictMinValue int32   // intensity floor
}

// HasInfliction reports whether the profile carries an on-hit effect roll.
func (p ActionProfile) HasInfliction() bool {
	return p.EffectChance > 0
}

// baseProfiles holds the built-in attack variant parameterizations.
// Charge/Precise/Heavy differ from the plain attack only in these numbers.
var baseProfiles = map[ActionType]ActionProfile{
	ActionPhysicalAttack: {
		Power:      1.0,
		DamageType: DamagePhysical,
	},
	ActionMagicalAttack: {
		Power:      1.0,
		ManaCost:   5,
		DamageType: DamageMagical,
	},
	ActionChargeAttack: {
		Power:       1.4,
		HitMod:      -0.10,
		StaminaCost: 15,
		DamageType:  DamagePhysical,
	},
	ActionPreciseAttack: {
		Power:       0.8,
		HitMod:      0.15,
		CritMod:     0.15,
		StaminaCost: 10,
		DamageType:  DamagePhysical,
	},
	ActionHeavyAttack: {
		Power:       1.8,
		HitMod:      -0.20,
		StaminaCost: 25,
		DamageType:  DamagePhysical,
	},
}

// BaseProfile returns the built-in profile for an attack variant.
// Skill actions resolve their profile through the content catalog instead.
func BaseProfile(a ActionType) (ActionProfile, bool) {
	p, ok := baseProfiles[a]
	return p, ok
}
