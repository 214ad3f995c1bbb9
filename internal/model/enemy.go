package model

// BehaviorProfile selects the weighted action table an enemy uses.
type BehaviorProfile int32

const (
	BehaviorPassive BehaviorProfile = iota
	BehaviorDefensive
	BehaviorBalanced
	BehaviorAggressive
	BehaviorBerserker
	BehaviorIntelligent
	BehaviorCoward
	BehaviorSupportive
)

// String returns a human-readable profile name.
func (b BehaviorProfile) String() string {
	switch b {
	case BehaviorPassive:
		return "PASSIVE"
	case BehaviorDefensive:
		return "DEFENSIVE"
	case BehaviorBalanced:
		return "BALANCED"
	case BehaviorAggressive:
		return "AGGRESSIVE"
	case BehaviorBerserker:
		return "BERSERKER"
	case BehaviorIntelligent:
		return "INTELLIGENT"
	case BehaviorCoward:
		return "COWARD"
	case BehaviorSupportive:
		return "SUPPORTIVE"
	default:
		return "UNKNOWN"
	}
}

// Enemy is a combat-ready enemy snapshot produced by the enemy factory.
// The snapshot is owned by one session; it is never shared between players.
type Enemy struct {
	*Combatant

	TemplateID string
	Behavior   BehaviorProfile

	// Victory rewards, rolled by the combat layer on defeat.
	BaseXP int64
	Drops  []DropEntry

	// Tameable enemies can be targeted by ActionTame.
	Tameable bool
}

// DropEntry is one row of an enemy drop table.
type DropEntry struct {
	ItemID string
	Chance float64 // 0.0 - 1.0, before server rate multiplier
	Min    int32
	Max    int32
}
