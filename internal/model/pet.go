package model

// LoyaltyTier maps the pet bond scalar (0..1000) to discrete tiers.
type LoyaltyTier int32

const (
	LoyaltyHostile LoyaltyTier = iota
	LoyaltyWary
	LoyaltyNeutral
	LoyaltyFriendly
	LoyaltyLoyal
	LoyaltyDevoted
)

// String returns a human-readable tier name.
func (t LoyaltyTier) String() string {
	switch t {
	case LoyaltyHostile:
		return "HOSTILE"
	case LoyaltyWary:
		return "WARY"
	case LoyaltyNeutral:
		return "NEUTRAL"
	case LoyaltyFriendly:
		return "FRIENDLY"
	case LoyaltyLoyal:
		return "LOYAL"
	case LoyaltyDevoted:
		return "DEVOTED"
	default:
		return "UNKNOWN"
	}
}

// TierForLoyalty maps a bond scalar to its tier.
func TierForLoyalty(loyalty int32) LoyaltyTier {
	switch {
	case loyalty < 100:
		return LoyaltyHostile
	case loyalty < 300:
		return LoyaltyWary
	case loyalty < 500:
		return LoyaltyNeutral
	case loyalty < 700:
		return LoyaltyFriendly
	case loyalty < 900:
		return LoyaltyLoyal
	default:
		return LoyaltyDevoted
	}
}

// LoyaltyBonus returns the signed multiplier a pet's bond applies to its
// effective attack and defenses, after additive bonuses.
// Hostile pets fight worse than their stats, devoted pets better.
func LoyaltyBonus(loyalty int32) float64 {
	switch TierForLoyalty(loyalty) {
	case LoyaltyHostile:
		return -0.20
	case LoyaltyWary:
		return -0.10
	case LoyaltyNeutral:
		return 0
	case LoyaltyFriendly:
		return 0.05
	case LoyaltyLoyal:
		return 0.10
	case LoyaltyDevoted:
		return 0.20
	default:
		return 0
	}
}
