package loyalty

// ===============================
// Tiers
// ===============================

type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

const (
	SilverThreshold = 500
	GoldThreshold   = 1000
)

// TierFor derives the tier from lifetime points. The stored tier column
// is a denormalization of this function and is recomputed on every
// award; business logic must never trust a stale stored value.
func TierFor(lifetimePoints int) Tier {
	switch {
	case lifetimePoints >= GoldThreshold:
		return TierGold
	case lifetimePoints >= SilverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// PointsFor converts a service price into award points: 10 points per
// whole $10 spent, fractional remainders dropped.
func PointsFor(servicePrice float64) int {
	if servicePrice <= 0 {
		return 0
	}
	return int(servicePrice/10) * 10
}

// PointsToNextTier returns the lifetime points still needed to reach
// the next tier, clamped at zero. Gold is terminal.
func PointsToNextTier(lifetimePoints int) int {
	var need int
	switch TierFor(lifetimePoints) {
	case TierBronze:
		need = SilverThreshold - lifetimePoints
	case TierSilver:
		need = GoldThreshold - lifetimePoints
	default:
		return 0
	}

	if need < 0 {
		return 0
	}
	return need
}

// ===============================
// Benefits
// ===============================

type Benefits struct {
	Name            string   `json:"name"`
	DiscountPercent int      `json:"discount_percent"`
	Benefits        []string `json:"benefits"`
}

// TierBenefits is a static lookup with no side effects.
func TierBenefits(tier Tier) Benefits {
	switch tier {
	case TierSilver:
		return Benefits{
			Name:            "Silver",
			DiscountPercent: 5,
			Benefits: []string{
				"5% discount on all services",
				"Priority booking",
				"Monthly special offers",
			},
		}
	case TierGold:
		return Benefits{
			Name:            "Gold",
			DiscountPercent: 10,
			Benefits: []string{
				"10% discount on all services",
				"VIP priority booking",
				"Exclusive events",
				"Free upgrades",
			},
		}
	default:
		return Benefits{
			Name:            "Bronze",
			DiscountPercent: 0,
			Benefits: []string{
				"Earn points on every visit",
				"Birthday month special",
			},
		}
	}
}
