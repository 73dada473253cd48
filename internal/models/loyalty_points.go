package models

import "time"

// LoyaltyPoints holds one row per user. LifetimePoints never decreases;
// Tier is recomputed from LifetimePoints on every mutation and must not
// be trusted when stale.
type LoyaltyPoints struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	PointsBalance  int    `json:"points_balance"`
	LifetimePoints int    `json:"lifetime_points"`
	Tier           string `gorm:"size:10;default:'bronze'" json:"tier"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
