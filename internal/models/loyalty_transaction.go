package models

import "time"

// LoyaltyTransaction is an append-only ledger entry. Rows are never
// mutated or deleted; a user's balance equals the sum of their deltas.
type LoyaltyTransaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID        uint  `gorm:"index;not null" json:"user_id"`
	AppointmentID *uint `json:"appointment_id"`

	Points      int    `json:"points"` // signed delta
	Type        string `gorm:"size:10;not null" json:"type"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
