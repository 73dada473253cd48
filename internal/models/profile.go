package models

import "time"

type Profile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	FullName        string `gorm:"size:100;not null" json:"full_name"`
	Phone           string `gorm:"size:20" json:"phone"`
	PreferredStyles string `gorm:"size:255" json:"preferred_styles"`

	Role string `gorm:"size:20;default:'customer'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
