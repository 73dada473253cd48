package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Optional link to a login profile with role = barber
	ProfileID *uint `json:"profile_id"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Specialty       string  `gorm:"size:100" json:"specialty"`
	Bio             string  `gorm:"size:500" json:"bio"`
	ExperienceYears int     `json:"experience_years"`
	AvatarURL       string  `gorm:"size:255" json:"avatar_url"`
	Active          bool    `gorm:"default:true" json:"active"`
	Rating          float64 `json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
