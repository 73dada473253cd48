package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Exactly one of UserID or the Guest* fields is populated;
	// domain/booking.Customer enforces the variant.
	UserID  *uint    `json:"user_id"`
	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"profile,omitempty"`

	GuestName  string `gorm:"size:100" json:"guest_name,omitempty"`
	GuestEmail string `gorm:"size:100" json:"guest_email,omitempty"`
	GuestPhone string `gorm:"size:20" json:"guest_phone,omitempty"`

	BarberID uint   `json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date     string `gorm:"size:10" json:"date"`      // YYYY-MM-DD
	TimeSlot string `gorm:"size:5" json:"time_slot"` // HH:mm

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
