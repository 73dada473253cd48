package models

import "time"

// TimeSlot is one bookable unit of a barber's calendar. At most one
// non-cancelled appointment may hold a slot; IsBooked must be true iff
// such an appointment exists.
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"uniqueIndex:idx_slot_identity" json:"barber_id"`
	Date     string `gorm:"size:10;uniqueIndex:idx_slot_identity" json:"date"` // YYYY-MM-DD
	Time     string `gorm:"size:5;uniqueIndex:idx_slot_identity" json:"time"`  // HH:mm

	IsBooked      bool  `gorm:"default:false" json:"is_booked"`
	AppointmentID *uint `json:"appointment_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
