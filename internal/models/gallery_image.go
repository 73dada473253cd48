package models

import "time"

// GalleryImage is the metadata row behind a stored media object. Entries
// synthesized from a raw bucket listing normalize to the same JSON shape
// through domain/gallery.Image.
type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	URL         string `gorm:"size:500;not null" json:"url"`
	Title       string `gorm:"size:100" json:"title"`
	Category    string `gorm:"size:50;index" json:"category"`
	BarberID    *uint  `json:"barber_id"`
	IsFeatured  bool   `gorm:"default:false" json:"is_featured"`
	ContentType string `gorm:"size:100" json:"content_type"`

	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
