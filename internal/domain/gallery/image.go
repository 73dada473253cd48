package gallery

import "time"

// Image is the normalized shape every data source resolves to, whether
// it came from a metadata row, a raw bucket listing or the static
// fixture set.
type Image struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	BarberID    *uint     `json:"barber_id,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	ContentType string    `json:"content_type,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func Categories() []string {
	return []string{
		"all",
		"haircuts",
		"beard",
		"styling",
		"shave",
		"creative",
		"full-service",
		"premium",
	}
}
