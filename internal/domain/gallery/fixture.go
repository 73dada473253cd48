package gallery

import (
	"context"
	"time"
)

// fixtureEntry keeps the placeholder table compact.
type fixtureEntry struct {
	id       string
	url      string
	title    string
	category string
	featured bool
}

var fixtureEntries = []fixtureEntry{
	{"1", "https://images.pexels.com/photos/1319460/pexels-photo-1319460.jpeg?auto=compress&cs=tinysrgb&w=400", "Classic Scissor Cut", "haircuts", true},
	{"2", "https://images.pexels.com/photos/1212984/pexels-photo-1212984.jpeg?auto=compress&cs=tinysrgb&w=400", "Beard Grooming", "beard", false},
	{"3", "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=400", "Modern Fade", "haircuts", true},
	{"4", "https://images.pexels.com/photos/1516680/pexels-photo-1516680.jpeg?auto=compress&cs=tinysrgb&w=400", "Buzz Cut", "haircuts", false},
	{"5", "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=400", "Classic Style", "haircuts", false},
	{"6", "https://images.pexels.com/photos/1040880/pexels-photo-1040880.jpeg?auto=compress&cs=tinysrgb&w=400", "Modern Styling", "styling", true},
	{"7", "https://images.pexels.com/photos/1499327/pexels-photo-1499327.jpeg?auto=compress&cs=tinysrgb&w=400", "Full Service", "full-service", false},
	{"8", "https://images.pexels.com/photos/1484794/pexels-photo-1484794.jpeg?auto=compress&cs=tinysrgb&w=400", "Creative Cut", "creative", true},
	{"9", "https://images.pexels.com/photos/1570807/pexels-photo-1570807.jpeg?auto=compress&cs=tinysrgb&w=400", "Professional Styling", "styling", false},
	{"10", "https://images.pexels.com/photos/1805600/pexels-photo-1805600.jpeg?auto=compress&cs=tinysrgb&w=400", "Hot Towel Shave", "shave", true},
	{"11", "https://images.pexels.com/photos/2102415/pexels-photo-2102415.jpeg?auto=compress&cs=tinysrgb&w=400", "Signature Cut", "haircuts", false},
	{"12", "https://images.pexels.com/photos/1758144/pexels-photo-1758144.jpeg?auto=compress&cs=tinysrgb&w=400", "Premium Service", "premium", true},
}

// FixtureSource is the last tier of the resolution chain: a fixed set
// of placeholder entries so the gallery never renders an error screen.
type FixtureSource struct{}

func (FixtureSource) Name() string { return "fixture" }

func (FixtureSource) Fetch(_ context.Context, category string) ([]Image, error) {
	now := time.Now()

	images := make([]Image, 0, len(fixtureEntries))
	for _, e := range fixtureEntries {
		img := Image{
			ID:          e.id,
			URL:         e.url,
			Title:       e.title,
			Category:    e.category,
			IsFeatured:  e.featured,
			ContentType: "image/jpeg",
			UploadedAt:  now,
		}
		if MatchesCategory(img, category) {
			images = append(images, img)
		}
	}

	return images, nil
}
