package gallery

import (
	"context"
	"log"
)

// Source is one tier of the gallery resolution chain. Fetch returns the
// images matching the category filter ("" or "all" means no filter).
type Source interface {
	Name() string
	Fetch(ctx context.Context, category string) ([]Image, error)
}

// Resolve walks the sources in order and stops at the first tier that
// returns a non-empty result. A tier that errors or comes back empty is
// demoted to the next; only total exhaustion reports failure, and even
// then no error escapes as a panic to the caller's caller.
func Resolve(ctx context.Context, category string, sources ...Source) ([]Image, bool) {
	for _, src := range sources {
		images, err := src.Fetch(ctx, category)
		if err != nil {
			log.Printf("gallery: source %s failed: %v", src.Name(), err)
			continue
		}
		if len(images) > 0 {
			return images, true
		}
	}

	return []Image{}, false
}
