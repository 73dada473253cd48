package gallery

import (
	"context"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/gallery"
)

type LoadImages struct {
	sources []domain.Source
}

// NewLoadImages wires the resolution chain in fidelity order: metadata
// rows, then the raw bucket listing, then the static fixture set.
func NewLoadImages(sources ...domain.Source) *LoadImages {
	return &LoadImages{sources: sources}
}

// Execute resolves the gallery for a category filter. The boolean is
// false only when every tier came back empty or failed; the end user
// still receives a list (possibly empty), never an error screen.
func (uc *LoadImages) Execute(
	ctx context.Context,
	category string,
) ([]domain.Image, bool) {
	return domain.Resolve(ctx, category, uc.sources...)
}
