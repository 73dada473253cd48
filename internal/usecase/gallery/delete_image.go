package gallery

import (
	"context"
	"log"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/gallery"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/identity"
)

type DeleteImage struct {
	repo  domain.Repository
	store domain.ObjectStore
}

func NewDeleteImage(repo domain.Repository, store domain.ObjectStore) *DeleteImage {
	return &DeleteImage{repo: repo, store: store}
}

// Execute removes the storage object first, then the metadata row.
// Partial failure is logged, not compensated.
func (uc *DeleteImage) Execute(
	ctx context.Context,
	actor identity.Actor,
	imageID uint,
) error {

	if !actor.IsAdmin() {
		return httperr.ErrBusiness("forbidden")
	}

	img, err := uc.repo.GetImage(ctx, imageID)
	if err != nil {
		return httperr.ErrBusiness("image_not_found")
	}

	if key := uc.store.KeyFromURL(img.URL); key != "" {
		if err := uc.store.Delete(ctx, key); err != nil {
			log.Printf("gallery object delete failed for %s: %v", key, err)
		}
	}

	return uc.repo.DeleteImage(ctx, imageID)
}
