package gallery

import (
	"context"

	"github.com/heritagecuts/barbershop-api/internal/models"
)

// Repository is the metadata-store side of the gallery; the object
// store itself sits behind ObjectStore.
type Repository interface {
	ListImages(ctx context.Context, category string) ([]models.GalleryImage, error)

	GetImage(ctx context.Context, id uint) (*models.GalleryImage, error)

	CreateImage(ctx context.Context, img *models.GalleryImage) error

	DeleteImage(ctx context.Context, id uint) error
}
