package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/gallery"
	"github.com/heritagecuts/barbershop-api/internal/models"
)

type GalleryGormRepository struct {
	db *gorm.DB
}

func NewGalleryGormRepository(db *gorm.DB) *GalleryGormRepository {
	return &GalleryGormRepository{db: db}
}

func (r *GalleryGormRepository) ListImages(
	ctx context.Context,
	category string,
) ([]models.GalleryImage, error) {

	q := r.db.WithContext(ctx).Order("uploaded_at DESC")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var images []models.GalleryImage
	if err := q.Find(&images).Error; err != nil {
		return nil, err
	}

	return images, nil
}

func (r *GalleryGormRepository) GetImage(
	ctx context.Context,
	id uint,
) (*models.GalleryImage, error) {

	var img models.GalleryImage
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *GalleryGormRepository) CreateImage(
	ctx context.Context,
	img *models.GalleryImage,
) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *GalleryGormRepository) DeleteImage(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.GalleryImage{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*GalleryGormRepository)(nil)
