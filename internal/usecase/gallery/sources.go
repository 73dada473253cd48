package gallery

import (
	"context"
	"sort"
	"strconv"

	"github.com/google/uuid"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/gallery"
	"github.com/heritagecuts/barbershop-api/internal/infra/cache"
	"github.com/heritagecuts/barbershop-api/internal/models"
)

const featuredCount = 4

// ======================================================
// Tier 1 — metadata store
// ======================================================

type MetadataSource struct {
	repo domain.Repository
}

func NewMetadataSource(repo domain.Repository) *MetadataSource {
	return &MetadataSource{repo: repo}
}

func (s *MetadataSource) Name() string { return "metadata" }

func (s *MetadataSource) Fetch(
	ctx context.Context,
	category string,
) ([]domain.Image, error) {

	rows, err := s.repo.ListImages(ctx, category)
	if err != nil {
		return nil, err
	}

	images := make([]domain.Image, 0, len(rows))
	for _, row := range rows {
		images = append(images, imageFromRow(row))
	}
	return images, nil
}

func imageFromRow(row models.GalleryImage) domain.Image {
	return domain.Image{
		ID:          strconv.FormatUint(uint64(row.ID), 10),
		URL:         row.URL,
		Title:       row.Title,
		Category:    row.Category,
		BarberID:    row.BarberID,
		IsFeatured:  row.IsFeatured,
		ContentType: row.ContentType,
		UploadedAt:  row.UploadedAt,
	}
}

// ======================================================
// Tier 2 — bucket listing
// ======================================================

type BucketSource struct {
	store domain.ObjectStore
	cache *cache.Listing
}

func NewBucketSource(store domain.ObjectStore, listing *cache.Listing) *BucketSource {
	return &BucketSource{store: store, cache: listing}
}

func (s *BucketSource) Name() string { return "bucket" }

const listingCacheKey = "gallery:bucket_listing"

// Fetch synthesizes gallery images straight from the object listing:
// media keys only, category from the first path segment, title from the
// filename, first four entries featured, newest first.
func (s *BucketSource) Fetch(
	ctx context.Context,
	category string,
) ([]domain.Image, error) {

	var objects []domain.Object
	if !s.cache.Get(ctx, listingCacheKey, &objects) {
		var err error
		objects, err = s.store.List(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(ctx, listingCacheKey, objects)
	}

	images := make([]domain.Image, 0, len(objects))
	for _, obj := range objects {
		if !domain.IsMediaKey(obj.Key, obj.ContentType) {
			continue
		}

		id := obj.ETag
		if id == "" {
			id = "gcs-" + uuid.NewString()
		}

		images = append(images, domain.Image{
			ID:          id,
			URL:         s.store.PublicURL(obj.Key),
			Title:       domain.TitleForKey(obj.Key),
			Category:    domain.CategoryForKey(obj.Key),
			ContentType: obj.ContentType,
			UploadedAt:  obj.CreatedAt,
		})
	}

	for i := range images {
		images[i].IsFeatured = i < featuredCount
	}

	filtered := images[:0]
	for _, img := range images {
		if domain.MatchesCategory(img, category) {
			filtered = append(filtered, img)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].UploadedAt.After(filtered[j].UploadedAt)
	})

	return filtered, nil
}
