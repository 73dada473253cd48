package gallery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/heritagecuts/barbershop-api/internal/db"
	domain "github.com/heritagecuts/barbershop-api/internal/domain/gallery"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/identity"
	"github.com/heritagecuts/barbershop-api/internal/infra/cache"
	infraRepo "github.com/heritagecuts/barbershop-api/internal/infra/repository"
	"github.com/heritagecuts/barbershop-api/internal/models"
)

// fakeStore is an in-memory ObjectStore that records every write.
type fakeStore struct {
	objects []domain.Object
	listErr error

	uploads []string
	deletes []string
}

func (f *fakeStore) List(_ context.Context) ([]domain.Object, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.objects, nil
}

func (f *fakeStore) Upload(_ context.Context, key, _ string, _ io.Reader) error {
	f.uploads = append(f.uploads, key)
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "https://cdn.example.com/gallery/" + key
}

func (f *fakeStore) KeyFromURL(rawURL string) string {
	return strings.TrimPrefix(rawURL, "https://cdn.example.com/gallery/")
}

var _ domain.ObjectStore = (*fakeStore)(nil)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	return db
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func admin() identity.Actor {
	return identity.Actor{UserID: 1, Role: identity.RoleAdmin}
}

func TestBucketSourceSynthesizesImages(t *testing.T) {
	now := time.Now()
	store := &fakeStore{objects: []domain.Object{
		{Key: "beard/fade-1.jpg", ETag: "e1", ContentType: "image/jpeg", CreatedAt: now.Add(-3 * time.Hour)},
		{Key: "haircuts/taper.png", ETag: "e2", ContentType: "image/png", CreatedAt: now.Add(-1 * time.Hour)},
		{Key: "notes/readme.txt", ETag: "e3", ContentType: "text/plain", CreatedAt: now},
		{Key: "beard/lineup.webp", ContentType: "image/webp", CreatedAt: now.Add(-2 * time.Hour)},
	}}

	src := NewBucketSource(store, cache.NewListing(nil, time.Minute))

	images, err := src.Fetch(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, images, 3) // the text file is skipped

	// Newest first.
	assert.Equal(t, "haircuts/taper.png", store.KeyFromURL(images[0].URL))
	assert.Equal(t, "haircuts", images[0].Category)
	assert.Equal(t, "Taper", images[0].Title)
	assert.True(t, images[0].IsFeatured)

	// An object without an etag still gets a stable-looking id.
	var webp *domain.Image
	for i := range images {
		if strings.HasSuffix(images[i].URL, "lineup.webp") {
			webp = &images[i]
		}
	}
	require.NotNil(t, webp)
	assert.True(t, strings.HasPrefix(webp.ID, "gcs-"))

	beardOnly, err := src.Fetch(context.Background(), "beard")
	require.NoError(t, err)
	require.Len(t, beardOnly, 2)
	for _, img := range beardOnly {
		assert.Equal(t, "beard", img.Category)
	}
}

func TestResolveFallsThroughToFixtures(t *testing.T) {
	db := newTestDB(t)
	meta := NewMetadataSource(infraRepo.NewGalleryGormRepository(db))
	bucket := NewBucketSource(
		&fakeStore{listErr: errors.New("bucket unreachable")},
		cache.NewListing(nil, time.Minute),
	)
	load := NewLoadImages(meta, bucket, domain.FixtureSource{})

	// Empty metadata and a dead bucket still produce a gallery.
	images, ok := load.Execute(context.Background(), "")
	assert.True(t, ok)
	assert.NotEmpty(t, images)

	// A category nothing carries exhausts the chain without an error.
	images, ok = load.Execute(context.Background(), "piercings")
	assert.False(t, ok)
	assert.Empty(t, images)
}

func TestResolvePrefersMetadata(t *testing.T) {
	db := newTestDB(t)
	repo := infraRepo.NewGalleryGormRepository(db)

	require.NoError(t, db.Create(&models.GalleryImage{
		URL:         "https://cdn.example.com/gallery/haircuts/best.jpg",
		Title:       "Best Cut",
		Category:    "haircuts",
		ContentType: "image/jpeg",
	}).Error)

	load := NewLoadImages(
		NewMetadataSource(repo),
		NewBucketSource(&fakeStore{listErr: errors.New("down")}, cache.NewListing(nil, time.Minute)),
		domain.FixtureSource{},
	)

	images, ok := load.Execute(context.Background(), "")
	assert.True(t, ok)
	require.Len(t, images, 1)
	assert.Equal(t, "Best Cut", images[0].Title)
}

func TestUploadRejectsNonAdminWithZeroWrites(t *testing.T) {
	db := newTestDB(t)
	store := &fakeStore{}
	upload := NewUploadImage(infraRepo.NewGalleryGormRepository(db), store)

	customer := identity.Actor{UserID: 7, Role: identity.RoleCustomer}
	_, err := upload.Execute(context.Background(), customer, UploadInput{
		FileName:    "cut.png",
		ContentType: "image/png",
		Body:        bytes.NewReader(pngBytes(t)),
	})
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	// The gate fires before any storage or database write.
	assert.Empty(t, store.uploads)
	var count int64
	require.NoError(t, db.Model(&models.GalleryImage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUploadValidation(t *testing.T) {
	db := newTestDB(t)
	store := &fakeStore{}
	upload := NewUploadImage(infraRepo.NewGalleryGormRepository(db), store)

	ctx := context.Background()

	_, err := upload.Execute(ctx, admin(), UploadInput{
		FileName:    "report.pdf",
		ContentType: "application/pdf",
		Body:        bytes.NewReader([]byte("%PDF-1.4")),
	})
	assert.True(t, httperr.IsBusiness(err, "unsupported_media_type"))

	_, err = upload.Execute(ctx, admin(), UploadInput{
		FileName:    "huge.png",
		ContentType: "image/png",
		Size:        MaxUploadBytes + 1,
		Body:        bytes.NewReader(nil),
	})
	assert.True(t, httperr.IsBusiness(err, "file_too_large"))

	// Declared image content type but garbage bytes.
	_, err = upload.Execute(ctx, admin(), UploadInput{
		FileName:    "fake.png",
		ContentType: "image/png",
		Body:        bytes.NewReader([]byte("not an image")),
	})
	assert.True(t, httperr.IsBusiness(err, "unsupported_media_type"))

	assert.Empty(t, store.uploads)
}

func TestUploadStoresObjectAndMetadata(t *testing.T) {
	db := newTestDB(t)
	repo := infraRepo.NewGalleryGormRepository(db)
	store := &fakeStore{}
	upload := NewUploadImage(repo, store)

	img, err := upload.Execute(context.Background(), admin(), UploadInput{
		FileName:    "taper fade!.png",
		ContentType: "image/png",
		Title:       "Taper Fade",
		Category:    "haircuts",
		Body:        bytes.NewReader(pngBytes(t)),
	})
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	key := store.uploads[0]
	assert.True(t, strings.HasPrefix(key, "haircuts/"))
	// Unsafe filename characters are replaced before the key is built.
	assert.NotContains(t, key, " ")
	assert.NotContains(t, key, "!")

	assert.Equal(t, "Taper Fade", img.Title)
	assert.Equal(t, store.PublicURL(key), img.URL)

	rows, err := repo.ListImages(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "haircuts", rows[0].Category)
}

func TestDeleteRemovesObjectAndRow(t *testing.T) {
	db := newTestDB(t)
	repo := infraRepo.NewGalleryGormRepository(db)
	store := &fakeStore{}
	del := NewDeleteImage(repo, store)

	row := models.GalleryImage{
		URL:         "https://cdn.example.com/gallery/beard/lineup.jpg",
		Title:       "Lineup",
		Category:    "beard",
		ContentType: "image/jpeg",
	}
	require.NoError(t, db.Create(&row).Error)

	customer := identity.Actor{UserID: 3, Role: identity.RoleCustomer}
	err := del.Execute(context.Background(), customer, row.ID)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
	assert.Empty(t, store.deletes)

	require.NoError(t, del.Execute(context.Background(), admin(), row.ID))
	assert.Equal(t, []string{"beard/lineup.jpg"}, store.deletes)

	_, err = repo.GetImage(context.Background(), row.ID)
	assert.Error(t, err)

	err = del.Execute(context.Background(), admin(), row.ID)
	assert.True(t, httperr.IsBusiness(err, "image_not_found"))
}
