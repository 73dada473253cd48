package gallery

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	// Register the decoders upload validation relies on.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	domain "github.com/heritagecuts/barbershop-api/internal/domain/gallery"
	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/identity"
	"github.com/heritagecuts/barbershop-api/internal/models"
)

const MaxUploadBytes = 10 << 20 // 10MB

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader

	Title      string
	Category   string
	BarberID   *uint
	IsFeatured bool
}

type UploadImage struct {
	repo  domain.Repository
	store domain.ObjectStore
}

func NewUploadImage(repo domain.Repository, store domain.ObjectStore) *UploadImage {
	return &UploadImage{repo: repo, store: store}
}

// Execute stores a new gallery image. Only admins get past the gate,
// and a rejected caller causes zero storage or database writes. A
// metadata write that fails after the object upload succeeded is
// logged, not rolled back; the bucket listing tier still reconciles
// such orphans.
func (uc *UploadImage) Execute(
	ctx context.Context,
	actor identity.Actor,
	in UploadInput,
) (*domain.Image, error) {

	if !actor.IsAdmin() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if in.Size > MaxUploadBytes {
		return nil, httperr.ErrBusiness("file_too_large")
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return nil, httperr.ErrBusiness("unsupported_media_type")
	}

	payload, err := io.ReadAll(io.LimitReader(in.Body, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(payload)) > MaxUploadBytes {
		return nil, httperr.ErrBusiness("file_too_large")
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(payload)); err != nil {
		return nil, httperr.ErrBusiness("unsupported_media_type")
	}

	category := in.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	key := fmt.Sprintf(
		"%s/%d-%s",
		category,
		time.Now().Unix(),
		unsafeKeyChars.ReplaceAllString(in.FileName, "_"),
	)

	if err := uc.store.Upload(ctx, key, in.ContentType, bytes.NewReader(payload)); err != nil {
		return nil, err
	}

	title := in.Title
	if title == "" {
		title = domain.TitleForKey(key)
	}

	row := &models.GalleryImage{
		URL:         uc.store.PublicURL(key),
		Title:       title,
		Category:    category,
		BarberID:    in.BarberID,
		IsFeatured:  in.IsFeatured,
		ContentType: in.ContentType,
	}

	if err := uc.repo.CreateImage(ctx, row); err != nil {
		// The object is uploaded; losing the metadata row only costs
		// us tier-1 visibility until the bucket listing picks it up.
		log.Printf("gallery metadata write failed for %s: %v", key, err)
	}

	img := imageFromRow(*row)
	return &img, nil
}
