package gallery

import (
	"context"
	"io"
	"time"
)

// Object is one entry of a bucket listing.
type Object struct {
	Key         string
	ETag        string
	ContentType string
	CreatedAt   time.Time
}

// ObjectStore is the cloud bucket behind the gallery. Listing and byte
// reads are public; writes are reached only through the admin-gated
// upload/delete use cases.
type ObjectStore interface {
	List(ctx context.Context) ([]Object, error)

	Upload(ctx context.Context, key, contentType string, body io.Reader) error

	Delete(ctx context.Context, key string) error

	PublicURL(key string) string

	KeyFromURL(rawURL string) string
}
