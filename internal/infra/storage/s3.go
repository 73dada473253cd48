package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/heritagecuts/barbershop-api/internal/config"
	"github.com/heritagecuts/barbershop-api/internal/domain/gallery"
)

type Bucket struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

func NewBucket(cfg *config.Config) *Bucket {
	opts := s3.Options{
		Region: cfg.StorageRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		),
		UsePathStyle: true,
	}

	endpoint := cfg.StorageEndpoint
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
	} else {
		endpoint = fmt.Sprintf("https://s3.%s.amazonaws.com", cfg.StorageRegion)
	}

	return &Bucket{
		client:   s3.New(opts),
		bucket:   cfg.StorageBucket,
		endpoint: strings.TrimSuffix(endpoint, "/"),
	}
}

// List returns the bucket contents as gallery objects. ContentType is
// derived from the key extension; listings do not carry it per object.
func (b *Bucket) List(ctx context.Context) ([]gallery.Object, error) {
	out, err := b.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(b.bucket),
	})
	if err != nil {
		return nil, err
	}

	objects := make([]gallery.Object, 0, len(out.Contents))
	for _, item := range out.Contents {
		key := aws.ToString(item.Key)

		var created time.Time
		if item.LastModified != nil {
			created = *item.LastModified
		}

		objects = append(objects, gallery.Object{
			Key:         key,
			ETag:        strings.Trim(aws.ToString(item.ETag), `"`),
			ContentType: mime.TypeByExtension(path.Ext(key)),
			CreatedAt:   created,
		})
	}

	return objects, nil
}

func (b *Bucket) Upload(
	ctx context.Context,
	key string,
	contentType string,
	body io.Reader,
) error {

	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	return err
}

func (b *Bucket) Delete(ctx context.Context, key string) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	return err
}

// PublicURL builds the path-style public read URL for an object:
// https://<storage-host>/<bucket>/<key>. Each path segment is escaped
// on its own so folder separators survive.
func (b *Bucket) PublicURL(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}

	return fmt.Sprintf(
		"%s/%s/%s",
		b.endpoint,
		b.bucket,
		strings.Join(parts, "/"),
	)
}

// KeyFromURL reverses PublicURL for objects stored in this bucket;
// returns "" for URLs that do not point into it.
func (b *Bucket) KeyFromURL(rawURL string) string {
	prefix := fmt.Sprintf("%s/%s/", b.endpoint, b.bucket)
	if !strings.HasPrefix(rawURL, prefix) {
		return ""
	}

	key, err := url.PathUnescape(strings.TrimPrefix(rawURL, prefix))
	if err != nil {
		return ""
	}
	return key
}

// Compile-time check
var _ gallery.ObjectStore = (*Bucket)(nil)
