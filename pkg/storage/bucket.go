// Package storage wraps a gocloud blob bucket. The driver is picked from the
// URL scheme: file://, s3:// or mem://.
package storage

import (
	"context"
	"fmt"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

type Bucket struct {
	bk      *blob.Bucket
	baseURL string
}

// Open opens bucketURL. Public URLs are built as baseURL + "/" + key.
func Open(ctx context.Context, bucketURL, baseURL string) (*Bucket, error) {
	if strings.HasPrefix(bucketURL, "file://") && !strings.Contains(bucketURL, "create_dir") {
		sep := "?"
		if strings.Contains(bucketURL, "?") {
			sep = "&"
		}
		bucketURL += sep + "create_dir=true"
	}
	bk, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("open bucket: %w", err)
	}
	return &Bucket{bk: bk, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (b *Bucket) Put(ctx context.Context, key string, data []byte, contentType string) error {
	w, err := b.bk.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (b *Bucket) Get(ctx context.Context, key string) ([]byte, error) {
	return b.bk.ReadAll(ctx, key)
}

func (b *Bucket) Exists(ctx context.Context, key string) (bool, error) {
	return b.bk.Exists(ctx, key)
}

func (b *Bucket) Delete(ctx context.Context, key string) error {
	return b.bk.Delete(ctx, key)
}

func (b *Bucket) PublicURL(key string) string {
	return b.baseURL + "/" + key
}

func (b *Bucket) Close() error {
	return b.bk.Close()
}
