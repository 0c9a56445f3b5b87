package ports

import (
	"context"
	"io"
)

type ObjectStorage interface {
	Put(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) error
	PublicURL(bucket, objectName string) string
}
