package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// MediaStorage stores uploaded media objects and derives their public
// URLs from a configured base.
type MediaStorage struct {
	client    *minio.Client
	publicURL string
	useSSL    bool
	endpoint  string
}

func NewMediaStorage(client *minio.Client, endpoint, publicURL string, useSSL bool) *MediaStorage {
	return &MediaStorage{
		client:    client,
		publicURL: strings.TrimRight(strings.TrimSpace(publicURL), "/"),
		useSSL:    useSSL,
		endpoint:  strings.TrimSpace(endpoint),
	}
}

func (s *MediaStorage) Put(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MediaStorage) PublicURL(bucket, objectName string) string {
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicURL, bucket, objectName)
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, bucket, objectName)
}
