package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/artistdesk/artistdesk-api/internal/media"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

var ErrUploadValidation = errors.New("upload validation failed")

type UploadService struct {
	storage   ports.ObjectStorage
	processor *media.Processor
	bucket    string
}

func NewUploadService(storage ports.ObjectStorage, processor *media.Processor, bucket string) *UploadService {
	return &UploadService{
		storage:   storage,
		processor: processor,
		bucket:    bucket,
	}
}

// Store validates the image and writes it under a uuid-keyed object name,
// returning the public URL.
func (s *UploadService) Store(ctx context.Context, upload media.Upload) (string, error) {
	result, err := s.processor.Process(upload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadValidation, err)
	}

	objectName := uuid.NewString() + extensionFor(result.ContentType, upload.FileName)
	reader := bytes.NewReader(result.Bytes)
	if err := s.storage.Put(ctx, s.bucket, objectName, reader, int64(len(result.Bytes)), result.ContentType); err != nil {
		return "", err
	}
	return s.storage.PublicURL(s.bucket, objectName), nil
}

// StoreAll uploads every file and fails on the first error; partially
// stored objects are left for bucket lifecycle cleanup.
func (s *UploadService) StoreAll(ctx context.Context, uploads []media.Upload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		url, err := s.Store(ctx, upload)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func extensionFor(contentType, fileName string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
