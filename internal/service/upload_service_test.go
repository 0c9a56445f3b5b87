package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/artistdesk/artistdesk-api/internal/media"
)

func pngUpload(t *testing.T, name string, width, height int) media.Upload {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode returned error: %v", err)
	}
	return media.Upload{
		Reader:      bytes.NewReader(buf.Bytes()),
		Size:        int64(buf.Len()),
		FileName:    name,
		ContentType: "image/png",
	}
}

func TestUploadStoreWritesObjectAndReturnsURL(t *testing.T) {
	ctx := context.Background()
	storage := newMemObjectStorage()
	svc := NewUploadService(storage, media.NewProcessor(0), "artist-media")

	url, err := svc.Store(ctx, pngUpload(t, "cover.png", 4, 4))
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	if !strings.HasPrefix(url, "https://media.example.com/artist-media/") {
		t.Fatalf("unexpected url %q", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Fatalf("expected .png object name, got %q", url)
	}
	if len(storage.objects) != 1 {
		t.Fatalf("expected 1 stored object, got %d", len(storage.objects))
	}
}

func TestUploadStoreRejectsNonImages(t *testing.T) {
	ctx := context.Background()
	svc := NewUploadService(newMemObjectStorage(), media.NewProcessor(0), "artist-media")

	upload := media.Upload{
		Reader:      strings.NewReader("definitely not an image"),
		Size:        23,
		FileName:    "notes.txt",
		ContentType: "text/plain",
	}
	if _, err := svc.Store(ctx, upload); !errors.Is(err, ErrUploadValidation) {
		t.Fatalf("expected ErrUploadValidation, got %v", err)
	}
}

func TestUploadStoreRejectsOversizedDimensions(t *testing.T) {
	ctx := context.Background()
	svc := NewUploadService(newMemObjectStorage(), media.NewProcessor(8), "artist-media")

	if _, err := svc.Store(ctx, pngUpload(t, "huge.png", 16, 16)); !errors.Is(err, ErrUploadValidation) {
		t.Fatalf("expected ErrUploadValidation for oversized image, got %v", err)
	}
}

func TestUploadStoreAllFailsFast(t *testing.T) {
	ctx := context.Background()
	storage := newMemObjectStorage()
	svc := NewUploadService(storage, media.NewProcessor(0), "artist-media")

	uploads := []media.Upload{
		pngUpload(t, "one.png", 4, 4),
		{Reader: strings.NewReader("junk"), Size: 4, FileName: "two.bin", ContentType: "application/octet-stream"},
	}
	if _, err := svc.StoreAll(ctx, uploads); !errors.Is(err, ErrUploadValidation) {
		t.Fatalf("expected ErrUploadValidation, got %v", err)
	}

	urls, err := svc.StoreAll(ctx, []media.Upload{pngUpload(t, "a.png", 4, 4), pngUpload(t, "b.png", 4, 4)})
	if err != nil {
		t.Fatalf("StoreAll returned error: %v", err)
	}
	if len(urls) != 2 {
		t.Fatalf("expected 2 urls, got %d", len(urls))
	}
}
