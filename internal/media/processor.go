package media

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const DefaultMaxDimension = 3840

type Upload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type Result struct {
	Bytes       []byte
	ContentType string
	Width       int
	Height      int
}

// Processor validates uploaded images before they are stored: the bytes
// must decode as a supported format and fit within the dimension cap.
type Processor struct {
	maxDimension int
}

func NewProcessor(maxDimension int) *Processor {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &Processor{maxDimension: maxDimension}
}

func (p *Processor) Process(upload Upload) (*Result, error) {
	if upload.Reader == nil {
		return nil, fmt.Errorf("media: empty reader")
	}
	data, err := io.ReadAll(upload.Reader)
	if err != nil {
		return nil, fmt.Errorf("media: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("media: empty image data")
	}

	contentType := normalizeContentType(upload.ContentType, upload.FileName)
	if !supportedContentType(contentType) {
		return nil, fmt.Errorf("media: unsupported content type %s", contentType)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("media: decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("media: invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width > p.maxDimension || cfg.Height > p.maxDimension {
		return nil, fmt.Errorf("media: image exceeds %dpx limit", p.maxDimension)
	}

	return &Result{
		Bytes:       data,
		ContentType: contentType,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

func supportedContentType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func normalizeContentType(value, fileName string) string {
	ct := strings.ToLower(strings.TrimSpace(value))
	if ct == "image/jpg" {
		return "image/jpeg"
	}
	if ct != "" {
		return ct
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName))); byExt != "" {
		return strings.ToLower(byExt)
	}
	return "application/octet-stream"
}
