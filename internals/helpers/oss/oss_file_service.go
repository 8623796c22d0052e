package helper

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"sync"

	"clubsocios_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService is the upload/delete surface the services depend on.
UploadImage re-encodes to webp before storing and returns the public URL.
*/
type BlobService interface {
	UploadImage(ctx context.Context, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

var ErrStorageDisabled = errors.New("almacenamiento de fotos no configurado")

// DisabledBlobService is used when STORAGE_DRIVER=none.
type DisabledBlobService struct{}

func (DisabledBlobService) UploadImage(context.Context, *multipart.FileHeader) (string, error) {
	return "", ErrStorageDisabled
}

func (DisabledBlobService) DeleteByPublicURL(context.Context, string) error { return nil }

// NewBlobServiceFromEnv picks the store from STORAGE_DRIVER (s3 | oss | none).
func NewBlobServiceFromEnv(ctx context.Context, prefix string) (BlobService, error) {
	switch strings.ToLower(configs.GetEnv("STORAGE_DRIVER", "none")) {
	case "s3":
		return NewS3BlobServiceFromEnv(ctx, prefix)
	case "oss":
		return NewAliyunBlobServiceFromEnv(prefix)
	case "none", "":
		return DisabledBlobService{}, nil
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER desconocido: %s", configs.GetEnv("STORAGE_DRIVER"))
	}
}

// IsMultipart reports whether the request body is multipart/form-data.
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

var defaultImageFields = []string{"foto", "photo", "image", "file"}

// GetImageFile returns (nil, nil) when the request carries no file.
func GetImageFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, nil
	}
	names := fieldNames
	if len(names) == 0 {
		names = defaultImageFields
	}
	for _, fn := range names {
		if fh, err := c.FormFile(fn); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, nil
}

// --------------------------------------------------
// Mock for tests
// --------------------------------------------------

type MockBlobService struct {
	UploadImageFn       func(ctx context.Context, fh *multipart.FileHeader) (string, error)
	DeleteByPublicURLFn func(ctx context.Context, publicURL string) error

	mu      sync.Mutex
	Deleted []string
}

func (m *MockBlobService) UploadImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if m.UploadImageFn == nil {
		return "https://cdn.test/socios/" + fh.Filename, nil
	}
	return m.UploadImageFn(ctx, fh)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	m.mu.Lock()
	m.Deleted = append(m.Deleted, publicURL)
	m.mu.Unlock()
	if m.DeleteByPublicURLFn == nil {
		return nil
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}

func (m *MockBlobService) DeletedURLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Deleted...)
}
