package constants

import (
	"path/filepath"
	"strings"
)

const (
	FileTypeImage   = 6
	FileTypeUnknown = 99
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif", ".bmp", ".tif", ".tiff":
		return FileTypeImage
	default:
		return FileTypeUnknown
	}
}

// IsImageFile reports whether the filename or the declared content type looks like an image.
func IsImageFile(filename, contentType string) bool {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return true
	}
	return DetectFileTypeFromExt(filename) == FileTypeImage
}
