// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"clubsocios_backend/internals/configs"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	xwebp "golang.org/x/image/webp"
)

var ErrImageUnsupported = errors.New("formato de imagen no soportado")

/* =======================================================================
   Photo pipeline: decode → fit → webp
======================================================================= */

type PhotoOptions struct {
	MaxW     int
	MaxH     int
	Quality  float32
	MaxBytes int64
}

func PhotoOptionsFromEnv() PhotoOptions {
	return PhotoOptions{
		MaxW:     configs.GetEnvInt("PHOTO_MAX_WIDTH", 800),
		MaxH:     configs.GetEnvInt("PHOTO_MAX_HEIGHT", 800),
		Quality:  float32(configs.GetEnvInt("PHOTO_WEBP_QUALITY", 80)),
		MaxBytes: int64(configs.GetEnvInt("PHOTO_MAX_BYTES", 5*1024*1024)),
	}
}

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("archivo vacío")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	r := bytes.NewReader(all)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(r)
	case strings.Contains(ct, "png"):
		return png.Decode(r)
	case strings.Contains(ct, "webp"):
		return xwebp.Decode(r)
	}
	// sniffing misses some webp variants, fall back to the extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".png":
		return png.Decode(r)
	case ".webp":
		return xwebp.Decode(r)
	}
	return nil, fmt.Errorf("%w: %s", ErrImageUnsupported, ct)
}

// PrepareImage reads an uploaded picture and re-encodes it as a bounded webp.
func PrepareImage(r io.Reader, filename string, opt PhotoOptions) ([]byte, error) {
	limit := opt.MaxBytes
	if limit <= 0 {
		limit = 5 * 1024 * 1024
	}
	all, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(all)) > limit {
		return nil, fmt.Errorf("la imagen supera %d bytes", limit)
	}

	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	if opt.MaxW > 0 && opt.MaxH > 0 {
		b := img.Bounds()
		if b.Dx() > opt.MaxW || b.Dy() > opt.MaxH {
			img = imaging.Fit(img, opt.MaxW, opt.MaxH, imaging.Lanczos)
		}
	}

	q := opt.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}

// PrepareFormFile is PrepareImage for a multipart header.
func PrepareFormFile(fh *multipart.FileHeader, opt PhotoOptions) ([]byte, error) {
	if fh == nil {
		return nil, fmt.Errorf("archivo no encontrado")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return PrepareImage(f, fh.Filename, opt)
}

/* =======================================================================
   Keys & public URLs
======================================================================= */

// ObjectKey builds "<prefix>/<uuid>.webp".
func ObjectKey(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	name := uuid.NewString() + ".webp"
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func joinPublicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}

// ExtractKeyFromPublicURL strips the configured base, or scheme+host when the
// URL was produced under a different base.
func ExtractKeyFromPublicURL(base, publicURL string) (string, error) {
	publicURL = strings.TrimSpace(publicURL)
	if publicURL == "" {
		return "", fmt.Errorf("empty url")
	}
	if base = strings.TrimSpace(base); base != "" {
		base = strings.TrimRight(base, "/") + "/"
		if strings.HasPrefix(publicURL, base) {
			return strings.TrimPrefix(publicURL, base), nil
		}
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	if i := strings.Index(u, "/"); i >= 0 && i+1 < len(u) {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}

/* =======================================================================
   Aliyun OSS
======================================================================= */

type AliyunBlobService struct {
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	PublicBase string
	Prefix     string
	Options    PhotoOptions
}

func NewAliyunBlobServiceFromEnv(prefix string) (*AliyunBlobService, error) {
	endpoint := configs.GetEnv("OSS_ENDPOINT")
	ak := configs.GetEnv("OSS_ACCESS_KEY_ID")
	sk := configs.GetEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := configs.GetEnv("OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET")
	}

	var opts []oss.ClientOption
	if sts := configs.GetEnv("OSS_SECURITY_TOKEN"); sts != "" {
		opts = append(opts, oss.SecurityToken(sts))
	}
	client, err := oss.New(endpoint, ak, sk, opts...)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		var se oss.ServiceError
		if errors.As(err, &se) && se.StatusCode == http.StatusForbidden {
			slog.Warn("oss bucket location check denied, continuing", "bucket", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		slog.Info("oss bucket ready", "bucket", bucketName, "location", loc)
	}

	return &AliyunBlobService{
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		PublicBase: configs.GetEnv("OSS_PUBLIC_BASE_URL"),
		Prefix:     strings.Trim(prefix, "/"),
		Options:    PhotoOptionsFromEnv(),
	}, nil
}

func (s *AliyunBlobService) PublicURL(key string) string {
	if s.PublicBase != "" {
		return joinPublicURL(s.PublicBase, key)
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

func (s *AliyunBlobService) UploadImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	data, err := PrepareFormFile(fh, s.Options)
	if err != nil {
		return "", err
	}
	key := ObjectKey(s.Prefix)
	if err := s.Bucket.PutObject(key, bytes.NewReader(data),
		oss.ContentType("image/webp"),
		oss.CacheControl("public, max-age=31536000, immutable"),
		oss.WithContext(ctx),
	); err != nil {
		return "", fmt.Errorf("oss put %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

func (s *AliyunBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := ExtractKeyFromPublicURL(s.PublicBase, publicURL)
	if err != nil {
		return fmt.Errorf("extract key: %w", err)
	}
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}
