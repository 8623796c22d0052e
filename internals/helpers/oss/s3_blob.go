package helper

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"clubsocios_backend/internals/configs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3BlobService struct {
	Client     *s3.Client
	Bucket     string
	PublicBase string
	Prefix     string
	Options    PhotoOptions
}

// NewS3BlobServiceFromEnv uses the default AWS credential chain. S3_ENDPOINT
// points at S3-compatible stores (MinIO, R2) and switches to path-style.
func NewS3BlobServiceFromEnv(ctx context.Context, prefix string) (*S3BlobService, error) {
	bucket := configs.GetEnv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("missing env: S3_BUCKET")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	endpoint := configs.GetEnv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	base := configs.GetEnv("S3_PUBLIC_BASE_URL")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
	}
	return &S3BlobService{
		Client:     client,
		Bucket:     bucket,
		PublicBase: base,
		Prefix:     strings.Trim(prefix, "/"),
		Options:    PhotoOptionsFromEnv(),
	}, nil
}

func (s *S3BlobService) UploadImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	data, err := PrepareFormFile(fh, s.Options)
	if err != nil {
		return "", err
	}
	key := ObjectKey(s.Prefix)
	_, err = s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.Bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String("image/webp"),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return joinPublicURL(s.PublicBase, key), nil
}

func (s *S3BlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := ExtractKeyFromPublicURL(s.PublicBase, publicURL)
	if err != nil {
		return fmt.Errorf("extract key: %w", err)
	}
	_, err = s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	return err
}
