package utils

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PhotoArchive stores uploaded meal photos.
type PhotoArchive interface {
	Store(ctx context.Context, data []byte, contentType string) (string, error)
}

// NoopArchive is used when no bucket is configured.
type NoopArchive struct{}

func (NoopArchive) Store(context.Context, []byte, string) (string, error) { return "", nil }

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Archive struct {
	client objectPutter
	bucket string
	now    func() time.Time
}

// NewS3Archive loads the default AWS credential chain for region.
func NewS3Archive(ctx context.Context, region, bucket string) (*S3Archive, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config for S3: %w", err)
	}
	return &S3Archive{client: s3.NewFromConfig(cfg), bucket: bucket, now: time.Now}, nil
}

// Store uploads data under meal-photos/ and returns the object key.
func (a *S3Archive) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("meal-photos/%d%s", a.now().UnixNano(), extensionFor(contentType))

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return key, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	// fallback: use subtype
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 && parts[1] != "" {
		return "." + parts[1]
	}
	return ""
}
