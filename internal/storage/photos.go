// Package storage uploads profile photos to S3-compatible object storage.
// Every image is normalized to a 500x500 webp before upload so the API
// serves a single predictable format.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/tabeebak/clinic-scheduler/internal/config"
)

const (
	photoSize   = 500
	webpQuality = 85
)

type PhotoStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &PhotoStore{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload decodes, crops to a centered square, scales to 500x500, encodes
// webp and puts the object under prefix/. Returns the public URL and the
// object key to remember for a later Remove.
func (p *PhotoStore) Upload(ctx context.Context, prefix string, r io.Reader) (url, key string, err error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", "", fmt.Errorf("decode photo: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, photoSize, photoSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, centerSquare(src.Bounds()), draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: webpQuality}); err != nil {
		return "", "", fmt.Errorf("encode photo: %w", err)
	}

	key = fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", "", fmt.Errorf("put photo: %w", err)
	}

	return fmt.Sprintf("%s/%s", p.publicURL, key), key, nil
}

// Remove deletes a previously uploaded object. Missing keys are not an
// error; the replaced photo may already be gone.
func (p *PhotoStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	return err
}

func centerSquare(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w == h {
		return b
	}
	if w > h {
		off := (w - h) / 2
		return image.Rect(b.Min.X+off, b.Min.Y, b.Min.X+off+h, b.Max.Y)
	}
	off := (h - w) / 2
	return image.Rect(b.Min.X, b.Min.Y+off, b.Max.X, b.Min.Y+off+w)
}
