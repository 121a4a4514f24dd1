// Package storage uploads and deletes design images in a DigitalOcean
// Spaces bucket through the S3-compatible API.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"sewsmart/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// SpacesStore stores objects in a DigitalOcean Spaces bucket.
type SpacesStore struct {
	bucket   string
	endpoint string
	uploader *s3manager.Uploader
	svc      *s3.S3
}

// NewSpacesStore builds a store from the application configuration.
func NewSpacesStore(cfg *config.Config) (*SpacesStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(cfg.SpacesRegion),
		Endpoint:         aws.String("https://" + cfg.SpacesEndpoint),
		Credentials:      credentials.NewStaticCredentials(cfg.SpacesAccessKey, cfg.SpacesSecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create spaces session: %w", err)
	}

	return &SpacesStore{
		bucket:   cfg.SpacesBucket,
		endpoint: cfg.SpacesEndpoint,
		uploader: s3manager.NewUploader(sess),
		svc:      s3.New(sess),
	}, nil
}

// Upload stores the object under key with public-read ACL and returns its public URL.
func (s *SpacesStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		ACL:         aws.String("public-read"),
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %q: %w", key, err)
	}
	return s.URLForKey(key), nil
}

// Delete removes the object behind the given public URL.
func (s *SpacesStore) Delete(ctx context.Context, publicURL string) error {
	key, err := s.KeyFromURL(publicURL)
	if err != nil {
		return err
	}
	_, err = s.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	return nil
}

// URLForKey returns the public URL for an object key.
func (s *SpacesStore) URLForKey(key string) string {
	return fmt.Sprintf("https://%s/%s/%s", s.endpoint, s.bucket, key)
}

// KeyFromURL extracts the object key from a public URL produced by URLForKey.
func (s *SpacesStore) KeyFromURL(publicURL string) (string, error) {
	marker := s.endpoint + "/" + s.bucket + "/"
	idx := strings.Index(publicURL, marker)
	if idx < 0 {
		return "", fmt.Errorf("url %q does not belong to bucket %q", publicURL, s.bucket)
	}
	key := publicURL[idx+len(marker):]
	if key == "" {
		return "", fmt.Errorf("url %q has no object key", publicURL)
	}
	return key, nil
}
