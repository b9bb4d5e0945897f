package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// photoPrefix is the fixed logical prefix photo images live under in the
// shared bucket.
const photoPrefix = "photo-recipes"

// ObjectStore is the slice of the S3 API the storage service needs.
// *s3.Client satisfies it.
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// StorageService uploads and deletes photo blobs in a single shared
// bucket. Object keys are derived from fresh uuids, never from
// user-provided text, so uploads cannot collide or overwrite.
type StorageService struct {
	store  ObjectStore
	bucket string
}

// NewStorageService creates a new StorageService instance
func NewStorageService(store ObjectStore, bucket string) *StorageService {
	return &StorageService{
		store:  store,
		bucket: bucket,
	}
}

// UploadPhotoImage stores the image bytes under a generated key and
// returns both the internal storage path (needed for deletion later) and
// the public retrieval URL. A malformed public URL is an error, never
// silently returned.
func (s *StorageService) UploadPhotoImage(ctx context.Context, data []byte, contentType, fileExt string) (path, publicURL string, err error) {
	path = fmt.Sprintf("%s/%s.%s", photoPrefix, uuid.New().String(), normalizeExt(fileExt))

	_, err = s.store.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: upload %s: %v", ErrStorage, path, err)
	}

	publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, path)
	if !validAbsoluteURL(publicURL) {
		return "", "", fmt.Errorf("%w: malformed public URL %q", ErrStorage, publicURL)
	}

	return path, publicURL, nil
}

// DeletePhotoImage removes a stored blob by its internal path.
func (s *StorageService) DeletePhotoImage(ctx context.Context, path string) error {
	_, err := s.store.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrStorage, path, err)
	}
	return nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if ext == "jpeg" {
		ext = "jpg"
	}
	if ext == "" {
		ext = "jpg"
	}
	return ext
}

func validAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
