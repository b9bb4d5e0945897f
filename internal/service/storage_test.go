package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmwhite/dinner-recipes/backend/internal/service"
)

type fakeObjectStore struct {
	putInputs    []*s3.PutObjectInput
	deleteInputs []*s3.DeleteObjectInput
	putErr       error
	deleteErr    error
}

func (f *fakeObjectStore) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInputs = append(f.putInputs, params)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectStore) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleteInputs = append(f.deleteInputs, params)
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &s3.DeleteObjectOutput{}, nil
}

func TestUploadPhotoImage(t *testing.T) {
	store := &fakeObjectStore{}
	svc := service.NewStorageService(store, "family-recipes")

	path, url, err := svc.UploadPhotoImage(context.Background(), []byte("image-bytes"), "image/png", "png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "photo-recipes/"))
	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.Equal(t, "https://family-recipes.s3.amazonaws.com/"+path, url)

	require.Len(t, store.putInputs, 1)
	put := store.putInputs[0]
	assert.Equal(t, "family-recipes", *put.Bucket)
	assert.Equal(t, path, *put.Key)
	assert.Equal(t, "image/png", *put.ContentType)

	body, err := io.ReadAll(put.Body)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(body))
}

func TestUploadPhotoImageUniqueKeys(t *testing.T) {
	store := &fakeObjectStore{}
	svc := service.NewStorageService(store, "family-recipes")
	ctx := context.Background()

	pathA, _, err := svc.UploadPhotoImage(ctx, []byte("a"), "image/jpeg", "jpg")
	require.NoError(t, err)
	pathB, _, err := svc.UploadPhotoImage(ctx, []byte("b"), "image/jpeg", "jpg")
	require.NoError(t, err)

	// Keys come from fresh uuids, so two uploads of identical content
	// still land on distinct objects.
	assert.NotEqual(t, pathA, pathB)
}

func TestUploadPhotoImageExtensionNormalized(t *testing.T) {
	store := &fakeObjectStore{}
	svc := service.NewStorageService(store, "family-recipes")
	ctx := context.Background()

	path, _, err := svc.UploadPhotoImage(ctx, []byte("a"), "image/jpeg", ".JPEG")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	path, _, err = svc.UploadPhotoImage(ctx, []byte("a"), "image/jpeg", "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".jpg"))
}

func TestUploadPhotoImageFailure(t *testing.T) {
	store := &fakeObjectStore{putErr: errors.New("bucket gone")}
	svc := service.NewStorageService(store, "family-recipes")

	_, _, err := svc.UploadPhotoImage(context.Background(), []byte("a"), "image/png", "png")
	assert.ErrorIs(t, err, service.ErrStorage)
}

func TestDeletePhotoImage(t *testing.T) {
	store := &fakeObjectStore{}
	svc := service.NewStorageService(store, "family-recipes")

	require.NoError(t, svc.DeletePhotoImage(context.Background(), "photo-recipes/abc.jpg"))
	require.Len(t, store.deleteInputs, 1)
	assert.Equal(t, "photo-recipes/abc.jpg", *store.deleteInputs[0].Key)

	store.deleteErr = errors.New("denied")
	err := svc.DeletePhotoImage(context.Background(), "photo-recipes/abc.jpg")
	assert.ErrorIs(t, err, service.ErrStorage)
}
