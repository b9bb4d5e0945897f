package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kmwhite/dinner-recipes/backend/internal/model"
)

// PhotoRecipeService handles the metadata rows for photo recipes. The
// image blobs themselves live in the object store; retiring a photo recipe
// is a two-step protocol (blob delete, then row delete) with no atomicity
// between the steps.
type PhotoRecipeService struct {
	db *gorm.DB
}

// NewPhotoRecipeService creates a new PhotoRecipeService instance
func NewPhotoRecipeService(db *gorm.DB) *PhotoRecipeService {
	return &PhotoRecipeService{db: db}
}

// ListPhotoRecipes returns the user's photo recipes, newest first.
func (s *PhotoRecipeService) ListPhotoRecipes(ctx context.Context, userID uuid.UUID) ([]model.PhotoRecipe, error) {
	var photos []model.PhotoRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// AddPhotoRecipe inserts a row. The label must be non-empty after
// trimming; imageURL and imagePath come from a completed upload.
func (s *PhotoRecipeService) AddPhotoRecipe(ctx context.Context, userID uuid.UUID, label, imageURL, imagePath string) (*model.PhotoRecipe, error) {
	label = strings.TrimSpace(label)
	if label == "" || imageURL == "" || imagePath == "" {
		return nil, ErrValidation
	}

	photo := model.PhotoRecipe{
		Label:     label,
		ImageURL:  imageURL,
		ImagePath: imagePath,
		UserID:    userID,
	}
	if err := s.db.WithContext(ctx).Create(&photo).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetPhotoRecipe retrieves one of the user's photo recipes by id.
func (s *PhotoRecipeService) GetPhotoRecipe(ctx context.Context, userID, id uuid.UUID) (*model.PhotoRecipe, error) {
	var photo model.PhotoRecipe
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// DeletePhotoRecipe removes the metadata row only. It does not touch the
// stored image; the caller deletes the blob separately. Deleting a row
// that does not exist is success.
func (s *PhotoRecipeService) DeletePhotoRecipe(ctx context.Context, userID, id uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PhotoRecipe{}).Error
}
