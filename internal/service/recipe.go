package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kmwhite/dinner-recipes/backend/internal/model"
)

// RecipeService handles recipe persistence. All operations are scoped to
// the owning user.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// RecipeUpdate is a partial update: only non-nil fields are written, and
// everything else is left untouched in the store. In particular, omitting
// Ingredients must never clear the stored ingredient list.
type RecipeUpdate struct {
	Name         *string
	Category     *string
	Signature    *string
	Ingredients  *[]string
	Instructions *string
	PrepTime     *int
	CookTime     *int
	IsFavorite   *bool
}

// ListRecipes returns all of the user's recipes in insertion order, each
// normalized per the read-side defaults.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	for i := range recipes {
		recipes[i].Normalize()
	}
	return recipes, nil
}

// GetRecipe retrieves one of the user's recipes by id.
func (s *RecipeService) GetRecipe(ctx context.Context, userID, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	recipe.Normalize()
	return &recipe, nil
}

// CreateRecipe inserts a new recipe. The name is validated before any
// write is attempted; the store assigns the id.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) error {
	recipe.Normalize()
	if recipe.Name == "" {
		return ErrValidation
	}
	return s.db.WithContext(ctx).Create(recipe).Error
}

// UpdateRecipe applies a partial update to one of the user's recipes.
// The row must exist; a missing row is an error here, unlike delete.
func (s *RecipeService) UpdateRecipe(ctx context.Context, userID, id uuid.UUID, update RecipeUpdate) error {
	var existing model.Recipe
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	columns := map[string]interface{}{}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return ErrValidation
		}
		columns["name"] = name
	}
	if update.Category != nil {
		category := *update.Category
		if !model.ValidCategory(category) {
			category = model.CategoryOther
		}
		columns["category"] = category
	}
	if update.Signature != nil {
		signature := strings.TrimSpace(*update.Signature)
		if signature == "" {
			signature = model.DefaultSignature
		}
		columns["signature"] = signature
	}
	if update.Ingredients != nil {
		cleaned := model.SplitIngredients(strings.Join(*update.Ingredients, ","))
		columns["ingredients"] = strings.Join(cleaned, ",")
	}
	if update.Instructions != nil {
		columns["instructions"] = strings.TrimSpace(*update.Instructions)
	}
	if update.PrepTime != nil {
		minutes := *update.PrepTime
		if minutes < 0 {
			minutes = 0
		}
		columns["prep_time"] = minutes
	}
	if update.CookTime != nil {
		minutes := *update.CookTime
		if minutes < 0 {
			minutes = 0
		}
		columns["cook_time"] = minutes
	}
	if update.IsFavorite != nil {
		columns["is_favorite"] = *update.IsFavorite
	}

	if len(columns) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(columns).Error
}

// DeleteRecipe removes one of the user's recipes. Deleting an id that does
// not exist is treated as success.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Recipe{}).Error
}
