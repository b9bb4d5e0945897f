package core

import (
	"strings"

	"github.com/kmwhite/dinner-recipes/backend/internal/model"
)

// RecipeEdit carries the values a user entered in an edit form. Name and
// Signature may be blank; every other field is taken as entered.
type RecipeEdit struct {
	Name         string
	Category     string
	Signature    string
	Ingredients  []string
	Instructions string
	PrepTime     int
	CookTime     int
	IsFavorite   bool
}

// MergeEdit applies a user edit over an existing recipe. A blank name
// falls back to the original so an edit can never erase the name of a
// saved recipe; a blank signature falls back to "Unknown". All other
// fields are replaced wholesale.
func MergeEdit(original model.Recipe, edit RecipeEdit) model.Recipe {
	merged := original

	if name := strings.TrimSpace(edit.Name); name != "" {
		merged.Name = name
	}
	if sig := strings.TrimSpace(edit.Signature); sig != "" {
		merged.Signature = sig
	} else {
		merged.Signature = model.DefaultSignature
	}

	merged.Category = edit.Category
	if !model.ValidCategory(merged.Category) {
		merged.Category = model.CategoryOther
	}
	merged.Ingredients = model.CommaSeparatedList(edit.Ingredients)
	merged.Instructions = strings.TrimSpace(edit.Instructions)
	merged.PrepTime = edit.PrepTime
	merged.CookTime = edit.CookTime
	merged.IsFavorite = edit.IsFavorite
	merged.Normalize()

	return merged
}
