package core

import (
	"strings"

	"github.com/kmwhite/dinner-recipes/backend/internal/model"
)

// FilterAll is the "no filter" sentinel for category and signature.
const FilterAll = "All"

// Filter describes the view filters a user can apply to the recipe list.
// Zero values (and FilterAll) mean "no filter" for their field; the
// individual filters compose with logical AND.
type Filter struct {
	Search        string
	Category      string
	Signature     string
	FavoritesOnly bool
}

func (f Filter) matches(r model.Recipe) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && f.Category != FilterAll && r.Category != f.Category {
		return false
	}
	if f.Signature != "" && f.Signature != FilterAll && r.Signature != f.Signature {
		return false
	}
	if f.FavoritesOnly && !r.IsFavorite {
		return false
	}
	return true
}

// FilterRecipes returns the recipes matching f, preserving input order.
// The search term matches case-insensitively against the name only.
func FilterRecipes(recipes []model.Recipe, f Filter) []model.Recipe {
	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}
