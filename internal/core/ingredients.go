// Package core holds the in-memory recipe logic: ingredient parsing,
// filtering, edit merging, shopping-list aggregation and share-text
// rendering. Nothing in this package performs I/O.
package core

import (
	"sort"
	"strings"

	"github.com/kmwhite/dinner-recipes/backend/internal/model"
)

// ParseIngredients accepts free text with items separated by newlines,
// commas, or a mix of both, and returns the trimmed non-empty items.
// Applying it to its own output is a no-op.
func ParseIngredients(text string) []string {
	if text == "" {
		return []string{}
	}
	parts := strings.Split(strings.ReplaceAll(text, "\n", ","), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if item := strings.TrimSpace(p); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// BuildShoppingList collects the ingredients of every recipe whose name is
// in selectedNames and returns them deduplicated (exact string match) and
// sorted for display.
func BuildShoppingList(recipes []model.Recipe, selectedNames []string) []string {
	selected := make(map[string]bool, len(selectedNames))
	for _, name := range selectedNames {
		selected[name] = true
	}

	seen := make(map[string]bool)
	items := []string{}
	for _, r := range recipes {
		if !selected[r.Name] {
			continue
		}
		for _, ing := range r.Ingredients {
			if !seen[ing] {
				seen[ing] = true
				items = append(items, ing)
			}
		}
	}

	sort.Strings(items)
	return items
}
