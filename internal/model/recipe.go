package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe categories. Anything outside this set is coerced to CategoryOther.
const (
	CategoryChicken       = "Chicken"
	CategoryBeef          = "Beef"
	CategoryPasta         = "Pasta"
	CategorySeafood       = "Seafood"
	CategoryVegetarian    = "Vegetarian"
	CategoryMacroFriendly = "Macro Friendly"
	CategoryDesserts      = "Desserts"
	CategoryOther         = "Other"
)

// DefaultSignature is used when a recipe has no family attribution.
const DefaultSignature = "Unknown"

// Categories returns the fixed category set in display order.
func Categories() []string {
	return []string{
		CategoryChicken,
		CategoryBeef,
		CategoryPasta,
		CategorySeafood,
		CategoryVegetarian,
		CategoryMacroFriendly,
		CategoryDesserts,
		CategoryOther,
	}
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// CommaSeparatedList is a custom type for handling ingredient lists stored
// as a single comma-joined TEXT column.
type CommaSeparatedList []string

// Value implements the driver.Valuer interface
func (l CommaSeparatedList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

// Scan implements the sql.Scanner interface. Splitting drops empty and
// whitespace-only entries, so scanning an already-clean column is a no-op.
func (l *CommaSeparatedList) Scan(value interface{}) error {
	if value == nil {
		*l = CommaSeparatedList{}
		return nil
	}

	var s string
	switch v := value.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("cannot scan %T into CommaSeparatedList", value)
	}

	*l = SplitIngredients(s)
	return nil
}

// SplitIngredients splits a comma-joined ingredient string into trimmed,
// non-empty items.
func SplitIngredients(s string) CommaSeparatedList {
	out := CommaSeparatedList{}
	for _, part := range strings.Split(s, ",") {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}

type Recipe struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Name         string             `gorm:"size:255;not null" json:"name"`
	Category     string             `gorm:"size:50" json:"category"`
	Signature    string             `gorm:"size:255" json:"signature"`
	Ingredients  CommaSeparatedList `gorm:"type:text" json:"ingredients"`
	Instructions string             `gorm:"type:text" json:"instructions"`
	PrepTime     int                `gorm:"not null;default:0" json:"prep_time"`
	CookTime     int                `gorm:"not null;default:0" json:"cook_time"`
	IsFavorite   bool               `gorm:"not null;default:false" json:"is_favorite"`
	UserID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
}

// BeforeCreate assigns the server-side id.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Normalize applies the read-side defaults: blank signature becomes
// "Unknown", unknown categories become "Other", times are clamped to
// non-negative. Normalizing an already-normalized recipe changes nothing.
func (r *Recipe) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Instructions = strings.TrimSpace(r.Instructions)
	if strings.TrimSpace(r.Signature) == "" {
		r.Signature = DefaultSignature
	}
	if !ValidCategory(r.Category) {
		r.Category = CategoryOther
	}
	if r.PrepTime < 0 {
		r.PrepTime = 0
	}
	if r.CookTime < 0 {
		r.CookTime = 0
	}
	if r.Ingredients == nil {
		r.Ingredients = CommaSeparatedList{}
	}
}
