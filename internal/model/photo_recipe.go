package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PhotoRecipe is a recipe captured as an uploaded image plus a label.
// ImagePath is the bucket-internal key, kept so the blob can be removed
// when the row is retired.
type PhotoRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Label     string    `gorm:"size:255;not null" json:"label"`
	ImageURL  string    `gorm:"size:1024;not null" json:"image_url"`
	ImagePath string    `gorm:"size:512;not null" json:"image_path"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (PhotoRecipe) TableName() string {
	return "photo_recipes"
}

func (p *PhotoRecipe) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
