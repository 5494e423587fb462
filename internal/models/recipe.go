package models

import (
	"time"

	"gorm.io/datatypes"
)

type Recipe struct {
	ID          uint                        `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time                   `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time                   `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	AuthorID    uint                        `json:"author_id" example:"1"`
	Author      User                        `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Title       string                      `gorm:"size:200" json:"title" example:"Pancakes"`
	Description string                      `json:"description" example:"Fluffy breakfast pancakes."`
	Steps       datatypes.JSONSlice[string] `json:"steps"`
	TimeMinutes int                         `json:"time_minutes" example:"30"`

	Tags              []Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags"`
	RecipeIngredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"recipe_ingredients,omitempty"`
	Comments          []Comment          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Favorites         []Favorite         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Ratings           []Rating           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
