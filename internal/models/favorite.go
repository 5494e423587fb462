package models

import "time"

// Favorite is a user's bookmark of a recipe, at most one per pair.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UserID    uint      `gorm:"uniqueIndex:idx_favorite_user_recipe" json:"user_id" example:"1"`
	RecipeID  uint      `gorm:"uniqueIndex:idx_favorite_user_recipe" json:"recipe_id" example:"1"`
}
