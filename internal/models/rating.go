package models

import "time"

// Rating is a user's 1..5 score for a recipe. One row per (user, recipe);
// re-rating overwrites the value in place.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	UserID    uint      `gorm:"uniqueIndex:idx_rating_user_recipe" json:"user_id" example:"1"`
	RecipeID  uint      `gorm:"uniqueIndex:idx_rating_user_recipe" json:"recipe_id" example:"1"`
	Value     int       `json:"value" example:"5"`
}
