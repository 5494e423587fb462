package models

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	RecipeID  uint      `json:"recipe_id" example:"1"`
	AuthorID  uint      `json:"author_id" example:"1"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Text      string    `json:"text" example:"Turned out great!"`
}
