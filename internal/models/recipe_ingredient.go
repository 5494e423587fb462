package models

import "github.com/shopspring/decimal"

// RecipeIngredient attaches a quantity to one ingredient within one recipe.
// A recipe cannot reference the same ingredient twice.
type RecipeIngredient struct {
	ID           uint            `gorm:"primaryKey" json:"id" example:"1"`
	RecipeID     uint            `gorm:"uniqueIndex:idx_recipe_ingredient" json:"-"`
	IngredientID uint            `gorm:"uniqueIndex:idx_recipe_ingredient" json:"ingredient_id" example:"1"`
	Ingredient   Ingredient      `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient"`
	Amount       decimal.Decimal `gorm:"type:decimal(5,2)" json:"amount" example:"200"`
}
