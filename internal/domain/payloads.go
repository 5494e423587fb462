package domain

import "github.com/shopspring/decimal"

// IngredientAmount is one {ingredient id, amount} entry of a recipe payload.
// A zero Amount counts as absent and fails validation.
type IngredientAmount struct {
	IngredientID uint            `json:"ingredient"`
	Amount       decimal.Decimal `json:"amount"`
}

// RecipePayload is the write shape for recipe create and update. Pointer
// and slice fields distinguish "absent" from "zero": on update, absent
// fields leave the stored value untouched, while a supplied tag set or
// ingredient list fully replaces the existing associations.
type RecipePayload struct {
	Title       *string            `json:"title" binding:"omitempty,max=200"`
	Description *string            `json:"description"`
	Steps       []string           `json:"steps"`
	TimeMinutes *int               `json:"time_minutes" binding:"omitempty,min=1,max=600"`
	TagIDs      []uint             `json:"tag_ids"`
	Ingredients []IngredientAmount `json:"ingredients_data"`
}

type RatingPayload struct {
	Value int `json:"value" binding:"required,min=1,max=5" example:"5"`
}

// ShoppingListRequest selects the recipes to aggregate. An empty id list
// means "all recipes the requester has favorited".
type ShoppingListRequest struct {
	RecipeIDs []uint `json:"recipe_ids"`
}

type CommentPayload struct {
	RecipeID uint   `json:"recipe_id"`
	Text     string `json:"text" binding:"required"`
}

type RegisterPayload struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
