package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"recipebox/internal/models"
)

type UserView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func NewUserView(u models.User) UserView {
	return UserView{ID: u.ID, Username: u.Username, Email: u.Email}
}

type RecipeIngredientView struct {
	ID           uint              `json:"id"`
	Ingredient   models.Ingredient `json:"ingredient"`
	IngredientID uint              `json:"ingredient_id"`
	Amount       decimal.Decimal   `json:"amount"`
}

type CommentView struct {
	ID        uint      `json:"id"`
	Author    UserView  `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCommentView(c models.Comment) CommentView {
	return CommentView{
		ID:        c.ID,
		Author:    NewUserView(c.Author),
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// RecipeListView is the list shape: scalar fields plus derived values,
// without steps, ingredients or comments.
type RecipeListView struct {
	ID            uint         `json:"id"`
	Author        UserView     `json:"author"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Tags          []models.Tag `json:"tags"`
	TimeMinutes   int          `json:"time_minutes"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	AvgRating     *float64     `json:"avg_rating"`
	IsFavorited   bool         `json:"is_favorited"`
	CommentsCount int          `json:"comments_count"`
}

// RecipeDetailView adds the full recipe graph to the list shape.
type RecipeDetailView struct {
	RecipeListView
	Steps             []string               `json:"steps"`
	RecipeIngredients []RecipeIngredientView `json:"recipe_ingredients"`
	Comments          []CommentView          `json:"comments"`
}

// NewRecipeListView shapes a recipe for list output. requesterID is the
// authenticated caller's id, or 0 for anonymous callers; the favorited
// flag is always false for anonymous callers.
func NewRecipeListView(r models.Recipe, requesterID uint) RecipeListView {
	view := RecipeListView{
		ID:            r.ID,
		Author:        NewUserView(r.Author),
		Title:         r.Title,
		Description:   r.Description,
		Tags:          r.Tags,
		TimeMinutes:   r.TimeMinutes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		AvgRating:     averageRating(r.Ratings),
		CommentsCount: len(r.Comments),
	}
	if view.Tags == nil {
		view.Tags = []models.Tag{}
	}
	if requesterID != 0 {
		for _, f := range r.Favorites {
			if f.UserID == requesterID {
				view.IsFavorited = true
				break
			}
		}
	}
	return view
}

func NewRecipeDetailView(r models.Recipe, requesterID uint) RecipeDetailView {
	ingredients := make([]RecipeIngredientView, 0, len(r.RecipeIngredients))
	for _, ri := range r.RecipeIngredients {
		ingredients = append(ingredients, RecipeIngredientView{
			ID:           ri.ID,
			Ingredient:   ri.Ingredient,
			IngredientID: ri.IngredientID,
			Amount:       ri.Amount,
		})
	}
	comments := make([]CommentView, 0, len(r.Comments))
	for _, c := range r.Comments {
		comments = append(comments, NewCommentView(c))
	}
	steps := []string(r.Steps)
	if steps == nil {
		steps = []string{}
	}
	return RecipeDetailView{
		RecipeListView:    NewRecipeListView(r, requesterID),
		Steps:             steps,
		RecipeIngredients: ingredients,
		Comments:          comments,
	}
}

// averageRating returns nil when no ratings exist; an unrated recipe is
// reported as absent, never as zero.
func averageRating(ratings []models.Rating) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	avg := float64(sum) / float64(len(ratings))
	return &avg
}
