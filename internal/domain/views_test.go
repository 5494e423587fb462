package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recipebox/internal/domain"
	"recipebox/internal/models"
)

func TestRecipeListViewAverageRating(t *testing.T) {
	recipe := models.Recipe{
		Ratings: []models.Rating{{Value: 3}, {Value: 5}},
	}

	view := domain.NewRecipeListView(recipe, 0)

	if assert.NotNil(t, view.AvgRating) {
		assert.Equal(t, 4.0, *view.AvgRating)
	}
}

// An unrated recipe reports no average at all, never zero.
func TestRecipeListViewNoRatings(t *testing.T) {
	view := domain.NewRecipeListView(models.Recipe{}, 0)
	assert.Nil(t, view.AvgRating)
}

func TestRecipeListViewFavoritedFlag(t *testing.T) {
	recipe := models.Recipe{
		Favorites: []models.Favorite{{UserID: 7}},
	}

	assert.True(t, domain.NewRecipeListView(recipe, 7).IsFavorited)
	assert.False(t, domain.NewRecipeListView(recipe, 8).IsFavorited)
	// Anonymous requester never sees a favorited flag.
	assert.False(t, domain.NewRecipeListView(recipe, 0).IsFavorited)
}

func TestRecipeListViewCommentsCount(t *testing.T) {
	recipe := models.Recipe{
		Comments: []models.Comment{{Text: "a"}, {Text: "b"}, {Text: "c"}},
	}

	view := domain.NewRecipeListView(recipe, 0)

	assert.Equal(t, 3, view.CommentsCount)
}

func TestRecipeDetailViewShapesGraph(t *testing.T) {
	recipe := models.Recipe{
		ID:    1,
		Steps: []string{"Mix.", "Bake."},
		RecipeIngredients: []models.RecipeIngredient{
			{ID: 10, IngredientID: 2, Ingredient: models.Ingredient{ID: 2, Name: "flour", Unit: "g"}},
		},
		Comments: []models.Comment{
			{ID: 5, Text: "Nice", Author: models.User{ID: 3, Username: "sam"}},
		},
	}

	view := domain.NewRecipeDetailView(recipe, 0)

	assert.Equal(t, []string{"Mix.", "Bake."}, view.Steps)
	if assert.Len(t, view.RecipeIngredients, 1) {
		assert.Equal(t, uint(2), view.RecipeIngredients[0].IngredientID)
		assert.Equal(t, "flour", view.RecipeIngredients[0].Ingredient.Name)
	}
	if assert.Len(t, view.Comments, 1) {
		assert.Equal(t, "sam", view.Comments[0].Author.Username)
	}
	assert.Equal(t, 1, view.CommentsCount)
}

func TestRecipeDetailViewEmptyCollections(t *testing.T) {
	view := domain.NewRecipeDetailView(models.Recipe{}, 0)

	// Empty slices, not nulls, in the JSON output.
	assert.NotNil(t, view.Steps)
	assert.NotNil(t, view.RecipeIngredients)
	assert.NotNil(t, view.Comments)
	assert.NotNil(t, view.Tags)
}
