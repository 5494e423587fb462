package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"recipebox/internal/domain"
	"recipebox/internal/models"
	"recipebox/internal/policy"
	"recipebox/internal/repository"
)

// ItemKey identifies one shopping list line. Grouping is by ingredient name
// and unit rather than ingredient id, so two ingredient records that share a
// name and unit merge into one line.
type ItemKey struct {
	Name string
	Unit string
}

func (k ItemKey) String() string {
	return fmt.Sprintf("%s (%s)", k.Name, k.Unit)
}

type ShoppingListService struct {
	recipes repository.RecipeRepository
}

func NewShoppingListService(recipes repository.RecipeRepository) *ShoppingListService {
	return &ShoppingListService{recipes: recipes}
}

// Build aggregates ingredient amounts across the selected recipes. When no
// ids are supplied, the selection is every recipe the requester favorited.
// Anonymous callers are rejected.
func (s *ShoppingListService) Build(identity policy.Identity, recipeIDs []uint) (map[ItemKey]decimal.Decimal, error) {
	if !identity.Authenticated {
		return nil, domain.ErrUnauthenticated
	}

	var (
		recipes []models.Recipe
		err     error
	)
	if len(recipeIDs) > 0 {
		recipes, err = s.recipes.FindByIDs(recipeIDs)
	} else {
		recipes, err = s.recipes.FindFavoritedBy(identity.UserID)
	}
	if err != nil {
		return nil, err
	}

	return Aggregate(recipes), nil
}

// Aggregate sums per-ingredient amounts with exact decimal arithmetic.
// Iteration order of the result is undefined; there is exactly one entry
// per distinct (name, unit) pair.
func Aggregate(recipes []models.Recipe) map[ItemKey]decimal.Decimal {
	totals := make(map[ItemKey]decimal.Decimal)
	for _, recipe := range recipes {
		for _, ri := range recipe.RecipeIngredients {
			key := ItemKey{Name: ri.Ingredient.Name, Unit: ri.Ingredient.Unit}
			totals[key] = totals[key].Add(ri.Amount)
		}
	}
	return totals
}
