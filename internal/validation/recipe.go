package validation

import (
	"github.com/shopspring/decimal"

	"recipebox/internal/domain"
)

// ExistsFunc reports whether an id exists in storage. The repositories'
// Exists methods satisfy it.
type ExistsFunc func(id uint) (bool, error)

var minAmount = decimal.NewFromFloat(0.1)

// ValidateCreate checks a full recipe payload. Rules run in a fixed order
// and stop at the first failure: tags present, every referenced tag exists,
// ingredients present, no duplicate ingredient ids, every amount at least
// 0.1 with at most two decimal places, every referenced ingredient exists.
func ValidateCreate(p *domain.RecipePayload, tagExists, ingredientExists ExistsFunc) error {
	if len(p.TagIDs) == 0 {
		return domain.ErrMissingTags
	}
	if err := validateTags(p.TagIDs, tagExists); err != nil {
		return err
	}
	if len(p.Ingredients) == 0 {
		return domain.ErrMissingIngredients
	}
	return validateIngredients(p.Ingredients, ingredientExists)
}

// ValidateUpdate checks a partial payload: absent fields are skipped, but a
// supplied tag set or ingredient list must still satisfy the create rules.
func ValidateUpdate(p *domain.RecipePayload, tagExists, ingredientExists ExistsFunc) error {
	if p.TagIDs != nil {
		if len(p.TagIDs) == 0 {
			return domain.ErrMissingTags
		}
		if err := validateTags(p.TagIDs, tagExists); err != nil {
			return err
		}
	}
	if p.Ingredients == nil {
		return nil
	}
	if len(p.Ingredients) == 0 {
		return domain.ErrMissingIngredients
	}
	return validateIngredients(p.Ingredients, ingredientExists)
}

// validateTags rejects references to tags that do not exist; silently
// dropping them would let a recipe end up with no tags at all.
func validateTags(ids []uint, exists ExistsFunc) error {
	for _, id := range ids {
		ok, err := exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewUnknownTagError(id)
		}
	}
	return nil
}

func validateIngredients(items []domain.IngredientAmount, exists ExistsFunc) error {
	seen := make(map[uint]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.IngredientID]; dup {
			return domain.ErrDuplicateIngredient
		}
		seen[it.IngredientID] = struct{}{}
	}
	for _, it := range items {
		if it.Amount.LessThan(minAmount) {
			return domain.ErrInvalidAmount
		}
		if it.Amount.Exponent() < -2 {
			return domain.ErrAmountPrecision
		}
	}
	for _, it := range items {
		ok, err := exists(it.IngredientID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewUnknownIngredientError(it.IngredientID)
		}
	}
	return nil
}
