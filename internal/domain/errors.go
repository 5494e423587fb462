package domain

import (
	"errors"
	"fmt"
)

// ValidationError carries a machine-readable reason alongside the message.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrMissingTags         = &ValidationError{Reason: "missing_tags", Message: "at least one tag is required"}
	ErrMissingIngredients  = &ValidationError{Reason: "missing_ingredients", Message: "at least one ingredient is required"}
	ErrDuplicateIngredient = &ValidationError{Reason: "duplicate_ingredient", Message: "duplicate ingredients are not allowed"}
	ErrInvalidAmount       = &ValidationError{Reason: "invalid_amount", Message: "amount must be at least 0.1"}
	ErrAmountPrecision     = &ValidationError{Reason: "invalid_amount", Message: "amount cannot have more than 2 decimal places"}
)

// NewUnknownTagError reports a payload referencing a tag that does not
// exist in storage.
func NewUnknownTagError(id uint) *ValidationError {
	return &ValidationError{
		Reason:  "unknown_tag",
		Message: fmt.Sprintf("tag with id %d does not exist", id),
	}
}

// NewUnknownIngredientError reports a payload referencing an ingredient
// that does not exist in storage.
func NewUnknownIngredientError(id uint) *ValidationError {
	return &ValidationError{
		Reason:  "unknown_ingredient",
		Message: fmt.Sprintf("ingredient with id %d does not exist", id),
	}
}

var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrForbidden        = errors.New("user not allowed")
	ErrNotFound         = errors.New("not found")
	ErrAlreadyFavorited = errors.New("recipe already in favorites")
)
