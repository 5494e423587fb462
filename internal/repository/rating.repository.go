package repository

import (
	"errors"

	"gorm.io/gorm"

	"recipebox/internal/models"
)

type RatingRepository interface {
	Upsert(userID, recipeID uint, value int) (*models.Rating, error)
	Delete(userID, recipeID uint) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db}
}

// Upsert creates the user's rating for the recipe, or overwrites the value
// in place when one already exists. There is never more than one row per
// (user, recipe).
func (r *ratingRepository) Upsert(userID, recipeID uint, value int) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rating = models.Rating{UserID: userID, RecipeID: recipeID, Value: value}
		if err := r.db.Create(&rating).Error; err != nil {
			return nil, err
		}
		return &rating, nil
	}
	if err != nil {
		return nil, err
	}
	rating.Value = value
	if err := r.db.Save(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// Delete removes the user's rating; gorm.ErrRecordNotFound when absent.
func (r *ratingRepository) Delete(userID, recipeID uint) error {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
