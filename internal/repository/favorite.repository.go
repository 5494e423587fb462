package repository

import (
	"gorm.io/gorm"

	"recipebox/internal/models"
)

type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	Exists(userID, recipeID uint) (bool, error)
	Delete(userID, recipeID uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db}
}

func (r *favoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *favoriteRepository) Exists(userID, recipeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes the user's favorite row; gorm.ErrRecordNotFound when the
// recipe was never favorited.
func (r *favoriteRepository) Delete(userID, recipeID uint) error {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
