package repository

import (
	"gorm.io/gorm"

	"recipebox/internal/models"
)

type IngredientRepository interface {
	Create(ingredient *models.Ingredient) error
	FindAll(search string) ([]models.Ingredient, error)
	FindByID(id uint) (*models.Ingredient, error)
	Exists(id uint) (bool, error)
	Update(ingredient *models.Ingredient) error
	Delete(id uint) error
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db}
}

func (r *ingredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

func (r *ingredientRepository) FindAll(search string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	query := r.db.Order("name")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	err := query.Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) FindByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Ingredient{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ingredientRepository) Update(ingredient *models.Ingredient) error {
	return r.db.Save(ingredient).Error
}

func (r *ingredientRepository) Delete(id uint) error {
	return r.db.Delete(&models.Ingredient{}, id).Error
}
