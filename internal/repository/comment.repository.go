package repository

import (
	"gorm.io/gorm"

	"recipebox/internal/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindAll(recipeID uint) ([]models.Comment, error)
	FindByID(id uint) (*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return err
	}
	// Reload with the author for response shaping.
	return r.db.Preload("Author").First(comment, comment.ID).Error
}

// FindAll lists comments newest-first; recipeID 0 means all recipes.
func (r *commentRepository) FindAll(recipeID uint) ([]models.Comment, error) {
	var comments []models.Comment
	query := r.db.Preload("Author").Order("created_at DESC")
	if recipeID != 0 {
		query = query.Where("recipe_id = ?", recipeID)
	}
	err := query.Find(&comments).Error
	return comments, err
}

func (r *commentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("Author").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
