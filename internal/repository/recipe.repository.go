package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipebox/internal/domain"
	"recipebox/internal/models"
)

// RecipeFilter narrows and orders recipe listings. Zero values mean
// "no filtering" for the corresponding field.
type RecipeFilter struct {
	Search      string
	Ordering    string
	AuthorID    uint
	FavoritedBy uint
}

type RecipeRepository interface {
	Create(recipe *models.Recipe, tagIDs []uint, items []domain.IngredientAmount) error
	FindAll(filter RecipeFilter) ([]models.Recipe, error)
	FindByID(id uint) (*models.Recipe, error)
	FindByIDs(ids []uint) ([]models.Recipe, error)
	FindFavoritedBy(userID uint) ([]models.Recipe, error)
	Update(recipe *models.Recipe, tagIDs []uint, items []domain.IngredientAmount) error
	Delete(id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db}
}

// Create persists the recipe, its tag associations and its ingredient rows
// in one transaction.
func (r *recipeRepository) Create(recipe *models.Recipe, tagIDs []uint, items []domain.IngredientAmount) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		if err := replaceTags(tx, recipe, tagIDs); err != nil {
			return err
		}
		return insertIngredients(tx, recipe.ID, items)
	})
}

// Update saves the recipe's scalar fields and, when supplied, replaces the
// tag set and the ingredient list wholesale. A nil tagIDs or items leaves
// the existing associations untouched. Everything runs in one transaction,
// so a failure never leaves a partially replaced ingredient list.
func (r *recipeRepository) Update(recipe *models.Recipe, tagIDs []uint, items []domain.IngredientAmount) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}
		if tagIDs != nil {
			if err := replaceTags(tx, recipe, tagIDs); err != nil {
				return err
			}
		}
		if items != nil {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}
			if err := insertIngredients(tx, recipe.ID, items); err != nil {
				return err
			}
		}
		return nil
	})
}

// replaceTags swaps the recipe's tag set for the given ids. A missing tag
// aborts the transaction rather than silently shrinking the set; the
// payload is validated upfront, but a tag deleted concurrently would
// otherwise slip through.
func replaceTags(tx *gorm.DB, recipe *models.Recipe, tagIDs []uint) error {
	var tags []models.Tag
	if err := tx.Find(&tags, tagIDs).Error; err != nil {
		return err
	}
	if len(tags) != len(tagIDs) {
		found := make(map[uint]struct{}, len(tags))
		for _, tag := range tags {
			found[tag.ID] = struct{}{}
		}
		for _, id := range tagIDs {
			if _, ok := found[id]; !ok {
				return domain.NewUnknownTagError(id)
			}
		}
	}
	return tx.Model(recipe).Association("Tags").Replace(&tags)
}

func insertIngredients(tx *gorm.DB, recipeID uint, items []domain.IngredientAmount) error {
	for _, it := range items {
		row := models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: it.IngredientID,
			Amount:       it.Amount,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *recipeRepository) FindAll(filter RecipeFilter) ([]models.Recipe, error) {
	var recipes []models.Recipe
	query := r.db.Model(&models.Recipe{}).
		Preload("Author").
		Preload("Tags").
		Preload("Comments").
		Preload("Ratings").
		Preload("Favorites")

	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.AuthorID != 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.FavoritedBy != 0 {
		query = query.Joins(
			"JOIN favorites ON favorites.recipe_id = recipes.id AND favorites.user_id = ?",
			filter.FavoritedBy,
		)
	}

	err := query.Order(orderClause(filter.Ordering)).Find(&recipes).Error
	return recipes, err
}

// orderClause whitelists the client-supplied ordering; anything else falls
// back to newest-first.
func orderClause(ordering string) string {
	switch ordering {
	case "time_minutes":
		return "time_minutes ASC"
	case "-time_minutes":
		return "time_minutes DESC"
	case "created_at":
		return "created_at ASC"
	case "-created_at", "":
		return "created_at DESC"
	default:
		return "created_at DESC"
	}
}

func (r *recipeRepository) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.
		Preload("Author").
		Preload("Tags").
		Preload("RecipeIngredients.Ingredient").
		Preload("Comments.Author").
		Preload("Ratings").
		Preload("Favorites").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindByIDs(ids []uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.
		Preload("RecipeIngredients.Ingredient").
		Find(&recipes, ids).Error
	return recipes, err
}

func (r *recipeRepository) FindFavoritedBy(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.
		Preload("RecipeIngredients.Ingredient").
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id AND favorites.user_id = ?", userID).
		Find(&recipes).Error
	return recipes, err
}

// Delete removes the recipe; ingredient rows, comments, favorites and
// ratings go with it via the cascade constraints.
func (r *recipeRepository) Delete(id uint) error {
	return r.db.Select(clause.Associations).Delete(&models.Recipe{ID: id}).Error
}
