package utils

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"recipebox/internal/models"
)

var seedTags = []string{"breakfast", "dessert", "dinner", "vegan", "quick"}

var seedIngredients = []models.Ingredient{
	{Name: "flour", Unit: "g"},
	{Name: "sugar", Unit: "g"},
	{Name: "egg", Unit: "pcs"},
	{Name: "milk", Unit: "ml"},
	{Name: "butter", Unit: "g"},
	{Name: "salt", Unit: "g"},
}

// SeedUsers creates numUsers demo accounts with the shared test password.
func SeedUsers(db *gorm.DB, numUsers int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("recipebox-dev"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for i := 1; i <= numUsers; i++ {
		user := models.User{
			Username:     fmt.Sprintf("testuser%d", i),
			Email:        fmt.Sprintf("testuser%d@example.com", i),
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %d: %w", i, err)
		}
	}
	log.Printf("Seeded %d users", numUsers)
	return nil
}

// SeedCatalog creates the demo tags and ingredients, skipping any that
// already exist.
func SeedCatalog(db *gorm.DB) error {
	for _, name := range seedTags {
		tag := models.Tag{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&tag).Error; err != nil {
			return fmt.Errorf("failed to seed tag %q: %w", name, err)
		}
	}

	for _, ingredient := range seedIngredients {
		row := ingredient
		err := db.Where("name = ? AND unit = ?", row.Name, row.Unit).FirstOrCreate(&row).Error
		if err != nil {
			return fmt.Errorf("failed to seed ingredient %q: %w", row.Name, err)
		}
	}

	log.Printf("Seeded %d tags and %d ingredients", len(seedTags), len(seedIngredients))
	return nil
}

// SeedRecipes creates one demo recipe per seeded user using the catalog.
func SeedRecipes(db *gorm.DB) error {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return err
	}
	var tags []models.Tag
	if err := db.Limit(2).Find(&tags).Error; err != nil {
		return err
	}
	var ingredients []models.Ingredient
	if err := db.Limit(3).Find(&ingredients).Error; err != nil {
		return err
	}
	if len(tags) == 0 || len(ingredients) == 0 {
		return fmt.Errorf("catalog is empty, run SeedCatalog first")
	}

	for i, user := range users {
		recipe := models.Recipe{
			AuthorID:    user.ID,
			Title:       fmt.Sprintf("Demo recipe %d", i+1),
			Description: "Seeded demo recipe.",
			Steps:       datatypes.JSONSlice[string]{"Mix everything.", "Cook until done."},
			TimeMinutes: 20 + 5*i,
		}
		if err := db.Create(&recipe).Error; err != nil {
			return fmt.Errorf("failed to seed recipe for user %d: %w", user.ID, err)
		}
		if err := db.Model(&recipe).Association("Tags").Replace(&tags); err != nil {
			return err
		}
		for j, ingredient := range ingredients {
			row := models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ingredient.ID,
				Amount:       decimal.NewFromInt(int64(50 * (j + 1))),
			}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		}
	}

	log.Printf("Seeded %d recipes", len(users))
	return nil
}

// CleanupTestUsers removes seeded accounts and everything they authored.
func CleanupTestUsers(db *gorm.DB) error {
	var users []models.User
	if err := db.Where("email LIKE ?", "testuser%@example.com").Find(&users).Error; err != nil {
		return err
	}
	for _, user := range users {
		if err := db.Where("author_id = ?", user.ID).Delete(&models.Recipe{}).Error; err != nil {
			return err
		}
		if err := db.Delete(&user).Error; err != nil {
			return err
		}
	}
	log.Printf("Removed %d test users", len(users))
	return nil
}
