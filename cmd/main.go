package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"recipebox/database"
	"recipebox/internal/cache"
	"recipebox/internal/controllers"
	"recipebox/internal/repository"
	"recipebox/internal/services"
	"recipebox/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Redis is optional; without REDIS_URL tag reads go straight to the DB.
	redisClient, err := cache.NewClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, tag caching disabled: %v", err)
		redisClient = nil
	}

	var tagRepo repository.TagRepository
	if redisClient != nil {
		tagRepo = repository.NewCachedTagRepository(database.DB, redisClient)
		log.Println("Tag repository cache enabled")
	} else {
		tagRepo = repository.NewTagRepository(database.DB)
	}

	userRepo := repository.NewUserRepository(database.DB)
	ingredientRepo := repository.NewIngredientRepository(database.DB)
	recipeRepo := repository.NewRecipeRepository(database.DB)
	favoriteRepo := repository.NewFavoriteRepository(database.DB)
	ratingRepo := repository.NewRatingRepository(database.DB)
	commentRepo := repository.NewCommentRepository(database.DB)

	shoppingListService := services.NewShoppingListService(recipeRepo)

	userController := controllers.NewUserController(userRepo)
	tagController := controllers.NewTagController(tagRepo)
	ingredientController := controllers.NewIngredientController(ingredientRepo)
	recipeController := controllers.NewRecipeController(
		recipeRepo,
		tagRepo,
		ingredientRepo,
		favoriteRepo,
		ratingRepo,
		shoppingListService,
	)
	commentController := controllers.NewCommentController(commentRepo, recipeRepo)

	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterTagRoutes(router, tagController)
	routes.RegisterIngredientRoutes(router, ingredientController)
	routes.RegisterRecipeRoutes(router, recipeController)
	routes.RegisterCommentRoutes(router, commentController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
