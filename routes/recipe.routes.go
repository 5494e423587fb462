package routes

import (
	"github.com/gin-gonic/gin"

	"recipebox/internal/controllers"
	"recipebox/internal/middleware"
)

func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController) {
	recipeRoutes := router.Group("/recipes")
	{
		// Public reads still parse a token when present so the favorited
		// flag can be personalized.
		recipeRoutes.GET("/", middleware.OptionalAuthMiddleware(), recipeController.GetAllRecipes)
		recipeRoutes.GET("/:id", middleware.OptionalAuthMiddleware(), recipeController.GetRecipeByID)

		recipeRoutes.POST("/", middleware.AuthMiddleware(), recipeController.CreateRecipe)
		recipeRoutes.PUT("/:id", middleware.AuthMiddleware(), recipeController.UpdateRecipe)
		recipeRoutes.PATCH("/:id", middleware.AuthMiddleware(), recipeController.UpdateRecipe)
		recipeRoutes.DELETE("/:id", middleware.AuthMiddleware(), recipeController.DeleteRecipe)

		recipeRoutes.POST("/:id/favorite", middleware.AuthMiddleware(), recipeController.FavoriteRecipe)
		recipeRoutes.DELETE("/:id/favorite", middleware.AuthMiddleware(), recipeController.UnfavoriteRecipe)
		recipeRoutes.POST("/:id/rating", middleware.AuthMiddleware(), recipeController.RateRecipe)
		recipeRoutes.DELETE("/:id/rating", middleware.AuthMiddleware(), recipeController.DeleteRating)

		recipeRoutes.POST("/shopping_list", middleware.AuthMiddleware(), recipeController.ShoppingList)
	}
}
