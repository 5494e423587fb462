package routes

import (
	"github.com/gin-gonic/gin"

	"recipebox/internal/controllers"
	"recipebox/internal/middleware"
)

func RegisterIngredientRoutes(router *gin.Engine, ingredientController *controllers.IngredientController) {
	ingredientRoutes := router.Group("/ingredients")
	{
		ingredientRoutes.GET("/", ingredientController.GetAllIngredients)
		ingredientRoutes.GET("/:id", ingredientController.GetIngredientByID)
		ingredientRoutes.POST("/", middleware.AuthMiddleware(), ingredientController.CreateIngredient)
		ingredientRoutes.PUT("/:id", middleware.AuthMiddleware(), ingredientController.UpdateIngredient)
		ingredientRoutes.PATCH("/:id", middleware.AuthMiddleware(), ingredientController.UpdateIngredient)
		ingredientRoutes.DELETE("/:id", middleware.AuthMiddleware(), ingredientController.DeleteIngredient)
	}
}
