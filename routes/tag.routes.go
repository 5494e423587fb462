package routes

import (
	"github.com/gin-gonic/gin"

	"recipebox/internal/controllers"
	"recipebox/internal/middleware"
)

func RegisterTagRoutes(router *gin.Engine, tagController *controllers.TagController) {
	tagRoutes := router.Group("/tags")
	{
		tagRoutes.GET("/", tagController.GetAllTags)
		tagRoutes.GET("/:id", tagController.GetTagByID)
		tagRoutes.POST("/", middleware.AuthMiddleware(), tagController.CreateTag)
		tagRoutes.PUT("/:id", middleware.AuthMiddleware(), tagController.UpdateTag)
		tagRoutes.PATCH("/:id", middleware.AuthMiddleware(), tagController.UpdateTag)
		tagRoutes.DELETE("/:id", middleware.AuthMiddleware(), tagController.DeleteTag)
	}
}
