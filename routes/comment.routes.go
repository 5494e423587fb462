package routes

import (
	"github.com/gin-gonic/gin"

	"recipebox/internal/controllers"
	"recipebox/internal/middleware"
)

func RegisterCommentRoutes(router *gin.Engine, commentController *controllers.CommentController) {
	commentRoutes := router.Group("/comments")
	{
		commentRoutes.GET("/", commentController.GetAllComments)
		commentRoutes.GET("/:id", commentController.GetCommentByID)
		commentRoutes.POST("/", middleware.AuthMiddleware(), commentController.CreateComment)
		commentRoutes.PUT("/:id", middleware.AuthMiddleware(), commentController.UpdateComment)
		commentRoutes.PATCH("/:id", middleware.AuthMiddleware(), commentController.UpdateComment)
		commentRoutes.DELETE("/:id", middleware.AuthMiddleware(), commentController.DeleteComment)
	}
}
