package routes

import (
	"github.com/gin-gonic/gin"

	"recipebox/internal/controllers"
	"recipebox/internal/middleware"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/users")
	{
		userRoutes.POST("/register", userController.Register)
		userRoutes.POST("/login", userController.Login)
		userRoutes.GET("/me", middleware.AuthMiddleware(), userController.Me)
	}
}
