package routes

import (
	"ekoclub-backend/handlers/users"
	"ekoclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	usersRoutes := r.Group("/users")
	usersRoutes.Use(middleware.JWTAuth())
	usersRoutes.Use(middleware.AdminAuth())
	{
		usersRoutes.GET("", users.GetAllUsers)
		usersRoutes.GET("/:id", users.GetUserByID)
		usersRoutes.POST("", users.CreateUser)
		usersRoutes.PUT("/:id", users.UpdateUser)
		usersRoutes.DELETE("/:id", users.DeleteUser)
	}
}
