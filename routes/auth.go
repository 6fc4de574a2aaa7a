package routes

import (
	"ekoclub-backend/handlers/auth"
	"ekoclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.PUT("/password", middleware.JWTAuth(), auth.UpdatePassword)
}
