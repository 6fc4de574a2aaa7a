package routes

import (
	"ekoclub-backend/handlers/subscribers"
	"ekoclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SubscribersRoutes(r *gin.Engine) {
	r.POST("/subscribers", subscribers.CreateSubscriber)

	subscribersPrivateRoutes := r.Group("/subscribers")
	subscribersPrivateRoutes.Use(middleware.JWTAuth())
	subscribersPrivateRoutes.Use(middleware.AdminAuth())
	{
		subscribersPrivateRoutes.GET("", subscribers.GetAllSubscribers)
		subscribersPrivateRoutes.DELETE("/:id", subscribers.DeleteSubscriber)
	}
}
