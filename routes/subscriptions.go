package routes

import (
	"ekoclub-backend/handlers/subscriptions"
	"ekoclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SubscriptionsRoutes(r *gin.Engine) {
	r.POST("/subscriptions", subscriptions.CreateSubscription)

	subscriptionsPrivateRoutes := r.Group("/subscriptions")
	subscriptionsPrivateRoutes.Use(middleware.JWTAuth())
	subscriptionsPrivateRoutes.Use(middleware.AdminAuth())
	{
		subscriptionsPrivateRoutes.GET("", subscriptions.GetAllSubscriptions)
		subscriptionsPrivateRoutes.GET("/:id", subscriptions.GetSubscriptionByID)
		subscriptionsPrivateRoutes.PATCH("/:id/status", subscriptions.UpdateSubscriptionStatus)
		// Triggered by the external scheduler that owns the billing cadence
		subscriptionsPrivateRoutes.POST("/process-billing", subscriptions.ProcessBilling)
	}
}
