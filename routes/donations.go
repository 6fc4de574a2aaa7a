package routes

import (
	"ekoclub-backend/handlers/donations"
	"ekoclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func DonationsRoutes(r *gin.Engine) {
	r.POST("/donations", donations.CreateDonation)

	donationsPrivateRoutes := r.Group("/donations")
	donationsPrivateRoutes.Use(middleware.JWTAuth())
	donationsPrivateRoutes.Use(middleware.AdminAuth())
	{
		donationsPrivateRoutes.GET("", donations.GetAllDonations)
	}
}
