package routes

import (
	"ekoclub-backend/handlers/invites"
	"ekoclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func InvitesRoutes(r *gin.Engine) {
	// Validation is public: the registration page checks the code before submit
	r.GET("/invite-codes/validate/:code", invites.ValidateInviteCode)

	invitesPrivateRoutes := r.Group("/invite-codes")
	invitesPrivateRoutes.Use(middleware.JWTAuth())
	invitesPrivateRoutes.Use(middleware.AdminAuth())
	{
		invitesPrivateRoutes.GET("", invites.GetAllInviteCodes)
		invitesPrivateRoutes.POST("", invites.CreateInviteCode)
		invitesPrivateRoutes.DELETE("/:id", invites.DeleteInviteCode)
	}
}
