package routes

import (
	"ekoclub-backend/handlers/meetings"
	"ekoclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func MeetingsRoutes(r *gin.Engine) {
	meetingsRoutes := r.Group("/meetings")
	meetingsRoutes.Use(middleware.JWTAuth())
	meetingsRoutes.Use(middleware.AdminAuth())
	{
		meetingsRoutes.GET("", meetings.GetAllMeetings)
		meetingsRoutes.POST("", meetings.CreateMeeting)
		meetingsRoutes.PUT("/:id", meetings.UpdateMeeting)
		meetingsRoutes.DELETE("/:id", meetings.DeleteMeeting)
	}
}
