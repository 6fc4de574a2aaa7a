package routes

import (
	"ekoclub-backend/handlers/events"
	"ekoclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func EventsRoutes(r *gin.Engine) {
	// Public pages read events without authentication
	r.GET("/events", events.GetAllEvents)
	r.GET("/events/:id", events.GetEventByID)

	eventsPrivateRoutes := r.Group("/events")
	eventsPrivateRoutes.Use(middleware.JWTAuth())
	eventsPrivateRoutes.Use(middleware.AdminAuth())
	{
		eventsPrivateRoutes.POST("", events.CreateEvent)
		eventsPrivateRoutes.PUT("/:id", events.UpdateEvent)
		eventsPrivateRoutes.DELETE("/:id", events.DeleteEvent)
		eventsPrivateRoutes.POST("/:id/image", events.UploadEventImage)
	}
}
