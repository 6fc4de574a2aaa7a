package routes

import (
	"ekoclub-backend/handlers/chapters"
	"ekoclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ChaptersRoutes(r *gin.Engine) {
	r.GET("/chapters", chapters.GetAllChapters)
	r.GET("/chapters/:id", chapters.GetChapterByID)

	chaptersPrivateRoutes := r.Group("/chapters")
	chaptersPrivateRoutes.Use(middleware.JWTAuth())
	chaptersPrivateRoutes.Use(middleware.AdminAuth())
	{
		chaptersPrivateRoutes.POST("", chapters.CreateChapter)
		chaptersPrivateRoutes.PUT("/:id", chapters.UpdateChapter)
		chaptersPrivateRoutes.DELETE("/:id", chapters.DeleteChapter)
	}
}
