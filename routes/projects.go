package routes

import (
	"ekoclub-backend/handlers/projects"
	"ekoclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ProjectsRoutes(r *gin.Engine) {
	r.GET("/projects", projects.GetAllProjects)
	r.GET("/projects/:id", projects.GetProjectByID)

	projectsPrivateRoutes := r.Group("/projects")
	projectsPrivateRoutes.Use(middleware.JWTAuth())
	projectsPrivateRoutes.Use(middleware.AdminAuth())
	{
		projectsPrivateRoutes.POST("", projects.CreateProject)
		projectsPrivateRoutes.PUT("/:id", projects.UpdateProject)
		projectsPrivateRoutes.DELETE("/:id", projects.DeleteProject)
		projectsPrivateRoutes.POST("/:id/image", projects.UploadProjectImage)
	}
}
