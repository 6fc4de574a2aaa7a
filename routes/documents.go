package routes

import (
	"ekoclub-backend/handlers/documents"
	"ekoclub-backend/middleware"

	"github.com/gin-gonic/gin"
)

func DocumentsRoutes(r *gin.Engine) {
	r.GET("/documents", documents.GetAllDocuments)
	r.GET("/documents/:id", documents.GetDocumentByID)

	documentsPrivateRoutes := r.Group("/documents")
	documentsPrivateRoutes.Use(middleware.JWTAuth())
	documentsPrivateRoutes.Use(middleware.AdminAuth())
	{
		documentsPrivateRoutes.POST("", documents.CreateDocument)
		documentsPrivateRoutes.PUT("/:id", documents.UpdateDocument)
		documentsPrivateRoutes.DELETE("/:id", documents.DeleteDocument)
	}
}
