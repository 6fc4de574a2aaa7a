package documents

import (
	"errors"
	"net/http"

	"ekoclub-backend/db"
	"ekoclub-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary List documents
// @Description List documents, optionally filtered by category
// @Tags documents
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} models.Document
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /documents [get]
func GetAllDocuments(c *gin.Context) {
	var documents []models.Document

	query := db.DB.Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, documents)
}

// @Summary Get one document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} map[string]interface{} "error: Document not found"
// @Router /documents/{id} [get]
func GetDocumentByID(c *gin.Context) {
	var document models.Document

	if err := db.DB.First(&document, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, document)
}

// @Summary Create a document
// @Description Create a document entry (admin)
// @Tags documents
// @Accept json
// @Produce json
// @Param document body models.DocumentCreate true "Document information"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message: Document created successfully, id: document ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Router /documents [post]
func CreateDocument(c *gin.Context) {
	var input models.DocumentCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	document := models.Document{
		Title:       input.Title,
		Description: input.Description,
		FileURL:     input.FileURL,
		Category:    input.Category,
	}

	result := db.DB.Create(&document)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Document created successfully",
		"id":      document.ID,
	})
}

// @Summary Update a document
// @Description Update a document entry (admin)
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param document body models.DocumentCreate true "Document information"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Document updated successfully"
// @Failure 404 {object} map[string]interface{} "error: Document not found"
// @Router /documents/{id} [put]
func UpdateDocument(c *gin.Context) {
	var input models.DocumentCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var document models.Document
	if err := db.DB.First(&document, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Model(&document).Updates(map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"file_url":    input.FileURL,
		"category":    input.Category,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document updated successfully"})
}

// @Summary Delete a document
// @Description Delete a document entry (admin)
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Document deleted successfully"
// @Failure 404 {object} map[string]interface{} "error: Document not found"
// @Router /documents/{id} [delete]
func DeleteDocument(c *gin.Context) {
	var document models.Document
	if err := db.DB.First(&document, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Delete(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
