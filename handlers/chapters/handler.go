package chapters

import (
	"errors"
	"net/http"

	"ekoclub-backend/db"
	"ekoclub-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary List chapters
// @Tags chapters
// @Produce json
// @Success 200 {array} models.Chapter
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /chapters [get]
func GetAllChapters(c *gin.Context) {
	var chapters []models.Chapter

	if err := db.DB.Order("name ASC").Find(&chapters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, chapters)
}

// @Summary Get one chapter
// @Tags chapters
// @Produce json
// @Param id path string true "Chapter ID"
// @Success 200 {object} models.Chapter
// @Failure 404 {object} map[string]interface{} "error: Chapter not found"
// @Router /chapters/{id} [get]
func GetChapterByID(c *gin.Context) {
	var chapter models.Chapter

	if err := db.DB.First(&chapter, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, chapter)
}

// @Summary Create a chapter
// @Description Create a chapter (admin)
// @Tags chapters
// @Accept json
// @Produce json
// @Param chapter body models.ChapterCreate true "Chapter information"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message: Chapter created successfully, id: chapter ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Router /chapters [post]
func CreateChapter(c *gin.Context) {
	var input models.ChapterCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	chapter := models.Chapter{
		Name:        input.Name,
		City:        input.City,
		Country:     input.Country,
		Description: input.Description,
		President:   input.President,
		Email:       input.Email,
	}

	result := db.DB.Create(&chapter)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Chapter created successfully",
		"id":      chapter.ID,
	})
}

// @Summary Update a chapter
// @Description Update a chapter (admin)
// @Tags chapters
// @Accept json
// @Produce json
// @Param id path string true "Chapter ID"
// @Param chapter body models.ChapterCreate true "Chapter information"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Chapter updated successfully"
// @Failure 404 {object} map[string]interface{} "error: Chapter not found"
// @Router /chapters/{id} [put]
func UpdateChapter(c *gin.Context) {
	var input models.ChapterCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var chapter models.Chapter
	if err := db.DB.First(&chapter, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Model(&chapter).Updates(map[string]interface{}{
		"name":        input.Name,
		"city":        input.City,
		"country":     input.Country,
		"description": input.Description,
		"president":   input.President,
		"email":       input.Email,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chapter updated successfully"})
}

// @Summary Delete a chapter
// @Description Delete a chapter (admin)
// @Tags chapters
// @Produce json
// @Param id path string true "Chapter ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Chapter deleted successfully"
// @Failure 404 {object} map[string]interface{} "error: Chapter not found"
// @Router /chapters/{id} [delete]
func DeleteChapter(c *gin.Context) {
	var chapter models.Chapter
	if err := db.DB.First(&chapter, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Delete(&chapter).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chapter deleted successfully"})
}
