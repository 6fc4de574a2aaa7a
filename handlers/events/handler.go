package events

import (
	"errors"
	"net/http"

	"ekoclub-backend/db"
	"ekoclub-backend/models"
	"ekoclub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary List events
// @Description List events, optionally filtered by category or featured flag
// @Tags events
// @Produce json
// @Param category query string false "Category filter"
// @Param featured query boolean false "Only featured events"
// @Success 200 {array} models.Event
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /events [get]
func GetAllEvents(c *gin.Context) {
	var events []models.Event

	query := db.DB.Order("date DESC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	if err := query.Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

// @Summary Get one event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]interface{} "error: Event not found"
// @Router /events/{id} [get]
func GetEventByID(c *gin.Context) {
	var event models.Event

	if err := db.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, event)
}

// @Summary Create an event
// @Description Create an event (admin)
// @Tags events
// @Accept json
// @Produce json
// @Param event body models.EventCreate true "Event information"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message: Event created successfully, id: event ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /events [post]
func CreateEvent(c *gin.Context) {
	var input models.EventCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	event := models.Event{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Date:        input.Date,
		Category:    input.Category,
		Featured:    input.Featured,
	}

	result := db.DB.Create(&event)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"id":      event.ID,
	})
}

// @Summary Update an event
// @Description Update an event (admin)
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body models.EventCreate true "Event information"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Event updated successfully"
// @Failure 404 {object} map[string]interface{} "error: Event not found"
// @Router /events/{id} [put]
func UpdateEvent(c *gin.Context) {
	var input models.EventCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var event models.Event
	if err := db.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Model(&event).Updates(map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"location":    input.Location,
		"date":        input.Date,
		"category":    input.Category,
		"featured":    input.Featured,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

// @Summary Delete an event
// @Description Delete an event (admin)
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Event deleted successfully"
// @Failure 404 {object} map[string]interface{} "error: Event not found"
// @Router /events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	var event models.Event
	if err := db.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// @Summary Upload an event image
// @Description Upload the event image to Cloudinary and store its URL (admin)
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Event ID"
// @Param image formData file true "Image file"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Image uploaded successfully, imageUrl: URL"
// @Failure 400 {object} map[string]interface{} "error: Invalid file"
// @Failure 404 {object} map[string]interface{} "error: Event not found"
// @Router /events/{id}/image [post]
func UploadEventImage(c *gin.Context) {
	var event models.Event
	if err := db.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	imageURL, err := utils.UploadImage(file, "events")
	if err != nil {
		utils.LogError(err, "Image upload failed in UploadEventImage")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Model(&event).Update("image_url", imageURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Image uploaded successfully",
		"imageUrl": imageURL,
	})
}
