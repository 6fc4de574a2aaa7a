package meetings

import (
	"errors"
	"net/http"

	"ekoclub-backend/db"
	"ekoclub-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary List meetings
// @Description List meetings, most recent first (admin)
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Meeting
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /meetings [get]
func GetAllMeetings(c *gin.Context) {
	var meetings []models.Meeting

	if err := db.DB.Order("date DESC").Find(&meetings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meetings)
}

// @Summary Create a meeting
// @Description Create a meeting entry (admin)
// @Tags meetings
// @Accept json
// @Produce json
// @Param meeting body models.MeetingCreate true "Meeting information"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message: Meeting created successfully, id: meeting ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Router /meetings [post]
func CreateMeeting(c *gin.Context) {
	var input models.MeetingCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	meeting := models.Meeting{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		MinutesURL:  input.MinutesURL,
	}

	result := db.DB.Create(&meeting)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meeting created successfully",
		"id":      meeting.ID,
	})
}

// @Summary Update a meeting
// @Description Update a meeting entry (admin)
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param meeting body models.MeetingCreate true "Meeting information"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Meeting updated successfully"
// @Failure 404 {object} map[string]interface{} "error: Meeting not found"
// @Router /meetings/{id} [put]
func UpdateMeeting(c *gin.Context) {
	var input models.MeetingCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var meeting models.Meeting
	if err := db.DB.First(&meeting, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Model(&meeting).Updates(map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"date":        input.Date,
		"location":    input.Location,
		"minutes_url": input.MinutesURL,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meeting updated successfully"})
}

// @Summary Delete a meeting
// @Description Delete a meeting entry (admin)
// @Tags meetings
// @Produce json
// @Param id path string true "Meeting ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Meeting deleted successfully"
// @Failure 404 {object} map[string]interface{} "error: Meeting not found"
// @Router /meetings/{id} [delete]
func DeleteMeeting(c *gin.Context) {
	var meeting models.Meeting
	if err := db.DB.First(&meeting, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Delete(&meeting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted successfully"})
}
