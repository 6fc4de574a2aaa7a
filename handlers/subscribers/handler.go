package subscribers

import (
	"errors"
	"net/http"
	"time"

	"ekoclub-backend/db"
	"ekoclub-backend/models"
	"ekoclub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Subscribe to the newsletter
// @Description Add an email address to the subscriber list
// @Tags subscribers
// @Accept json
// @Produce json
// @Param subscriber body models.SubscriberCreate true "Subscriber information"
// @Success 201 {object} map[string]interface{} "message: Subscribed successfully, id: subscriber ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 409 {object} map[string]interface{} "error: Already subscribed"
// @Router /subscribers [post]
func CreateSubscriber(c *gin.Context) {
	var input models.SubscriberCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	var existing models.Subscriber
	if err := db.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already subscribed"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error when checking the email existence"})
		return
	}

	subscriber := models.Subscriber{
		Name:         input.Name,
		Email:        input.Email,
		SubscribedAt: time.Now(),
	}

	result := db.DB.Create(&subscriber)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Subscribed successfully",
		"id":      subscriber.ID,
	})
}

// @Summary List subscribers
// @Description List newsletter subscribers, most recent first (admin)
// @Tags subscribers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Subscriber
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /subscribers [get]
func GetAllSubscribers(c *gin.Context) {
	var subscribers []models.Subscriber

	if err := db.DB.Order("subscribed_at DESC").Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, subscribers)
}

// @Summary Remove a subscriber
// @Description Remove an email address from the subscriber list (admin)
// @Tags subscribers
// @Produce json
// @Param id path string true "Subscriber ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Subscriber removed successfully"
// @Failure 404 {object} map[string]interface{} "error: Subscriber not found"
// @Router /subscribers/{id} [delete]
func DeleteSubscriber(c *gin.Context) {
	var subscriber models.Subscriber
	if err := db.DB.First(&subscriber, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Delete(&subscriber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscriber removed successfully"})
}
