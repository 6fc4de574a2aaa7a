package subscriptions

import (
	"errors"
	"net/http"
	"time"

	"ekoclub-backend/db"
	"ekoclub-backend/models"
	"ekoclub-backend/payments"
	"ekoclub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Set up a recurring donation
// @Description Create a recurring donation agreement. The gateway token comes from the client side tokenization flow; the first charge happens one month later.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body models.SubscriptionCreate true "Subscription information"
// @Success 201 {object} map[string]interface{} "message: Subscription created successfully, id: subscription ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /subscriptions [post]
func CreateSubscription(c *gin.Context) {
	var input models.SubscriptionCreate

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

	if input.PaymentMethod != models.MethodPaystack &&
		input.PaymentMethod != models.MethodFlutterwave &&
		input.PaymentMethod != models.MethodPaypal {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported payment method"})
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}
	recognition := input.Recognition
	if recognition == "" {
		recognition = "public"
	}

	now := time.Now()
	subscription := models.Subscription{
		Name:            input.Name,
		Email:           input.Email,
		Amount:          input.Amount,
		Currency:        currency,
		PaymentMethod:   input.PaymentMethod,
		PaymentToken:    input.PaymentToken,
		Status:          models.SubscriptionActive,
		LastBillingDate: now,
		NextBillingDate: now.AddDate(0, 1, 0),
		Comment:         input.Comment,
		Recognition:     recognition,
	}

	result := db.DB.Create(&subscription)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Subscription created successfully",
		"id":      subscription.ID,
	})
}

// @Summary List subscriptions
// @Description List recurring donation agreements, optionally filtered by status (admin)
// @Tags subscriptions
// @Produce json
// @Param status query string false "Status filter (active, paused, cancelled)"
// @Security BearerAuth
// @Success 200 {array} models.Subscription
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /subscriptions [get]
func GetAllSubscriptions(c *gin.Context) {
	var subscriptions []models.Subscription

	query := db.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&subscriptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// @Summary Get one subscription
// @Description Get one recurring donation agreement (admin)
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Security BearerAuth
// @Success 200 {object} models.Subscription
// @Failure 404 {object} map[string]interface{} "error: Subscription not found"
// @Router /subscriptions/{id} [get]
func GetSubscriptionByID(c *gin.Context) {
	var subscription models.Subscription

	if err := db.DB.First(&subscription, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// @Summary Change a subscription status
// @Description Set a recurring donation agreement to active, paused or cancelled. Subscriptions are never deleted. (admin)
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param status body models.SubscriptionStatusUpdate true "New status"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Subscription status updated successfully"
// @Failure 400 {object} map[string]interface{} "error: Invalid status"
// @Failure 404 {object} map[string]interface{} "error: Subscription not found"
// @Router /subscriptions/{id}/status [patch]
func UpdateSubscriptionStatus(c *gin.Context) {
	var input models.SubscriptionStatusUpdate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if input.Status != models.SubscriptionActive &&
		input.Status != models.SubscriptionPaused &&
		input.Status != models.SubscriptionCancelled {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var subscription models.Subscription
	if err := db.DB.First(&subscription, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Model(&subscription).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.LogSuccess("Subscription " + subscription.ID + " status set to " + string(input.Status))
	c.JSON(http.StatusOK, gin.H{"message": "Subscription status updated successfully"})
}

// @Summary Run a billing sweep
// @Description Charge every active subscription whose next billing date has passed. Intended to be triggered by an external scheduler. (admin)
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "success: true, message: summary, results: report"
// @Failure 500 {object} map[string]interface{} "success: false, error: Error message"
// @Router /subscriptions/process-billing [post]
func ProcessBilling(c *gin.Context) {
	processor := payments.Default
	if processor == nil {
		utils.LogError(nil, "Billing processor not initialized in ProcessBilling")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Billing processor not initialized",
		})
		return
	}

	report, err := processor.Run()
	if err != nil {
		utils.LogError(err, "Billing sweep failed in ProcessBilling")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Billing sweep completed",
		"results": report,
	})
}
