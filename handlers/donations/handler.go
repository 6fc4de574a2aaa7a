package donations

import (
	"net/http"

	"ekoclub-backend/db"
	"ekoclub-backend/models"
	"ekoclub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Record a one-time donation
// @Description Record a completed one-time donation in the payment ledger. The charge itself happens in the client side gateway flow.
// @Tags donations
// @Accept json
// @Produce json
// @Param donation body models.PaymentCreate true "Donation information"
// @Success 201 {object} map[string]interface{} "message: Donation recorded successfully, id: payment ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /donations [post]
func CreateDonation(c *gin.Context) {
	var input models.PaymentCreate

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

	payment := models.Payment{
		Name:                 input.Name,
		Email:                input.Email,
		Amount:               input.Amount,
		Currency:             currency,
		PaymentMethod:        input.PaymentMethod,
		TransactionReference: input.TransactionReference,
		Status:               "success",
		DonationType:         models.DonationOneTime,
	}

	result := db.DB.Create(&payment)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Donation recorded successfully",
		"id":      payment.ID,
	})
}

// @Summary List donations
// @Description List the payment ledger, optionally filtered by donation type (admin)
// @Tags donations
// @Produce json
// @Param donationType query string false "Donation type filter (one-time, recurring)"
// @Security BearerAuth
// @Success 200 {array} models.Payment
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /donations [get]
func GetAllDonations(c *gin.Context) {
	var payments []models.Payment

	query := db.DB.Order("created_at DESC")
	if donationType := c.Query("donationType"); donationType != "" {
		query = query.Where("donation_type = ?", donationType)
	}

	if err := query.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}
