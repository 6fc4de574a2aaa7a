package invites

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"ekoclub-backend/db"
	"ekoclub-backend/models"
	"ekoclub-backend/utils"
	mailsmodels "ekoclub-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// @Summary Generate an invite code
// @Description Generate a registration invite code with a validity window; when an email is given the code is sent to it (admin)
// @Tags invites
// @Accept json
// @Produce json
// @Param invite body models.InviteCodeCreate true "Invite parameters"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message: Invite code created successfully, code: the code"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Router /invite-codes [post]
func CreateInviteCode(c *gin.Context) {
	var input models.InviteCodeCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if input.Email != "" && !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	role := input.Role
	if role == "" {
		role = models.MemberRole
	}
	validityDays := input.ValidityDays
	if validityDays <= 0 {
		validityDays = 14
	}

	createdBy := ""
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(string); ok {
			createdBy = id
		}
	}

	invite := models.InviteCode{
		Code:      strings.ToUpper(uuid.New().String()[:8]),
		Role:      role,
		ExpiresAt: time.Now().AddDate(0, 0, validityDays),
		CreatedBy: createdBy,
	}

	result := db.DB.Create(&invite)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	if input.Email != "" {
		mailsmodels.InviteCode(input.Email, invite.Code)
	}

	utils.LogSuccessWithUser(createdBy, "Invite code created in CreateInviteCode")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Invite code created successfully",
		"code":    invite.Code,
	})
}

// @Summary List invite codes
// @Description List invite codes, most recent first (admin)
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.InviteCode
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /invite-codes [get]
func GetAllInviteCodes(c *gin.Context) {
	var invites []models.InviteCode

	if err := db.DB.Order("created_at DESC").Find(&invites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, invites)
}

// @Summary Validate an invite code
// @Description Check whether an invite code can still be used for registration
// @Tags invites
// @Produce json
// @Param code path string true "Invite code"
// @Success 200 {object} map[string]interface{} "valid: true, role: granted role"
// @Failure 404 {object} map[string]interface{} "error: Invalid invite code"
// @Router /invite-codes/validate/{code} [get]
func ValidateInviteCode(c *gin.Context) {
	var invite models.InviteCode

	if err := db.DB.Where("code = ?", c.Param("code")).First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid invite code"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if invite.Used || time.Now().After(invite.ExpiresAt) {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"role":  invite.Role,
	})
}

// @Summary Revoke an invite code
// @Description Delete an invite code so it can no longer be used (admin)
// @Tags invites
// @Produce json
// @Param id path string true "Invite code ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message: Invite code revoked successfully"
// @Failure 404 {object} map[string]interface{} "error: Invite code not found"
// @Router /invite-codes/{id} [delete]
func DeleteInviteCode(c *gin.Context) {
	var invite models.InviteCode
	if err := db.DB.First(&invite, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invite code not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := db.DB.Delete(&invite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invite code revoked successfully"})
}
