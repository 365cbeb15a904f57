package handlers

import (
	"net/http"

	"mealconnect-api/config"
	"mealconnect-api/middleware"
	"mealconnect-api/models"

	"github.com/gin-gonic/gin"
)

type ApplyPartnershipRequest struct {
	BusinessName string                 `json:"business_name" binding:"required"`
	ContactName  string                 `json:"contact_name"`
	Email        string                 `json:"email" binding:"required"`
	Phone        string                 `json:"phone"`
	Type         models.PartnershipType `json:"type" binding:"required"`
	Message      string                 `json:"message"`
}

// ApplyPartnership records a business's partnership application (public)
func ApplyPartnership(c *gin.Context) {
	var req ApplyPartnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Business name, email and type are required"})
		return
	}
	if !emailRegex.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}
	if !models.ValidPartnershipType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid type. Must be one of: food, logistics, ngo, sponsor"})
		return
	}

	partnership := models.Partnership{
		BusinessName: req.BusinessName,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        req.Phone,
		Type:         req.Type,
		Message:      req.Message,
		Status:       models.PartnershipPending,
	}
	if err := config.DB.Create(&partnership).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit application"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Partnership application submitted", "partnership": partnership})
}

// GetMyPartnerships returns applications matching the caller's email
func GetMyPartnerships(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var partnerships []models.Partnership
	config.DB.Where("email = ?", user.Email).Order("created_at desc").Find(&partnerships)
	c.JSON(http.StatusOK, gin.H{"count": len(partnerships), "partnerships": partnerships})
}
