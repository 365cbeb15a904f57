package handlers

import (
	"net/http"

	"mealconnect-api/config"
	"mealconnect-api/middleware"
	"mealconnect-api/models"

	"github.com/gin-gonic/gin"
)

type CreateDonationRequest struct {
	DonorName       string  `json:"donor_name"`
	DonorEmail      string  `json:"donor_email"`
	Amount          float64 `json:"amount" binding:"required"`
	Message         string  `json:"message"`
	PaymentMethod   string  `json:"payment_method" binding:"required"`
	PickupRequestID *uint   `json:"pickup_request_id"`
}

// CreateDonation records a monetary donation. Open to guests; when a valid
// token is present the donation is attributed to the account. No payment
// gateway is involved, payment status is a recorded field only.
func CreateDonation(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Amount and payment method are required"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Amount must be greater than zero"})
		return
	}
	if !models.ValidDonationPaymentMethod(req.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment method. Must be one of: card, upi, netbanking, cash"})
		return
	}

	donation := models.Donation{
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		Amount:        req.Amount,
		Message:       req.Message,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.DonationPaymentPending,
		Status:        models.DonationActive,
	}

	if user, ok := middleware.CurrentUser(c); ok {
		donation.DonorID = &user.ID
		if donation.DonorName == "" {
			donation.DonorName = user.Name
		}
		if donation.DonorEmail == "" {
			donation.DonorEmail = user.Email
		}
	}
	if donation.DonorName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Donor name is required"})
		return
	}

	if req.PickupRequestID != nil {
		var pickup models.PickupRequest
		if err := config.DB.First(&pickup, *req.PickupRequestID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Linked pickup request not found"})
			return
		}
		donation.PickupRequestID = req.PickupRequestID
	}

	if err := config.DB.Create(&donation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record donation"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Donation recorded", "donation": donation})
}

// GetMyDonations returns the caller's donations, matched by account id or
// by the account's email for donations made while logged out.
func GetMyDonations(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var donations []models.Donation
	config.DB.Where("donor_id = ? OR donor_email = ?", user.ID, user.Email).
		Order("created_at desc").
		Find(&donations)
	c.JSON(http.StatusOK, gin.H{"count": len(donations), "donations": donations})
}
