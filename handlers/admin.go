package handlers

import (
	"net/http"

	"mealconnect-api/config"
	"mealconnect-api/middleware"
	"mealconnect-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminStats computes the dashboard overview. Pure function of current
// store contents, recomputed per request.
func AdminStats(c *gin.Context) {
	db := config.DB

	var users []models.User
	db.Find(&users)
	byRole := map[string]int{}
	for _, u := range users {
		byRole[string(u.Role)]++
	}

	var restaurantTotal int64
	db.Model(&models.Restaurant{}).Count(&restaurantTotal)

	var itemTotal, itemActive int64
	db.Model(&models.MenuItem{}).Count(&itemTotal)
	db.Model(&models.MenuItem{}).Where("status = ?", models.ItemAvailable).Count(&itemActive)

	var pickupTotal, pickupPending, pickupCompleted int64
	db.Model(&models.PickupRequest{}).Count(&pickupTotal)
	db.Model(&models.PickupRequest{}).Where("status = ?", models.PickupPending).Count(&pickupPending)
	db.Model(&models.PickupRequest{}).Where("status = ?", models.PickupCompleted).Count(&pickupCompleted)

	var volunteerTotal, volunteerVerified int64
	db.Model(&models.VolunteerApplication{}).Count(&volunteerTotal)
	db.Model(&models.VolunteerApplication{}).Where("status = ?", models.VolunteerVerified).Count(&volunteerVerified)

	var partnershipTotal, partnershipPending, partnershipActive int64
	db.Model(&models.Partnership{}).Count(&partnershipTotal)
	db.Model(&models.Partnership{}).Where("status = ?", models.PartnershipPending).Count(&partnershipPending)
	db.Model(&models.Partnership{}).Where("status = ?", models.PartnershipActive).Count(&partnershipActive)

	var donationAmount float64
	db.Model(&models.Donation{}).
		Where("payment_status = ?", models.DonationPaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&donationAmount)
	var standaloneDonations, donationCompleted, donationPending int64
	db.Model(&models.Donation{}).Where("pickup_request_id IS NULL").Count(&standaloneDonations)
	db.Model(&models.Donation{}).Where("payment_status = ?", models.DonationPaymentCompleted).Count(&donationCompleted)
	db.Model(&models.Donation{}).Where("payment_status = ?", models.DonationPaymentPending).Count(&donationPending)

	c.JSON(http.StatusOK, gin.H{
		"users":       gin.H{"total": len(users), "byRole": byRole},
		"restaurants": gin.H{"total": restaurantTotal},
		"menuItems":   gin.H{"total": itemTotal, "active": itemActive},
		"pickups":     gin.H{"total": pickupTotal, "pending": pickupPending, "completed": pickupCompleted},
		"volunteers":  gin.H{"total": volunteerTotal, "verified": volunteerVerified},
		"partnerships": gin.H{
			"total": partnershipTotal, "pending": partnershipPending, "active": partnershipActive,
		},
		"donations": gin.H{
			"totalAmount":              donationAmount,
			"totalStandaloneDonations": standaloneDonations,
			"completed":                donationCompleted,
			"pending":                  donationPending,
		},
	})
}

// ── Listings ────────────────────────────────────────────────────────────────

func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

func AdminGetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	config.DB.Preload("Owner").Preload("MenuItems").Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

func AdminGetAllMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

func AdminGetAllPickups(c *gin.Context) {
	var pickups []models.PickupRequest
	query := config.DB.Preload("Items").Preload("Requester")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&pickups)
	c.JSON(http.StatusOK, gin.H{"count": len(pickups), "pickups": pickups})
}

func AdminGetAllVolunteers(c *gin.Context) {
	var applications []models.VolunteerApplication
	query := config.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&applications)
	c.JSON(http.StatusOK, gin.H{"count": len(applications), "volunteers": applications})
}

func AdminGetAllPartnerships(c *gin.Context) {
	var partnerships []models.Partnership
	query := config.DB.Preload("Approver")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&partnerships)
	c.JSON(http.StatusOK, gin.H{"count": len(partnerships), "partnerships": partnerships})
}

func AdminGetAllDonations(c *gin.Context) {
	var donations []models.Donation
	query := config.DB.Preload("Donor")
	if status := c.Query("payment_status"); status != "" {
		query = query.Where("payment_status = ?", status)
	}
	query.Order("created_at desc").Find(&donations)
	c.JSON(http.StatusOK, gin.H{"count": len(donations), "donations": donations})
}

// ── Users ───────────────────────────────────────────────────────────────────

type UpdateUserRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required"`
}

// AdminUpdateUserRole changes a user's role. Roles are fixed at
// registration and mutable only here.
func AdminUpdateUserRole(c *gin.Context) {
	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role is required"})
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role. Must be one of: user, ngo, restaurant, admin"})
		return
	}
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	config.DB.Model(&user).Update("role", req.Role)
	c.JSON(http.StatusOK, gin.H{"message": "User role updated", "user": user})
}

// AdminDeleteUser removes a user and, if they own a restaurant, the
// restaurant and its items in the same transaction.
func AdminDeleteUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Where("owner_id = ?", user.ID).First(&restaurant).Error; err == nil {
			if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.MenuItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&restaurant).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ── Restaurants & items ─────────────────────────────────────────────────────

// AdminDeleteRestaurant removes a restaurant and its menu items atomically
func AdminDeleteRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}
	if err := deleteRestaurantCascade(config.DB, restaurant.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant and its items deleted"})
}

// ── Volunteers ──────────────────────────────────────────────────────────────

type UpdateVolunteerStatusRequest struct {
	Status models.VolunteerStatus `json:"status" binding:"required"`
}

func AdminUpdateVolunteerStatus(c *gin.Context) {
	var req UpdateVolunteerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}
	if !models.ValidVolunteerStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status. Must be one of: submitted, verified, rejected"})
		return
	}
	var application models.VolunteerApplication
	if err := config.DB.First(&application, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		return
	}
	config.DB.Model(&application).Update("status", req.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Volunteer status updated", "application": application})
}

func AdminDeleteVolunteer(c *gin.Context) {
	var application models.VolunteerApplication
	if err := config.DB.First(&application, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		return
	}
	config.DB.Delete(&application)
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}

// ── Partnerships ────────────────────────────────────────────────────────────

type UpdatePartnershipStatusRequest struct {
	Status models.PartnershipStatus `json:"status" binding:"required"`
	Notes  string                   `json:"notes"`
}

// AdminUpdatePartnershipStatus reviews a partnership application and
// records which admin acted on it.
func AdminUpdatePartnershipStatus(c *gin.Context) {
	var req UpdatePartnershipStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}
	if !models.ValidPartnershipStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status. Must be one of: pending, approved, rejected, active, inactive"})
		return
	}
	var partnership models.Partnership
	if err := config.DB.First(&partnership, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Partnership not found"})
		return
	}

	adminID := middleware.GetUserID(c)
	update := map[string]interface{}{"status": req.Status, "approver_id": adminID}
	if req.Notes != "" {
		update["notes"] = req.Notes
	}
	config.DB.Model(&partnership).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Partnership status updated", "partnership": partnership})
}

func AdminDeletePartnership(c *gin.Context) {
	var partnership models.Partnership
	if err := config.DB.First(&partnership, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Partnership not found"})
		return
	}
	config.DB.Delete(&partnership)
	c.JSON(http.StatusOK, gin.H{"message": "Partnership deleted"})
}

// ── Donations ───────────────────────────────────────────────────────────────

type UpdateDonationStatusRequest struct {
	PaymentStatus models.DonationPaymentStatus `json:"payment_status"`
	Status        models.DonationStatus        `json:"status"`
	Notes         string                       `json:"notes"`
}

// AdminUpdateDonationStatus updates either or both of a donation's
// payment status and record status.
func AdminUpdateDonationStatus(c *gin.Context) {
	var req UpdateDonationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.PaymentStatus == "" && req.Status == "" && req.Notes == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}
	update := map[string]interface{}{}
	if req.PaymentStatus != "" {
		if !models.ValidDonationPaymentStatus(req.PaymentStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment status. Must be one of: pending, completed, failed, refunded"})
			return
		}
		update["payment_status"] = req.PaymentStatus
	}
	if req.Status != "" {
		if !models.ValidDonationStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status. Must be one of: active, cancelled, refunded"})
			return
		}
		update["status"] = req.Status
	}
	if req.Notes != "" {
		update["notes"] = req.Notes
	}

	var donation models.Donation
	if err := config.DB.First(&donation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Donation not found"})
		return
	}
	config.DB.Model(&donation).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Donation updated", "donation": donation})
}

func AdminDeleteDonation(c *gin.Context) {
	var donation models.Donation
	if err := config.DB.First(&donation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Donation not found"})
		return
	}
	config.DB.Delete(&donation)
	c.JSON(http.StatusOK, gin.H{"message": "Donation deleted"})
}
