package handlers

import (
	"fmt"
	"net/http"

	"mealconnect-api/config"
	"mealconnect-api/middleware"
	"mealconnect-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreatePickupRequest struct {
	ContactPhone  string `json:"contact_phone"`
	Address       string `json:"address" binding:"required"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
	Items         []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// CreatePickup creates a pickup request for one or more surplus items,
// possibly spanning multiple restaurants. Item name/price are snapshotted
// and stock is decremented in the same transaction: an over-quantity line
// fails the whole request and changes nothing.
func CreatePickup(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req CreatePickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Address and at least one item are required"})
		return
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "none"
	}
	paymentStatus := models.PaymentNA
	if paymentMethod != "none" {
		paymentStatus = models.PaymentPending
	}

	pickup := models.PickupRequest{
		RequesterID:   user.ID,
		RequesterName: user.Name,
		ContactPhone:  req.ContactPhone,
		Address:       req.Address,
		Notes:         req.Notes,
		Status:        models.PickupPending,
		PaymentMethod: paymentMethod,
		PaymentStatus: paymentStatus,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var total float64
		var lines []models.PickupItem

		for _, reqItem := range req.Items {
			var item models.MenuItem
			if err := tx.First(&item, reqItem.MenuItemID).Error; err != nil {
				return fmt.Errorf("item %d not found", reqItem.MenuItemID)
			}
			if item.Status != models.ItemAvailable {
				return fmt.Errorf("item '%s' is not available", item.Name)
			}
			if reqItem.Quantity > item.Quantity {
				return fmt.Errorf("item '%s' has only %d left", item.Name, item.Quantity)
			}

			remaining := item.Quantity - reqItem.Quantity
			update := map[string]interface{}{"quantity": remaining}
			if remaining == 0 {
				update["status"] = models.ItemReserved
			}
			if err := tx.Model(&item).Updates(update).Error; err != nil {
				return err
			}

			total += item.Price * float64(reqItem.Quantity)
			lines = append(lines, models.PickupItem{
				RestaurantID: item.RestaurantID,
				MenuItemID:   item.ID,
				Name:         item.Name,
				Price:        item.Price,
				Quantity:     reqItem.Quantity,
			})
		}

		pickup.Items = lines
		pickup.TotalAmount = total
		return tx.Create(&pickup).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pickup request created", "pickup": pickup})
}

// GetMyPickups returns all pickup requests made by the caller
func GetMyPickups(c *gin.Context) {
	requesterID := middleware.GetUserID(c)
	var pickups []models.PickupRequest
	config.DB.Preload("Items").
		Where("requester_id = ?", requesterID).
		Order("created_at desc").
		Find(&pickups)
	c.JSON(http.StatusOK, gin.H{"count": len(pickups), "pickups": pickups})
}

// GetRestaurantPickups returns pickups containing lines for the owner's restaurant
func GetRestaurantPickups(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No restaurant found for your account"})
		return
	}

	var pickups []models.PickupRequest
	query := config.DB.Preload("Items").Preload("Requester").
		Joins("JOIN pickup_items ON pickup_items.pickup_request_id = pickup_requests.id").
		Where("pickup_items.restaurant_id = ?", restaurant.ID).
		Distinct("pickup_requests.*")

	if status := c.Query("status"); status != "" {
		query = query.Where("pickup_requests.status = ?", status)
	}

	query.Order("pickup_requests.created_at desc").Find(&pickups)
	c.JSON(http.StatusOK, gin.H{"count": len(pickups), "pickups": pickups})
}

// GetPickup returns a single pickup. Visible to the requester, any
// restaurant with a line in it, and admins.
func GetPickup(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var pickup models.PickupRequest
	if err := config.DB.Preload("Items").First(&pickup, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pickup request not found"})
		return
	}

	if !canViewPickup(user, &pickup) {
		c.JSON(http.StatusForbidden, gin.H{"message": "This pickup request does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pickup": pickup})
}

func canViewPickup(user models.User, pickup *models.PickupRequest) bool {
	if user.Role == models.RoleAdmin || pickup.RequesterID == user.ID {
		return true
	}
	if user.Role == models.RoleRestaurant {
		var restaurant models.Restaurant
		if err := config.DB.Where("owner_id = ?", user.ID).First(&restaurant).Error; err != nil {
			return false
		}
		for _, line := range pickup.Items {
			if line.RestaurantID == restaurant.ID {
				return true
			}
		}
	}
	return false
}

type UpdatePickupStatusRequest struct {
	Status models.PickupStatus `json:"status" binding:"required"`
}

// UpdatePickupStatus sets a pickup's status. Restaurant owners may update
// pickups that include their items; only enum membership is validated.
func UpdatePickupStatus(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req UpdatePickupStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}
	if !models.ValidPickupStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status. Must be one of: pending, accepted, rejected, completed, cancelled"})
		return
	}

	var pickup models.PickupRequest
	if err := config.DB.Preload("Items").First(&pickup, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pickup request not found"})
		return
	}

	if user.Role != models.RoleAdmin && !ownsPickupLine(user.ID, &pickup) {
		c.JSON(http.StatusForbidden, gin.H{"message": "This pickup request has no items from your restaurant"})
		return
	}

	if err := config.DB.Model(&pickup).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pickup status updated", "pickup": pickup})
}

func ownsPickupLine(ownerID uint, pickup *models.PickupRequest) bool {
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		return false
	}
	for _, line := range pickup.Items {
		if line.RestaurantID == restaurant.ID {
			return true
		}
	}
	return false
}

// CancelPickup lets the requester cancel their own pickup
func CancelPickup(c *gin.Context) {
	requesterID := middleware.GetUserID(c)

	var pickup models.PickupRequest
	if err := config.DB.First(&pickup, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pickup request not found"})
		return
	}
	if pickup.RequesterID != requesterID {
		c.JSON(http.StatusForbidden, gin.H{"message": "This pickup request does not belong to you"})
		return
	}

	if err := config.DB.Model(&pickup).Update("status", models.PickupCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to cancel pickup"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pickup request cancelled", "pickup_id": pickup.ID})
}
