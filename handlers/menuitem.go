package handlers

import (
	"net/http"
	"strconv"
	"time"

	"mealconnect-api/config"
	"mealconnect-api/middleware"
	"mealconnect-api/models"

	"github.com/gin-gonic/gin"
)

// ListMenuItems returns available surplus items across all restaurants (public)
func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Where("status = ?", models.ItemAvailable)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}

	query.Order("created_at desc").Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// AddMenuItem adds a surplus item to the owner's restaurant. Multipart form:
// name, quantity, category, description, price, expiry_time (RFC3339), image.
func AddMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Create a restaurant first before adding items"})
		return
	}

	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Item name is required"})
		return
	}
	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "0"))
	if err != nil || quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be a non-negative number"})
		return
	}
	price, err := strconv.ParseFloat(c.DefaultPostForm("price", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be a number"})
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         name,
		Description:  c.PostForm("description"),
		Quantity:     quantity,
		Price:        price,
		Category:     c.PostForm("category"),
		Status:       models.ItemAvailable,
	}

	if expiry := c.PostForm("expiry_time"); expiry != "" {
		t, err := time.Parse(time.RFC3339, expiry)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "expiry_time must be RFC3339"})
			return
		}
		item.ExpiryTime = &t
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := saveUpload(c, file, imageExtensions)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		item.Image = path
	}

	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item added", "item": item})
}

// GetMyItems returns the items of the owner's restaurant
func GetMyItems(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No restaurant found for your account"})
		return
	}
	var items []models.MenuItem
	config.DB.Where("restaurant_id = ?", restaurant.ID).Order("created_at desc").Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// UpdateMenuItem updates an item (only by the owner). Multipart form
// with the same fields as AddMenuItem plus status.
func UpdateMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
		return
	}
	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND owner_id = ?", item.RestaurantID, ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "You don't own this item"})
		return
	}

	update := map[string]interface{}{}
	for _, field := range []string{"name", "description", "category"} {
		if v := c.PostForm(field); v != "" {
			update[field] = v
		}
	}
	if q := c.PostForm("quantity"); q != "" {
		quantity, err := strconv.Atoi(q)
		if err != nil || quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be a non-negative number"})
			return
		}
		update["quantity"] = quantity
	}
	if p := c.PostForm("price"); p != "" {
		price, err := strconv.ParseFloat(p, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be a number"})
			return
		}
		update["price"] = price
	}
	if s := c.PostForm("status"); s != "" {
		if !models.ValidMenuItemStatus(models.MenuItemStatus(s)) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status. Must be one of: available, reserved, expired, collected"})
			return
		}
		update["status"] = s
	}
	if expiry := c.PostForm("expiry_time"); expiry != "" {
		t, err := time.Parse(time.RFC3339, expiry)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "expiry_time must be RFC3339"})
			return
		}
		update["expiry_time"] = t
	}
	if file, err := c.FormFile("image"); err == nil {
		path, err := saveUpload(c, file, imageExtensions)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		update["image"] = path
	}

	if len(update) > 0 {
		config.DB.Model(&item).Updates(update)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item updated", "item": item})
}

// DeleteMenuItem removes an item. Restaurant owners can delete their own
// items; admins can delete any.
func DeleteMenuItem(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
		return
	}
	if user.Role != models.RoleAdmin {
		var restaurant models.Restaurant
		if err := config.DB.Where("id = ? AND owner_id = ?", item.RestaurantID, user.ID).First(&restaurant).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "You don't own this item"})
			return
		}
	}
	config.DB.Delete(&item)
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
