package handlers

import (
	"net/http"

	"mealconnect-api/config"
	"mealconnect-api/middleware"
	"mealconnect-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
}

// CreateRestaurant lets a restaurant-role user register their restaurant.
// One restaurant per owning user.
func CreateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Restaurant name is required"})
		return
	}

	var existing models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You already have a restaurant registered"})
		return
	}

	restaurant := models.Restaurant{
		OwnerID:     ownerID,
		Name:        req.Name,
		Location:    req.Location,
		Contact:     req.Contact,
		Description: req.Description,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// ListRestaurants returns all restaurants (public)
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location LIKE ?", "%"+location+"%")
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its surplus items (public)
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("MenuItems").First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMyRestaurant fetches the restaurant owned by the logged-in user
func GetMyRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Preload("MenuItems").Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No restaurant found for your account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// UpdateMyRestaurant updates restaurant details. Accepts JSON or multipart
// (multipart when a new image is attached).
func UpdateMyRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No restaurant found for your account"})
		return
	}

	update := map[string]interface{}{}
	allowed := map[string]bool{"name": true, "location": true, "contact": true, "description": true}

	if file, err := c.FormFile("image"); err == nil {
		path, err := saveUpload(c, file, imageExtensions)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		update["image"] = path
		for k := range allowed {
			if v := c.PostForm(k); v != "" {
				update[k] = v
			}
		}
	} else {
		var req map[string]interface{}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		for k, v := range req {
			if allowed[k] {
				update[k] = v
			}
		}
	}

	if len(update) > 0 {
		config.DB.Model(&restaurant).Updates(update)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// deleteRestaurantCascade removes a restaurant and all of its menu items
// in a single transaction, so a failure leaves no orphans.
func deleteRestaurantCascade(db *gorm.DB, restaurantID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Restaurant{}, restaurantID).Error
	})
}
