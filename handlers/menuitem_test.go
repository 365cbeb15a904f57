package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"mealconnect-api/config"
	"mealconnect-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMenuItemRequiresRestaurant(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "Owner", "owner@a.com", models.RoleRestaurant)

	w := doMultipart(t, r, "/api/menu-items", map[string]string{
		"name":     "Bread",
		"quantity": "5",
	}, "", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddMenuItemAndListPublicly(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "Owner", "owner@a.com", models.RoleRestaurant)
	w := doJSON(r, http.MethodPost, "/api/restaurants", gin.H{"name": "Soup Place"}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doMultipart(t, r, "/api/menu-items", map[string]string{
		"name":     "Bread",
		"quantity": "12",
		"category": "bakery",
	}, "", "", token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doMultipart(t, r, "/api/menu-items", map[string]string{
		"name":     "negative",
		"quantity": "-3",
	}, "", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doMultipart(t, r, "/api/menu-items", map[string]string{
		"name":     "bad price",
		"quantity": "1",
		"price":    "abc",
	}, "", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Anonymous browse sees only available items
	var item models.MenuItem
	require.NoError(t, config.DB.Where("name = ?", "Bread").First(&item).Error)
	require.NoError(t, config.DB.Create(&models.MenuItem{
		RestaurantID: item.RestaurantID,
		Name:         "Old Stock",
		Status:       models.ItemExpired,
	}).Error)

	list := doJSON(r, http.MethodGet, "/api/menu-items", nil, "")
	require.Equal(t, http.StatusOK, list.Code)
	body := decodeBody(t, list)
	assert.Equal(t, float64(1), body["count"])
}

func TestUpdateMenuItemStatusEnum(t *testing.T) {
	r := setupRouter(t)
	token, itemID := createRestaurantWithItem(t, r, "kitchen@a.com", 5, 10)
	path := fmt.Sprintf("/api/menu-items/%d", itemID)

	w := doMultipartPut(t, r, path, map[string]string{"status": "sold"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doMultipartPut(t, r, path, map[string]string{"status": "collected", "quantity": "0"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var item models.MenuItem
	require.NoError(t, config.DB.First(&item, itemID).Error)
	assert.Equal(t, models.ItemCollected, item.Status)
	assert.Equal(t, 0, item.Quantity)
}

func TestUpdateMenuItemOwnershipCheck(t *testing.T) {
	r := setupRouter(t)
	_, itemID := createRestaurantWithItem(t, r, "kitchen@a.com", 5, 10)
	otherOwner, _ := createRestaurantWithItem(t, r, "other@a.com", 5, 10)

	w := doMultipartPut(t, r, fmt.Sprintf("/api/menu-items/%d", itemID), map[string]string{"name": "Stolen"}, otherOwner)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
