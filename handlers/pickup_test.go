package handlers_test

import (
	"net/http"
	"testing"

	"mealconnect-api/config"
	"mealconnect-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePickupDecrementsStock(t *testing.T) {
	r := setupRouter(t)
	_, itemID := createRestaurantWithItem(t, r, "kitchen@a.com", 10, 25)
	ngoToken := registerUser(t, r, "Helping Hands", "ngo@a.com", models.RoleNGO)

	w := doJSON(r, http.MethodPost, "/api/pickups", gin.H{
		"address": "12 Relief Rd",
		"items":   []gin.H{{"menu_item_id": itemID, "quantity": 4}},
	}, ngoToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.MenuItem
	require.NoError(t, config.DB.First(&item, itemID).Error)
	assert.Equal(t, 6, item.Quantity)
	assert.Equal(t, models.ItemAvailable, item.Status)

	var pickup models.PickupRequest
	require.NoError(t, config.DB.Preload("Items").First(&pickup).Error)
	assert.Equal(t, models.PickupPending, pickup.Status)
	assert.Equal(t, float64(100), pickup.TotalAmount)
	require.Len(t, pickup.Items, 1)
	assert.Equal(t, "Surplus Meals", pickup.Items[0].Name)
	assert.Equal(t, float64(25), pickup.Items[0].Price)
}

func TestCreatePickupReservesDepletedItem(t *testing.T) {
	r := setupRouter(t)
	_, itemID := createRestaurantWithItem(t, r, "kitchen@a.com", 3, 10)
	ngoToken := registerUser(t, r, "Helping Hands", "ngo@a.com", models.RoleNGO)

	w := doJSON(r, http.MethodPost, "/api/pickups", gin.H{
		"address": "12 Relief Rd",
		"items":   []gin.H{{"menu_item_id": itemID, "quantity": 3}},
	}, ngoToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.MenuItem
	require.NoError(t, config.DB.First(&item, itemID).Error)
	assert.Equal(t, 0, item.Quantity)
	assert.Equal(t, models.ItemReserved, item.Status)
}

func TestCreatePickupOverQuantityChangesNothing(t *testing.T) {
	r := setupRouter(t)
	_, okItem := createRestaurantWithItem(t, r, "kitchen@a.com", 10, 25)
	_, smallItem := createRestaurantWithItem(t, r, "kitchen2@a.com", 2, 5)
	ngoToken := registerUser(t, r, "Helping Hands", "ngo@a.com", models.RoleNGO)

	w := doJSON(r, http.MethodPost, "/api/pickups", gin.H{
		"address": "12 Relief Rd",
		"items": []gin.H{
			{"menu_item_id": okItem, "quantity": 5},
			{"menu_item_id": smallItem, "quantity": 3}, // only 2 left
		},
	}, ngoToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The whole transaction rolled back: the first line's stock is untouched
	var item models.MenuItem
	require.NoError(t, config.DB.First(&item, okItem).Error)
	assert.Equal(t, 10, item.Quantity)

	var count int64
	config.DB.Model(&models.PickupRequest{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPickupStatusEnumMembership(t *testing.T) {
	r := setupRouter(t)
	ownerToken, itemID := createRestaurantWithItem(t, r, "kitchen@a.com", 5, 10)
	ngoToken := registerUser(t, r, "Helping Hands", "ngo@a.com", models.RoleNGO)

	w := doJSON(r, http.MethodPost, "/api/pickups", gin.H{
		"address": "12 Relief Rd",
		"items":   []gin.H{{"menu_item_id": itemID, "quantity": 1}},
	}, ngoToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var pickup models.PickupRequest
	require.NoError(t, config.DB.First(&pickup).Error)

	// Outside the enum → validation failure
	w = doJSON(r, http.MethodPut, pickupStatusPath(pickup.ID), gin.H{"status": "delivered"}, ownerToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Every member succeeds regardless of current value; no transition guards
	for _, status := range []models.PickupStatus{
		models.PickupAccepted, models.PickupCompleted, models.PickupPending, models.PickupRejected,
	} {
		w = doJSON(r, http.MethodPut, pickupStatusPath(pickup.ID), gin.H{"status": status}, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, "status %s: %s", status, w.Body.String())

		var got models.PickupRequest
		require.NoError(t, config.DB.First(&got, pickup.ID).Error)
		assert.Equal(t, status, got.Status)
	}
}

func TestPickupStatusRequiresInvolvedRestaurant(t *testing.T) {
	r := setupRouter(t)
	_, itemID := createRestaurantWithItem(t, r, "kitchen@a.com", 5, 10)
	otherOwner, _ := createRestaurantWithItem(t, r, "other@a.com", 5, 10)
	ngoToken := registerUser(t, r, "Helping Hands", "ngo@a.com", models.RoleNGO)

	w := doJSON(r, http.MethodPost, "/api/pickups", gin.H{
		"address": "12 Relief Rd",
		"items":   []gin.H{{"menu_item_id": itemID, "quantity": 1}},
	}, ngoToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var pickup models.PickupRequest
	require.NoError(t, config.DB.First(&pickup).Error)

	w = doJSON(r, http.MethodPut, pickupStatusPath(pickup.ID), gin.H{"status": "accepted"}, otherOwner)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetRestaurantPickupsScopedToOwner(t *testing.T) {
	r := setupRouter(t)
	ownerToken, itemID := createRestaurantWithItem(t, r, "kitchen@a.com", 5, 10)
	otherOwner, _ := createRestaurantWithItem(t, r, "other@a.com", 5, 10)
	ngoToken := registerUser(t, r, "Helping Hands", "ngo@a.com", models.RoleNGO)

	w := doJSON(r, http.MethodPost, "/api/pickups", gin.H{
		"address": "12 Relief Rd",
		"items":   []gin.H{{"menu_item_id": itemID, "quantity": 2}},
	}, ngoToken)
	require.Equal(t, http.StatusCreated, w.Code)

	// The owner whose item is in the pickup sees it
	w = doJSON(r, http.MethodGet, "/api/pickups/my-restaurant", nil, ownerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(1), decodeBody(t, w)["count"])

	// An uninvolved restaurant sees nothing
	w = doJSON(r, http.MethodGet, "/api/pickups/my-restaurant", nil, otherOwner)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["count"])
}

func TestCancelPickupByRequesterOnly(t *testing.T) {
	r := setupRouter(t)
	_, itemID := createRestaurantWithItem(t, r, "kitchen@a.com", 5, 10)
	ngoToken := registerUser(t, r, "Helping Hands", "ngo@a.com", models.RoleNGO)
	otherToken := registerUser(t, r, "Someone Else", "someone@a.com", models.RoleUser)

	w := doJSON(r, http.MethodPost, "/api/pickups", gin.H{
		"address": "12 Relief Rd",
		"items":   []gin.H{{"menu_item_id": itemID, "quantity": 1}},
	}, ngoToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var pickup models.PickupRequest
	require.NoError(t, config.DB.First(&pickup).Error)

	w = doJSON(r, http.MethodPut, pickupCancelPath(pickup.ID), nil, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPut, pickupCancelPath(pickup.ID), nil, ngoToken)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.PickupRequest
	require.NoError(t, config.DB.First(&got, pickup.ID).Error)
	assert.Equal(t, models.PickupCancelled, got.Status)
}
