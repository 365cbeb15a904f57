package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"mealconnect-api/config"
	"mealconnect-api/models"
	"mealconnect-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupRouter wires a fresh in-memory database into the global config.DB
// and returns a router with all routes registered.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
	config.UploadDir = t.TempDir()

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func pickupStatusPath(id uint) string {
	return fmt.Sprintf("/api/pickups/%d/status", id)
}

func pickupCancelPath(id uint) string {
	return fmt.Sprintf("/api/pickups/%d/cancel", id)
}

func volunteerStatusPath(id uint) string {
	return fmt.Sprintf("/api/admin/volunteers/%d/status", id)
}

// registerUser creates an account through the API and returns its token
func registerUser(t *testing.T, r *gin.Engine, name, email string, role models.UserRole) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok, "register response must contain a token")
	return token
}

// createRestaurantWithItem seeds a restaurant owner, their restaurant and
// one surplus item; returns the owner token and the item id.
func createRestaurantWithItem(t *testing.T, r *gin.Engine, email string, quantity int, price float64) (string, uint) {
	t.Helper()
	token := registerUser(t, r, "Owner "+email, email, models.RoleRestaurant)

	w := doJSON(r, http.MethodPost, "/api/restaurants", gin.H{
		"name":     "Kitchen " + email,
		"location": "Downtown",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var restaurant models.Restaurant
	require.NoError(t, config.DB.Where("name = ?", "Kitchen "+email).First(&restaurant).Error)
	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         "Surplus Meals",
		Quantity:     quantity,
		Price:        price,
		Status:       models.ItemAvailable,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return token, item.ID
}
