package handlers

import (
	"net/http"

	"mealconnect-api/config"
	"mealconnect-api/middleware"
	"mealconnect-api/models"

	"github.com/gin-gonic/gin"
)

// ApplyVolunteer accepts a volunteer application. Multipart form:
// name, email, phone, availability, motivation, proof (image or pdf).
// Open to guests; attributed to the account when a token is present.
func ApplyVolunteer(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and email are required"})
		return
	}
	if !emailRegex.MatchString(email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}

	application := models.VolunteerApplication{
		Name:         name,
		Email:        email,
		Phone:        c.PostForm("phone"),
		Availability: c.PostForm("availability"),
		Motivation:   c.PostForm("motivation"),
		Status:       models.VolunteerSubmitted,
	}

	if user, ok := middleware.CurrentUser(c); ok {
		application.UserID = &user.ID
	}

	if file, err := c.FormFile("proof"); err == nil {
		path, err := saveUpload(c, file, proofExtensions)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		application.ProofFile = path
	}

	if err := config.DB.Create(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit application"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted", "application": application})
}

// GetMyVolunteerApplications returns the caller's applications, matched by
// account id or by the account's email for applications made while logged out.
func GetMyVolunteerApplications(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	var applications []models.VolunteerApplication
	config.DB.Where("user_id = ? OR email = ?", user.ID, user.Email).
		Order("created_at desc").
		Find(&applications)
	c.JSON(http.StatusOK, gin.H{"count": len(applications), "applications": applications})
}
