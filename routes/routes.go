package routes

import (
	"net/http"
	"time"

	"mealconnect-api/config"
	"mealconnect-api/handlers"
	"mealconnect-api/middleware"
	"mealconnect-api/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded proof/image assets
	r.Static("/uploads", config.UploadDir)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		public.GET("/meta/statuses", handlers.GetStatusCatalogue)

		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Browse restaurants and surplus items without an account
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/menu-items", handlers.ListMenuItems)

		// Applications and donations are open to guests; a bearer token,
		// when present, attributes the record to the account
		public.POST("/volunteers", middleware.OptionalAuth(), handlers.ApplyVolunteer)
		public.POST("/partnerships", handlers.ApplyPartnership)
		public.POST("/donations", middleware.OptionalAuth(), handlers.CreateDonation)
	}

	// ── Authenticated routes (any role) ────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/me", handlers.GetMe)
		auth.GET("/volunteers/mine", handlers.GetMyVolunteerApplications)
		auth.GET("/partnerships/mine", handlers.GetMyPartnerships)
		auth.GET("/donations/mine", handlers.GetMyDonations)
	}

	// ── Requester routes (users and NGOs) ──────────────────────────
	requester := r.Group("/api/pickups")
	requester.Use(middleware.AuthRequired())
	{
		requester.POST("", middleware.RoleRequired(models.RoleUser, models.RoleNGO), handlers.CreatePickup)
		requester.GET("/my-requests", middleware.RoleRequired(models.RoleUser, models.RoleNGO), handlers.GetMyPickups)
		requester.GET("/my-restaurant", middleware.RoleRequired(models.RoleRestaurant), handlers.GetRestaurantPickups)
		requester.GET("/:id", handlers.GetPickup)
		requester.PUT("/:id/status", middleware.RoleRequired(models.RoleRestaurant, models.RoleAdmin), handlers.UpdatePickupStatus)
		requester.PUT("/:id/cancel", middleware.RoleRequired(models.RoleUser, models.RoleNGO), handlers.CancelPickup)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	restaurant := r.Group("/api")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurant))
	{
		restaurant.POST("/restaurants", handlers.CreateRestaurant)
		restaurant.GET("/restaurants/my-restaurant", handlers.GetMyRestaurant)
		restaurant.PUT("/restaurants/my-restaurant", handlers.UpdateMyRestaurant)

		restaurant.POST("/menu-items", handlers.AddMenuItem)
		restaurant.GET("/menu-items/my-items", handlers.GetMyItems)
		restaurant.PUT("/menu-items/:id", handlers.UpdateMenuItem)
	}

	// Item deletion is shared between the owning restaurant and admins;
	// the handler checks ownership itself
	r.DELETE("/api/menu-items/:id",
		middleware.AuthRequired(),
		middleware.RoleRequired(models.RoleRestaurant, models.RoleAdmin),
		handlers.DeleteMenuItem)

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/stats", handlers.AdminStats)

		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.PUT("/users/:id/role", handlers.AdminUpdateUserRole)
		admin.DELETE("/users/:id", handlers.AdminDeleteUser)

		admin.GET("/restaurants", handlers.AdminGetAllRestaurants)
		admin.DELETE("/restaurants/:id", handlers.AdminDeleteRestaurant)

		admin.GET("/menu-items", handlers.AdminGetAllMenuItems)
		admin.DELETE("/menu-items/:id", handlers.DeleteMenuItem)

		admin.GET("/pickups", handlers.AdminGetAllPickups)
		admin.PUT("/pickups/:id/status", handlers.UpdatePickupStatus)

		admin.GET("/volunteers", handlers.AdminGetAllVolunteers)
		admin.PUT("/volunteers/:id/status", handlers.AdminUpdateVolunteerStatus)
		admin.DELETE("/volunteers/:id", handlers.AdminDeleteVolunteer)

		admin.GET("/partnerships", handlers.AdminGetAllPartnerships)
		admin.PUT("/partnerships/:id/status", handlers.AdminUpdatePartnershipStatus)
		admin.DELETE("/partnerships/:id", handlers.AdminDeletePartnership)

		admin.GET("/donations", handlers.AdminGetAllDonations)
		admin.PUT("/donations/:id/status", handlers.AdminUpdateDonationStatus)
		admin.DELETE("/donations/:id", handlers.AdminDeleteDonation)
	}
}
