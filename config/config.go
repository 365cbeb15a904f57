package config

import (
	"log"
	"os"
	"strings"

	"mealconnect-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte("mealconnect_dev_secret_2024")

// UploadDir is where uploaded images and proof files land
var UploadDir = "uploads"

// Load resolves env-driven settings. Must run after the .env file has been
// read, otherwise dotenv-only values would be missed by package init.
func Load() {
	JWTSecret = []byte(getEnv("JWT_SECRET", "mealconnect_dev_secret_2024"))
	UploadDir = getEnv("UPLOAD_DIR", "uploads")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AllowedOrigins returns the CORS allow-list: localhost dev origin plus
// anything in the comma-separated ALLOWED_ORIGINS env var.
func AllowedOrigins() []string {
	origins := []string{"http://localhost:3000"}
	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return origins
}

func InitDB() {
	dsn := getEnv("DATABASE_PATH", "mealconnect.db")
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate runs auto-migration for all models against db
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.PickupRequest{},
		&models.PickupItem{},
		&models.VolunteerApplication{},
		&models.Partnership{},
		&models.Donation{},
	)
}
