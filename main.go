package main

import (
	"log"
	"os"

	"mealconnect-api/config"
	"mealconnect-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Best-effort .env load; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Resolve settings and initialize database
	config.Load()
	config.InitDB()

	// Make sure the upload directory exists before anything is saved to it
	if err := os.MkdirAll(config.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	// Gin with default middleware (logger + recovery)
	r := gin.Default()

	// Register all routes
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
