package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/cornerstore/backend/config"
	"github.com/cornerstore/backend/database"
	"github.com/cornerstore/backend/middlewares"
	"github.com/cornerstore/backend/models"
	"github.com/cornerstore/backend/router"
	"github.com/cornerstore/backend/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Keep the handle available outside the controllers as well
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Printf("Error seeding fixtures: %v", err)
	}

	rateLimiter := middlewares.NewRateLimiter(50, 10)

	r := router.SetupRouter(db, rateLimiter)

	if err := r.SetTrustedProxies([]string{"127.0.0.1", "localhost"}); err != nil {
		utils.ErrorLogger.Printf("Error setting trusted proxies: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Cashier{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
