package main

import (
	"log"
	"net/http"
	"os"

	"restaurant-client/backend"
	"restaurant-client/cart"
	"restaurant-client/config"
	"restaurant-client/handlers"
	"restaurant-client/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Device-local store (session pointers + backend tokens)
	kv := config.OpenLocalStore(cfg.LocalDBPath)

	// Backend REST client and the reconciliation core
	bc := backend.New(cfg.BackendBaseURL, cfg.OAuthClientID, cfg.OAuthClientSecret)
	h := handlers.New(bc, cart.NewStore(), kv)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Ordering Client",
			"backend": cfg.BackendBaseURL,
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍜 Welcome to the Restaurant Ordering Client",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"roles":   []string{"CUSTOMER", "CHEF"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h, kv)

	// Start server
	log.Printf("🚀 Client app running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
