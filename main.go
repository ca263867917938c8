package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/alimbdit/bistro-boss-server/config"
	"github.com/alimbdit/bistro-boss-server/database"
	"github.com/alimbdit/bistro-boss-server/routes"
)

func main() {
	log.Println("✅ Starting bistro boss server...")

	// Load environment variables
	_ = godotenv.Load()

	cfg := config.Load()

	// Init DB
	client, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	store := database.NewMongoStore(client, cfg.DBName)
	log.Println("✅ Connected to MongoDB")

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, cfg, store)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 bistro boss is running on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Shut down cleanly on SIGINT/SIGTERM: stop accepting requests, then
	// close the Mongo client.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("⏳ Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown: %v", err)
	}
	if err := database.Disconnect(client); err != nil {
		log.Printf("❌ Mongo disconnect: %v", err)
	}
	log.Println("✅ Server stopped")
}
