package main

import (
	"log"
	"os"

	"github.com/staffdesk/company-platform/internal/config"
	"github.com/staffdesk/company-platform/internal/database"
	"github.com/staffdesk/company-platform/internal/routes"
)

func main() {
	log.Println("Starting application...")

	// Load configuration
	cfg := config.Load()
	log.Printf("Config loaded. Database Type: %s", cfg.DatabaseType)

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Create export directory
	if err := os.MkdirAll(cfg.ExportDir, 0755); err != nil {
		log.Printf("Warning: failed to create export directory: %v", err)
	}

	// Seed admin user
	if err := routes.SeedAdminUser(db, cfg); err != nil {
		log.Printf("Warning: failed to seed admin user: %v", err)
	} else {
		log.Println("Admin user ready (username: " + cfg.AdminUsername + ")")
	}

	// Setup router
	router := routes.SetupRouter(db, cfg)

	// Start server
	addr := cfg.ServerHost + ":" + cfg.ServerPort
	log.Printf("Server starting on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
