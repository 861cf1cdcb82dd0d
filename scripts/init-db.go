package main

import (
	"fmt"
	"log"

	"github.com/danfath312/cv-karya-perikanan/internal/config"
	"github.com/danfath312/cv-karya-perikanan/internal/database"
	"github.com/danfath312/cv-karya-perikanan/internal/models"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Product{},
		&models.Company{},
		&models.Order{},
		&models.Admin{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed default admin, company info and sample products
	fmt.Println("Seeding default data...")
	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	fmt.Println("Database initialized successfully!")
}
