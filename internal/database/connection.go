package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/danfath312/cv-karya-perikanan/internal/config"
	"github.com/danfath312/cv-karya-perikanan/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Initialize opens the store selected by configuration: a hosted Postgres
// instance when DATABASE_URL is set, otherwise an embedded sqlite file.
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// sqlite allows a single writer; a one-connection pool also keeps
	// in-memory databases coherent across queries.
	if cfg.DatabaseURL == "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.Company{},
		&models.Order{},
		&models.Admin{},
	)
}

// Seed inserts the default admin, company profile and sample products when
// the corresponding tables are empty. Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var adminCount int64
	if err := db.Model(&models.Admin{}).Count(&adminCount).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		admin := models.Admin{
			Username: "admin",
			Password: string(hash),
			Email:    "admin@karyaperikanan.com",
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin: %w", err)
		}
		log.Println("Default admin created: admin")
	}

	var companyCount int64
	if err := db.Model(&models.Company{}).Count(&companyCount).Error; err != nil {
		return fmt.Errorf("failed to count company rows: %w", err)
	}
	if companyCount == 0 {
		company := models.Company{
			Name:           "CV Karya Perikanan Indonesia",
			Description:    "Supplier ikan berkualitas",
			Phone:          "+62-XXX-XXX",
			WhatsappNumber: "+62-XXX-XXX",
			Email:          "info@karyaperikanan.com",
			Address:        "Alamat Lengkap",
			OperatingHours: "Buka 24 Jam",
			IsActive:       true,
		}
		if err := db.Create(&company).Error; err != nil {
			return fmt.Errorf("failed to seed company: %w", err)
		}
		log.Println("Default company info created")
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if productCount == 0 {
		products := []models.Product{
			{Name: "Sisik Ikan Kakap Merah", Description: "Sisik ikan kakap merah berkualitas tinggi untuk berbagai keperluan industri", Price: 50000, Stock: 100, Available: true},
			{Name: "Sisik Ikan Nila", Description: "Sisik ikan nila premium dengan harga terjangkau", Price: 45000, Stock: 150, Available: true},
			{Name: "Kulit Ikan", Description: "Kulit ikan berkualitas untuk kerajinan dan industri", Price: 35000, Stock: 200, Available: true},
		}
		if err := db.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		log.Printf("%d sample products created", len(products))
	}

	return nil
}
