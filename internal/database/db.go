package database

import (
	"log"

	"evanails-backend/internal/config"
	"evanails-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Service{},
		&models.GalleryImage{},
		&models.ReportRow{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connected. Migration complete.")
}
