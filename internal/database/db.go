package database

import (
	"log"

	"shipment-tracker-backend/internal/config"
	"shipment-tracker-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	// gen_random_uuid() defaults need pgcrypto on Postgres < 13
	if err := DB.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		log.Printf("pgcrypto extension check failed (may already exist): %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Carrier{},
		&models.Subcarrier{},
		&models.Customer{},
		&models.Service{},
		&models.Format{},
		&models.PriorFormat{},
		&models.EcoFormat{},
		&models.S3CFormat{},
		&models.DOE{},
		&models.Shipment{},
		&models.ShipmentDetail{},
		&models.AddressSettings{},
		&models.Notification{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connected. Migration complete.")
}
