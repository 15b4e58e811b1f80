package documents

import (
	"errors"
	"fmt"

	"shipment-tracker-backend/internal/models"

	"gorm.io/gorm"
)

// Fetcher is the read-only data source the generator renders from.
type Fetcher interface {
	FetchShipmentData(shipmentID string) (*ShipmentData, error)
}

// DBFetcher reads the snapshot straight from the application database.
type DBFetcher struct {
	db *gorm.DB
}

func NewDBFetcher(db *gorm.DB) *DBFetcher {
	return &DBFetcher{db: db}
}

func (f *DBFetcher) FetchShipmentData(shipmentID string) (*ShipmentData, error) {
	var shipment models.Shipment
	err := f.db.
		Preload("Carrier").
		Preload("Subcarrier").
		First(&shipment, "id = ?", shipmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("could not load shipment %s: %w", shipmentID, err)
	}

	// Insertion order determines the row order on the Pre-Alert table.
	var details []models.ShipmentDetail
	err = f.db.
		Preload("Customer").
		Preload("Service").
		Preload("Format").
		Preload("PriorFormat").
		Preload("EcoFormat").
		Preload("S3CFormat").
		Preload("DOE").
		Where("shipment_id = ?", shipmentID).
		Order("created_at ASC").
		Find(&details).Error
	if err != nil {
		return nil, fmt.Errorf("could not load shipment details: %w", err)
	}

	// A missing address row is the normal case, not an error.
	var settings models.AddressSettings
	addressSettings := &settings
	if err := f.db.First(&settings).Error; err != nil {
		addressSettings = nil
	}

	return &ShipmentData{
		Shipment:        shipment,
		Details:         details,
		AddressSettings: addressSettings,
	}, nil
}
