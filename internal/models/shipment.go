package models

import "time"

type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "pending"
	ShipmentStatusCompleted ShipmentStatus = "completed"
)

// Shipment: one truck departure. Fields are editable while pending and
// frozen by the handlers once the status flips to completed.
type Shipment struct {
	ID            string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DriverName    string         `gorm:"size:100;not null" json:"driver_name"`
	DepartureDate time.Time      `gorm:"type:date;not null;index" json:"departure_date"`
	ArrivalDate   time.Time      `gorm:"type:date;not null" json:"arrival_date"`
	Status        ShipmentStatus `gorm:"size:20;not null;default:pending" json:"status"`
	SealNo        *string        `gorm:"size:50" json:"seal_no"`
	TruckRegNo    *string        `gorm:"size:50" json:"truck_reg_no"`
	TrailerRegNo  *string        `gorm:"size:50" json:"trailer_reg_no"`
	CarrierID     *string        `gorm:"type:uuid" json:"carrier_id"`
	Carrier       *Carrier       `json:"carrier,omitempty"`
	SubcarrierID  *string        `gorm:"type:uuid" json:"subcarrier_id"`
	Subcarrier    *Subcarrier    `json:"subcarrier,omitempty"`
	CreatedBy     string         `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	Details []ShipmentDetail `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
}

// ShipmentDetail: one cargo line item. Exactly one of the four format
// references is relevant, selected by the service name (see documents.FormatName).
// NetWeight is persisted as entered and trusted as-is, it is not re-derived
// from gross-tare on read.
type ShipmentDetail struct {
	ID         string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ShipmentID string   `gorm:"type:uuid;not null;index" json:"shipment_id"`
	Shipment   Shipment `json:"-"`

	NumberOfPallets int `gorm:"not null;default:0" json:"number_of_pallets"`
	NumberOfBags    int `gorm:"not null;default:0" json:"number_of_bags"`

	CustomerID *string   `gorm:"type:uuid" json:"customer_id"`
	Customer   *Customer `json:"customer,omitempty"`
	ServiceID  *string   `gorm:"type:uuid" json:"service_id"`
	Service    *Service  `json:"service,omitempty"`

	FormatID      *string      `gorm:"type:uuid" json:"format_id"`
	Format        *Format      `json:"format,omitempty"`
	PriorFormatID *string      `gorm:"type:uuid" json:"prior_format_id"`
	PriorFormat   *PriorFormat `json:"prior_format,omitempty"`
	EcoFormatID   *string      `gorm:"type:uuid" json:"eco_format_id"`
	EcoFormat     *EcoFormat   `json:"eco_format,omitempty"`
	S3CFormatID   *string      `gorm:"type:uuid" json:"s3c_format_id"`
	S3CFormat     *S3CFormat   `gorm:"foreignKey:S3CFormatID" json:"s3c_format,omitempty"`

	GrossWeight float64 `gorm:"not null" json:"gross_weight"`
	TareWeight  float64 `gorm:"not null" json:"tare_weight"`
	NetWeight   float64 `gorm:"not null;default:0" json:"net_weight"`

	DispatchNumber *string `gorm:"size:100" json:"dispatch_number"`
	DOEID          *string `gorm:"column:doe_id;type:uuid" json:"doe_id"`
	DOE            *DOE    `gorm:"foreignKey:DOEID" json:"doe,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
