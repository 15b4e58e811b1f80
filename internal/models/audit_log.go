package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

type AuditLog struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Shipment the change belongs to, when applicable. Reference-data and
	// address changes carry a nil shipment id.
	ShipmentID *string `gorm:"type:uuid;index" json:"shipment_id"`

	UserID   string `gorm:"type:uuid;not null" json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"` // denormalized for display

	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   string `gorm:"type:uuid;index" json:"entity_id"`

	Action      AuditAction `gorm:"size:20" json:"action"`
	Description string      `gorm:"size:255" json:"description"`

	// Before and after snapshots (JSON).
	OldData string `gorm:"type:jsonb" json:"old_data"`
	NewData string `gorm:"type:jsonb" json:"new_data"`
}
