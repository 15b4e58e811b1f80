package audit

import (
	"encoding/json"
	"fmt"

	"shipment-tracker-backend/internal/database"
	"shipment-tracker-backend/internal/models"
)

type LogOptions struct {
	ShipmentID  *string
	UserID      string
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// jsonb columns need the literal "null", not an empty string
	oldStr := "null"
	newStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			oldStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			newStr = string(b)
		}
	}

	entry := models.AuditLog{
		ShipmentID:  opts.ShipmentID,
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		OldData:     oldStr,
		NewData:     newStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("could not write audit log: %w", err)
	}

	return nil
}
