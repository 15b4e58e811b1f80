package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDs are generated application-side so created rows can be referenced
// (audit logs, responses) without a round trip. The gen_random_uuid()
// column defaults stay as a safety net for rows inserted outside GORM.

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (m *User) BeforeCreate(tx *gorm.DB) error            { newID(&m.ID); return nil }
func (m *Shipment) BeforeCreate(tx *gorm.DB) error        { newID(&m.ID); return nil }
func (m *ShipmentDetail) BeforeCreate(tx *gorm.DB) error  { newID(&m.ID); return nil }
func (m *Carrier) BeforeCreate(tx *gorm.DB) error         { newID(&m.ID); return nil }
func (m *Subcarrier) BeforeCreate(tx *gorm.DB) error      { newID(&m.ID); return nil }
func (m *Customer) BeforeCreate(tx *gorm.DB) error        { newID(&m.ID); return nil }
func (m *Service) BeforeCreate(tx *gorm.DB) error         { newID(&m.ID); return nil }
func (m *Format) BeforeCreate(tx *gorm.DB) error          { newID(&m.ID); return nil }
func (m *PriorFormat) BeforeCreate(tx *gorm.DB) error     { newID(&m.ID); return nil }
func (m *EcoFormat) BeforeCreate(tx *gorm.DB) error       { newID(&m.ID); return nil }
func (m *S3CFormat) BeforeCreate(tx *gorm.DB) error       { newID(&m.ID); return nil }
func (m *DOE) BeforeCreate(tx *gorm.DB) error             { newID(&m.ID); return nil }
func (m *AddressSettings) BeforeCreate(tx *gorm.DB) error { newID(&m.ID); return nil }
func (m *Notification) BeforeCreate(tx *gorm.DB) error    { newID(&m.ID); return nil }
func (m *AuditLog) BeforeCreate(tx *gorm.DB) error        { newID(&m.ID); return nil }
