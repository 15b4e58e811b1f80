package models

import "time"

// AddressSettings: at most one row system-wide. Holds the sender and
// receiver blocks printed on the CMR consignment note. When the row is
// absent the CMR renderer falls back to built-in defaults.
type AddressSettings struct {
	ID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	SenderName       string `gorm:"size:200;not null" json:"sender_name"`
	SenderAddress    string `gorm:"size:200;not null" json:"sender_address"`
	SenderCity       string `gorm:"size:100;not null" json:"sender_city"`
	SenderCountry    string `gorm:"size:100;not null" json:"sender_country"`
	SenderPostalCode string `gorm:"size:20;not null" json:"sender_postal_code"`

	ReceiverName       string `gorm:"size:200;not null" json:"receiver_name"`
	ReceiverAddress    string `gorm:"size:200;not null" json:"receiver_address"`
	ReceiverCity       string `gorm:"size:100;not null" json:"receiver_city"`
	ReceiverCountry    string `gorm:"size:100;not null" json:"receiver_country"`
	ReceiverPostalCode string `gorm:"size:20;not null" json:"receiver_postal_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AddressSettings) TableName() string { return "address_settings" }
