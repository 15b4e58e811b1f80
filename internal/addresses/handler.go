package addresses

import (
	"errors"
	"log"
	"strings"

	"shipment-tracker-backend/internal/audit"
	"shipment-tracker-backend/internal/auth"
	"shipment-tracker-backend/internal/database"
	"shipment-tracker-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UpsertAddressSettingsRequest struct {
	SenderName       string `json:"sender_name"`
	SenderAddress    string `json:"sender_address"`
	SenderCity       string `json:"sender_city"`
	SenderCountry    string `json:"sender_country"`
	SenderPostalCode string `json:"sender_postal_code"`

	ReceiverName       string `json:"receiver_name"`
	ReceiverAddress    string `json:"receiver_address"`
	ReceiverCity       string `json:"receiver_city"`
	ReceiverCountry    string `json:"receiver_country"`
	ReceiverPostalCode string `json:"receiver_postal_code"`
}

// GET /api/address-settings
//
// Returns 204 when no override row exists yet, the CMR renderer then uses
// its built-in defaults.
func GetAddressSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var settings models.AddressSettings
		err := database.DB.First(&settings).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Address settings could not be loaded")
		}
		return c.JSON(settings)
	}
}

// PUT /api/address-settings
//
// Creates or replaces the single settings row.
func UpsertAddressSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpsertAddressSettingsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if strings.TrimSpace(body.SenderName) == "" || strings.TrimSpace(body.ReceiverName) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Sender and receiver names cannot be empty")
		}

		var settings models.AddressSettings
		err := database.DB.First(&settings).Error
		isNew := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !isNew {
			return fiber.NewError(fiber.StatusInternalServerError, "Address settings could not be loaded")
		}

		before := settings

		settings.SenderName = strings.TrimSpace(body.SenderName)
		settings.SenderAddress = strings.TrimSpace(body.SenderAddress)
		settings.SenderCity = strings.TrimSpace(body.SenderCity)
		settings.SenderCountry = strings.TrimSpace(body.SenderCountry)
		settings.SenderPostalCode = strings.TrimSpace(body.SenderPostalCode)
		settings.ReceiverName = strings.TrimSpace(body.ReceiverName)
		settings.ReceiverAddress = strings.TrimSpace(body.ReceiverAddress)
		settings.ReceiverCity = strings.TrimSpace(body.ReceiverCity)
		settings.ReceiverCountry = strings.TrimSpace(body.ReceiverCountry)
		settings.ReceiverPostalCode = strings.TrimSpace(body.ReceiverPostalCode)

		if err := database.DB.Save(&settings).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Address settings could not be saved")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err == nil {
			action := models.AuditActionUpdate
			var beforeData any = before
			if isNew {
				action = models.AuditActionCreate
				beforeData = nil
			}
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "address_settings",
				EntityID:    settings.ID,
				Action:      action,
				Description: "CMR address settings saved",
				Before:      beforeData,
				After:       settings,
			}); logErr != nil {
				log.Printf("audit log could not be written: %v", logErr)
			}
		}

		return c.JSON(settings)
	}
}
