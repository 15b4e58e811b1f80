package refdata

import (
	"fmt"
	"strings"

	"shipment-tracker-backend/internal/database"
	"shipment-tracker-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Standard formats carry an optional service binding, which the shared
// name-table handlers cannot express.

type CreateFormatRequest struct {
	Name      string  `json:"name"`
	ServiceID *string `json:"service_id"`
}

type UpdateFormatRequest struct {
	Name      *string `json:"name"`
	ServiceID *string `json:"service_id"`
}

// GET /api/formats?service_id=...
func ListFormatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("name asc")
		if serviceID := c.Query("service_id"); serviceID != "" {
			q = q.Where("service_id = ?", serviceID)
		}

		var formats []models.Format
		if err := q.Find(&formats).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Formats could not be listed")
		}
		return c.JSON(formats)
	}
}

// POST /api/formats
func CreateFormatHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateFormatRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		name := strings.TrimSpace(body.Name)
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
		}

		format := models.Format{Name: name, ServiceID: body.ServiceID}
		if err := database.DB.Create(&format).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Format could not be created")
		}

		writeRefAudit(c, "format", format.ID, models.AuditActionCreate,
			fmt.Sprintf("Format created: %s", format.Name), nil, format)

		return c.Status(fiber.StatusCreated).JSON(format)
	}
}

// PUT /api/formats/:id
func UpdateFormatHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var format models.Format
		if err := database.DB.First(&format, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Format not found")
		}

		var body UpdateFormatRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		before := format
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			format.Name = name
		}
		if body.ServiceID != nil {
			format.ServiceID = body.ServiceID
		}

		if err := database.DB.Save(&format).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Format could not be updated")
		}

		writeRefAudit(c, "format", format.ID, models.AuditActionUpdate,
			fmt.Sprintf("Format updated: %s", format.Name), before, format)

		return c.JSON(format)
	}
}

// DELETE /api/formats/:id
func DeleteFormatHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var format models.Format
		if err := database.DB.First(&format, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Format not found")
		}

		if err := database.DB.Delete(&format).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Format could not be deleted")
		}

		writeRefAudit(c, "format", format.ID, models.AuditActionDelete,
			fmt.Sprintf("Format deleted: %s", format.Name), format, nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}
