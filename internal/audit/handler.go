package audit

import (
	"shipment-tracker-backend/internal/database"
	"shipment-tracker-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?shipment_id=&entity_type=&limit=
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		q := database.DB.Model(&models.AuditLog{}).Order("created_at DESC").Limit(limit)

		if shipmentID := c.Query("shipment_id"); shipmentID != "" {
			q = q.Where("shipment_id = ?", shipmentID)
		}
		if entityType := c.Query("entity_type"); entityType != "" {
			q = q.Where("entity_type = ?", entityType)
		}

		var logs []models.AuditLog
		if err := q.Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list audit logs")
		}

		return c.JSON(logs)
	}
}
