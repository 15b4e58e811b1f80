package notifications

import (
	"shipment-tracker-backend/internal/auth"
	"shipment-tracker-backend/internal/database"
	"shipment-tracker-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/notifications?unread=true
func ListNotificationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		q := database.DB.Where("user_id = ?", userID).Order("created_at DESC")
		if c.Query("unread") == "true" {
			q = q.Where("is_read = ?", false)
		}

		var items []models.Notification
		if err := q.Limit(100).Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Notifications could not be listed")
		}

		var unread int64
		database.DB.Model(&models.Notification{}).
			Where("user_id = ? AND is_read = ?", userID, false).
			Count(&unread)

		return c.JSON(fiber.Map{
			"unread_count":  unread,
			"notifications": items,
		})
	}
}

// PATCH /api/notifications/:id/read
func MarkNotificationReadHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		var n models.Notification
		if err := database.DB.First(&n, "id = ? AND user_id = ?", c.Params("id"), userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Notification not found")
		}

		if !n.IsRead {
			n.IsRead = true
			if err := database.DB.Save(&n).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Notification could not be updated")
			}
		}
		return c.JSON(n)
	}
}

// POST /api/notifications/read-all
func MarkAllNotificationsReadHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		if err := database.DB.Model(&models.Notification{}).
			Where("user_id = ? AND is_read = ?", userID, false).
			Update("is_read", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Notifications could not be updated")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
