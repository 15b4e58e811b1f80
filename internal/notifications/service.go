package notifications

import (
	"log"

	"shipment-tracker-backend/internal/database"
	"shipment-tracker-backend/internal/models"
)

// Notify records an in-app notification for one user. Failures are logged
// and swallowed, a lost notification must never fail the triggering request.
func Notify(userID, title, message string) {
	n := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	if err := database.DB.Create(&n).Error; err != nil {
		log.Printf("notification could not be written: %v", err)
	}
}

// NotifyAdmins fans a notification out to every admin user.
func NotifyAdmins(title, message string) {
	var admins []models.User
	if err := database.DB.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		log.Printf("admin users could not be loaded for notification: %v", err)
		return
	}
	for _, admin := range admins {
		Notify(admin.ID, title, message)
	}
}
