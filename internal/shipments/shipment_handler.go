package shipments

import (
	"fmt"
	"log"
	"strings"
	"time"

	"shipment-tracker-backend/internal/audit"
	"shipment-tracker-backend/internal/auth"
	"shipment-tracker-backend/internal/database"
	"shipment-tracker-backend/internal/models"
	"shipment-tracker-backend/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// -------------------------
// Request/Response Types
// -------------------------

type CreateShipmentRequest struct {
	DriverName    string  `json:"driver_name"`
	DepartureDate string  `json:"departure_date"` // "2006-01-02"
	ArrivalDate   string  `json:"arrival_date"`
	SealNo        *string `json:"seal_no"`
	TruckRegNo    *string `json:"truck_reg_no"`
	TrailerRegNo  *string `json:"trailer_reg_no"`
	CarrierID     *string `json:"carrier_id"`
	SubcarrierID  *string `json:"subcarrier_id"`
}

type UpdateShipmentRequest struct {
	DriverName    *string `json:"driver_name"`
	DepartureDate *string `json:"departure_date"`
	ArrivalDate   *string `json:"arrival_date"`
	SealNo        *string `json:"seal_no"`
	TruckRegNo    *string `json:"truck_reg_no"`
	TrailerRegNo  *string `json:"trailer_reg_no"`
	CarrierID     *string `json:"carrier_id"`
	SubcarrierID  *string `json:"subcarrier_id"`
}

type UpdateShipmentStatusRequest struct {
	Status models.ShipmentStatus `json:"status"`
}

const dateLayout = "2006-01-02"

// POST /api/shipments
func CreateShipmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateShipmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(body.DriverName) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Driver name cannot be empty")
		}

		departure, err := time.Parse(dateLayout, body.DepartureDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid departure date, expected YYYY-MM-DD")
		}
		arrival, err := time.Parse(dateLayout, body.ArrivalDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid arrival date, expected YYYY-MM-DD")
		}
		if arrival.Before(departure) {
			return fiber.NewError(fiber.StatusBadRequest, "Arrival date cannot be before departure date")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		shipment := models.Shipment{
			DriverName:    strings.TrimSpace(body.DriverName),
			DepartureDate: departure,
			ArrivalDate:   arrival,
			Status:        models.ShipmentStatusPending,
			SealNo:        body.SealNo,
			TruckRegNo:    body.TruckRegNo,
			TrailerRegNo:  body.TrailerRegNo,
			CarrierID:     body.CarrierID,
			SubcarrierID:  body.SubcarrierID,
			CreatedBy:     userID,
		}

		if err := database.DB.Create(&shipment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Shipment could not be created")
		}

		if logErr := audit.WriteLog(audit.LogOptions{
			ShipmentID:  &shipment.ID,
			UserID:      userID,
			UserName:    userName,
			EntityType:  "shipment",
			EntityID:    shipment.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Shipment created for driver %s", shipment.DriverName),
			Before:      nil,
			After:       shipment,
		}); logErr != nil {
			log.Printf("audit log could not be written: %v", logErr)
		}

		database.DB.Preload("Carrier").Preload("Subcarrier").First(&shipment, "id = ?", shipment.ID)
		return c.Status(fiber.StatusCreated).JSON(shipment)
	}
}

// GET /api/shipments?status=pending&limit=50&offset=0
func ListShipmentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.Shipment{}).
			Preload("Carrier").
			Preload("Subcarrier").
			Order("departure_date DESC, created_at DESC")

		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}
		if from := c.Query("from"); from != "" {
			if t, err := time.Parse(dateLayout, from); err == nil {
				q = q.Where("departure_date >= ?", t)
			}
		}
		if to := c.Query("to"); to != "" {
			if t, err := time.Parse(dateLayout, to); err == nil {
				q = q.Where("departure_date <= ?", t)
			}
		}

		limit := c.QueryInt("limit", 50)
		if limit <= 0 || limit > 200 {
			limit = 50
		}
		offset := c.QueryInt("offset", 0)
		if offset < 0 {
			offset = 0
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Shipments could not be listed")
		}

		var shipments []models.Shipment
		if err := q.Limit(limit).Offset(offset).Find(&shipments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Shipments could not be listed")
		}

		return c.JSON(fiber.Map{
			"total":     total,
			"shipments": shipments,
		})
	}
}

// GET /api/shipments/:id
func GetShipmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var shipment models.Shipment
		err := database.DB.
			Preload("Carrier").
			Preload("Subcarrier").
			Preload("Details", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
			Preload("Details.Customer").
			Preload("Details.Service").
			Preload("Details.Format").
			Preload("Details.PriorFormat").
			Preload("Details.EcoFormat").
			Preload("Details.S3CFormat").
			Preload("Details.DOE").
			First(&shipment, "id = ?", c.Params("id")).Error
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Shipment not found")
		}
		return c.JSON(shipment)
	}
}

// PUT /api/shipments/:id
func UpdateShipmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var shipment models.Shipment
		if err := database.DB.First(&shipment, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Shipment not found")
		}

		if shipment.Status == models.ShipmentStatusCompleted {
			return fiber.NewError(fiber.StatusConflict, "Completed shipments cannot be edited")
		}

		var body UpdateShipmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		before := shipment

		if body.DriverName != nil {
			name := strings.TrimSpace(*body.DriverName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Driver name cannot be empty")
			}
			shipment.DriverName = name
		}
		if body.DepartureDate != nil {
			t, err := time.Parse(dateLayout, *body.DepartureDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid departure date, expected YYYY-MM-DD")
			}
			shipment.DepartureDate = t
		}
		if body.ArrivalDate != nil {
			t, err := time.Parse(dateLayout, *body.ArrivalDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid arrival date, expected YYYY-MM-DD")
			}
			shipment.ArrivalDate = t
		}
		if shipment.ArrivalDate.Before(shipment.DepartureDate) {
			return fiber.NewError(fiber.StatusBadRequest, "Arrival date cannot be before departure date")
		}
		if body.SealNo != nil {
			shipment.SealNo = body.SealNo
		}
		if body.TruckRegNo != nil {
			shipment.TruckRegNo = body.TruckRegNo
		}
		if body.TrailerRegNo != nil {
			shipment.TrailerRegNo = body.TrailerRegNo
		}
		if body.CarrierID != nil {
			shipment.CarrierID = body.CarrierID
		}
		if body.SubcarrierID != nil {
			shipment.SubcarrierID = body.SubcarrierID
		}

		if err := database.DB.Save(&shipment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Shipment could not be updated")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				ShipmentID:  &shipment.ID,
				UserID:      userID,
				UserName:    userName,
				EntityType:  "shipment",
				EntityID:    shipment.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Shipment updated for driver %s", shipment.DriverName),
				Before:      before,
				After:       shipment,
			}); logErr != nil {
				log.Printf("audit log could not be written: %v", logErr)
			}
		}

		database.DB.Preload("Carrier").Preload("Subcarrier").First(&shipment, "id = ?", shipment.ID)
		return c.JSON(shipment)
	}
}

// PATCH /api/shipments/:id/status
func UpdateShipmentStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var shipment models.Shipment
		if err := database.DB.First(&shipment, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Shipment not found")
		}

		var body UpdateShipmentStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Status != models.ShipmentStatusPending && body.Status != models.ShipmentStatusCompleted {
			return fiber.NewError(fiber.StatusBadRequest, "Status must be pending or completed")
		}
		if body.Status == shipment.Status {
			return c.JSON(shipment)
		}

		before := shipment
		shipment.Status = body.Status
		if err := database.DB.Save(&shipment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Shipment status could not be updated")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				ShipmentID:  &shipment.ID,
				UserID:      userID,
				UserName:    userName,
				EntityType:  "shipment",
				EntityID:    shipment.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Shipment status changed to %s", shipment.Status),
				Before:      before,
				After:       shipment,
			}); logErr != nil {
				log.Printf("audit log could not be written: %v", logErr)
			}

			if shipment.Status == models.ShipmentStatusCompleted {
				notifications.NotifyAdmins(
					"Shipment completed",
					fmt.Sprintf("Shipment of %s departing %s was marked completed by %s",
						shipment.DriverName, shipment.DepartureDate.Format("02/01/2006"), userName),
				)
			}
		}

		return c.JSON(shipment)
	}
}

// DELETE /api/shipments/:id
func DeleteShipmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var shipment models.Shipment
		if err := database.DB.First(&shipment, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Shipment not found")
		}

		var detailCount int64
		database.DB.Model(&models.ShipmentDetail{}).Where("shipment_id = ?", shipment.ID).Count(&detailCount)

		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaction could not be started")
		}

		if detailCount > 0 {
			if err := tx.Where("shipment_id = ?", shipment.ID).Delete(&models.ShipmentDetail{}).Error; err != nil {
				tx.Rollback()
				return fiber.NewError(fiber.StatusInternalServerError, "Shipment details could not be deleted")
			}
		}
		if err := tx.Delete(&shipment).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Shipment could not be deleted")
		}
		if err := tx.Commit().Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaction could not be committed")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "shipment",
				EntityID:    shipment.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Shipment deleted with %d details", detailCount),
				Before:      shipment,
				After:       nil,
			}); logErr != nil {
				log.Printf("audit log could not be written: %v", logErr)
			}
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
