package shipments

import (
	"fmt"
	"log"

	"shipment-tracker-backend/internal/audit"
	"shipment-tracker-backend/internal/auth"
	"shipment-tracker-backend/internal/database"
	"shipment-tracker-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Entry-form weight defaults. A pallet line gets a flat tare, a bags-only
// line gets the per-bag tare, and net falls out of gross minus tare when
// the operator leaves it blank.
const (
	palletTareKg = 25.7
	bagTareKg    = 0.125
)

type CreateDetailRequest struct {
	NumberOfPallets int      `json:"number_of_pallets"`
	NumberOfBags    int      `json:"number_of_bags"`
	CustomerID      *string  `json:"customer_id"`
	ServiceID       *string  `json:"service_id"`
	FormatID        *string  `json:"format_id"`
	PriorFormatID   *string  `json:"prior_format_id"`
	EcoFormatID     *string  `json:"eco_format_id"`
	S3CFormatID     *string  `json:"s3c_format_id"`
	GrossWeight     float64  `json:"gross_weight"`
	TareWeight      *float64 `json:"tare_weight"`
	NetWeight       *float64 `json:"net_weight"`
	DispatchNumber  *string  `json:"dispatch_number"`
	DOEID           *string  `json:"doe_id"`
}

type UpdateDetailRequest struct {
	NumberOfPallets *int     `json:"number_of_pallets"`
	NumberOfBags    *int     `json:"number_of_bags"`
	CustomerID      *string  `json:"customer_id"`
	ServiceID       *string  `json:"service_id"`
	FormatID        *string  `json:"format_id"`
	PriorFormatID   *string  `json:"prior_format_id"`
	EcoFormatID     *string  `json:"eco_format_id"`
	S3CFormatID     *string  `json:"s3c_format_id"`
	GrossWeight     *float64 `json:"gross_weight"`
	TareWeight      *float64 `json:"tare_weight"`
	NetWeight       *float64 `json:"net_weight"`
	DispatchNumber  *string  `json:"dispatch_number"`
	DOEID           *string  `json:"doe_id"`
}

// defaultTare fills a missing tare from the line's package counts.
func defaultTare(pallets, bags int) float64 {
	if pallets > 0 {
		return palletTareKg
	}
	if bags > 0 {
		return float64(bags) * bagTareKg
	}
	return 0
}

func editableShipment(c *fiber.Ctx, shipmentID string) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := database.DB.First(&shipment, "id = ?", shipmentID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Shipment not found")
	}
	if shipment.Status == models.ShipmentStatusCompleted {
		return nil, fiber.NewError(fiber.StatusConflict, "Completed shipments cannot be edited")
	}
	return &shipment, nil
}

func detailPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Service").
		Preload("Format").
		Preload("PriorFormat").
		Preload("EcoFormat").
		Preload("S3CFormat").
		Preload("DOE")
}

// POST /api/shipments/:id/details
func CreateDetailHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		shipment, err := editableShipment(c, c.Params("id"))
		if err != nil {
			return err
		}

		var body CreateDetailRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.NumberOfPallets < 0 || body.NumberOfBags < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Package counts cannot be negative")
		}
		if body.GrossWeight < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Gross weight cannot be negative")
		}

		tare := defaultTare(body.NumberOfPallets, body.NumberOfBags)
		if body.TareWeight != nil {
			tare = *body.TareWeight
		}
		net := body.GrossWeight - tare
		if body.NetWeight != nil {
			net = *body.NetWeight
		}

		detail := models.ShipmentDetail{
			ShipmentID:      shipment.ID,
			NumberOfPallets: body.NumberOfPallets,
			NumberOfBags:    body.NumberOfBags,
			CustomerID:      body.CustomerID,
			ServiceID:       body.ServiceID,
			FormatID:        body.FormatID,
			PriorFormatID:   body.PriorFormatID,
			EcoFormatID:     body.EcoFormatID,
			S3CFormatID:     body.S3CFormatID,
			GrossWeight:     body.GrossWeight,
			TareWeight:      tare,
			NetWeight:       net,
			DispatchNumber:  body.DispatchNumber,
			DOEID:           body.DOEID,
		}

		if err := database.DB.Create(&detail).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Shipment detail could not be created")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				ShipmentID:  &shipment.ID,
				UserID:      userID,
				UserName:    userName,
				EntityType:  "shipment_detail",
				EntityID:    detail.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Detail added: %d pallets, %d bags, %.2f kg gross", detail.NumberOfPallets, detail.NumberOfBags, detail.GrossWeight),
				Before:      nil,
				After:       detail,
			}); logErr != nil {
				log.Printf("audit log could not be written: %v", logErr)
			}
		}

		detailPreloads(database.DB).First(&detail, "id = ?", detail.ID)
		return c.Status(fiber.StatusCreated).JSON(detail)
	}
}

// GET /api/shipments/:id/details
func ListDetailsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var shipment models.Shipment
		if err := database.DB.First(&shipment, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Shipment not found")
		}

		var details []models.ShipmentDetail
		if err := detailPreloads(database.DB).
			Where("shipment_id = ?", shipment.ID).
			Order("created_at ASC").
			Find(&details).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Shipment details could not be listed")
		}
		return c.JSON(details)
	}
}

// PUT /api/shipments/:id/details/:detailId
func UpdateDetailHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		shipment, err := editableShipment(c, c.Params("id"))
		if err != nil {
			return err
		}

		var detail models.ShipmentDetail
		if err := database.DB.First(&detail, "id = ? AND shipment_id = ?", c.Params("detailId"), shipment.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Shipment detail not found")
		}

		var body UpdateDetailRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		before := detail

		if body.NumberOfPallets != nil {
			if *body.NumberOfPallets < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Package counts cannot be negative")
			}
			detail.NumberOfPallets = *body.NumberOfPallets
		}
		if body.NumberOfBags != nil {
			if *body.NumberOfBags < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Package counts cannot be negative")
			}
			detail.NumberOfBags = *body.NumberOfBags
		}
		if body.CustomerID != nil {
			detail.CustomerID = body.CustomerID
		}
		if body.ServiceID != nil {
			detail.ServiceID = body.ServiceID
		}
		if body.FormatID != nil {
			detail.FormatID = body.FormatID
		}
		if body.PriorFormatID != nil {
			detail.PriorFormatID = body.PriorFormatID
		}
		if body.EcoFormatID != nil {
			detail.EcoFormatID = body.EcoFormatID
		}
		if body.S3CFormatID != nil {
			detail.S3CFormatID = body.S3CFormatID
		}
		if body.GrossWeight != nil {
			if *body.GrossWeight < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Gross weight cannot be negative")
			}
			detail.GrossWeight = *body.GrossWeight
		}
		if body.TareWeight != nil {
			detail.TareWeight = *body.TareWeight
		}
		if body.NetWeight != nil {
			detail.NetWeight = *body.NetWeight
		} else if body.GrossWeight != nil || body.TareWeight != nil {
			detail.NetWeight = detail.GrossWeight - detail.TareWeight
		}
		if body.DispatchNumber != nil {
			detail.DispatchNumber = body.DispatchNumber
		}
		if body.DOEID != nil {
			detail.DOEID = body.DOEID
		}

		if err := database.DB.Save(&detail).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Shipment detail could not be updated")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				ShipmentID:  &shipment.ID,
				UserID:      userID,
				UserName:    userName,
				EntityType:  "shipment_detail",
				EntityID:    detail.ID,
				Action:      models.AuditActionUpdate,
				Description: "Shipment detail updated",
				Before:      before,
				After:       detail,
			}); logErr != nil {
				log.Printf("audit log could not be written: %v", logErr)
			}
		}

		detailPreloads(database.DB).First(&detail, "id = ?", detail.ID)
		return c.JSON(detail)
	}
}

// DELETE /api/shipments/:id/details/:detailId
func DeleteDetailHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		shipment, err := editableShipment(c, c.Params("id"))
		if err != nil {
			return err
		}

		var detail models.ShipmentDetail
		if err := database.DB.First(&detail, "id = ? AND shipment_id = ?", c.Params("detailId"), shipment.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Shipment detail not found")
		}

		if err := database.DB.Delete(&detail).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Shipment detail could not be deleted")
		}

		userID, userName, err := auth.CurrentUser(c)
		if err == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				ShipmentID:  &shipment.ID,
				UserID:      userID,
				UserName:    userName,
				EntityType:  "shipment_detail",
				EntityID:    detail.ID,
				Action:      models.AuditActionDelete,
				Description: "Shipment detail deleted",
				Before:      detail,
				After:       nil,
			}); logErr != nil {
				log.Printf("audit log could not be written: %v", logErr)
			}
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
