package refdata

import (
	"fmt"
	"log"
	"strings"

	"shipment-tracker-backend/internal/audit"
	"shipment-tracker-backend/internal/auth"
	"shipment-tracker-backend/internal/database"
	"shipment-tracker-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateCustomerRequest struct {
	Name      string `json:"name"`
	IsAsendia bool   `json:"is_asendia"`
}

type UpdateCustomerRequest struct {
	Name      *string `json:"name"`
	IsAsendia *bool   `json:"is_asendia"`
}

// GET /api/customers
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customers []models.Customer
		if err := database.DB.Order("name asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Customers could not be listed")
		}
		return c.JSON(customers)
	}
}

// POST /api/customers
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		name := strings.TrimSpace(body.Name)
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
		}

		customer := models.Customer{Name: name, IsAsendia: body.IsAsendia}
		if err := database.DB.Create(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Customer could not be created")
		}

		writeRefAudit(c, "customer", customer.ID, models.AuditActionCreate,
			fmt.Sprintf("Customer created: %s", customer.Name), nil, customer)

		return c.Status(fiber.StatusCreated).JSON(customer)
	}
}

// PUT /api/customers/:id
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		before := customer
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			customer.Name = name
		}
		if body.IsAsendia != nil {
			customer.IsAsendia = *body.IsAsendia
		}

		if err := database.DB.Save(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Customer could not be updated")
		}

		writeRefAudit(c, "customer", customer.ID, models.AuditActionUpdate,
			fmt.Sprintf("Customer updated: %s", customer.Name), before, customer)

		return c.JSON(customer)
	}
}

// DELETE /api/customers/:id
func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		if err := database.DB.Delete(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Customer could not be deleted")
		}

		writeRefAudit(c, "customer", customer.ID, models.AuditActionDelete,
			fmt.Sprintf("Customer deleted: %s", customer.Name), customer, nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func writeRefAudit(c *fiber.Ctx, entityType, entityID string, action models.AuditAction, description string, before, after any) {
	userID, userName, err := auth.CurrentUser(c)
	if err != nil {
		return
	}
	if logErr := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Description: description,
		Before:      before,
		After:       after,
	}); logErr != nil {
		log.Printf("audit log could not be written: %v", logErr)
	}
}
