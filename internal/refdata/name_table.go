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

// Most dropdown tables are identical: a uuid and a name. nameTable binds
// the generic CRUD handlers to one of them through field accessors, so
// carriers, services and the format variants all share one implementation.
type nameTable[T any] struct {
	entity  string // audit entity type, e.g. "carrier"
	label   string // human label for error messages, e.g. "Carrier"
	id      func(*T) string
	name    func(*T) string
	setName func(*T, string)
}

type nameRequest struct {
	Name string `json:"name"`
}

func (nt nameTable[T]) listHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []T
		if err := database.DB.Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, nt.label+" list could not be loaded")
		}
		return c.JSON(items)
	}
}

func (nt nameTable[T]) createHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body nameRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		name := strings.TrimSpace(body.Name)
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
		}

		var item T
		nt.setName(&item, name)
		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, nt.label+" could not be created")
		}

		nt.writeAudit(c, models.AuditActionCreate, nt.id(&item),
			fmt.Sprintf("%s created: %s", nt.label, name), nil, item)

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

func (nt nameTable[T]) updateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item T
		if err := database.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, nt.label+" not found")
		}

		var body nameRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		name := strings.TrimSpace(body.Name)
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
		}

		before := item
		nt.setName(&item, name)
		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, nt.label+" could not be updated")
		}

		nt.writeAudit(c, models.AuditActionUpdate, nt.id(&item),
			fmt.Sprintf("%s renamed to %s", nt.label, name), before, item)

		return c.JSON(item)
	}
}

func (nt nameTable[T]) deleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item T
		if err := database.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, nt.label+" not found")
		}

		if err := database.DB.Delete(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, nt.label+" could not be deleted")
		}

		nt.writeAudit(c, models.AuditActionDelete, nt.id(&item),
			fmt.Sprintf("%s deleted: %s", nt.label, nt.name(&item)), item, nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func (nt nameTable[T]) writeAudit(c *fiber.Ctx, action models.AuditAction, entityID, description string, before, after any) {
	userID, userName, err := auth.CurrentUser(c)
	if err != nil {
		return
	}
	if logErr := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  nt.entity,
		EntityID:    entityID,
		Action:      action,
		Description: description,
		Before:      before,
		After:       after,
	}); logErr != nil {
		log.Printf("audit log could not be written: %v", logErr)
	}
}

var (
	carrierTable = nameTable[models.Carrier]{
		entity: "carrier", label: "Carrier",
		id:      func(m *models.Carrier) string { return m.ID },
		name:    func(m *models.Carrier) string { return m.Name },
		setName: func(m *models.Carrier, n string) { m.Name = n },
	}
	subcarrierTable = nameTable[models.Subcarrier]{
		entity: "subcarrier", label: "Subcarrier",
		id:      func(m *models.Subcarrier) string { return m.ID },
		name:    func(m *models.Subcarrier) string { return m.Name },
		setName: func(m *models.Subcarrier, n string) { m.Name = n },
	}
	serviceTable = nameTable[models.Service]{
		entity: "service", label: "Service",
		id:      func(m *models.Service) string { return m.ID },
		name:    func(m *models.Service) string { return m.Name },
		setName: func(m *models.Service, n string) { m.Name = n },
	}
	priorFormatTable = nameTable[models.PriorFormat]{
		entity: "prior_format", label: "Prior format",
		id:      func(m *models.PriorFormat) string { return m.ID },
		name:    func(m *models.PriorFormat) string { return m.Name },
		setName: func(m *models.PriorFormat, n string) { m.Name = n },
	}
	ecoFormatTable = nameTable[models.EcoFormat]{
		entity: "eco_format", label: "Eco format",
		id:      func(m *models.EcoFormat) string { return m.ID },
		name:    func(m *models.EcoFormat) string { return m.Name },
		setName: func(m *models.EcoFormat, n string) { m.Name = n },
	}
	s3cFormatTable = nameTable[models.S3CFormat]{
		entity: "s3c_format", label: "S3C format",
		id:      func(m *models.S3CFormat) string { return m.ID },
		name:    func(m *models.S3CFormat) string { return m.Name },
		setName: func(m *models.S3CFormat, n string) { m.Name = n },
	}
	doeTable = nameTable[models.DOE]{
		entity: "doe", label: "DOE",
		id:      func(m *models.DOE) string { return m.ID },
		name:    func(m *models.DOE) string { return m.Name },
		setName: func(m *models.DOE, n string) { m.Name = n },
	}
)

// Register mounts the reference data CRUD routes. Reads are open to any
// authenticated user, writes are admin-only.
func Register(api fiber.Router, adminOnly fiber.Handler) {
	mount := func(path string, list, create, update, del fiber.Handler) {
		api.Get(path, list)
		api.Post(path, adminOnly, create)
		api.Put(path+"/:id", adminOnly, update)
		api.Delete(path+"/:id", adminOnly, del)
	}

	mount("/carriers", carrierTable.listHandler(), carrierTable.createHandler(), carrierTable.updateHandler(), carrierTable.deleteHandler())
	mount("/subcarriers", subcarrierTable.listHandler(), subcarrierTable.createHandler(), subcarrierTable.updateHandler(), subcarrierTable.deleteHandler())
	mount("/services", serviceTable.listHandler(), serviceTable.createHandler(), serviceTable.updateHandler(), serviceTable.deleteHandler())
	mount("/prior-formats", priorFormatTable.listHandler(), priorFormatTable.createHandler(), priorFormatTable.updateHandler(), priorFormatTable.deleteHandler())
	mount("/eco-formats", ecoFormatTable.listHandler(), ecoFormatTable.createHandler(), ecoFormatTable.updateHandler(), ecoFormatTable.deleteHandler())
	mount("/s3c-formats", s3cFormatTable.listHandler(), s3cFormatTable.createHandler(), s3cFormatTable.updateHandler(), s3cFormatTable.deleteHandler())
	mount("/doe", doeTable.listHandler(), doeTable.createHandler(), doeTable.updateHandler(), doeTable.deleteHandler())

	mount("/customers", ListCustomersHandler(), CreateCustomerHandler(), UpdateCustomerHandler(), DeleteCustomerHandler())
	mount("/formats", ListFormatsHandler(), CreateFormatHandler(), UpdateFormatHandler(), DeleteFormatHandler())
}
