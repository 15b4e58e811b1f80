package main

import (
	"log"
	"strings"

	"shipment-tracker-backend/internal/addresses"
	"shipment-tracker-backend/internal/audit"
	"shipment-tracker-backend/internal/auth"
	"shipment-tracker-backend/internal/config"
	"shipment-tracker-backend/internal/database"
	"shipment-tracker-backend/internal/documents"
	"shipment-tracker-backend/internal/models"
	"shipment-tracker-backend/internal/notifications"
	"shipment-tracker-backend/internal/refdata"
	"shipment-tracker-backend/internal/shipments"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	adminOnly := auth.RequireRole(models.RoleAdmin)

	// User management
	protected.Post("/users", adminOnly, auth.CreateUserHandler())
	protected.Get("/users", adminOnly, auth.ListUsersHandler())
	protected.Delete("/users/:id", adminOnly, auth.DeleteUserHandler())

	// Shipments
	protected.Post("/shipments", shipments.CreateShipmentHandler())
	protected.Get("/shipments", shipments.ListShipmentsHandler())
	protected.Get("/shipments/:id", shipments.GetShipmentHandler())
	protected.Put("/shipments/:id", shipments.UpdateShipmentHandler())
	protected.Patch("/shipments/:id/status", shipments.UpdateShipmentStatusHandler())
	protected.Delete("/shipments/:id", adminOnly, shipments.DeleteShipmentHandler())
	protected.Get("/shipments/:id/summary", shipments.ShipmentSummaryHandler())

	// Shipment cargo lines
	protected.Post("/shipments/:id/details", shipments.CreateDetailHandler())
	protected.Get("/shipments/:id/details", shipments.ListDetailsHandler())
	protected.Put("/shipments/:id/details/:detailId", shipments.UpdateDetailHandler())
	protected.Delete("/shipments/:id/details/:detailId", shipments.DeleteDetailHandler())

	// Document exports
	protected.Get("/shipments/:id/documents/pre-alert", documents.PreAlertHandler(cfg))
	protected.Get("/shipments/:id/documents/cmr", documents.CMRHandler(cfg))
	protected.Get("/shipments/:id/documents/manifest", documents.ManifestHandler(cfg))

	// Reference data dropdowns
	refdata.Register(protected, adminOnly)

	// CMR address settings
	protected.Get("/address-settings", addresses.GetAddressSettingsHandler())
	protected.Put("/address-settings", adminOnly, addresses.UpsertAddressSettingsHandler())

	// Notifications
	protected.Get("/notifications", notifications.ListNotificationsHandler())
	protected.Patch("/notifications/:id/read", notifications.MarkNotificationReadHandler())
	protected.Post("/notifications/read-all", notifications.MarkAllNotificationsReadHandler())

	// Audit logs
	protected.Get("/audit-logs", adminOnly, audit.ListAuditLogsHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
