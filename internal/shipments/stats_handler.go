package shipments

import (
	"errors"

	"shipment-tracker-backend/internal/database"
	"shipment-tracker-backend/internal/documents"

	"github.com/gofiber/fiber/v2"
)

// GET /api/shipments/:id/summary
//
// Returns the same aggregate totals the document renderers print, so the
// entry screen can show live totals without rendering anything.
func ShipmentSummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fetcher := documents.NewDBFetcher(database.DB)
		data, err := fetcher.FetchShipmentData(c.Params("id"))
		if err != nil {
			if errors.Is(err, documents.ErrShipmentNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Shipment not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Shipment summary could not be computed")
		}

		return c.JSON(documents.Summarize(data.Details))
	}
}
