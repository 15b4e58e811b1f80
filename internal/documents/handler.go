package documents

import (
	"errors"
	"log"
	"os"
	"strconv"

	"shipment-tracker-backend/internal/config"
	"shipment-tracker-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PreAlertHandler renders the Pre-Alert report for a shipment and hands it
// to the requested deliverer.
func PreAlertHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gen := NewGenerator(NewDBFetcher(database.DB))
		doc, err := gen.GeneratePreAlert(c.Params("id"), Options{Logo: loadLogo(cfg)})
		if err != nil {
			return documentError(err)
		}
		return dispatch(c, cfg, doc, "application/pdf")
	}
}

// CMRHandler renders the consignment note. Box totals can be corrected at
// export time through query parameters, nothing is written back.
func CMRHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gen := NewGenerator(NewDBFetcher(database.DB))
		opts := Options{
			Logo: loadLogo(cfg),
			CMR:  cmrOverridesFromQuery(c),
		}
		doc, err := gen.GenerateCMR(c.Params("id"), opts)
		if err != nil {
			return documentError(err)
		}
		return dispatch(c, cfg, doc, "application/pdf")
	}
}

// ManifestHandler exports the detail table as a spreadsheet workbook.
func ManifestHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gen := NewGenerator(NewDBFetcher(database.DB))
		doc, err := gen.GenerateManifest(c.Params("id"))
		if err != nil {
			return documentError(err)
		}
		return dispatch(c, cfg, doc, xlsxContentType)
	}
}

// dispatch routes the document either to the export directory (save=local)
// or down the response as an attachment.
func dispatch(c *fiber.Ctx, cfg *config.Config, doc *Document, contentType string) error {
	if c.Query("save") == "local" {
		deliverer := LocalDeliverer{Dir: cfg.ExportDir}
		if err := deliverer.Deliver(doc.Payload, doc.FileName); err != nil {
			return documentError(err)
		}
		return c.JSON(fiber.Map{
			"message":   "Document saved",
			"file_name": doc.FileName,
		})
	}

	deliverer := ResponseDeliverer{Ctx: c, ContentType: contentType}
	if err := deliverer.Deliver(doc.Payload, doc.FileName); err != nil {
		return documentError(err)
	}
	return nil
}

func documentError(err error) error {
	switch {
	case errors.Is(err, ErrShipmentNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Shipment not found")
	case errors.Is(err, ErrDeliveryFailed):
		return fiber.NewError(fiber.StatusInternalServerError, "Document could not be delivered")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Document could not be generated")
	}
}

func cmrOverridesFromQuery(c *fiber.Ctx) *CMROverrides {
	o := &CMROverrides{
		TotalPallets:       queryInt(c, "total_pallets"),
		TotalBags:          queryInt(c, "total_bags"),
		GrossWeightPallets: queryFloat(c, "gross_weight_pallets"),
		GrossWeightBags:    queryFloat(c, "gross_weight_bags"),
		TareWeight:         queryFloat(c, "tare_weight"),
	}
	if o.TotalPallets == nil && o.TotalBags == nil &&
		o.GrossWeightPallets == nil && o.GrossWeightBags == nil && o.TareWeight == nil {
		return nil
	}
	return o
}

func queryInt(c *fiber.Ctx, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryFloat(c *fiber.Ctx, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// loadLogo reads the configured letterhead file. Missing or unreadable
// files only drop the letterhead, never the export.
func loadLogo(cfg *config.Config) []byte {
	if cfg.LogoPath == "" {
		return nil
	}
	logo, err := os.ReadFile(cfg.LogoPath)
	if err != nil {
		log.Printf("letterhead file %s could not be read, exporting without it: %v", cfg.LogoPath, err)
		return nil
	}
	return logo
}
