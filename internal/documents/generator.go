package documents

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Document is a rendered payload together with the delivery filename
// derived from the shipment it was rendered from.
type Document struct {
	Payload  []byte
	FileName string
}

// Generator renders the two export documents for a shipment. Every call
// re-fetches and re-renders from a fresh snapshot, there is no caching.
type Generator struct {
	fetcher  Fetcher
	defaults Defaults
	now      func() time.Time
}

func NewGenerator(fetcher Fetcher) *Generator {
	return &Generator{
		fetcher:  fetcher,
		defaults: DefaultDefaults(),
		now:      time.Now,
	}
}

// GeneratePreAlert renders the tabular shipment completion report.
func (g *Generator) GeneratePreAlert(shipmentID string, opts Options) (*Document, error) {
	data, err := g.fetcher.FetchShipmentData(shipmentID)
	if err != nil {
		return nil, err
	}

	summary := Summarize(data.Details)
	pdf := g.buildPreAlert(data, summary, opts)

	payload, err := outputPDF(pdf)
	if err != nil {
		return nil, fmt.Errorf("could not render Pre-Alert: %w", err)
	}

	return &Document{
		Payload:  payload,
		FileName: FileName("Pre-Alert", "pdf", data.Shipment.SealNo, data.Shipment.DepartureDate, g.now()),
	}, nil
}

// GenerateCMR renders the fixed-box international consignment note.
func (g *Generator) GenerateCMR(shipmentID string, opts Options) (*Document, error) {
	data, err := g.fetcher.FetchShipmentData(shipmentID)
	if err != nil {
		return nil, err
	}

	summary := Summarize(data.Details)
	pdf := g.buildCMR(data, summary, opts)

	payload, err := outputPDF(pdf)
	if err != nil {
		return nil, fmt.Errorf("could not render CMR: %w", err)
	}

	return &Document{
		Payload:  payload,
		FileName: FileName("CMR", "pdf", data.Shipment.SealNo, data.Shipment.DepartureDate, g.now()),
	}, nil
}

// GenerateManifest exports the detail table as a spreadsheet workbook.
func (g *Generator) GenerateManifest(shipmentID string) (*Document, error) {
	data, err := g.fetcher.FetchShipmentData(shipmentID)
	if err != nil {
		return nil, err
	}

	summary := Summarize(data.Details)
	payload, err := buildManifest(data, summary)
	if err != nil {
		return nil, fmt.Errorf("could not build manifest workbook: %w", err)
	}

	return &Document{
		Payload:  payload,
		FileName: FileName("Manifest", "xlsx", data.Shipment.SealNo, data.Shipment.DepartureDate, g.now()),
	}, nil
}

// FileName builds the export filename:
// "{DocType}, {SealNo or NoSeal}, {departure dd-MM-yy} {now HH:mm:ss}.{ext}"
func FileName(docType, ext string, sealNo *string, departure, now time.Time) string {
	seal := "NoSeal"
	if sealNo != nil && *sealNo != "" {
		seal = *sealNo
	}
	return fmt.Sprintf("%s, %s, %s %s.%s",
		docType, seal, departure.Format("02-01-06"), now.Format("15:04:05"), ext)
}

func outputPDF(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func centeredText(pdf *gofpdf.Fpdf, x, y float64, txt string) {
	pdf.Text(x-pdf.GetStringWidth(txt)/2, y, txt)
}
