package documents

import (
	"fmt"

	"shipment-tracker-backend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// Pre-Alert layout constants, mm on an A4 portrait page.
const (
	preAlertLeft      = 15.0
	preAlertTitleY    = 20.0
	preAlertHeaderY   = 32.0
	preAlertRowH      = 8.0
	preAlertTableRowH = 7.0
	preAlertPageLimit = 275.0 // start a new page once a row would pass this
)

var preAlertColumns = []struct {
	title string
	width float64
}{
	{"Customer", 30},
	{"Service", 18},
	{"Format", 25},
	{"Tare", 20},
	{"Gross", 20},
	{"Net", 20},
	{"Dispatch No", 32},
	{"DOE", 15},
}

// buildPreAlert lays out the report: optional letterhead, title, the
// bordered two-column shipment header grid, then the paginated detail
// table. Every vertical offset shifts down by the letterhead shift.
func (g *Generator) buildPreAlert(data *ShipmentData, summary ShipmentSummary, opts Options) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	shift := g.drawLetterhead(pdf, opts.Logo)

	pdf.SetFont("Helvetica", "B", 16)
	centeredText(pdf, 105, preAlertTitleY+shift, "Shipment Pre-Alert")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(preAlertLeft, preAlertHeaderY+shift, "Main Shipment Details")

	y := drawPreAlertHeaderGrid(pdf, data.Shipment, summary, preAlertHeaderY+shift+3)

	drawPreAlertTable(pdf, data.Details, y+6)

	return pdf
}

// drawPreAlertHeaderGrid renders the shipment metadata as bordered
// label/value cells, two pairs per row. Returns the y below the grid.
func drawPreAlertHeaderGrid(pdf *gofpdf.Fpdf, shipment models.Shipment, summary ShipmentSummary, y float64) float64 {
	carrier := "N/A"
	if shipment.Carrier != nil {
		carrier = shipment.Carrier.Name
	}
	subcarrier := "N/A"
	if shipment.Subcarrier != nil {
		subcarrier = shipment.Subcarrier.Name
	}

	pairs := [][2]string{
		{"Departure Date", shipment.DepartureDate.Format("02/01/2006")},
		{"Arrival Date", shipment.ArrivalDate.Format("02/01/2006")},
		{"Carrier", carrier},
		{"Subcarrier", subcarrier},
		{"Driver", shipment.DriverName},
		{"Truck Reg", strOr(shipment.TruckRegNo, "N/A")},
		{"Trailer Reg", strOr(shipment.TrailerRegNo, "N/A")},
		{"Seal Number", strOr(shipment.SealNo, "N/A")},
		{"Total Gross Weight", fmt.Sprintf("%.2f kg", summary.TotalGrossWeight)},
		{"Total Net Weight", fmt.Sprintf("%.2f kg", summary.TotalNetWeight)},
		{"Total Pallets", fmt.Sprintf("%d", summary.TotalPallets)},
		{"Total Bags", fmt.Sprintf("%d", summary.TotalBags)},
	}

	const labelW, valueW = 35.0, 55.0
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i := 0; i < len(pairs); i += 2 {
		pdf.SetXY(preAlertLeft, y)
		for j := i; j < i+2 && j < len(pairs); j++ {
			pdf.SetFont("Helvetica", "B", 9)
			pdf.CellFormat(labelW, preAlertRowH, pairs[j][0], "1", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.CellFormat(valueW, preAlertRowH, tr(pairs[j][1]), "1", 0, "L", false, 0, "")
		}
		y += preAlertRowH
	}

	return y
}

// drawPreAlertTable renders every detail row in insertion order, breaking
// onto new pages as needed. The header row repeats on each page.
func drawPreAlertTable(pdf *gofpdf.Fpdf, details []models.ShipmentDetail, y float64) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	y = drawPreAlertTableHeader(pdf, y)

	pdf.SetFont("Helvetica", "", 8)
	for _, d := range details {
		if y+preAlertTableRowH > preAlertPageLimit {
			pdf.AddPage()
			y = drawPreAlertTableHeader(pdf, preAlertTitleY)
			pdf.SetFont("Helvetica", "", 8)
		}

		cells := []string{
			customerName(d),
			serviceName(d),
			FormatName(d),
			fmt.Sprintf("%.2f kg", d.TareWeight),
			fmt.Sprintf("%.2f kg", d.GrossWeight),
			fmt.Sprintf("%.2f kg", d.NetWeight),
			strOr(d.DispatchNumber, "-"),
			doeName(d),
		}

		pdf.SetXY(preAlertLeft, y)
		for i, col := range preAlertColumns {
			pdf.CellFormat(col.width, preAlertTableRowH, tr(cells[i]), "1", 0, "L", false, 0, "")
		}
		y += preAlertTableRowH
	}
}

func drawPreAlertTableHeader(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(preAlertLeft, y)
	for _, col := range preAlertColumns {
		pdf.CellFormat(col.width, preAlertTableRowH, col.title, "1", 0, "C", false, 0, "")
	}
	return y + preAlertTableRowH
}
