package documents

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// cmrTotals are the numbers printed in the CMR goods and weight boxes
// after applying caller overrides on top of the computed summary.
type cmrTotals struct {
	Pallets      int
	Bags         int
	GrossPallets float64
	GrossBags    float64
	Gross        float64
	Tare         float64
}

// resolveCMRTotals applies the override rules: any override field is used
// verbatim, otherwise the computed summary fills in. The gross split
// defaults to everything on pallets and zero on bags. Tare: override wins,
// then the per-bag formula when the load is bags only, then the summary's
// aggregate tare.
func resolveCMRTotals(summary ShipmentSummary, o *CMROverrides, bagTareKg float64) cmrTotals {
	if o == nil {
		o = &CMROverrides{}
	}

	t := cmrTotals{
		Pallets:      summary.TotalPallets,
		Bags:         summary.TotalBags,
		GrossPallets: summary.TotalGrossWeight,
		GrossBags:    0,
	}
	if o.TotalPallets != nil {
		t.Pallets = *o.TotalPallets
	}
	if o.TotalBags != nil {
		t.Bags = *o.TotalBags
	}
	if o.GrossWeightPallets != nil {
		t.GrossPallets = *o.GrossWeightPallets
	}
	if o.GrossWeightBags != nil {
		t.GrossBags = *o.GrossWeightBags
	}
	t.Gross = t.GrossPallets + t.GrossBags

	switch {
	case o.TareWeight != nil:
		t.Tare = *o.TareWeight
	case t.Bags > 0 && t.Pallets == 0:
		t.Tare = float64(t.Bags) * bagTareKg
	default:
		t.Tare = summary.TotalTareWeight
	}

	return t
}

// senderLines returns the five lines of the sender box, from the address
// settings row when present, otherwise the configured defaults.
func (g *Generator) senderLines(data *ShipmentData) []string {
	if s := data.AddressSettings; s != nil {
		return []string{
			s.SenderName,
			"Unit " + s.SenderAddress,
			s.SenderCity,
			s.SenderPostalCode,
			s.SenderCountry,
		}
	}
	return g.defaults.SenderLines
}

func (g *Generator) consigneeLines(data *ShipmentData) []string {
	if s := data.AddressSettings; s != nil {
		return []string{
			s.ReceiverName,
			s.ReceiverAddress,
			s.ReceiverCountry,
		}
	}
	return g.defaults.ConsigneeLines
}

// buildCMR lays out the fixed-geometry consignment note. Box coordinates
// mirror the paper CMR form; everything hangs off startY so the whole form
// shifts down as one block when a letterhead is drawn above it.
func (g *Generator) buildCMR(data *ShipmentData, summary ShipmentSummary, opts Options) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	shift := g.drawLetterhead(pdf, opts.Logo)
	totals := resolveCMRTotals(summary, opts.CMR, g.defaults.BagTareKg)
	shipment := data.Shipment

	// core fonts are cp1252, translate for the accented form labels
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	label := func(x, y float64, txt string) {
		pdf.SetFont("Helvetica", "B", 6.5)
		pdf.Text(x, y+shift, tr(txt))
	}
	text := func(x, y float64, txt string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(x, y+shift, tr(txt))
	}
	box := func(x, y, w, h float64) {
		pdf.Rect(x, y+shift, w, h, "D")
	}

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	centeredText(pdf, 105, 15+shift, "CMR")
	pdf.SetFont("Helvetica", "B", 12)
	centeredText(pdf, 105, 22+shift, "INTERNATIONAL CONSIGNMENT NOTE")

	// Outer border
	box(10, 30, 190, 250)

	// Row 1: sender | declaration
	box(10, 30, 95, 40)
	box(105, 30, 95, 40)
	label(12, 37, "SENDER (NAME, ADDRESS, COUNTRY)")
	for i, line := range g.senderLines(data) {
		text(12, 40+float64(i*5), line)
	}
	label(107, 37, "INTERNATIONAL CONSIGNMENT NOTE")

	// Row 2: consignee | sender/agent reference
	box(10, 70, 95, 40)
	box(105, 70, 95, 40)
	label(12, 75, "CONSIGNEE (FINAL DELIVERY POINT NAME, ADDRESS)")
	consigneeYs := []float64{85, 95, 100}
	for i, line := range g.consigneeLines(data) {
		if i >= len(consigneeYs) {
			break
		}
		text(12, consigneeYs[i], line)
	}
	label(107, 75, "SENDER/AGENT REFERENCE")

	// Row 3: carrier
	box(10, 110, 95, 40)
	box(105, 110, 95, 40)
	label(12, 115, "CARRIER NAME, ADDRESS, COUNTRY")
	carrier := "N/A"
	if shipment.Carrier != nil {
		carrier = shipment.Carrier.Name
	}
	if shipment.Subcarrier != nil {
		carrier = carrier + " - " + shipment.Subcarrier.Name
	}
	text(12, 125, "Carrier Name:")
	text(50, 125, carrier)
	text(12, 135, "TRUCK & TRAILER:")
	text(50, 135, fmt.Sprintf("%s / %s", strOr(shipment.TruckRegNo, "N/A"), strOr(shipment.TrailerRegNo, "N/A")))

	// Row 4: goods | gross weight and volume
	box(10, 150, 95, 70)
	box(105, 150, 95, 70)
	label(12, 155, "MARKS, NOs, No. & KIND OF PACKAGES, DESCRIPTION OF GOODS")
	text(12, 165, fmt.Sprintf("Pallets: %d", totals.Pallets))
	text(12, 175, fmt.Sprintf("Bags: %d", totals.Bags))
	text(12, 185, fmt.Sprintf("SEAL #1 Number: %s", strOr(shipment.SealNo, "N/A")))
	text(12, 195, "SEAL #2 Number: ")
	text(12, 205, "Description of Goods: "+g.defaults.GoodsDescription)

	label(107, 155, "GROSS WEIGHT (KG)")
	label(155, 155, "VOLUME (M³)")
	text(115, 170, fmt.Sprintf("%.2f", totals.Gross))
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(115, 180+shift, fmt.Sprintf("Pallets: %.2f kg", totals.GrossPallets))
	pdf.Text(115, 186+shift, fmt.Sprintf("Bags: %.2f kg", totals.GrossBags))
	pdf.Text(115, 192+shift, fmt.Sprintf("Tare: %.2f kg", totals.Tare))

	// Row 5: carriage charges
	box(10, 220, 190, 20)
	label(12, 225, "CARRIAGE CHARGES (FRAIS DE TRANSPORT)")

	// Row 6: signature boxes. Goods-received and carrier boxes are
	// stamped with the current date, the consignee signs on arrival.
	box(10, 240, 63, 40)
	box(73, 240, 63, 40)
	box(136, 240, 64, 40)
	label(12, 245, "GOODS RECEIVED (MERCHANDISE REÇUE)")
	label(75, 245, "SIGNATURE OF CARRIER")
	label(138, 245, "FOR GOODS, SIGNATURE")

	today := g.now().Format("02/01/2006")
	text(12, 270, "Date: "+today)
	text(75, 270, "Date: "+today)
	text(138, 270, "Date: __/__/__")

	return pdf
}
