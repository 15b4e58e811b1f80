package documents

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const manifestSheet = "Manifest"

var manifestBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

var manifestAlignment = &excelize.Alignment{
	Vertical:   "center",
	Horizontal: "center",
	WrapText:   true,
}

// buildManifest writes the shipment header, the detail table and the
// totals row into a workbook. Same data as the Pre-Alert table, in a form
// the warehouse can filter and re-sort.
func buildManifest(data *ShipmentData, summary ShipmentSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(manifestSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Border:    manifestBorder,
		Alignment: manifestAlignment,
		Font:      &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: manifestBorder, Alignment: manifestAlignment})
	if err != nil {
		return nil, err
	}
	weightDecimals := 2
	weightStyle, err := f.NewStyle(&excelize.Style{
		Border:        manifestBorder,
		Alignment:     manifestAlignment,
		DecimalPlaces: &weightDecimals,
	})
	if err != nil {
		return nil, err
	}

	shipment := data.Shipment
	carrier := "N/A"
	if shipment.Carrier != nil {
		carrier = shipment.Carrier.Name
	}

	meta := [][2]string{
		{"Departure Date", shipment.DepartureDate.Format("02/01/2006")},
		{"Arrival Date", shipment.ArrivalDate.Format("02/01/2006")},
		{"Carrier", carrier},
		{"Driver", shipment.DriverName},
		{"Seal Number", strOr(shipment.SealNo, "N/A")},
	}
	for i, pair := range meta {
		row := i + 1
		_ = addManifestString(f, fmt.Sprintf("A%d", row), pair[0], headerStyle)
		_ = addManifestString(f, fmt.Sprintf("B%d", row), pair[1], cellStyle)
	}

	headerRow := len(meta) + 2
	titles := []string{"Customer", "Service", "Format", "Pallets", "Bags", "Tare (kg)", "Gross (kg)", "Net (kg)", "Dispatch No", "DOE"}
	for i, title := range titles {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		if err := addManifestString(f, cell, title, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, d := range data.Details {
		row := headerRow + 1 + i
		_ = addManifestString(f, fmt.Sprintf("A%d", row), customerName(d), cellStyle)
		_ = addManifestString(f, fmt.Sprintf("B%d", row), serviceName(d), cellStyle)
		_ = addManifestString(f, fmt.Sprintf("C%d", row), FormatName(d), cellStyle)
		_ = addManifestInt(f, fmt.Sprintf("D%d", row), d.NumberOfPallets, cellStyle)
		_ = addManifestInt(f, fmt.Sprintf("E%d", row), d.NumberOfBags, cellStyle)
		_ = addManifestFloat(f, fmt.Sprintf("F%d", row), d.TareWeight, weightStyle)
		_ = addManifestFloat(f, fmt.Sprintf("G%d", row), d.GrossWeight, weightStyle)
		_ = addManifestFloat(f, fmt.Sprintf("H%d", row), d.NetWeight, weightStyle)
		_ = addManifestString(f, fmt.Sprintf("I%d", row), strOr(d.DispatchNumber, "-"), cellStyle)
		if err := addManifestString(f, fmt.Sprintf("J%d", row), doeName(d), cellStyle); err != nil {
			return nil, err
		}
	}

	totalsRow := headerRow + 1 + len(data.Details)
	_ = addManifestString(f, fmt.Sprintf("A%d", totalsRow), "Totals", headerStyle)
	_ = addManifestString(f, fmt.Sprintf("B%d", totalsRow), "", headerStyle)
	_ = addManifestString(f, fmt.Sprintf("C%d", totalsRow), "", headerStyle)
	_ = addManifestInt(f, fmt.Sprintf("D%d", totalsRow), summary.TotalPallets, headerStyle)
	_ = addManifestInt(f, fmt.Sprintf("E%d", totalsRow), summary.TotalBags, headerStyle)
	_ = addManifestFloat(f, fmt.Sprintf("F%d", totalsRow), summary.TotalTareWeight, weightStyle)
	_ = addManifestFloat(f, fmt.Sprintf("G%d", totalsRow), summary.TotalGrossWeight, weightStyle)
	if err := addManifestFloat(f, fmt.Sprintf("H%d", totalsRow), summary.TotalNetWeight, weightStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addManifestString(f *excelize.File, cell, value string, styleID int) error {
	if err := f.SetCellStr(manifestSheet, cell, value); err != nil {
		return err
	}
	return f.SetCellStyle(manifestSheet, cell, cell, styleID)
}

func addManifestInt(f *excelize.File, cell string, value int, styleID int) error {
	if err := f.SetCellInt(manifestSheet, cell, value); err != nil {
		return err
	}
	return f.SetCellStyle(manifestSheet, cell, cell, styleID)
}

func addManifestFloat(f *excelize.File, cell string, value float64, styleID int) error {
	if err := f.SetCellFloat(manifestSheet, cell, value, 2, 64); err != nil {
		return err
	}
	return f.SetCellStyle(manifestSheet, cell, cell, styleID)
}
