package documents

import (
	"testing"
	"time"

	"shipment-tracker-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestResolveCMRTotalsBagsOnlyTare(t *testing.T) {
	summary := ShipmentSummary{TotalBags: 4, TotalGrossWeight: 10}

	totals := resolveCMRTotals(summary, nil, 0.125)

	assert.InDelta(t, 0.5, totals.Tare, 1e-9)
}

func TestResolveCMRTotalsPalletsUseSummaryTare(t *testing.T) {
	summary := ShipmentSummary{TotalPallets: 2, TotalBags: 4, TotalTareWeight: 51.4}

	totals := resolveCMRTotals(summary, nil, 0.125)

	assert.InDelta(t, 51.4, totals.Tare, 1e-9)
}

func TestResolveCMRTotalsOverrideTareWinsVerbatim(t *testing.T) {
	summary := ShipmentSummary{TotalBags: 4, TotalTareWeight: 51.4}
	o := &CMROverrides{TareWeight: floatPtr(7.5)}

	totals := resolveCMRTotals(summary, o, 0.125)

	assert.InDelta(t, 7.5, totals.Tare, 1e-9)
}

// Overridden counts feed the bags-only rule: zeroing pallets while bags
// remain switches the tare to the per-bag formula.
func TestResolveCMRTotalsOverrideCountsDriveTareRule(t *testing.T) {
	summary := ShipmentSummary{TotalPallets: 2, TotalBags: 4, TotalTareWeight: 51.4}
	o := &CMROverrides{TotalPallets: intPtr(0), TotalBags: intPtr(8)}

	totals := resolveCMRTotals(summary, o, 0.125)

	assert.Equal(t, 0, totals.Pallets)
	assert.Equal(t, 8, totals.Bags)
	assert.InDelta(t, 1.0, totals.Tare, 1e-9)
}

func TestResolveCMRTotalsGrossSplitDefault(t *testing.T) {
	summary := ShipmentSummary{TotalPallets: 3, TotalGrossWeight: 412.5}

	totals := resolveCMRTotals(summary, nil, 0.125)

	assert.InDelta(t, 412.5, totals.GrossPallets, 1e-9)
	assert.Zero(t, totals.GrossBags)
	assert.InDelta(t, 412.5, totals.Gross, 1e-9)
}

func TestResolveCMRTotalsGrossSplitOverride(t *testing.T) {
	summary := ShipmentSummary{TotalGrossWeight: 400}
	o := &CMROverrides{
		GrossWeightPallets: floatPtr(300),
		GrossWeightBags:    floatPtr(55.5),
	}

	totals := resolveCMRTotals(summary, o, 0.125)

	assert.InDelta(t, 300, totals.GrossPallets, 1e-9)
	assert.InDelta(t, 55.5, totals.GrossBags, 1e-9)
	assert.InDelta(t, 355.5, totals.Gross, 1e-9)
}

func TestSenderLinesFallBackToDefaults(t *testing.T) {
	gen := NewGenerator(nil)

	lines := gen.senderLines(&ShipmentData{})

	require.Len(t, lines, 5)
	assert.Equal(t, "Asendia UK", lines[0])
	assert.Equal(t, "Unit 1-12 Heathrow Estate", lines[1])
	assert.Equal(t, "TW4 6NF", lines[4])
}

func TestSenderLinesUseAddressSettings(t *testing.T) {
	gen := NewGenerator(nil)
	data := &ShipmentData{
		AddressSettings: &models.AddressSettings{
			SenderName:       "Asendia DE",
			SenderAddress:    "7 Frachtweg",
			SenderCity:       "Frankfurt",
			SenderPostalCode: "60549",
			SenderCountry:    "Germany",
		},
	}

	lines := gen.senderLines(data)

	require.Len(t, lines, 5)
	assert.Equal(t, "Asendia DE", lines[0])
	assert.Equal(t, "Unit 7 Frachtweg", lines[1])
	assert.Equal(t, "Germany", lines[4])
}

func TestConsigneeLinesFallBackToDefaults(t *testing.T) {
	gen := NewGenerator(nil)

	lines := gen.consigneeLines(&ShipmentData{})

	require.Len(t, lines, 2)
	assert.Equal(t, "France", lines[1])
}

func TestGenerateCMRProducesPDF(t *testing.T) {
	fetcher := &stubFetcher{data: sampleShipmentData()}
	gen := NewGenerator(fetcher)
	gen.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 15, 0, time.UTC) }

	doc, err := gen.GenerateCMR("ship-1", Options{})

	require.NoError(t, err)
	require.NotEmpty(t, doc.Payload)
	assert.Equal(t, "%PDF", string(doc.Payload[:4]))
	assert.Equal(t, "CMR, SL123, 01-03-24 09:30:15.pdf", doc.FileName)
}

func TestGenerateCMRShipmentNotFound(t *testing.T) {
	gen := NewGenerator(&stubFetcher{err: ErrShipmentNotFound})

	doc, err := gen.GenerateCMR("missing", Options{})

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

// A malformed letterhead is skipped, the document still renders.
func TestGenerateCMRSkipsBrokenLetterhead(t *testing.T) {
	gen := NewGenerator(&stubFetcher{data: sampleShipmentData()})

	doc, err := gen.GenerateCMR("ship-1", Options{Logo: []byte("not an image")})

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(doc.Payload[:4]))
}

type stubFetcher struct {
	data *ShipmentData
	err  error
}

func (s *stubFetcher) FetchShipmentData(shipmentID string) (*ShipmentData, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func sampleShipmentData() *ShipmentData {
	return &ShipmentData{
		Shipment: models.Shipment{
			ID:            "ship-1",
			DriverName:    "J. Laurent",
			DepartureDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ArrivalDate:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			SealNo:        strPtr("SL123"),
			TruckRegNo:    strPtr("AB12 CDE"),
			Carrier:       &models.Carrier{Name: "TransEuro"},
		},
		Details: []models.ShipmentDetail{
			{
				NumberOfPallets: 2,
				GrossWeight:     500,
				TareWeight:      51.4,
				NetWeight:       448.6,
				Customer:        &models.Customer{Name: "Asendia UK", IsAsendia: true},
				Service:         &models.Service{Name: "Prior"},
				PriorFormat:     &models.PriorFormat{Name: "Letter P"},
			},
			{
				NumberOfBags: 6,
				GrossWeight:  80,
				TareWeight:   0.75,
				NetWeight:    79.25,
				Customer:     &models.Customer{Name: "Cérès"},
				Service:      &models.Service{Name: "Eco"},
				EcoFormat:    &models.EcoFormat{Name: "Packet E"},
			},
		},
	}
}
