package documents

import (
	"fmt"
	"testing"
	"time"

	"shipment-tracker-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePreAlertProducesPDF(t *testing.T) {
	gen := NewGenerator(&stubFetcher{data: sampleShipmentData()})
	gen.now = func() time.Time { return time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC) }

	doc, err := gen.GeneratePreAlert("ship-1", Options{})

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(doc.Payload[:4]))
	assert.Equal(t, "Pre-Alert, SL123, 01-03-24 14:05:09.pdf", doc.FileName)
}

func TestGeneratePreAlertShipmentNotFound(t *testing.T) {
	gen := NewGenerator(&stubFetcher{err: ErrShipmentNotFound})

	doc, err := gen.GeneratePreAlert("missing", Options{})

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

// A detail table longer than one page keeps paginating instead of
// overflowing the page bottom.
func TestPreAlertTablePaginates(t *testing.T) {
	data := sampleShipmentData()
	data.Details = nil
	for i := 0; i < 60; i++ {
		data.Details = append(data.Details, models.ShipmentDetail{
			NumberOfBags:   1,
			GrossWeight:    10,
			TareWeight:     0.125,
			NetWeight:      9.875,
			Customer:       &models.Customer{Name: fmt.Sprintf("Customer %d", i)},
			Service:        &models.Service{Name: "Express"},
			Format:         &models.Format{Name: "Standard"},
			DispatchNumber: strPtr(fmt.Sprintf("DSP-%03d", i)),
		})
	}

	gen := NewGenerator(&stubFetcher{data: data})
	summary := Summarize(data.Details)
	pdf := gen.buildPreAlert(data, summary, Options{})

	require.False(t, pdf.Err(), "renderer error: %v", pdf.Error())
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestPreAlertSinglePageForShortTable(t *testing.T) {
	data := sampleShipmentData()
	gen := NewGenerator(&stubFetcher{data: data})

	pdf := gen.buildPreAlert(data, Summarize(data.Details), Options{})

	require.False(t, pdf.Err(), "renderer error: %v", pdf.Error())
	assert.Equal(t, 1, pdf.PageCount())
}
