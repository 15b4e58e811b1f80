package documents

import (
	"testing"

	"shipment-tracker-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func detailWith(pallets, bags int, gross, tare, net float64, customer *models.Customer) models.ShipmentDetail {
	return models.ShipmentDetail{
		NumberOfPallets: pallets,
		NumberOfBags:    bags,
		GrossWeight:     gross,
		TareWeight:      tare,
		NetWeight:       net,
		Customer:        customer,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalPallets)
	assert.Zero(t, s.TotalBags)
	assert.Zero(t, s.TotalGrossWeight)
	assert.Zero(t, s.TotalNetWeight)
}

func TestSummarizeSingleDetail(t *testing.T) {
	s := Summarize([]models.ShipmentDetail{
		detailWith(2, 10, 500, 51.4, 448.6, nil),
	})

	assert.Equal(t, 2, s.TotalPallets)
	assert.Equal(t, 10, s.TotalBags)
	assert.InDelta(t, 500, s.TotalGrossWeight, 1e-9)
	assert.InDelta(t, 51.4, s.TotalTareWeight, 1e-9)
	assert.InDelta(t, 448.6, s.TotalNetWeight, 1e-9)
}

func TestSummarizeAccumulates(t *testing.T) {
	s := Summarize([]models.ShipmentDetail{
		detailWith(1, 0, 100, 25.7, 74.3, nil),
		detailWith(2, 4, 200, 26.2, 173.8, nil),
		detailWith(0, 8, 50, 1, 49, nil),
	})

	assert.Equal(t, 3, s.TotalPallets)
	assert.Equal(t, 12, s.TotalBags)
	assert.InDelta(t, 350, s.TotalGrossWeight, 1e-9)
	assert.InDelta(t, 52.9, s.TotalTareWeight, 1e-9)
	assert.InDelta(t, 297.1, s.TotalNetWeight, 1e-9)
}

// The Asendia/other split must cover the whole net weight with no
// double counting.
func TestSummarizeNetWeightPartition(t *testing.T) {
	asendia := &models.Customer{Name: "Asendia UK", IsAsendia: true}
	other := &models.Customer{Name: "Royal Mail"}

	s := Summarize([]models.ShipmentDetail{
		detailWith(1, 0, 120, 25.7, 94.3, asendia),
		detailWith(1, 0, 80, 25.7, 54.3, other),
		detailWith(0, 2, 10, 0.25, 9.75, nil), // unresolved customer counts as other
	})

	assert.InDelta(t, 94.3, s.AsendiaNetWeight, 1e-9)
	assert.InDelta(t, 64.05, s.OtherNetWeight, 1e-9)
	assert.InDelta(t, s.TotalNetWeight, s.AsendiaNetWeight+s.OtherNetWeight, 1e-9)
}

func TestFormatNameResolvesByService(t *testing.T) {
	tests := []struct {
		name   string
		detail models.ShipmentDetail
		want   string
	}{
		{
			name: "prior service uses prior format",
			detail: models.ShipmentDetail{
				Service:     &models.Service{Name: "Prior"},
				PriorFormat: &models.PriorFormat{Name: "Letter P"},
				Format:      &models.Format{Name: "ignored"},
			},
			want: "Letter P",
		},
		{
			name: "eco service uses eco format",
			detail: models.ShipmentDetail{
				Service:   &models.Service{Name: "Eco"},
				EcoFormat: &models.EcoFormat{Name: "Packet E"},
				Format:    &models.Format{Name: "ignored"},
			},
			want: "Packet E",
		},
		{
			name: "s3c service uses s3c format",
			detail: models.ShipmentDetail{
				Service:   &models.Service{Name: "S3C"},
				S3CFormat: &models.S3CFormat{Name: "Tray S"},
			},
			want: "Tray S",
		},
		{
			name: "other services use the standard format",
			detail: models.ShipmentDetail{
				Service: &models.Service{Name: "Express"},
				Format:  &models.Format{Name: "Standard"},
			},
			want: "Standard",
		},
		{
			name: "relevant format missing renders placeholder",
			detail: models.ShipmentDetail{
				Service: &models.Service{Name: "Prior"},
				Format:  &models.Format{Name: "not this one"},
			},
			want: "-",
		},
		{
			name:   "no service no format",
			detail: models.ShipmentDetail{},
			want:   "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatName(tt.detail))
		})
	}
}
