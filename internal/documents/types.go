package documents

import "shipment-tracker-backend/internal/models"

// ShipmentData is the immutable snapshot a document is rendered from.
// AddressSettings is nil when no override row exists, renderers then fall
// back to the generator defaults.
type ShipmentData struct {
	Shipment        models.Shipment
	Details         []models.ShipmentDetail
	AddressSettings *models.AddressSettings
}

// ShipmentSummary holds the aggregate totals of a detail collection.
// Recomputed on every render, never persisted.
type ShipmentSummary struct {
	TotalPallets     int     `json:"total_pallets"`
	TotalBags        int     `json:"total_bags"`
	TotalGrossWeight float64 `json:"total_gross_weight"`
	TotalTareWeight  float64 `json:"total_tare_weight"`
	TotalNetWeight   float64 `json:"total_net_weight"`
	AsendiaNetWeight float64 `json:"asendia_net_weight"`
	OtherNetWeight   float64 `json:"other_net_weight"`
}

// CMROverrides lets the caller hand-correct the CMR box numbers at export
// time without editing the underlying line items. Nil fields fall back to
// the computed summary.
type CMROverrides struct {
	TotalPallets       *int
	TotalBags          *int
	GrossWeightPallets *float64
	GrossWeightBags    *float64
	TareWeight         *float64
}

// Options for a single render call.
type Options struct {
	Logo []byte        // optional letterhead image (raster bytes), malformed images are skipped
	CMR  *CMROverrides // CMR-only manual corrections
}

// Defaults carries every constant the renderers would otherwise hardcode,
// injected at Generator construction so the layout rules are testable.
type Defaults struct {
	// Sender box lines used when no address_settings row exists.
	SenderLines []string
	// Consignee box lines used when no address_settings row exists.
	ConsigneeLines []string

	GoodsDescription string

	BagTareKg    float64 // standard tare of a single bag
	PalletTareKg float64 // flat pallet tare applied by the entry form

	LogoWidth float64 // letterhead width band, mm
	LogoShift float64 // downward shift of all content when a letterhead is drawn, mm
}

func DefaultDefaults() Defaults {
	return Defaults{
		SenderLines: []string{
			"Asendia UK",
			"Unit 1-12 Heathrow Estate",
			"Silver Jubilee way",
			"Hounslow",
			"TW4 6NF",
		},
		ConsigneeLines: []string{
			"La Poste, Rte Du Baste De Laval, Relays 95,",
			"France",
		},
		GoodsDescription: "cross border eCommerce B2C parcels",
		BagTareKg:        0.125,
		PalletTareKg:     25.7,
		LogoWidth:        50,
		LogoShift:        25,
	}
}
