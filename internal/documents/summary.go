package documents

import "shipment-tracker-backend/internal/models"

// Summarize reduces a detail collection to its aggregate totals. Pure
// fold, tolerates an empty collection. Net weight is split between the
// Asendia priority account and all other customers; a detail without a
// resolved customer counts as non-priority.
func Summarize(details []models.ShipmentDetail) ShipmentSummary {
	var s ShipmentSummary

	for _, d := range details {
		s.TotalPallets += d.NumberOfPallets
		s.TotalBags += d.NumberOfBags
		s.TotalGrossWeight += d.GrossWeight
		s.TotalTareWeight += d.TareWeight
		s.TotalNetWeight += d.NetWeight

		if d.Customer != nil && d.Customer.IsAsendia {
			s.AsendiaNetWeight += d.NetWeight
		} else {
			s.OtherNetWeight += d.NetWeight
		}
	}

	return s
}

// FormatName resolves the single relevant format for a detail from its
// service: Prior, Eco and S3C each use their own format table, anything
// else uses the standard one. Absent references render as a placeholder,
// never as one of the irrelevant format fields.
func FormatName(d models.ShipmentDetail) string {
	var service string
	if d.Service != nil {
		service = d.Service.Name
	}

	switch service {
	case "Prior":
		if d.PriorFormat != nil {
			return d.PriorFormat.Name
		}
	case "Eco":
		if d.EcoFormat != nil {
			return d.EcoFormat.Name
		}
	case "S3C":
		if d.S3CFormat != nil {
			return d.S3CFormat.Name
		}
	default:
		if d.Format != nil {
			return d.Format.Name
		}
	}
	return "-"
}

func customerName(d models.ShipmentDetail) string {
	if d.Customer != nil {
		return d.Customer.Name
	}
	return "-"
}

func serviceName(d models.ShipmentDetail) string {
	if d.Service != nil {
		return d.Service.Name
	}
	return "-"
}

func doeName(d models.ShipmentDetail) string {
	if d.DOE != nil {
		return d.DOE.Name
	}
	return "-"
}

func strOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}
