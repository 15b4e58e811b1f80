package documents

import "errors"

var (
	// ErrShipmentNotFound: the shipment id does not resolve to a record.
	// Fatal to the render call, no document is produced.
	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrDeliveryFailed: the rendered payload could not be handed off.
	ErrDeliveryFailed = errors.New("document delivery failed")
)
