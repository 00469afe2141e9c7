package examples

import "time"

// DispatchShipment is issued to the fulfillment domain once an order's
// payment and inventory reservation prerequisites are both satisfied.
type DispatchShipment struct {
	Carrier string `json:"carrier"`
	OrderId string `json:"order_id"`
}

// ShipmentDispatched records that a shipment was dispatched.
type ShipmentDispatched struct {
	Carrier        string    `json:"carrier"`
	TrackingNumber string    `json:"tracking_number"`
	DispatchedAt   time.Time `json:"dispatched_at"`
}
