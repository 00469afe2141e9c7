package examples

import "time"

// InitializeStock sets up an inventory aggregate with an initial quantity.
type InitializeStock struct {
	ProductId         string `json:"product_id"`
	InitialQuantity   int32  `json:"initial_quantity"`
	LowStockThreshold int32  `json:"low_stock_threshold"`
}

// ReserveStock reserves quantity against an order.
type ReserveStock struct {
	Quantity int32  `json:"quantity"`
	OrderId  string `json:"order_id"`
}

// CommitReservation converts a reservation into a permanent deduction.
type CommitReservation struct {
	OrderId string `json:"order_id"`
}

// ReleaseReservation releases a reservation back to available stock.
type ReleaseReservation struct {
	OrderId string `json:"order_id"`
}

// ReceiveStock increases on-hand quantity.
type ReceiveStock struct {
	Quantity int32 `json:"quantity"`
}

// StockInitialized records inventory initialization.
type StockInitialized struct {
	ProductId         string `json:"product_id"`
	InitialQuantity   int32  `json:"initial_quantity"`
	LowStockThreshold int32  `json:"low_stock_threshold"`
}

// StockReserved records a successful reservation.
type StockReserved struct {
	Quantity     int32     `json:"quantity"`
	OrderId      string    `json:"order_id"`
	NewAvailable int32     `json:"new_available"`
	ReservedAt   time.Time `json:"reserved_at"`
}

// LowStockAlert fires when available stock drops below threshold.
type LowStockAlert struct {
	ProductId string    `json:"product_id"`
	Available int32     `json:"available"`
	Threshold int32     `json:"threshold"`
	AlertedAt time.Time `json:"alerted_at"`
}

// ReservationCommitted records that a reservation is now a permanent
// deduction.
type ReservationCommitted struct {
	OrderId   string    `json:"order_id"`
	Quantity  int32     `json:"quantity"`
	Committed time.Time `json:"committed_at"`
}

// ReservationReleased records that a reservation was released.
type ReservationReleased struct {
	OrderId  string    `json:"order_id"`
	Quantity int32     `json:"quantity"`
	Released time.Time `json:"released_at"`
}

// StockReceived records stock being received.
type StockReceived struct {
	Quantity     int32     `json:"quantity"`
	NewOnHand    int32     `json:"new_on_hand"`
	ReceivedAt   time.Time `json:"received_at"`
}

// InventorySnapshot is the snapshot payload for an inventory aggregate.
type InventorySnapshot struct {
	ProductId         string           `json:"product_id"`
	OnHand            int32            `json:"on_hand"`
	Reserved          int32            `json:"reserved"`
	LowStockThreshold int32            `json:"low_stock_threshold"`
	Reservations      map[string]int32 `json:"reservations"`
}
