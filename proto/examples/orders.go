package examples

import "time"

// LineItem is a single line of an order.
type LineItem struct {
	ProductId      string `json:"product_id"`
	Name           string `json:"name"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int32  `json:"unit_price_cents"`
}

// CreateOrder requests a new order for a customer.
type CreateOrder struct {
	CustomerId string      `json:"customer_id"`
	Items      []*LineItem `json:"items"`
}

// ConfirmPayment finalizes a submitted payment.
type ConfirmPayment struct {
	PaymentReference string `json:"payment_reference"`
}

// SubmitPayment attaches a payment method to a pending order.
type SubmitPayment struct {
	PaymentMethod string `json:"payment_method"`
	AmountCents   int32  `json:"amount_cents"`
}

// CancelOrder cancels a non-terminal order.
type CancelOrder struct {
	Reason string `json:"reason"`
}

// OrderCreated records order creation with its line items and subtotal.
type OrderCreated struct {
	CustomerId    string      `json:"customer_id"`
	Items         []*LineItem `json:"items"`
	SubtotalCents int32       `json:"subtotal_cents"`
	CreatedAt     time.Time   `json:"created_at"`
}

// PaymentSubmitted records a payment attached to an order.
type PaymentSubmitted struct {
	PaymentMethod string    `json:"payment_method"`
	AmountCents   int32     `json:"amount_cents"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// OrderCompleted records order completion.
type OrderCompleted struct {
	FinalTotalCents     int32     `json:"final_total_cents"`
	PaymentMethod       string    `json:"payment_method"`
	PaymentReference    string    `json:"payment_reference"`
	LoyaltyPointsEarned int32     `json:"loyalty_points_earned"`
	CompletedAt         time.Time `json:"completed_at"`
}

// OrderCancelled records order cancellation.
type OrderCancelled struct {
	Reason            string    `json:"reason"`
	CancelledAt       time.Time `json:"cancelled_at"`
	LoyaltyPointsUsed int32     `json:"loyalty_points_used"`
}

// OrderSnapshot is the snapshot payload for an order aggregate.
type OrderSnapshot struct {
	CustomerId       string      `json:"customer_id"`
	Items            []*LineItem `json:"items"`
	SubtotalCents    int32       `json:"subtotal_cents"`
	DiscountCents    int32       `json:"discount_cents"`
	PaymentMethod    string      `json:"payment_method"`
	PaymentReference string      `json:"payment_reference"`
	Status           string      `json:"status"`
}
