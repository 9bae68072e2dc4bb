package models

import "time"

type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"order_number"`
	UserID        string      `json:"user_id"`
	Items         []OrderItem `json:"items,omitempty"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Discount      float64     `json:"discount"`
	ShippingCost  float64     `json:"shipping_cost"`
	TotalAmount   float64     `json:"total_amount"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Address       *Address    `json:"address,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at,omitzero"`
	UpdatedAt     time.Time   `json:"updated_at,omitzero"`
}

type OrderItem struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id,omitempty"`
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Checkout pricing rules. Tax is waived when the product variant already
// includes it ("included tax"); discount and shipping are flat amounts.
const (
	TaxRate          = 0.18
	TaxIncludedLabel = "included tax"
	FlatDiscount     = 6.00
	FlatShippingCost = 14.00
)

// CheckoutTotals is the price breakdown shown on the checkout summary.
type CheckoutTotals struct {
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	Discount     float64 `json:"discount"`
	ShippingCost float64 `json:"shipping_cost"`
	Total        float64 `json:"total"`
}

// ComputeCheckoutTotals prices a set of cart lines. taxType is the variant's
// product_tax label; anything other than "included tax" applies the flat rate.
func ComputeCheckoutTotals(lines []CartLine, taxType string) CheckoutTotals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}

	var tax float64
	if taxType != TaxIncludedLabel {
		tax = subtotal * TaxRate
	}

	return CheckoutTotals{
		Subtotal:     subtotal,
		Tax:          tax,
		Discount:     FlatDiscount,
		ShippingCost: FlatShippingCost,
		Total:        subtotal + tax - FlatDiscount + FlatShippingCost,
	}
}
