package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses as stored in the 'orders' status enum.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// Order is the model for the 'orders' table. Checkout is not implemented at
// the API level yet; the model exists because cart logic assumes it will be.
type Order struct {
	ID             string          `json:"id" db:"id"`
	UserID         string          `json:"userId" db:"user_id"`
	OrderNumber    string          `json:"orderNumber" db:"order_number"`
	Status         string          `json:"status" db:"status"`
	Subtotal       decimal.Decimal `json:"subtotal" db:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount" db:"tax_amount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount" db:"shipping_amount"`
	TotalAmount    decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Currency       string          `json:"currency" db:"currency"`
	PaymentStatus  string          `json:"paymentStatus" db:"payment_status"`
	Notes          *string         `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderItem is the model for the 'order_items' table.
type OrderItem struct {
	ID         string          `json:"id" db:"id"`
	OrderID    string          `json:"orderId" db:"order_id"`
	ProductID  string          `json:"productId" db:"product_id"`
	Quantity   int             `json:"quantity" db:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice" db:"unit_price"`
	TotalPrice decimal.Decimal `json:"totalPrice" db:"total_price"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
}

// Address is the model for the 'addresses' table.
type Address struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"userId" db:"user_id"`
	Type       string    `json:"type" db:"type"`
	FirstName  string    `json:"firstName" db:"first_name"`
	LastName   string    `json:"lastName" db:"last_name"`
	Company    *string   `json:"company,omitempty" db:"company"`
	Address1   string    `json:"address1" db:"address_1"`
	Address2   *string   `json:"address2,omitempty" db:"address_2"`
	City       string    `json:"city" db:"city"`
	Province   *string   `json:"province,omitempty" db:"province"`
	PostalCode *string   `json:"postalCode,omitempty" db:"postal_code"`
	Country    string    `json:"country" db:"country"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	IsDefault  bool      `json:"isDefault" db:"is_default"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
