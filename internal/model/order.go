package model

import "time"

// Order represents a captured customer order.
type Order struct {
	ID              int64       `json:"id" db:"id"`
	OrderNumber     string      `json:"orderNumber" db:"order_number"`
	CustomerName    string      `json:"customerName" db:"customer_name"`
	CustomerEmail   string      `json:"customerEmail" db:"customer_email"`
	CustomerPhone   string      `json:"customerPhone" db:"customer_phone"`
	CustomerAddress string      `json:"customerAddress" db:"customer_address"`
	Items           []OrderItem `json:"items"`
	Total           string      `json:"total" db:"total"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}

// OrderItem is a denormalized snapshot of one cart line at order time.
// It never tracks later edits or deletions of the referenced product.
type OrderItem struct {
	ProductID   int64  `json:"productId" db:"product_id"`
	ProductName string `json:"productName" db:"product_name"`
	Price       string `json:"price" db:"price"`
	Quantity    int    `json:"quantity" db:"quantity"`
	Image       string `json:"image" db:"image"`
}

// OrderInput represents the checkout payload for creating an order.
type OrderInput struct {
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	Items           []OrderItem `json:"items"`
	Total           string      `json:"total"`
}
