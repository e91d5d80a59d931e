package dto

import "time"

// LeadResponse backorder consultable: demanda no satisfecha de un producto.
type LeadResponse struct {
	ID              string    `json:"id"`
	StoreID         string    `json:"store_id"`
	CustomerID      string    `json:"customer_id"`
	ProductID       string    `json:"product_id"`
	OrderID         string    `json:"order_id"`
	ProductQuantity int64     `json:"product_quantity"`
	CreatedAt       time.Time `json:"created_at"`
}
