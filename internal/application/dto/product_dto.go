package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto en una tienda.
type CreateProductRequest struct {
	StoreID string          `json:"store_id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Stock   int64           `json:"stock"`
}

// UpdateProductRequest modificación de producto.
type UpdateProductRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
	Stock *int64           `json:"stock"`
}

// ProductResponse representación de producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int64           `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
