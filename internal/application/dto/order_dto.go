package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderProductCreate línea solicitada: producto y cantidad pedida.
type OrderProductCreate struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// OrderCustomerCreate datos de cliente nuevo inline en la creación de orden.
type OrderCustomerCreate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateOrderRequest solicitud de orden: exactamente uno de CustomerID /
// NewCustomerData debe venir, y al menos una línea.
type CreateOrderRequest struct {
	StoreID         string               `json:"store_id"`
	CustomerID      string               `json:"customer_id"`
	NewCustomerData *OrderCustomerCreate `json:"new_customer_data"`
	OrderProducts   []OrderProductCreate `json:"order_products"`
}

// OrderLineResponse línea comprometida: cantidad satisfecha y snapshot de
// precio/nombre del producto al momento de la orden.
type OrderLineResponse struct {
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Name      string          `json:"name"`
}

// OrderResponse orden comprometida. Las líneas en backorder no aparecen aquí;
// los leads son un recurso consultable aparte.
type OrderResponse struct {
	ID            string              `json:"id"`
	StoreID       string              `json:"store_id"`
	Customer      CustomerResponse    `json:"customer"`
	Total         decimal.Decimal     `json:"total"`
	OrderProducts []OrderLineResponse `json:"order_products"`
	CreatedAt     time.Time           `json:"created_at"`
}
